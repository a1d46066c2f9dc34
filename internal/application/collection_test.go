package application

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

func newIdea(id string, starred bool) domain.Idea {
	return domain.Idea{ID: domain.RecordID(id), Content: "idea " + id, Starred: starred}
}

func TestCollectionPrependKeepsNewestFirst(t *testing.T) {
	board := NewCollection[domain.Idea](OrderPrepend)
	board.Add(newIdea("a", false))
	board.Add(newIdea("b", false))
	board.Add(newIdea("c", false))

	items := board.Items()
	require.Len(t, items, 3)
	assert.Equal(t, domain.RecordID("c"), items[0].ID)
	assert.Equal(t, domain.RecordID("a"), items[2].ID)
}

func TestCollectionAppendKeepsConversationOrder(t *testing.T) {
	transcript := NewCollection[domain.ChatMessage](OrderAppend)
	transcript.Add(domain.ChatMessage{ID: "m1"})
	transcript.Add(domain.ChatMessage{ID: "m2"})

	items := transcript.Items()
	require.Len(t, items, 2)
	assert.Equal(t, domain.RecordID("m1"), items[0].ID)
	assert.Equal(t, domain.RecordID("m2"), items[1].ID)
}

func TestCollectionUpdateMissingIDIsNoOp(t *testing.T) {
	board := NewCollection[domain.Idea](OrderPrepend)
	board.Add(newIdea("a", false))

	board.Update("missing", func(idea domain.Idea) domain.Idea {
		idea.Starred = true
		return idea
	})

	items := board.Items()
	require.Len(t, items, 1)
	assert.False(t, items[0].Starred)
}

func TestCollectionRemoveIsIdempotent(t *testing.T) {
	board := NewCollection[domain.Idea](OrderPrepend)
	board.Add(newIdea("a", false))
	board.Add(newIdea("b", false))

	board.Remove("a")
	assert.Equal(t, 1, board.Len())

	// Second remove of the same id is a silent no-op.
	board.Remove("a")
	assert.Equal(t, 1, board.Len())
}

func TestCollectionPartitionReconstructsTheSet(t *testing.T) {
	board := NewCollection[domain.Idea](OrderPrepend)
	for i := 0; i < 10; i++ {
		board.Add(newIdea(fmt.Sprintf("idea-%d", i), i%3 == 0))
	}
	board.Remove("idea-4")
	board.Update("idea-7", func(idea domain.Idea) domain.Idea {
		idea.Starred = !idea.Starred
		return idea
	})

	starred, regular := board.Partition(func(idea domain.Idea) bool { return idea.Starred })

	seen := map[domain.RecordID]int{}
	for _, idea := range starred {
		assert.True(t, idea.Starred)
		seen[idea.ID]++
	}
	for _, idea := range regular {
		assert.False(t, idea.Starred)
		seen[idea.ID]++
	}

	items := board.Items()
	require.Len(t, seen, len(items))
	for _, idea := range items {
		assert.Equal(t, 1, seen[idea.ID], "record %s must appear exactly once across partitions", idea.ID)
	}
}

func TestCollectionPartitionDoesNotMutateStorageOrder(t *testing.T) {
	board := NewCollection[domain.Idea](OrderPrepend)
	board.Add(newIdea("a", false))
	board.Add(newIdea("b", true))
	board.Add(newIdea("c", false))

	before := board.Items()
	_, _ = board.Partition(func(idea domain.Idea) bool { return idea.Starred })
	assert.Equal(t, before, board.Items())
}

func TestCollectionGet(t *testing.T) {
	board := NewCollection[domain.Idea](OrderPrepend)
	board.Add(newIdea("a", true))

	idea, ok := board.Get("a")
	require.True(t, ok)
	assert.True(t, idea.Starred)

	_, ok = board.Get("missing")
	assert.False(t, ok)
}

func TestCollectionItemsReturnsACopy(t *testing.T) {
	board := NewCollection[domain.Idea](OrderPrepend)
	board.Add(newIdea("a", false))

	items := board.Items()
	items[0].Content = "mutated"

	assert.Equal(t, "idea a", board.Items()[0].Content)
}
