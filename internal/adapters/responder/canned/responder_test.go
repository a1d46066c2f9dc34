package canned

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyAlwaysComesFromTheFixedSet(t *testing.T) {
	t.Parallel()

	responder := New()
	known := Replies()

	for i := 0; i < 50; i++ {
		reply, err := responder.Reply(context.Background(), "Bonjour")
		require.NoError(t, err)
		assert.Contains(t, known, reply)
	}
}

func TestReplyIgnoresMessageContent(t *testing.T) {
	t.Parallel()

	responder := NewWithPick(func(int) int { return 1 })

	first, err := responder.Reply(context.Background(), "one thing")
	require.NoError(t, err)
	second, err := responder.Reply(context.Background(), "another thing entirely")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReplyHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Reply(ctx, "Bonjour")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepliesReturnsACopy(t *testing.T) {
	t.Parallel()

	out := Replies()
	require.NotEmpty(t, out)
	out[0] = "mutated"

	assert.NotEqual(t, "mutated", Replies()[0])
}
