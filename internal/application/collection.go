package application

import (
	"sync"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

// Record is anything a Collection can hold.
type Record interface {
	RecordID() domain.RecordID
}

// Order is a collection's insertion convention. The ideas board keeps the
// newest item first; the chat transcript and the journal keep conversation
// order.
type Order int

const (
	OrderAppend Order = iota
	OrderPrepend
)

// Collection is an ordered in-memory list of records for one feature.
// Insertion order is storage order; Partition reorders views, never
// storage. Mutations are guarded because delayed chat replies land from
// another goroutine.
type Collection[R Record] struct {
	mu    sync.RWMutex
	order Order
	items []R
}

func NewCollection[R Record](order Order) *Collection[R] {
	return &Collection[R]{order: order}
}

func (c *Collection[R]) Add(record R) R {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.order == OrderPrepend {
		c.items = append([]R{record}, c.items...)
	} else {
		c.items = append(c.items, record)
	}

	return record
}

// Update replaces the record with the given id by the result of mutate.
// A missing id is a silent no-op: a concurrent delete is not an error.
func (c *Collection[R]) Update(id domain.RecordID, mutate func(R) R) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].RecordID() == id {
			c.items[i] = mutate(c.items[i])
			return
		}
	}
}

// Remove deletes the record with the given id. Removing an absent id is a
// no-op, so Remove is idempotent.
func (c *Collection[R]) Remove(id domain.RecordID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].RecordID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Collection[R]) Get(id domain.RecordID) (R, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.RecordID() == id {
			return item, true
		}
	}

	var zero R
	return zero, false
}

// Partition splits the collection into records matching the predicate and
// the rest, both in storage order. The underlying order is untouched.
func (c *Collection[R]) Partition(pred func(R) bool) (matching, rest []R) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if pred(item) {
			matching = append(matching, item)
		} else {
			rest = append(rest, item)
		}
	}

	return matching, rest
}

// Items returns a copy of the collection in storage order.
func (c *Collection[R]) Items() []R {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]R, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Collection[R]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Seed replaces the collection contents, used to load the sample data set
// a fresh process starts with.
func (c *Collection[R]) Seed(items []R) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]R, len(items))
	copy(c.items, items)
}
