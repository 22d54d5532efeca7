package viewstate

import (
	"context"
	"sync"
)

// Cell is a single-writer, multi-reader broadcast holder for the latest
// render-ready state. Subscribers get the current value replayed on
// subscribe and the newest value after each Set; slow subscribers skip
// intermediate states rather than blocking the writer.
type Cell[T any] struct {
	mu     sync.Mutex
	value  T
	hasVal bool
	nextID int
	subs   map[int]chan T
}

// NewCell creates an empty cell.
func NewCell[T any]() *Cell[T] {
	return &Cell[T]{subs: make(map[int]chan T)}
}

// Set stores v as the latest value and fans it out to all subscribers.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = v
	c.hasVal = true
	for _, ch := range c.subs {
		sendLatest(ch, v)
	}
}

// Get returns the latest value; ok is false before the first Set.
func (c *Cell[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.hasVal
}

// Subscribe returns a channel carrying the latest value. The channel closes
// when ctx is done.
func (c *Cell[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	if c.hasVal {
		ch <- c.value
	}
	c.mu.Unlock()

	go func() {
		<-ctx.Done()
		c.mu.Lock()
		delete(c.subs, id)
		close(ch)
		c.mu.Unlock()
	}()

	return ch
}

// sendLatest replaces any undelivered value so the receiver always gets the
// most recent state.
func sendLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}
