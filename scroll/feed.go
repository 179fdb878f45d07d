// Package scroll models the host page's vertical scroll stream as an injectable subscription.
package scroll

import (
	"sync"
)

// Source delivers scroll offsets to subscribers
// The returned cancel func deregisters the handler and is safe to call more than once
type Source interface {
	Subscribe(fn func(offset float64)) (cancel func())
}

type subscriber struct {
	id uint64
	fn func(offset float64)
}

// Feed is an in-process Source the host pushes offsets into
// Delivery is synchronous on the pushing goroutine, in subscription order
type Feed struct {
	mu     sync.Mutex
	subs   []subscriber
	nextID uint64
}

// NewFeed creates an empty feed
func NewFeed() *Feed {
	return &Feed{}
}

// Subscribe registers fn for every subsequent Push
func (f *Feed) Subscribe(fn func(offset float64)) func() {
	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.subs = append(f.subs, subscriber{id: id, fn: fn})
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { f.remove(id) })
	}
}

func (f *Feed) remove(id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.subs {
		if s.id == id {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return
		}
	}
}

// Push delivers offset to all current subscribers
// Handlers run outside the lock so they may cancel themselves
func (f *Feed) Push(offset float64) {
	f.mu.Lock()
	subs := make([]subscriber, len(f.subs))
	copy(subs, f.subs)
	f.mu.Unlock()

	for _, s := range subs {
		s.fn(offset)
	}
}

// Len returns the number of active subscribers
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
