package pooled

import (
	"sync"

	"github.com/eapache/queue"
	"golang.org/x/sys/cpu"
)

// bucket holds the idle buffers of one size class. Each bucket has its own
// lock so rentals of different sizes never contend.
type bucket[T any] struct {
	_    cpu.CacheLinePad
	mu   sync.Mutex
	free *queue.Queue
}

func (b *bucket[T]) init() {
	b.free = queue.New()
}

// take removes an idle buffer, or returns nil when the bucket is empty.
func (b *bucket[T]) take() *Buffer[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.free.Length() == 0 {
		return nil
	}
	return b.free.Remove().(*Buffer[T])
}

// put keeps buf unless the bucket already retains limit buffers.
func (b *bucket[T]) put(buf *Buffer[T], limit int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.free.Length() >= limit {
		return false
	}
	b.free.Add(buf)
	return true
}

func (b *bucket[T]) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.free.Length()
}

// drain drops every idle buffer and returns how many were dropped.
func (b *bucket[T]) drain() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.free.Length()
	b.free = queue.New()
	return n
}
