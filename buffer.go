package pooled

// noClass marks a buffer allocated outside the size classes.
const noClass = -1

// Buffer is a block of storage rented from a Pool. The pool hands out the
// same *Buffer again after it was returned, so renting in steady state does
// not allocate.
//
// A Buffer must not be used after it was passed to Return.
type Buffer[T any] struct {
	items  []T
	class  int
	rented bool
}

// Items returns the whole block. Its length is the rented capacity, which
// may exceed the size passed to Rent.
func (b *Buffer[T]) Items() []T {
	return b.items
}

// Len returns the capacity of the block.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// Rented reports whether the buffer is currently out of its pool.
func (b *Buffer[T]) Rented() bool {
	return b.rented
}
