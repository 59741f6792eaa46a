package pooled

import "iter"

// List is a growable sequence whose storage is rented from a Pool. Use it
// through a *List; call Dispose when done so the buffer goes back to the
// pool. The zero value is an empty list that rents from Shared on first
// growth.
//
// A List is not safe for concurrent mutation.
type List[T any] struct {
	c core[T]
}

// NewList returns an empty list with MinimumCapacity elements of room.
func NewList[T any]() *List[T] {
	return Shared[T]().NewList(0)
}

// NewListWithCapacity returns an empty list with room for at least
// capacity elements. Panics if capacity is negative.
func NewListWithCapacity[T any](capacity int) *List[T] {
	return Shared[T]().NewList(capacity)
}

// NewListFromSlice returns a list holding a copy of src.
func NewListFromSlice[T any](src []T) *List[T] {
	l := Shared[T]().NewList(len(src))
	l.c.addRange(src)
	return l
}

// NewListFrom returns a list holding a copy of the elements of src.
func NewListFrom[T any](src Sequence[T]) *List[T] {
	return NewListFromSlice(sourceView("NewListFrom", src))
}

// NewListFromSeq returns a list holding the elements produced by seq.
// The list starts at MinimumCapacity and grows as needed.
func NewListFromSeq[T any](seq iter.Seq[T]) *List[T] {
	if seq == nil {
		panic(nilSourceError("NewListFromSeq"))
	}
	l := Shared[T]().NewList(0)
	l.c.addSeq(seq)
	return l
}

// NewList returns an empty list renting from p with room for at least
// capacity elements. Panics if capacity is negative.
func (p *Pool[T]) NewList(capacity int) *List[T] {
	if capacity < 0 {
		panic(rangeError("NewList", capacity, 0))
	}
	l := &List[T]{}
	l.c.own.create(p, capacity)
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.c.count }

// Cap returns the length of the current buffer.
func (l *List[T]) Cap() int { return l.c.own.capacity() }

// At returns the element at index. Panics unless 0 <= index < Len().
func (l *List[T]) At(index int) T { return l.c.at(index) }

// Set replaces the element at index. Panics unless 0 <= index < Len().
func (l *List[T]) Set(index int, item T) { l.c.set(index, item) }

// Ptr returns a pointer to the element at index. The pointer is valid
// until the list grows or is disposed.
func (l *List[T]) Ptr(index int) *T { return l.c.ptr(index) }

// Add appends item, doubling the buffer first when it is full.
func (l *List[T]) Add(item T) { l.c.add(item) }

// Insert places item at index, shifting later elements right.
// Panics unless 0 <= index <= Len().
func (l *List[T]) Insert(index int, item T) { l.c.insert(index, item) }

// RemoveAt removes the element at index, shifting later elements left.
// Panics unless 0 <= index < Len().
func (l *List[T]) RemoveAt(index int) { l.c.removeAt(index) }

// RemoveFunc removes the first element for which match returns true and
// reports whether one was found.
func (l *List[T]) RemoveFunc(match func(T) bool) bool { return l.c.removeFunc(match) }

// IndexFunc returns the index of the first element for which match returns
// true, or -1.
func (l *List[T]) IndexFunc(match func(T) bool) int { return l.c.indexFunc(match) }

// ContainsFunc reports whether any element satisfies match.
func (l *List[T]) ContainsFunc(match func(T) bool) bool { return l.c.indexFunc(match) >= 0 }

// Clear sets the length to zero. The buffer and its capacity are kept.
func (l *List[T]) Clear() { l.c.clear() }

// CopyTo copies the elements into dst starting at index.
// Panics if dst[index:] is shorter than Len().
func (l *List[T]) CopyTo(dst []T, index int) { l.c.copyTo(dst, index) }

// View returns the elements without copying. The slice aliases the current
// buffer: it is not refreshed when the list grows and must not be used
// after Dispose. Its capacity equals its length, so appending to it never
// writes into the list.
func (l *List[T]) View() []T { return l.c.view() }

// AddRange appends src, growing at most once.
func (l *List[T]) AddRange(src []T) { l.c.addRange(src) }

// AddFrom appends the elements of src, growing at most once.
func (l *List[T]) AddFrom(src Sequence[T]) { l.c.addRange(sourceView("AddFrom", src)) }

// AddSeq appends every element seq produces, growing as needed.
func (l *List[T]) AddSeq(seq iter.Seq[T]) { l.c.addSeq(seq) }

// EnsureCapacity grows the buffer once so that Cap() >= minCapacity.
func (l *List[T]) EnsureCapacity(minCapacity int) { l.c.ensureCapacity(minCapacity) }

// ToSlice returns a copy of the elements in a newly allocated slice.
func (l *List[T]) ToSlice() []T { return l.c.toSlice() }

// Enumerate returns an enumerator over the current elements.
func (l *List[T]) Enumerate() Enumerator[T] { return l.c.enumerate() }

// All iterates index/element pairs of the current elements.
func (l *List[T]) All() iter.Seq2[int, T] { return l.c.all() }

// Values iterates the current elements.
func (l *List[T]) Values() iter.Seq[T] { return l.c.values() }

// Backward iterates index/element pairs from last to first.
func (l *List[T]) Backward() iter.Seq2[int, T] { return l.c.backward() }

// Dispose returns the buffer to its pool. The list must not be used
// afterwards; a second Dispose panics.
func (l *List[T]) Dispose() { l.c.dispose() }

func (l *List[T]) seq() *core[T] { return &l.c }
