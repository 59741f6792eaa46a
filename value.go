package pooled

import "iter"

// Value is the value-type form of List. It is meant to be held in a local
// variable or struct field rather than behind a pointer, and it can start
// out on caller-supplied memory (see Over and OverFilled).
//
// Copying a Value copies the reference to its buffer, not the buffer:
// both copies alias the same storage until one of them grows, and
// disposing one leaves the other pointing at a returned buffer. Use Clone
// for an independent copy.
type Value[T any] struct {
	c core[T]
}

// NewValue returns an empty Value with room for at least capacity elements.
func NewValue[T any](capacity int) Value[T] {
	return Shared[T]().NewValue(capacity)
}

// NewValueFromSlice returns a Value holding a copy of src in a rented buffer.
func NewValueFromSlice[T any](src []T) Value[T] {
	v := Shared[T]().NewValue(len(src))
	v.c.addRange(src)
	return v
}

// NewValueFromSeq returns a Value holding the elements produced by seq.
func NewValueFromSeq[T any](seq iter.Seq[T]) Value[T] {
	if seq == nil {
		panic(nilSourceError("NewValueFromSeq"))
	}
	v := Shared[T]().NewValue(0)
	v.c.addSeq(seq)
	return v
}

// Over returns an empty Value that writes into buf[:cap(buf)] until it
// first grows. Growth moves the elements into a rented buffer; buf is never
// handed to a pool.
func Over[T any](buf []T) Value[T] {
	return Shared[T]().Over(buf)
}

// OverFilled is like Over but treats buf[:len(buf)] as the initial elements.
func OverFilled[T any](buf []T) Value[T] {
	return Shared[T]().OverFilled(buf)
}

// Over returns an empty Value on buf that rents from p once buf is full.
func (p *Pool[T]) Over(buf []T) Value[T] {
	var v Value[T]
	v.c.own.adopt(p, buf)
	return v
}

// OverFilled returns a Value holding buf that rents from p once buf is full.
func (p *Pool[T]) OverFilled(buf []T) Value[T] {
	v := p.Over(buf)
	v.c.count = len(buf)
	return v
}

// NewValue returns an empty Value renting from p.
func (p *Pool[T]) NewValue(capacity int) Value[T] {
	if capacity < 0 {
		panic(rangeError("NewValue", capacity, 0))
	}
	var v Value[T]
	v.c.own.create(p, capacity)
	return v
}

// Clone returns a Value with its own rented buffer holding a copy of the
// elements.
func (v *Value[T]) Clone() Value[T] {
	return Value[T]{c: v.c.clone()}
}

// Borrowed reports whether the current buffer is caller-supplied memory.
func (v *Value[T]) Borrowed() bool { return v.c.own.borrowed() }

// The methods below behave like their List counterparts.

func (v *Value[T]) Len() int { return v.c.count }
func (v *Value[T]) Cap() int { return v.c.own.capacity() }
func (v *Value[T]) At(index int) T { return v.c.at(index) }
func (v *Value[T]) Set(index int, item T) { v.c.set(index, item) }
func (v *Value[T]) Ptr(index int) *T { return v.c.ptr(index) }
func (v *Value[T]) Add(item T) { v.c.add(item) }
func (v *Value[T]) Insert(index int, item T) { v.c.insert(index, item) }
func (v *Value[T]) RemoveAt(index int) { v.c.removeAt(index) }
func (v *Value[T]) RemoveFunc(match func(T) bool) bool { return v.c.removeFunc(match) }
func (v *Value[T]) IndexFunc(match func(T) bool) int { return v.c.indexFunc(match) }
func (v *Value[T]) ContainsFunc(match func(T) bool) bool { return v.c.indexFunc(match) >= 0 }
func (v *Value[T]) Clear() { v.c.clear() }
func (v *Value[T]) CopyTo(dst []T, index int) { v.c.copyTo(dst, index) }
func (v *Value[T]) AddRange(src []T) { v.c.addRange(src) }
func (v *Value[T]) AddSeq(seq iter.Seq[T]) { v.c.addSeq(seq) }
func (v *Value[T]) EnsureCapacity(minCapacity int) { v.c.ensureCapacity(minCapacity) }
func (v *Value[T]) ToSlice() []T { return v.c.toSlice() }
func (v *Value[T]) Enumerate() Enumerator[T] { return v.c.enumerate() }
func (v *Value[T]) All() iter.Seq2[int, T] { return v.c.all() }
func (v *Value[T]) Values() iter.Seq[T] { return v.c.values() }
func (v *Value[T]) Backward() iter.Seq2[int, T] { return v.c.backward() }

// AddFrom appends the elements of src, growing at most once.
func (v *Value[T]) AddFrom(src Sequence[T]) { v.c.addRange(sourceView("AddFrom", src)) }

// View returns the elements without copying. See List.View for its
// lifetime. For a Value over caller memory the view aliases that memory.
func (v *Value[T]) View() []T { return v.c.view() }

// Dispose returns a rented buffer to its pool; caller-supplied memory is
// left alone. Copies of v made before Dispose must not be used afterwards.
func (v *Value[T]) Dispose() { v.c.dispose() }

func (v *Value[T]) seq() *core[T] { return &v.c }
