package pooled

import "iter"

// Enumerator walks the elements a list held when the enumerator was created.
// It keeps its own reference to that buffer and count, so it neither sees
// later growth nor detects mutation. Once the list grows or is disposed the
// snapshot may hold stale or cleared data; do not use it past that point.
type Enumerator[T any] struct {
	items []T
	index int
}

func newEnumerator[T any](items []T) Enumerator[T] {
	return Enumerator[T]{items: items, index: -1}
}

// MoveNext advances to the next element and reports whether there is one.
// Once it returns false it keeps returning false until Reset.
func (e *Enumerator[T]) MoveNext() bool {
	if e.index < len(e.items) {
		e.index++
	}
	return e.index < len(e.items)
}

// Current returns the element at the cursor. It panics unless the last
// MoveNext returned true.
func (e *Enumerator[T]) Current() T {
	if e.index < 0 || e.index >= len(e.items) {
		panic(indexError("Current", e.index, len(e.items)))
	}
	return e.items[e.index]
}

// Reset moves the cursor back before the first element.
func (e *Enumerator[T]) Reset() {
	e.index = -1
}

// Len returns the number of elements in the snapshot.
func (e *Enumerator[T]) Len() int {
	return len(e.items)
}

func (e *Enumerator[T]) all() iter.Seq2[int, T] {
	items := e.items
	return func(yield func(int, T) bool) {
		for i := 0; i < len(items); i++ {
			if !yield(i, items[i]) {
				return
			}
		}
	}
}

func (e *Enumerator[T]) values() iter.Seq[T] {
	items := e.items
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

func (e *Enumerator[T]) backward() iter.Seq2[int, T] {
	items := e.items
	return func(yield func(int, T) bool) {
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(i, items[i]) {
				return
			}
		}
	}
}
