package pooled

import (
	"reflect"
	"sync"
)

// shared maps an element type to its process-wide *Pool.
var shared sync.Map

// Shared returns the process-wide pool for T, creating it with
// DefaultConfig on first use. Lists that are not built from a specific
// pool rent from it.
func Shared[T any]() *Pool[T] {
	typ := reflect.TypeFor[T]()
	if p, ok := shared.Load(typ); ok {
		return p.(*Pool[T])
	}
	p, _ := shared.LoadOrStore(typ, NewPool[T](DefaultConfig()))
	return p.(*Pool[T])
}

// Rent rents at least n elements from the shared pool for T.
func Rent[T any](n int) *Buffer[T] {
	return Shared[T]().Rent(n)
}

// Return gives b back to the shared pool for T.
func Return[T any](b *Buffer[T]) {
	Shared[T]().Return(b)
}

// RentSlice rents at least n elements from the shared pool and returns the
// first n of them together with the handle that must be returned.
func RentSlice[T any](n int) ([]T, *Buffer[T]) {
	b := Shared[T]().Rent(n)
	return b.items[:n], b
}
