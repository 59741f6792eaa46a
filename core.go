package pooled

import (
	"iter"
	"reflect"
)

// core is the list algorithm shared by List and Value. Every method keeps
// 0 <= count <= own.capacity() and validates before it mutates.
type core[T any] struct {
	own   owner[T]
	count int
}

func (c *core[T]) at(index int) T {
	if uint(index) >= uint(c.count) {
		c.own.check("At")
		panic(indexError("At", index, c.count))
	}
	return c.own.items[index]
}

func (c *core[T]) set(index int, item T) {
	if uint(index) >= uint(c.count) {
		c.own.check("Set")
		panic(indexError("Set", index, c.count))
	}
	c.own.items[index] = item
}

func (c *core[T]) ptr(index int) *T {
	if uint(index) >= uint(c.count) {
		c.own.check("Ptr")
		panic(indexError("Ptr", index, c.count))
	}
	return &c.own.items[index]
}

func (c *core[T]) add(item T) {
	if c.count == len(c.own.items) {
		c.own.grow(c.count)
	}
	c.own.items[c.count] = item
	c.count++
}

func (c *core[T]) insert(index int, item T) {
	if uint(index) > uint(c.count) {
		c.own.check("Insert")
		panic(rangeError("Insert", index, c.count))
	}
	if c.count == len(c.own.items) {
		c.own.grow(c.count)
	}
	items := c.own.items
	copy(items[index+1:c.count+1], items[index:c.count])
	items[index] = item
	c.count++
}

func (c *core[T]) removeAt(index int) {
	if uint(index) >= uint(c.count) {
		c.own.check("RemoveAt")
		panic(indexError("RemoveAt", index, c.count))
	}
	items := c.own.items
	copy(items[index:c.count-1], items[index+1:c.count])
	c.count--
	var zero T
	items[c.count] = zero
}

func (c *core[T]) indexFunc(match func(T) bool) int {
	c.own.check("IndexFunc")
	for i, item := range c.own.items[:c.count] {
		if match(item) {
			return i
		}
	}
	return -1
}

func (c *core[T]) removeFunc(match func(T) bool) bool {
	i := c.indexFunc(match)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

func (c *core[T]) clear() {
	c.own.check("Clear")
	c.count = 0
}

func (c *core[T]) copyTo(dst []T, index int) {
	c.own.check("CopyTo")
	if index < 0 || index > len(dst) || len(dst)-index < c.count {
		panic(rangeError("CopyTo", index, c.count))
	}
	copy(dst[index:], c.own.items[:c.count])
}

func (c *core[T]) view() []T {
	c.own.check("View")
	return c.own.items[:c.count:c.count]
}

// addRange appends src with at most one growth. src may alias the list's
// own buffer: the old buffer is retired only after src was copied.
func (c *core[T]) addRange(src []T) {
	c.own.check("AddRange")
	n := len(src)
	if n == 0 {
		return
	}
	need := c.count + n
	if need <= len(c.own.items) {
		copy(c.own.items[c.count:need], src)
	} else {
		next := c.own.reserve(need, c.count)
		copy(next.items[c.count:need], src)
		c.own.install(next)
	}
	c.count = need
}

func (c *core[T]) addSeq(seq iter.Seq[T]) {
	c.own.check("AddSeq")
	if seq == nil {
		panic(nilSourceError("AddSeq"))
	}
	for item := range seq {
		c.add(item)
	}
}

func (c *core[T]) ensureCapacity(minCapacity int) {
	c.own.check("EnsureCapacity")
	if minCapacity < 0 {
		panic(rangeError("EnsureCapacity", minCapacity, c.count))
	}
	if minCapacity > len(c.own.items) {
		c.own.growTo(minCapacity, c.count)
	}
}

func (c *core[T]) toSlice() []T {
	c.own.check("ToSlice")
	out := make([]T, c.count)
	copy(out, c.own.items[:c.count])
	return out
}

// clone copies the live elements into a fresh buffer from the same pool.
func (c *core[T]) clone() core[T] {
	c.own.check("Clone")
	var n core[T]
	n.own.create(c.own.pool(), c.count)
	copy(n.own.items, c.own.items[:c.count])
	n.count = c.count
	return n
}

func (c *core[T]) dispose() {
	c.own.dispose()
	c.count = 0
}

func (c *core[T]) enumerate() Enumerator[T] {
	c.own.check("Enumerate")
	return newEnumerator(c.own.items[:c.count])
}

func (c *core[T]) all() iter.Seq2[int, T] {
	e := c.enumerate()
	return e.all()
}

func (c *core[T]) values() iter.Seq[T] {
	e := c.enumerate()
	return e.values()
}

func (c *core[T]) backward() iter.Seq2[int, T] {
	e := c.enumerate()
	return e.backward()
}

// nilable reports whether the zero value of T is nil.
func nilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Interface, reflect.Map,
		reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
