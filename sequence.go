package pooled

// Sequence is the list contract shared by *List and *Value. It is sealed:
// only types of this package implement it.
type Sequence[T any] interface {
	Len() int
	Cap() int
	At(index int) T
	Set(index int, item T)
	Add(item T)
	Insert(index int, item T)
	RemoveAt(index int)
	Clear()
	CopyTo(dst []T, index int)
	View() []T
	Enumerate() Enumerator[T]
	Dispose()

	seq() *core[T]
}

var (
	_ Sequence[int] = (*List[int])(nil)
	_ Sequence[int] = (*Value[int])(nil)
)

// IndexOf returns the index of the first element equal to item, or -1.
func IndexOf[T comparable](s Sequence[T], item T) int {
	return s.seq().indexFunc(func(v T) bool { return v == item })
}

// Contains reports whether s holds an element equal to item.
func Contains[T comparable](s Sequence[T], item T) bool {
	return IndexOf(s, item) >= 0
}

// Remove removes the first element equal to item and reports whether one
// was found. For pointer, channel and interface element types a nil item
// is never searched for: Remove returns false even if the list holds nil.
func Remove[T comparable](s Sequence[T], item T) bool {
	var zero T
	if nilable[T]() && item == zero {
		return false
	}
	c := s.seq()
	i := c.indexFunc(func(v T) bool { return v == item })
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

// sourceView returns the live elements of a required source.
func sourceView[T any](op string, src Sequence[T]) []T {
	if src == nil {
		panic(nilSourceError(op))
	}
	return src.seq().view()
}
