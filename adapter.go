package pooled

import (
	"iter"
	"reflect"

	"github.com/pkg/errors"
)

// From builds a List from an untyped source. Supported sources are []T,
// a Sequence[T] (both copied with one allocation) and iter.Seq[T] (added
// one by one). A nil source yields ErrNilSource, anything else
// ErrTypeMismatch.
func From[T any](src any) (*List[T], error) {
	switch s := src.(type) {
	case nil:
		return nil, nilSourceError("From")
	case []T:
		return NewListFromSlice(s), nil
	case Sequence[T]:
		if isNilPointer(s) {
			return nil, nilSourceError("From")
		}
		return NewListFrom(s), nil
	case iter.Seq[T]:
		if s == nil {
			return nil, nilSourceError("From")
		}
		return NewListFromSeq(s), nil
	case func(yield func(T) bool):
		if s == nil {
			return nil, nilSourceError("From")
		}
		return NewListFromSeq(s), nil
	default:
		return nil, typeMismatchError("From", reflect.TypeFor[[]T](), src)
	}
}

// ValueFrom is the Value counterpart of From.
func ValueFrom[T any](src any) (Value[T], error) {
	switch s := src.(type) {
	case nil:
		return Value[T]{}, nilSourceError("ValueFrom")
	case []T:
		return NewValueFromSlice(s), nil
	case Sequence[T]:
		if isNilPointer(s) {
			return Value[T]{}, nilSourceError("ValueFrom")
		}
		return NewValueFromSlice(s.seq().view()), nil
	case iter.Seq[T]:
		if s == nil {
			return Value[T]{}, nilSourceError("ValueFrom")
		}
		return NewValueFromSeq(s), nil
	case func(yield func(T) bool):
		if s == nil {
			return Value[T]{}, nilSourceError("ValueFrom")
		}
		return NewValueFromSeq(s), nil
	default:
		return Value[T]{}, typeMismatchError("ValueFrom", reflect.TypeFor[[]T](), src)
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Boxed exposes a Sequence through untyped accessors for call sites that
// only know elements as any. Violations come back as errors instead of
// panics.
type Boxed[T any] struct {
	s Sequence[T]
}

// NewBoxed wraps s.
func NewBoxed[T any](s Sequence[T]) (*Boxed[T], error) {
	if s == nil || isNilPointer(s) {
		return nil, nilSourceError("NewBoxed")
	}
	return &Boxed[T]{s: s}, nil
}

// Len returns the number of elements.
func (b *Boxed[T]) Len() int {
	return b.s.Len()
}

// Get returns the element at index.
func (b *Boxed[T]) Get(index int) (any, error) {
	if uint(index) >= uint(b.s.Len()) {
		return nil, indexError("Get", index, b.s.Len())
	}
	return b.s.At(index), nil
}

// Set replaces the element at index with v, which must be a T.
func (b *Boxed[T]) Set(index int, v any) error {
	item, err := unbox[T]("Set", v)
	if err != nil {
		return err
	}
	if uint(index) >= uint(b.s.Len()) {
		return indexError("Set", index, b.s.Len())
	}
	b.s.Set(index, item)
	return nil
}

// Add appends v, which must be a T.
func (b *Boxed[T]) Add(v any) error {
	item, err := unbox[T]("Add", v)
	if err != nil {
		return err
	}
	b.s.Add(item)
	return nil
}

// Insert places v at index.
func (b *Boxed[T]) Insert(index int, v any) error {
	item, err := unbox[T]("Insert", v)
	if err != nil {
		return err
	}
	if uint(index) > uint(b.s.Len()) {
		return rangeError("Insert", index, b.s.Len())
	}
	b.s.Insert(index, item)
	return nil
}

// RemoveAt removes the element at index.
func (b *Boxed[T]) RemoveAt(index int) error {
	if uint(index) >= uint(b.s.Len()) {
		return indexError("RemoveAt", index, b.s.Len())
	}
	b.s.RemoveAt(index)
	return nil
}

// CopyTo copies the elements into dst starting at index. dst must be a []T
// or []any.
func (b *Boxed[T]) CopyTo(dst any, index int) error {
	switch d := dst.(type) {
	case []T:
		if index < 0 || index > len(d) || len(d)-index < b.s.Len() {
			return rangeError("CopyTo", index, b.s.Len())
		}
		b.s.CopyTo(d, index)
	case []any:
		if index < 0 || index > len(d) || len(d)-index < b.s.Len() {
			return rangeError("CopyTo", index, b.s.Len())
		}
		for i, item := range b.s.View() {
			d[index+i] = item
		}
	case nil:
		return nilSourceError("CopyTo")
	default:
		return typeMismatchError("CopyTo", reflect.TypeFor[[]T](), dst)
	}
	return nil
}

// unbox converts v to T. A nil v is accepted when T's zero value is nil.
func unbox[T any](op string, v any) (T, error) {
	if item, ok := v.(T); ok {
		return item, nil
	}
	var zero T
	if v == nil {
		if nilable[T]() {
			return zero, nil
		}
		return zero, errors.Wrapf(nilSourceError(op), "%s cannot hold nil", reflect.TypeFor[T]())
	}
	return zero, typeMismatchError(op, reflect.TypeFor[T](), v)
}
