package pooled

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind categorizes a contract violation.
type Kind string

const (
	KindIndexOutOfRange    Kind = "index_out_of_range"
	KindArgumentOutOfRange Kind = "argument_out_of_range"
	KindNilSource          Kind = "nil_source"
	KindTypeMismatch       Kind = "type_mismatch"
	KindDisposed           Kind = "disposed"
)

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrIndexOutOfRange    = &Error{Kind: KindIndexOutOfRange}
	ErrArgumentOutOfRange = &Error{Kind: KindArgumentOutOfRange}
	ErrNilSource          = &Error{Kind: KindNilSource}
	ErrTypeMismatch       = &Error{Kind: KindTypeMismatch}
	ErrDisposed           = &Error{Kind: KindDisposed}
)

// Error describes a violated list or pool contract.
//
// Lists and pools panic with an *Error (wrapped with a stack trace) because
// every violation is a programming error. The adapters in adapter.go return
// them instead.
type Error struct {
	Kind     Kind
	Op       string
	Index    int
	Count    int
	Expected string
	Actual   string
	Detail   string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("pooled: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))

	switch e.Kind {
	case KindIndexOutOfRange, KindArgumentOutOfRange:
		if e.Op != "" {
			fmt.Fprintf(&b, " (index %d, count %d)", e.Index, e.Count)
		}
	case KindTypeMismatch:
		if e.Expected != "" || e.Actual != "" {
			fmt.Fprintf(&b, ": expected %s, got %s", e.Expected, e.Actual)
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func indexError(op string, index, count int) error {
	return errors.WithStack(&Error{Kind: KindIndexOutOfRange, Op: op, Index: index, Count: count})
}

func rangeError(op string, index, count int) error {
	return errors.WithStack(&Error{Kind: KindArgumentOutOfRange, Op: op, Index: index, Count: count})
}

func disposedError(op string) error {
	return errors.WithStack(&Error{Kind: KindDisposed, Op: op})
}

func nilSourceError(op string) error {
	return errors.WithStack(&Error{Kind: KindNilSource, Op: op})
}

func typeMismatchError(op string, expected, actual any) error {
	return errors.WithStack(&Error{
		Kind:     KindTypeMismatch,
		Op:       op,
		Expected: fmt.Sprintf("%v", expected),
		Actual:   fmt.Sprintf("%T", actual),
	})
}
