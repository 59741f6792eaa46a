// Package pooled implements growable lists whose storage is rented from a
// shared buffer pool.
//
// # Overview
//
// A pooled list behaves like a slice you append to, but instead of
// allocating a fresh backing array per list it rents one from a Pool and
// hands it back on Dispose. This is useful for:
//
//   - Per-request scratch lists in servers
//   - Decoders that build a list, stream it out once and drop it
//   - Hot loops where slice growth shows up in allocation profiles
//
// # Basic Usage
//
//	l := pooled.NewList[int]()
//	defer l.Dispose() // Return the buffer to the pool
//
//	l.Add(5)
//	l.Insert(0, 3)
//	l.RemoveAt(1)
//
//	for _, v := range l.View() { // Zero-copy window over the elements
//		fmt.Println(v)
//	}
//
// Value is the value-type form. It can start on caller memory and only
// rents once that memory is full:
//
//	var scratch [16]int
//	v := pooled.Over(scratch[:0])
//	defer v.Dispose()
//
// # Pools
//
// Every element type has one process-wide pool, Shared[T]. Pools keep idle
// buffers in power-of-two size classes, one lock per class, and are safe
// for concurrent use. A separate pool with its own limits is created with
// NewPool and used through Pool.NewList and Pool.NewValue.
//
// # Ownership
//
//   - A list owns its current buffer until Dispose
//   - Growth rents a larger buffer, copies the elements and returns the old one
//   - Views, Ptr results and enumerators borrow the buffer they were taken
//     from; they are stale after growth and invalid after Dispose
//   - Caller memory given to Over or OverFilled is never returned to a pool
//   - Copies of a Value share one buffer; dispose exactly one of them
//
// # Errors
//
// Lists and pools panic on contract violations (bad index, negative
// capacity, use after Dispose, double Return) with an *Error wrapped in a
// stack trace. Match them with errors.Is against ErrIndexOutOfRange,
// ErrArgumentOutOfRange, ErrNilSource, ErrTypeMismatch or ErrDisposed. The
// untyped adapters From, ValueFrom and Boxed return these errors instead.
//
// # Metrics and Logging
//
//	m := pooled.Shared[int]().Metrics()
//	fmt.Printf("Hit rate: %.2f%%\n", m.HitRate*100)
//
// Pools log through zap. SetLogger installs a logger for pools created
// afterwards; PoolMetrics can be logged with zap.Object.
package pooled
