package pooled

type ownerState uint8

const (
	stateActive ownerState = iota
	stateDisposed
)

// owner holds the current buffer of a list. The buffer is either rented
// from pool (block != nil) or borrowed from the caller (block == nil), in
// which case it is never returned. len(items) is the capacity.
type owner[T any] struct {
	p     *Pool[T]
	block *Buffer[T]
	items []T
	state ownerState
}

func (o *owner[T]) pool() *Pool[T] {
	if o.p == nil {
		o.p = Shared[T]()
	}
	return o.p
}

// create rents the initial buffer.
func (o *owner[T]) create(p *Pool[T], size int) {
	o.p = p
	o.block = p.Rent(max(size, MinimumCapacity))
	o.items = o.block.items
}

// adopt installs caller memory as the initial buffer.
func (o *owner[T]) adopt(p *Pool[T], items []T) {
	o.p = p
	o.block = nil
	o.items = items[:cap(items)]
}

func (o *owner[T]) capacity() int {
	return len(o.items)
}

func (o *owner[T]) borrowed() bool {
	return o.block == nil && o.items != nil
}

// grow doubles the capacity, keeping the first live elements.
func (o *owner[T]) grow(live int) {
	o.install(o.reserve(0, live))
}

// growTo grows to at least required elements, keeping the first live ones.
func (o *owner[T]) growTo(required, live int) {
	o.install(o.reserve(required, live))
}

// reserve rents the next buffer, sized max(2*capacity, required), and copies
// the live prefix into it. The current buffer stays installed and readable
// until install.
func (o *owner[T]) reserve(required, live int) *Buffer[T] {
	o.check("grow")
	next := o.pool().Rent(max(2*len(o.items), required, MinimumCapacity))
	copy(next.items, o.items[:live])
	return next
}

// install makes next the current buffer and retires the previous one.
func (o *owner[T]) install(next *Buffer[T]) {
	o.release()
	o.block = next
	o.items = next.items
}

// release returns the current buffer if the pool owns it.
func (o *owner[T]) release() {
	if o.block != nil {
		o.pool().Return(o.block)
		o.block = nil
	}
}

// dispose returns the buffer and makes the owner unusable. A second call
// panics.
func (o *owner[T]) dispose() {
	o.check("Dispose")
	o.release()
	o.items = nil
	o.state = stateDisposed
}

func (o *owner[T]) check(op string) {
	if o.state == stateDisposed {
		panic(disposedError(op))
	}
}
