package pooled

import (
	"math/bits"
	"reflect"

	"go.uber.org/zap"
)

// Pool hands out reusable buffers of T in power-of-two size classes.
// It is safe for concurrent use. Which idle buffer a rental receives is
// unspecified.
type Pool[T any] struct {
	cfg      Config
	minShift int
	clear    bool
	log      *zap.Logger
	buckets  []bucket[T]
	stats    counters
}

// NewPool creates a pool for elements of type T.
// Invalid configuration values are replaced by their defaults.
func NewPool[T any](cfg Config) *Pool[T] {
	cfg = cfg.normalize()
	minShift := classShift(cfg.MinClassSize)
	p := &Pool[T]{
		cfg:      cfg,
		minShift: minShift,
		clear:    cfg.ClearOnReturn || hasPointers(reflect.TypeFor[T]()),
		log:      cfg.Logger.With(zap.Stringer("elem", reflect.TypeFor[T]())),
		buckets:  make([]bucket[T], classShift(cfg.MaxClassSize)-minShift+1),
	}
	for i := range p.buckets {
		p.buckets[i].init()
	}
	return p
}

// Config returns the normalized configuration of the pool.
func (p *Pool[T]) Config() Config {
	return p.cfg
}

// SizeFor returns the capacity a Rent(n) call yields.
func (p *Pool[T]) SizeFor(n int) int {
	if n > p.cfg.MaxClassSize {
		return n
	}
	return p.classSize(p.classIndex(n))
}

// Rent returns a buffer holding at least minCapacity elements. Requests
// above the largest size class are allocated exactly and are not kept when
// returned. Panics if minCapacity is negative.
func (p *Pool[T]) Rent(minCapacity int) *Buffer[T] {
	if minCapacity < 0 {
		panic(rangeError("Rent", minCapacity, 0))
	}
	p.stats.rents.Add(1)

	if minCapacity > p.cfg.MaxClassSize {
		p.stats.oversized.Add(1)
		if ce := p.log.Check(zap.DebugLevel, "oversized rent"); ce != nil {
			ce.Write(zap.Int("size", minCapacity), zap.Int("maxClassSize", p.cfg.MaxClassSize))
		}
		return &Buffer[T]{items: make([]T, minCapacity), class: noClass, rented: true}
	}

	class := p.classIndex(minCapacity)
	if b := p.buckets[class].take(); b != nil {
		p.stats.hits.Add(1)
		b.rented = true
		return b
	}

	p.stats.misses.Add(1)
	size := p.classSize(class)
	if ce := p.log.Check(zap.DebugLevel, "pool miss"); ce != nil {
		ce.Write(zap.Int("size", size))
	}
	return &Buffer[T]{items: make([]T, size), class: class, rented: true}
}

// Return hands b back to the pool. The caller must not touch b or any slice
// taken from it afterwards. Returning a buffer that is not rented panics.
func (p *Pool[T]) Return(b *Buffer[T]) {
	if b == nil {
		return
	}
	if !b.rented {
		panic(disposedError("Return"))
	}
	b.rented = false
	p.stats.returns.Add(1)

	if b.class == noClass || b.class >= len(p.buckets) || len(b.items) != p.classSize(b.class) {
		p.drop(b, "foreign size")
		return
	}
	if p.clear {
		clear(b.items)
	}
	if !p.buckets[b.class].put(b, p.cfg.MaxRetained) {
		p.drop(b, "bucket full")
	}
}

// Drain drops every idle buffer so the garbage collector can reclaim them.
func (p *Pool[T]) Drain() {
	dropped := 0
	for i := range p.buckets {
		dropped += p.buckets[i].drain()
	}
	p.log.Info("pool drained", zap.Int("dropped", dropped), zap.Object("metrics", p.Metrics()))
}

func (p *Pool[T]) drop(b *Buffer[T], reason string) {
	p.stats.drops.Add(1)
	if ce := p.log.Check(zap.DebugLevel, "buffer dropped"); ce != nil {
		ce.Write(zap.Int("size", len(b.items)), zap.String("reason", reason))
	}
}

func (p *Pool[T]) classIndex(n int) int {
	shift := classShift(n)
	if shift < p.minShift {
		return 0
	}
	return shift - p.minShift
}

func (p *Pool[T]) classSize(class int) int {
	return 1 << (p.minShift + class)
}

// classShift returns the smallest s with 1<<s >= n.
func classShift(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// hasPointers reports whether values of t reference memory the garbage
// collector tracks.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Interface, reflect.Map,
		reflect.Slice, reflect.Chan, reflect.Func, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
