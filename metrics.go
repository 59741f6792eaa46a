package pooled

import (
	"sync/atomic"

	"go.uber.org/zap/zapcore"
)

type counters struct {
	rents     atomic.Int64
	hits      atomic.Int64
	misses    atomic.Int64
	returns   atomic.Int64
	drops     atomic.Int64
	oversized atomic.Int64
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	Rents       int64          // Rent calls
	Hits        int64          // Rentals served by an idle buffer
	Misses      int64          // Rentals that allocated a new class buffer
	Oversized   int64          // Rentals above the largest class
	Returns     int64          // Return calls
	Drops       int64          // Returned buffers not kept
	Outstanding int64          // Rents minus Returns
	Retained    int            // Idle buffers across all classes
	HitRate     float64        // Hits over Rents (0.0-1.0)
	Classes     []ClassMetrics // Per size class, smallest first
}

// ClassMetrics describes one size class.
type ClassMetrics struct {
	Size     int // Elements per buffer
	Retained int // Idle buffers
}

// Metrics returns a snapshot of pool statistics. Counters are read one at a
// time, so a snapshot taken under concurrent use may be slightly skewed.
func (p *Pool[T]) Metrics() PoolMetrics {
	m := PoolMetrics{
		Rents:     p.stats.rents.Load(),
		Hits:      p.stats.hits.Load(),
		Misses:    p.stats.misses.Load(),
		Oversized: p.stats.oversized.Load(),
		Returns:   p.stats.returns.Load(),
		Drops:     p.stats.drops.Load(),
		Classes:   make([]ClassMetrics, len(p.buckets)),
	}
	m.Outstanding = m.Rents - m.Returns
	if m.Rents > 0 {
		m.HitRate = float64(m.Hits) / float64(m.Rents)
	}
	for i := range p.buckets {
		n := p.buckets[i].len()
		m.Classes[i] = ClassMetrics{Size: p.classSize(i), Retained: n}
		m.Retained += n
	}
	return m
}

// Retained returns the number of idle buffers across all classes.
func (p *Pool[T]) Retained() int {
	n := 0
	for i := range p.buckets {
		n += p.buckets[i].len()
	}
	return n
}

// MarshalLogObject implements zapcore.ObjectMarshaler. Classes without idle
// buffers are omitted.
func (m PoolMetrics) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("rents", m.Rents)
	enc.AddInt64("hits", m.Hits)
	enc.AddInt64("misses", m.Misses)
	enc.AddInt64("oversized", m.Oversized)
	enc.AddInt64("returns", m.Returns)
	enc.AddInt64("drops", m.Drops)
	enc.AddInt64("outstanding", m.Outstanding)
	enc.AddInt("retained", m.Retained)
	enc.AddFloat64("hitRate", m.HitRate)
	return enc.AddArray("classes", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, c := range m.Classes {
			if c.Retained == 0 {
				continue
			}
			if err := arr.AppendObject(c); err != nil {
				return err
			}
		}
		return nil
	}))
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (c ClassMetrics) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("size", c.Size)
	enc.AddInt("retained", c.Retained)
	return nil
}
