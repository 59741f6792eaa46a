package pooled

import (
	"runtime"
	"testing"
)

// BenchmarkRealisticUsage compares pooled lists against plain slices in
// scenarios where the pool should pay off.
func BenchmarkRealisticUsage(b *testing.B) {
	// Test 1: Per-request scratch list of small records
	type record struct {
		ID   int64
		Data [56]byte // Total 64 bytes
	}

	b.Run("ScratchList/Pooled", func(b *testing.B) {
		p := NewPool[record](DefaultConfig())
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			l := p.NewList(0)
			for j := 0; j < 100; j++ {
				l.Add(record{ID: int64(j)})
			}
			l.Dispose()
		}
	})

	b.Run("ScratchList/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			var s []record
			for j := 0; j < 100; j++ {
				s = append(s, record{ID: int64(j)})
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	// Test 2: Stack scratch that rarely spills
	b.Run("Over/Pooled", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			var scratch [16]int
			v := Over(scratch[:0])
			for j := 0; j < 8+i%16; j++ {
				v.Add(j)
			}
			v.Dispose()
		}
	})

	b.Run("Over/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 16)
			for j := 0; j < 8+i%16; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 3: Buffer reuse pattern
	b.Run("BufferReuse/Pooled", func(b *testing.B) {
		p := NewPool[byte](DefaultConfig())
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 10; j++ {
				buf1 := p.Rent(1024)
				buf2 := p.Rent(2048)
				buf3 := p.Rent(512)

				buf1.Items()[0] = byte(j)
				buf2.Items()[0] = byte(j)
				buf3.Items()[0] = byte(j)

				p.Return(buf3)
				p.Return(buf2)
				p.Return(buf1)
			}
		}
	})

	b.Run("BufferReuse/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			buffers := make([][]byte, 30) // 3 buffers per item
			for j := 0; j < 10; j++ {
				buffers[j*3] = make([]byte, 1024)
				buffers[j*3+1] = make([]byte, 2048)
				buffers[j*3+2] = make([]byte, 512)

				buffers[j*3][0] = byte(j)
				buffers[j*3+1][0] = byte(j)
				buffers[j*3+2][0] = byte(j)
			}
			if i%5 == 0 {
				runtime.GC()
			}
		}
	})

	// Test 4: Bulk copy of an existing list
	src := NewListFromSlice(make([]int, 4096))
	defer src.Dispose()

	b.Run("AddFrom/Pooled", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			l := NewList[int]()
			l.AddFrom(src)
			l.Dispose()
		}
	})

	b.Run("AddFrom/Builtin", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = append([]int(nil), src.View()...)
		}
	})
}
