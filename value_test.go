package pooled

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueOverEmpty(t *testing.T) {
	requireT := require.New(t)
	p := newTestPool[int](t)

	var scratch [4]int
	v := p.Over(scratch[:0])

	requireT.True(v.Borrowed())
	requireT.Equal(4, v.Cap())
	requireT.Zero(v.Len())

	v.Add(1)
	v.Add(2)
	requireT.Equal([4]int{1, 2, 0, 0}, scratch, "writes land in caller memory")
	requireT.Zero(p.Metrics().Rents)

	v.Add(3)
	v.Add(4)
	v.Add(5)
	requireT.False(v.Borrowed())
	requireT.Equal(MinimumCapacity, v.Cap())
	requireT.Equal([]int{1, 2, 3, 4, 5}, v.View())
	requireT.EqualValues(1, p.Metrics().Rents)
	requireT.Zero(p.Metrics().Returns, "caller memory is never returned")

	v.Set(0, 100)
	requireT.Equal(1, scratch[0], "caller memory is left behind after growth")

	v.Dispose()
	requireT.Zero(p.Metrics().Outstanding)
}

func TestValueOverFilled(t *testing.T) {
	requireT := require.New(t)
	p := newTestPool[int](t)

	scratch := []int{7, 8, 9}
	v := p.OverFilled(scratch)

	requireT.Equal(3, v.Len())
	requireT.Equal(3, v.Cap())
	requireT.Equal([]int{7, 8, 9}, v.View())

	v.Add(10)
	requireT.False(v.Borrowed())
	requireT.Equal([]int{7, 8, 9, 10}, v.View())
	requireT.Equal([]int{7, 8, 9}, scratch)
	requireT.Zero(p.Metrics().Returns)

	v.Dispose()
	requireT.EqualValues(1, p.Metrics().Returns)
}

func TestValueOverUsesCapacity(t *testing.T) {
	buf := make([]int, 1, 8)
	v := OverFilled(buf)
	require.Equal(t, 1, v.Len())
	require.Equal(t, 8, v.Cap())

	v.Add(2)
	require.Equal(t, 2, buf[:2][1])
	v.Dispose()
}

func TestValueDisposeBorrowed(t *testing.T) {
	p := newTestPool[int](t)
	var scratch [8]int
	v := p.Over(scratch[:])
	v.Add(1)
	v.Dispose()

	require.Zero(t, p.Metrics().Returns)
	require.Zero(t, v.Cap())
	requirePanicsIs(t, ErrDisposed, v.Dispose)
}

func TestValueClone(t *testing.T) {
	requireT := require.New(t)
	p := newTestPool[int](t)

	v := p.OverFilled([]int{1, 2, 3})
	c := v.Clone()
	defer c.Dispose()

	requireT.False(c.Borrowed())
	requireT.Equal([]int{1, 2, 3}, c.View())

	v.Set(0, 100)
	requireT.Equal(1, c.At(0))
	v.Dispose()
	requireT.Equal([]int{1, 2, 3}, c.View())
	requireT.EqualValues(1, p.Metrics().Rents)
}

func TestValueCopyAliases(t *testing.T) {
	requireT := require.New(t)
	p := newTestPool[int](t)

	v := p.NewValue(0)
	v.Add(1)
	v.Add(2)

	alias := v
	alias.Set(0, 10)
	requireT.Equal(10, v.At(0), "copies share one buffer")

	alias.Add(3)
	requireT.Equal(2, v.Len(), "copies keep separate counts")

	v.Dispose()
	// The alias still points at the returned buffer; disposing it again is
	// a double return.
	requirePanicsIs(t, ErrDisposed, alias.Dispose)
}

func TestValueFromConstructors(t *testing.T) {
	requireT := require.New(t)

	v := NewValueFromSlice([]int{1, 2, 3})
	defer v.Dispose()
	requireT.False(v.Borrowed())
	requireT.Equal(MinimumCapacity, v.Cap())

	s := NewValueFromSeq(slices.Values([]string{"x", "y"}))
	defer s.Dispose()
	requireT.Equal([]string{"x", "y"}, s.View())

	requirePanicsIs(t, ErrNilSource, func() { NewValueFromSeq[int](nil) })
	requirePanicsIs(t, ErrArgumentOutOfRange, func() { NewValue[int](-1) })
}

func TestValueOperations(t *testing.T) {
	requireT := require.New(t)
	v := NewValue[int](3)
	defer v.Dispose()

	v.Add(5)
	v.Add(7)
	v.Add(10)
	requireT.Equal(3, v.Len())
	requireT.Equal(7, v.At(1))

	v.Insert(1, 6)
	requireT.Equal([]int{5, 6, 7, 10}, v.View())
	v.RemoveAt(1)
	requireT.Equal([]int{5, 7, 10}, v.View())

	requireT.True(Remove(&v, 7))
	requireT.Equal(-1, IndexOf(&v, 7))
	requireT.True(v.ContainsFunc(func(i int) bool { return i == 10 }))
	requireT.Equal(1, v.IndexFunc(func(i int) bool { return i == 10 }))
	requireT.True(v.RemoveFunc(func(i int) bool { return i == 5 }))

	v.AddRange([]int{1, 2})
	other := NewListFromSlice([]int{3})
	defer other.Dispose()
	v.AddFrom(other)
	v.AddSeq(slices.Values([]int{4}))
	requireT.Equal([]int{10, 1, 2, 3, 4}, v.ToSlice())

	*v.Ptr(0) = 0
	dst := make([]int, 5)
	v.CopyTo(dst, 0)
	requireT.Equal([]int{0, 1, 2, 3, 4}, dst)

	v.EnsureCapacity(100)
	requireT.Equal(128, v.Cap())

	var back []int
	for _, x := range v.Backward() {
		back = append(back, x)
	}
	requireT.Equal([]int{4, 3, 2, 1, 0}, back)
	requireT.Equal([]int{0, 1, 2, 3, 4}, slices.Collect(v.Values()))
	for i, x := range v.All() {
		requireT.Equal(i, x)
	}

	v.Clear()
	requireT.Zero(v.Len())
	requireT.Equal(128, v.Cap())

	requirePanicsIs(t, ErrIndexOutOfRange, func() { v.At(0) })
	requirePanicsIs(t, ErrArgumentOutOfRange, func() { v.Insert(1, 0) })
}

func TestValueZero(t *testing.T) {
	var v Value[int]
	require.False(t, v.Borrowed())
	v.Add(1)
	require.Equal(t, MinimumCapacity, v.Cap())
	v.Dispose()
}
