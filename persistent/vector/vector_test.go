package vector

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/npillmayer/pvec/fp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sizes around the boundaries of tail and trie levels
var boundarySizes = []int{0, 1, 2, 15, 16, 17, 31, 32, 33, 255, 256, 257, 272, 273, 4095, 4096, 4097, 4112, 4113, 5000}

func TestEmptyVector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	var v Vector[int]
	assert.Equal(t, 0, v.Len())
	assert.True(t, v.IsEmpty())
	assert.Empty(t, v.ToSlice())
	_, ok := v.Fetch(0)
	assert.False(t, ok)
	assert.True(t, v.First().IsNothing())
	assert.True(t, v.Last().IsNothing())
	assert.True(t, Equal(v, Empty[int]()))
	assert.True(t, Equal(v, New[int]()))
	assert.Equal(t, "vec([])", v.String())
}

func TestFirstLastWithDefault(t *testing.T) {
	var v Vector[int]
	assert.Equal(t, -1, v.First().WithDefault(-1))
	assert.Equal(t, -1, v.Last().WithDefault(-1))
	for _, n := range []int{2, 16, 17, 300} {
		v = FromSlice(ints(0, n))
		assert.Equal(t, 0, v.First().WithDefault(-1), "size %d", n)
		assert.Equal(t, n-1, v.Last().WithDefault(-1), "size %d", n)
		w := v.ReplaceAt(0, 42).ReplaceAt(-1, 43)
		assert.Equal(t, 42, w.First().WithDefault(-1), "size %d", n)
		assert.Equal(t, 43, w.Last().WithDefault(-1), "size %d", n)
	}
}

func TestAppendReduce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	v := Empty[int]()
	for i := 1; i <= 20; i++ {
		v = v.Append(i)
	}
	assert.Equal(t, 20, v.Len())
	assert.Equal(t, 20, v.At(19))
	assert.Equal(t, 20, v.At(-1))
	assert.Equal(t, 1, v.At(-20))
	assert.Equal(t, ints(1, 21), v.ToSlice())
	sum, ok := v.Reduce(func(a, b int) int { return a + b })
	assert.True(t, ok)
	assert.Equal(t, 210, sum)
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	for _, n := range boundarySizes {
		xs := ints(0, n)
		v := FromSlice(xs)
		require.Equal(t, n, v.Len())
		require.Equal(t, xs, v.ToSlice(), "size %d", n)
		for i := 0; i < n; i++ {
			x, ok := v.Fetch(i)
			require.True(t, ok)
			require.Equal(t, i, x, "size %d, index %d", n, i)
			x, ok = v.Fetch(i - n)
			require.True(t, ok)
			require.Equal(t, i, x, "size %d, index %d", n, i-n)
		}
		_, ok := v.Fetch(n)
		assert.False(t, ok)
		_, ok = v.Fetch(-n - 1)
		assert.False(t, ok)
		if n > 0 {
			assert.Equal(t, 0, v.MustFirst())
			assert.Equal(t, n-1, v.MustLast())
		}
	}
}

func TestConstructorsAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	for _, n := range boundarySizes {
		xs := ints(0, n)
		v := FromSlice(xs)
		var appended Vector[int]
		for _, x := range xs {
			appended = appended.Append(x)
		}
		assert.True(t, Equal(v, appended), "size %d", n)
		assert.True(t, Equal(v, New(xs...)), "size %d", n)
		assert.True(t, Equal(v, NewMapped(xs, fp.Identity[int])), "size %d", n)
		assert.True(t, Equal(v, FromSeq(v.Values())), "size %d", n)
		if !assert.Equal(t, v.shift, appended.shift, "size %d", n) {
			t.Log(v.Dump())
			t.Log(appended.Dump())
		}
	}
}

func TestPersistence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	for _, n := range boundarySizes {
		v := FromSlice(ints(0, n))
		before := v.ToSlice()
		_ = v.Append(-1)
		_ = v.ReplaceAt(0, -1)
		_ = v.ReplaceAt(-1, -1)
		_ = v.UpdateAt(n/2, func(x int) int { return -x })
		_ = v.DeleteLast()
		_ = v.Concat([]int{-1, -2, -3})
		_ = v.ConcatVector(v)
		_ = v.Take(n / 2)
		_ = v.Drop(n / 2)
		_ = v.InsertAt(n/3, -1)
		_ = v.DeleteAt(n / 3)
		_ = v.Map(func(x int) int { return -x })
		require.Equal(t, before, v.ToSlice(), "size %d", n)
	}
}

func TestReplaceAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	for _, n := range []int{1, 16, 17, 100, 300, 4097} {
		v := FromSlice(ints(0, n))
		for _, i := range []int{0, n / 2, n - 1, -1} {
			w := v.ReplaceAt(i, -7)
			j := i
			if j < 0 {
				j += n
			}
			assert.Equal(t, -7, w.At(j), "size %d, index %d", n, i)
			assert.Equal(t, j, v.At(j))
			assert.Equal(t, n, w.Len())
		}
		assert.Equal(t, -7, v.ReplaceAt(0, -7).MustFirst(), "size %d", n)
		assert.True(t, Equal(v, v.ReplaceAt(n, -7)))
		assert.PanicsWithError(t, newIndexError(n, n).Error(), func() { v.MustReplaceAt(n, 0) })
	}
}

func TestPopAppendInverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	for _, n := range boundarySizes {
		v := FromSlice(ints(0, n))
		x, w, ok := v.Append(-1).PopLast()
		require.True(t, ok)
		assert.Equal(t, -1, x)
		assert.True(t, Equal(v, w), "size %d", n)
	}
}

func TestPopDownToEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	n := 4113
	v := FromSlice(ints(0, n))
	for i := n - 1; i >= 0; i-- {
		x, w, ok := v.PopLast()
		require.True(t, ok)
		require.Equal(t, i, x)
		require.Equal(t, i, w.Len())
		if i > 0 {
			if !assert.Equal(t, i-1, w.MustLast()) || !assert.Equal(t, 0, w.MustFirst()) {
				t.Log(w.Dump())
				t.FailNow()
			}
		}
		v = w
	}
	_, _, ok := v.PopLast()
	assert.False(t, ok)
	assert.True(t, v.IsEmpty())
	assert.True(t, Equal(v, v.DeleteLast()))
}

func TestConcat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	v := New(ints(1, 17)...).Concat([]int{17})
	assert.Equal(t, 17, v.Len())
	assert.Equal(t, ints(1, 18), v.ToSlice())
	assert.Equal(t, largeShape, v.shape())
	//
	for _, l := range []int{0, 1, 15, 16, 17, 32, 100, 256, 257, 4096} {
		for _, r := range []int{0, 1, 15, 16, 17, 33, 300, 4097} {
			xs, ys := ints(0, l), ints(l, l+r)
			a, b := FromSlice(xs), FromSlice(ys)
			expected := ints(0, l+r)
			if !assert.Equal(t, expected, a.Concat(ys).ToSlice(), "%d ++ %d", l, r) {
				t.Log(a.Concat(ys).Dump())
			}
			assert.Equal(t, expected, a.ConcatSeq(b.Values()).ToSlice(), "%d ++ %d (seq)", l, r)
			if c := a.ConcatVector(b); !assert.Equal(t, expected, c.ToSlice(), "%d ++ %d (vector)", l, r) {
				t.Log(c.Dump())
			}
		}
	}
}

func TestConcatVectorSharesLeaves(t *testing.T) {
	a, b := FromSlice(ints(0, 32)), FromSlice(ints(32, 100))
	c := a.ConcatVector(b)
	assert.Equal(t, ints(0, 100), c.ToSlice())
	assert.Same(t, lookupLeaf(b.root, b.shift, 0), lookupLeaf(c.root, c.shift, 32))
	assert.Same(t, b.tail, c.tail)
}

func TestDuplicate(t *testing.T) {
	v := Duplicate("x", 1000)
	assert.Equal(t, 1000, v.Len())
	assert.True(t, v.Every(func(s string) bool { return s == "x" }))
	assert.Same(t, lookupLeaf(v.root, v.shift, 0), lookupLeaf(v.root, v.shift, 500))
	assert.Equal(t, 0, Duplicate("x", 0).Len())
	assert.Equal(t, []string{"x", "x"}, Duplicate("x", 2).ToSlice())
}

func TestRebuildIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	v := FromSlice(ints(0, 1000)).
		Concat(ints(1000, 1100)).
		Drop(37).
		DeleteLast().
		ReplaceAt(500, -1).
		Take(900).
		InsertAt(3, -3)
	w := FromSlice(v.ToSlice())
	assert.True(t, Equal(v, w))
	assert.Equal(t, 901, w.Len())
	assert.Equal(t, -3, w.At(3))
	assert.Equal(t, 37, w.MustFirst())
}

func TestIndexError(t *testing.T) {
	v := New(1, 2, 3)
	assert.PanicsWithError(t, "out of bound index: 5 not in -3..2", func() { v.At(5) })
	assert.PanicsWithError(t, "out of bound index: 0 (empty vector)", func() { Empty[int]().At(0) })
	r := v.Lookup(-4)
	assert.False(t, r.IsOk())
	_, err := r.Value()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	var ierr *IndexError
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, -4, ierr.Index)
	assert.Equal(t, 3, ierr.Size)
	x, err := v.Lookup(-1).Value()
	assert.NoError(t, err)
	assert.Equal(t, 3, x)
}

func TestEmptyError(t *testing.T) {
	var v Vector[int]
	assert.PanicsWithError(t, "empty vector error: pop_last requires at least one element",
		func() { v.MustPopLast() })
	assert.PanicsWithError(t, "empty vector error: max requires at least one element",
		func() { Max(v) })
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrEmpty))
	}()
	v.MustFirst()
}

func TestGetAndUpdate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	v := FromSlice(ints(0, 40))
	old, w := v.GetAndUpdate(20, func(x int) Update[int] { return Replace(x, x*100) })
	assert.Equal(t, 20, old)
	assert.Equal(t, 2000, w.At(20))
	assert.Equal(t, 20, v.At(20))
	old, w = v.GetAndUpdate(0, func(x int) Update[int] { return Replace(x, -1) })
	assert.Equal(t, 0, old)
	assert.Equal(t, -1, w.MustFirst())
	assert.Equal(t, 0, v.MustFirst())
	old, w = v.GetAndUpdate(-1, func(x int) Update[int] { return Remove(x) })
	assert.Equal(t, 39, old)
	assert.Equal(t, ints(0, 39), w.ToSlice())
	old, w = v.GetAndUpdate(0, func(x int) Update[int] { return Remove(x) })
	assert.Equal(t, 0, old)
	assert.Equal(t, ints(1, 40), w.ToSlice())
	assert.PanicsWithError(t, (&MalformedUpdateError{Index: 3}).Error(), func() {
		v.GetAndUpdate(3, func(int) Update[int] { return Update[int]{} })
	})
	assert.Panics(t, func() {
		v.GetAndUpdate(40, func(x int) Update[int] { return Remove(x) })
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "vec([1, 2, 3])", New(1, 2, 3).String())
	assert.Equal(t, "vec([a])", New("a").String())
}

func TestDump(t *testing.T) {
	v := FromSlice(ints(0, 40))
	d := v.Dump()
	assert.Contains(t, d, "size=40")
	assert.Contains(t, d, "0…15")
	assert.Contains(t, New(1).Dump(), "tail=[1]")
}

func TestFakeWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.vector")
	defer teardown()
	//
	fake := gofakeit.New(4711)
	words := make([]string, 1500)
	for i := range words {
		words[i] = fake.Word()
	}
	var v Vector[string]
	versions := make([]Vector[string], 0, len(words))
	for _, w := range words {
		v = v.Append(w)
		versions = append(versions, v)
	}
	for i, version := range versions {
		require.Equal(t, i+1, version.Len())
		require.Equal(t, words[i], version.MustLast())
		require.Equal(t, words[0], version.MustFirst())
	}
	for i := 0; i < 200; i++ {
		k := fake.Number(0, len(words)-1)
		name := fake.Name()
		w := v.ReplaceAt(k, name)
		require.Equal(t, name, w.At(k))
		require.Equal(t, words[k], v.At(k))
	}
	assert.Equal(t, words, v.ToSlice())
}
