package vector

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffle(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	v := FromSlice(ints(0, 500))
	s := v.Shuffle(r)
	assert.Equal(t, 500, s.Len())
	assert.True(t, Equal(v, Sort(s)), "shuffle must be a permutation")
	assert.False(t, Equal(v, s))
	assert.Equal(t, ints(0, 500), v.ToSlice())
	assert.True(t, Empty[int]().Shuffle(nil).IsEmpty())
}

func TestRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	v := FromSlice(ints(0, 40))
	for i := 0; i < 100; i++ {
		assert.True(t, Member(v, v.Random(r)))
	}
	assert.Equal(t, 7, New(7).Random(nil))
	assert.PanicsWithError(t, "empty vector error: random requires at least one element",
		func() { Empty[int]().Random(r) })
}

func TestTakeRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	v := FromSlice(ints(0, 100))
	w := v.TakeRandom(20, r)
	assert.Equal(t, 20, w.Len())
	assert.Equal(t, 20, Uniq(w).Len())
	assert.True(t, w.Every(func(x int) bool { return Member(v, x) }))
	all := v.TakeRandom(1000, r)
	assert.True(t, Equal(v, Sort(all)))
	assert.True(t, v.TakeRandom(0, r).IsEmpty())
}
