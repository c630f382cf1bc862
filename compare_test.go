package dynvec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	t.Run("same elements in order", func(t *testing.T) {
		assert.True(t, Equal(Of(1, 2, 3), Of(1, 2, 3)))
	})

	t.Run("capacity does not participate", func(t *testing.T) {
		a := Of(1, 2, 3)
		b := WithCapacity[int](32)
		for _, x := range []int{1, 2, 3} {
			b.PushBack(x)
		}
		assert.True(t, Equal(a, b))
	})

	t.Run("size mismatch", func(t *testing.T) {
		assert.False(t, Equal(Of(1, 2), Of(1, 2, 3)))
	})

	t.Run("element mismatch", func(t *testing.T) {
		assert.False(t, Equal(Of(1, 2, 3), Of(1, 2, 4)))
	})

	t.Run("empty vectors are equal", func(t *testing.T) {
		assert.True(t, Equal(New[int](), New[int]()))
	})
}

func TestEqualFunc(t *testing.T) {
	a := Of("GO", "Vec")
	b := Of("go", "vec")
	assert.True(t, EqualFunc(a, b, strings.EqualFold))
	assert.False(t, EqualFunc(a, b, func(x, y string) bool { return x == y }))
}

func TestCompare(t *testing.T) {
	t.Run("first differing element decides", func(t *testing.T) {
		assert.Negative(t, Compare(Of(1, 2, 3), Of(1, 2, 4)))
		assert.Positive(t, Compare(Of(1, 2, 4), Of(1, 2, 3)))
	})

	t.Run("shared prefix orders the shorter first", func(t *testing.T) {
		assert.Negative(t, Compare(Of(1, 2), Of(1, 2, 3)))
		assert.Positive(t, Compare(Of(1, 2, 3), Of(1, 2)))
	})

	t.Run("equal vectors compare as zero", func(t *testing.T) {
		assert.Zero(t, Compare(Of(1, 2, 3), Of(1, 2, 3)))
		assert.Zero(t, Compare(New[int](), New[int]()))
	})

	t.Run("derived relations follow the sign", func(t *testing.T) {
		// a <= b and b >= a for equal content.
		assert.LessOrEqual(t, Compare(Of(1), Of(1)), 0)
		assert.GreaterOrEqual(t, Compare(Of(1), Of(1)), 0)
	})
}

func TestCompareFunc(t *testing.T) {
	desc := func(x, y int) int { return y - x }
	assert.Positive(t, CompareFunc(Of(1, 2, 3), Of(1, 2, 4), desc))
	assert.Negative(t, CompareFunc(Of(1, 2), Of(1, 2, 3), desc), "length still breaks ties")
}
