package physics

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionMaskHeightAt(t *testing.T) {
	m := ParseCollisionMask(
		"....",
		"...#",
		"..##",
		".###",
	)
	require.NotNil(t, m)

	cases := []struct {
		name string
		pos  int
		base BaseLevel
		want int
	}{
		{"top_gap_column", 0, FromTop, 4},
		{"top_slope", 1, FromTop, 3},
		{"top_highest", 3, FromTop, 1},
		{"bottom_solid", 3, FromBottom, 0},
		{"bottom_gap", 0, FromBottom, 4},
		{"left_empty_row", 0, FromLeft, 4},
		{"left_row", 2, FromLeft, 2},
		{"right_row", 2, FromRight, 0},
		{"clipped_low", -7, FromTop, 4},
		{"clipped_high", 99, FromTop, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, m.HeightAt(c.pos, c.base))
		})
	}
}

func TestCollisionMaskFromImage(t *testing.T) {
	m := slopeMask(32)
	require.NotNil(t, m)
	assert.Equal(t, 32, m.Width())
	assert.Equal(t, 32, m.Height())
	for x := 0; x < 32; x++ {
		assert.Equal(t, 31-x, m.HeightAt(x, FromTop))
		assert.Equal(t, 0, m.HeightAt(x, FromBottom))
	}
	assert.True(t, m.Solid(31, 0))
	assert.False(t, m.Solid(0, 0))
	assert.False(t, m.Solid(-1, 5))

	assert.Nil(t, NewCollisionMask(nil))
	assert.Nil(t, NewCollisionMask(image.NewAlpha(image.Rect(0, 0, 0, 0))))
}

func TestMaskCacheInterns(t *testing.T) {
	cache := NewMaskCache()
	a := cache.Intern(solidMask(32, 32))
	b := cache.Intern(solidMask(32, 32))
	c := cache.Intern(slopeMask(32))

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), c.Digest())
	assert.Equal(t, 2, cache.Len())
	assert.Nil(t, cache.Intern(nil))
}
