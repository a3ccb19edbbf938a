package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestObstacleSurfaceAt(t *testing.T) {
	o := NewSolidObstacle(slopeMask(32), 45, vec(64, 100))

	cases := []struct {
		name   string
		c      int
		dir    MovMode
		want   int
		wantOK bool
	}{
		{"floor_left_edge", 64, Floor, 131, true},
		{"floor_right_edge", 95, Floor, 100, true},
		{"floor_clipped", 200, Floor, 100, true},
		{"right_wall_top_row", 100, RightWall, 95, true},
		{"right_wall_bottom_row", 131, RightWall, 64, true},
		{"ceiling", 80, Ceiling, 131, true},
		{"left_wall", 110, LeftWall, 95, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := o.SurfaceAt(c.c, c.dir)
			assert.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestObstacleAccessors(t *testing.T) {
	o := NewOneWayObstacle(solidMask(32, 16), -90, vec(10.7, -3.2))
	assert.False(t, o.IsSolid())
	assert.True(t, o.HasHeightMap())
	assert.Equal(t, 270, o.Angle())
	assert.Equal(t, vec(10, -4), o.Position())
	assert.Equal(t, 32, o.Width())
	assert.Equal(t, 16, o.Height())
	bb := o.Bounds()
	assert.Equal(t, 10.0, bb.L)
	assert.Equal(t, 42.0, bb.R)
	assert.Equal(t, -4.0, bb.B)
	assert.Equal(t, 12.0, bb.T)

	missing := NewSolidObstacle(nil, 0, vec(0, 0))
	assert.False(t, missing.HasHeightMap())
	assert.False(t, missing.collides(-100, -100, 100, 100))
	_, ok := missing.SurfaceAt(0, Floor)
	assert.False(t, ok)
}

func TestObstacleIDsIncrease(t *testing.T) {
	a := NewSolidObstacle(solidMask(4, 4), 0, vec(0, 0))
	b := NewSolidObstacle(solidMask(4, 4), 0, vec(0, 0))
	assert.Less(t, a.ID(), b.ID())
}

func TestObstacleMoveTo(t *testing.T) {
	o := NewSolidObstacle(solidMask(32, 16), 0, vec(10, 20))
	o.MoveTo(vec(40.7, -3.2))
	assert.Equal(t, vec(40, -4), o.Position())
	assert.Equal(t, cp.BB{L: 40, B: -4, R: 72, T: 12}, o.Bounds())

	top, ok := o.SurfaceAt(50, Floor)
	assert.True(t, ok)
	assert.Equal(t, -4, top)
}
