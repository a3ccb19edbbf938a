package world

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestCameraSnapTo(t *testing.T) {
	cases := []struct {
		name   string
		bounds *cp.BB
		target cp.Vector
		want   cp.Vector
	}{
		{name: "unbounded", target: cp.Vector{X: -50.4, Y: 20.6}, want: cp.Vector{X: -50, Y: 21}},
		{name: "inside", bounds: &cp.BB{R: 2000, T: 1000}, target: cp.Vector{X: 900, Y: 500}, want: cp.Vector{X: 900, Y: 500}},
		{name: "left_top", bounds: &cp.BB{R: 2000, T: 1000}, target: cp.Vector{X: 10, Y: 10}, want: cp.Vector{X: 320, Y: 180}},
		{name: "right_bottom", bounds: &cp.BB{R: 2000, T: 1000}, target: cp.Vector{X: 1990, Y: 990}, want: cp.Vector{X: 1680, Y: 820}},
		{name: "small_world", bounds: &cp.BB{R: 400, T: 200}, target: cp.Vector{X: 10, Y: 190}, want: cp.Vector{X: 200, Y: 100}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewCamera(640, 360)
			if c.bounds != nil {
				cam.SetBounds(*c.bounds)
			}
			cam.SnapTo(c.target)
			assert.Equal(t, c.want, cam.Center())
		})
	}
}

func TestCameraFollow(t *testing.T) {
	cam := NewCamera(640, 360)
	start := cam.Center()
	target := cp.Vector{X: start.X + 100, Y: start.Y - 40}

	cam.Follow(target)
	assert.Equal(t, cp.Vector{X: start.X + 15, Y: start.Y - 6}, cam.Center())

	for i := 0; i < 200; i++ {
		cam.Follow(target)
	}
	assert.Equal(t, target, cam.Center())

	cam.SetSmooth(0)
	cam.Follow(cp.Vector{X: 5, Y: 6})
	assert.Equal(t, cp.Vector{X: 5, Y: 6}, cam.Center())
}

func TestCameraView(t *testing.T) {
	cam := NewCamera(640, 360)
	cam.SnapTo(cp.Vector{X: 1000, Y: 500})
	assert.Equal(t, cp.BB{L: 680, B: 320, R: 1320, T: 680}, cam.View())
}
