package physics

import (
	"image"
	"image/color"

	"github.com/jakecoffman/cp"
)

func solidMask(w, h int) *CollisionMask {
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return NewCollisionMask(img)
}

// slopeMask is a right triangle rising to the right.
func slopeMask(size int) *CollisionMask {
	img := image.NewAlpha(image.Rect(0, 0, size, size))
	for x := 0; x < size; x++ {
		for y := size - 1 - x; y < size; y++ {
			img.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
	}
	return NewCollisionMask(img)
}

func mapOf(obstacles ...*Obstacle) *ObstacleMap {
	m := NewObstacleMap()
	for _, o := range obstacles {
		m.AddObstacle(o)
	}
	return m
}

func vec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}

type fillCall struct {
	x1, y1, x2, y2 int
	c              color.Color
}

type recordingCanvas struct {
	w, h  int
	calls []fillCall
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordingCanvas) FillRect(x1, y1, x2, y2 int, col color.Color) {
	c.calls = append(c.calls, fillCall{x1, y1, x2, y2, col})
}
