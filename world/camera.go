package world

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slopescroller/common"
)

// Camera follows a world point and keeps the view inside the stage.
type Camera struct {
	pos   cp.Vector
	viewW float64
	viewH float64

	// smoothing factor (0..1), higher follows faster
	smooth float64

	bounds  cp.BB
	bounded bool
}

func NewCamera(viewW, viewH int) *Camera {
	return &Camera{
		pos:    cp.Vector{X: float64(viewW) / 2, Y: float64(viewH) / 2},
		viewW:  float64(viewW),
		viewH:  float64(viewH),
		smooth: 0.15,
	}
}

func (c *Camera) SetBounds(bb cp.BB) {
	c.bounds = bb
	c.bounded = true
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// Center is the followed point rounded to whole pixels.
func (c *Camera) Center() cp.Vector {
	return cp.Vector{X: math.Round(c.pos.X), Y: math.Round(c.pos.Y)}
}

// View is the world rectangle on screen.
func (c *Camera) View() cp.BB {
	return cp.NewBBForExtents(c.Center(), c.viewW/2, c.viewH/2)
}

// Follow moves part of the way toward target. Call once per tick.
func (c *Camera) Follow(target cp.Vector) {
	if c.smooth <= 0 {
		c.SnapTo(target)
		return
	}
	c.SnapTo(cp.Vector{
		X: common.Lerp(c.pos.X, target.X, c.smooth),
		Y: common.Lerp(c.pos.Y, target.Y, c.smooth),
	})
}

// SnapTo centres the view on target at once, clamped to the bounds.
func (c *Camera) SnapTo(target cp.Vector) {
	c.pos = target
	if !c.bounded {
		return
	}
	c.pos.X = clampAxis(c.pos.X, c.bounds.L, c.bounds.R, c.viewW/2)
	c.pos.Y = clampAxis(c.pos.Y, c.bounds.B, c.bounds.T, c.viewH/2)
}

// clampAxis keeps v at least half from both ends; a range smaller than
// the view is centred.
func clampAxis(v, lo, hi, half float64) float64 {
	if hi-lo < 2*half {
		return (lo + hi) / 2
	}
	return common.Clamp(v, lo+half, hi-half)
}
