package physics

import (
	"math"
	"sync/atomic"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slopescroller/common"
)

// BaseLevel names the edge of an obstacle a height is measured from.
type BaseLevel int

const (
	FromBottom BaseLevel = iota
	FromLeft
	FromTop
	FromRight
)

func (b BaseLevel) String() string {
	switch b {
	case FromBottom:
		return "from_bottom"
	case FromLeft:
		return "from_left"
	case FromTop:
		return "from_top"
	case FromRight:
		return "from_right"
	}
	return "unknown"
}

var nextObstacleID atomic.Uint64

// Obstacle is a positioned collision mask with a surface angle. Solid
// obstacles block from every direction; one-way obstacles are only landed
// on from above.
type Obstacle struct {
	id    uint64
	mask  *CollisionMask
	angle int
	x, y  int
	solid bool
}

// NewSolidObstacle places mask with its top-left corner at position.
func NewSolidObstacle(mask *CollisionMask, angle int, position cp.Vector) *Obstacle {
	return newObstacle(mask, angle, position, true)
}

// NewOneWayObstacle places a cloud-like mask with its top-left corner at
// position.
func NewOneWayObstacle(mask *CollisionMask, angle int, position cp.Vector) *Obstacle {
	return newObstacle(mask, angle, position, false)
}

func newObstacle(mask *CollisionMask, angle int, position cp.Vector, solid bool) *Obstacle {
	return &Obstacle{
		id:    nextObstacleID.Add(1),
		mask:  mask,
		angle: common.WrapDegrees(angle),
		x:     int(math.Floor(position.X)),
		y:     int(math.Floor(position.Y)),
		solid: solid,
	}
}

// ID orders obstacles by creation. It breaks ties in BestObstacleAt.
func (o *Obstacle) ID() uint64 { return o.id }

func (o *Obstacle) Position() cp.Vector {
	return cp.Vector{X: float64(o.x), Y: float64(o.y)}
}

// MoveTo relocates the top-left corner. Moving obstacles are relocated
// between frames, never while a map holding them is being queried.
func (o *Obstacle) MoveTo(position cp.Vector) {
	o.x = int(math.Floor(position.X))
	o.y = int(math.Floor(position.Y))
}

func (o *Obstacle) Width() int  { return o.mask.Width() }
func (o *Obstacle) Height() int { return o.mask.Height() }

// Angle is the surface angle in degrees, [0, 360).
func (o *Obstacle) Angle() int { return o.angle }

func (o *Obstacle) IsSolid() bool { return o.solid }

func (o *Obstacle) HasHeightMap() bool { return o.mask != nil }

func (o *Obstacle) Mask() *CollisionMask { return o.mask }

// Bounds is the world-space box covered by the mask, inclusive of the
// last pixel's far edge.
func (o *Obstacle) Bounds() cp.BB {
	return cp.BB{
		L: float64(o.x),
		B: float64(o.y),
		R: float64(o.x + o.Width()),
		T: float64(o.y + o.Height()),
	}
}

// HeightAt forwards to the mask, with pos relative to the obstacle.
func (o *Obstacle) HeightAt(pos int, base BaseLevel) int {
	return o.mask.HeightAt(pos, base)
}

// SurfaceAt returns the world coordinate of the first solid pixel met
// when travelling along the down axis of dir, on the line through the
// world coordinate c perpendicular to it. ok is false when that line is
// empty.
func (o *Obstacle) SurfaceAt(c int, dir MovMode) (int, bool) {
	if o.mask == nil {
		return 0, false
	}
	w, h := o.Width(), o.Height()
	switch dir {
	case Floor:
		d := o.HeightAt(c-o.x, FromTop)
		return o.y + d, d < h
	case RightWall:
		d := o.HeightAt(c-o.y, FromLeft)
		return o.x + d, d < w
	case Ceiling:
		d := o.HeightAt(c-o.x, FromBottom)
		return o.y + h - 1 - d, d < h
	case LeftWall:
		d := o.HeightAt(c-o.y, FromRight)
		return o.x + w - 1 - d, d < w
	}
	return 0, false
}

// collides reports whether any solid pixel lies inside the inclusive world
// rectangle.
func (o *Obstacle) collides(x1, y1, x2, y2 int) bool {
	if o.mask == nil {
		return false
	}
	lx := max(x1, o.x) - o.x
	rx := min(x2, o.x+o.Width()-1) - o.x
	ty := max(y1, o.y) - o.y
	by := min(y2, o.y+o.Height()-1) - o.y
	if lx > rx || ty > by {
		return false
	}
	for y := ty; y <= by; y++ {
		for x := lx; x <= rx; x++ {
			if o.mask.Solid(x, y) {
				return true
			}
		}
	}
	return false
}
