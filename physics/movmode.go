package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slopescroller/common"
)

// MovMode is the collision frame an actor is moving in. It is derived from
// the actor's angle and decides how sensors are rotated.
type MovMode int

const (
	Floor MovMode = iota
	RightWall
	Ceiling
	LeftWall
)

// MovModeHysteresis is how many degrees past the 45° arc boundary the
// current mode is kept before switching to the neighbouring one.
const MovModeHysteresis = 5

func (mm MovMode) String() string {
	switch mm {
	case Floor:
		return "floor"
	case RightWall:
		return "right_wall"
	case Ceiling:
		return "ceiling"
	case LeftWall:
		return "left_wall"
	}
	return "unknown"
}

// Rotate returns the mode reached after quarterTurns counter-clockwise
// quarter turns (Floor -> RightWall -> Ceiling -> LeftWall).
func (mm MovMode) Rotate(quarterTurns int) MovMode {
	return MovMode(((int(mm)+quarterTurns)%4 + 4) % 4)
}

// Down is the unit world-space direction of "down" in this mode.
func (mm MovMode) Down() cp.Vector {
	switch mm {
	case RightWall:
		return cp.Vector{X: 1, Y: 0}
	case Ceiling:
		return cp.Vector{X: 0, Y: -1}
	case LeftWall:
		return cp.Vector{X: -1, Y: 0}
	}
	return cp.Vector{X: 0, Y: 1}
}

// Cardinal is the angle at the centre of the mode's arc.
func (mm MovMode) Cardinal() int {
	return int(mm) * 90
}

// vertical reports whether the mode's down axis is the world y axis.
func (mm MovMode) vertical() bool {
	return mm == Floor || mm == Ceiling
}

// project returns the coordinate of a world point along the mode's down
// axis; larger values are further "down".
func (mm MovMode) project(x, y float64) float64 {
	switch mm {
	case RightWall:
		return x
	case Ceiling:
		return -y
	case LeftWall:
		return -x
	}
	return y
}

// MovModeForAngle quantises an angle into the four 90° arcs. The diagonals
// 45 and 315 belong to Floor, 135 and 225 to Ceiling.
func MovModeForAngle(angle int) MovMode {
	a := common.WrapDegrees(angle)
	switch {
	case a <= 45 || a >= 315:
		return Floor
	case a < 135:
		return RightWall
	case a <= 225:
		return Ceiling
	}
	return LeftWall
}

// AngleToMovMode is MovModeForAngle with hysteresis: the current mode is
// kept while the angle stays within 45+MovModeHysteresis degrees of its
// cardinal direction.
func AngleToMovMode(angle int, current MovMode) MovMode {
	d := common.SignedDegrees(angle - current.Cardinal())
	if d < 0 {
		d = -d
	}
	if d <= 45+MovModeHysteresis {
		return current
	}
	return MovModeForAngle(angle)
}
