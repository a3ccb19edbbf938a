package physics

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
)

// Canvas is the drawing surface sensors are rendered onto.
type Canvas interface {
	Size() (width, height int)
	FillRect(x1, y1, x2, y2 int, c color.Color)
}

// SensorState rotates sensor geometry into one of the four movement modes
// and runs collision checks and debug rendering in that frame. The four
// states are stateless singletons.
type SensorState interface {
	MovMode() MovMode
	// Transform rotates a segment given in floor-relative coordinates.
	Transform(x1, y1, x2, y2 int) (int, int, int, int)
	Check(pos cp.Vector, obstacles *ObstacleMap, x1, y1, x2, y2 int) *Obstacle
	Render(canvas Canvas, pos, camera cp.Vector, x1, y1, x2, y2 int, c color.Color)
}

var (
	FloorState     SensorState = floorState{}
	RightWallState SensorState = rightWallState{}
	CeilingState   SensorState = ceilingState{}
	LeftWallState  SensorState = leftWallState{}
)

// SensorStateFor returns the singleton for mm.
func SensorStateFor(mm MovMode) SensorState {
	switch mm {
	case RightWall:
		return RightWallState
	case Ceiling:
		return CeilingState
	case LeftWall:
		return LeftWallState
	}
	return FloorState
}

type floorState struct{}

func (floorState) MovMode() MovMode { return Floor }

func (floorState) Transform(x1, y1, x2, y2 int) (int, int, int, int) {
	return x1, y1, x2, y2
}

func (s floorState) Check(pos cp.Vector, obstacles *ObstacleMap, x1, y1, x2, y2 int) *Obstacle {
	return check(s, pos, obstacles, x1, y1, x2, y2)
}

func (s floorState) Render(canvas Canvas, pos, camera cp.Vector, x1, y1, x2, y2 int, c color.Color) {
	render(s, canvas, pos, camera, x1, y1, x2, y2, c)
}

type rightWallState struct{}

func (rightWallState) MovMode() MovMode { return RightWall }

func (rightWallState) Transform(x1, y1, x2, y2 int) (int, int, int, int) {
	return y1, -x1, y2, -x2
}

func (s rightWallState) Check(pos cp.Vector, obstacles *ObstacleMap, x1, y1, x2, y2 int) *Obstacle {
	return check(s, pos, obstacles, x1, y1, x2, y2)
}

func (s rightWallState) Render(canvas Canvas, pos, camera cp.Vector, x1, y1, x2, y2 int, c color.Color) {
	render(s, canvas, pos, camera, x1, y1, x2, y2, c)
}

type ceilingState struct{}

func (ceilingState) MovMode() MovMode { return Ceiling }

func (ceilingState) Transform(x1, y1, x2, y2 int) (int, int, int, int) {
	return -x1, -y1, -x2, -y2
}

func (s ceilingState) Check(pos cp.Vector, obstacles *ObstacleMap, x1, y1, x2, y2 int) *Obstacle {
	return check(s, pos, obstacles, x1, y1, x2, y2)
}

func (s ceilingState) Render(canvas Canvas, pos, camera cp.Vector, x1, y1, x2, y2 int, c color.Color) {
	render(s, canvas, pos, camera, x1, y1, x2, y2, c)
}

type leftWallState struct{}

func (leftWallState) MovMode() MovMode { return LeftWall }

func (leftWallState) Transform(x1, y1, x2, y2 int) (int, int, int, int) {
	return -y1, x1, -y2, x2
}

func (s leftWallState) Check(pos cp.Vector, obstacles *ObstacleMap, x1, y1, x2, y2 int) *Obstacle {
	return check(s, pos, obstacles, x1, y1, x2, y2)
}

func (s leftWallState) Render(canvas Canvas, pos, camera cp.Vector, x1, y1, x2, y2 int, c color.Color) {
	render(s, canvas, pos, camera, x1, y1, x2, y2, c)
}

// worldSegment rotates a segment, translates it to pos and orders the
// endpoints min/max.
func worldSegment(s SensorState, pos cp.Vector, x1, y1, x2, y2 int) (int, int, int, int) {
	x1, y1, x2, y2 = s.Transform(x1, y1, x2, y2)
	px, py := int(math.Floor(pos.X)), int(math.Floor(pos.Y))
	x1, x2 = x1+px, x2+px
	y1, y2 = y1+py, y2+py
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return x1, y1, x2, y2
}

func check(s SensorState, pos cp.Vector, obstacles *ObstacleMap, x1, y1, x2, y2 int) *Obstacle {
	if obstacles == nil {
		panic("physics: sensor check against nil obstacle map")
	}
	x1, y1, x2, y2 = worldSegment(s, pos, x1, y1, x2, y2)
	return obstacles.BestObstacleAt(x1, y1, x2, y2, s.MovMode())
}

func render(s SensorState, canvas Canvas, pos, camera cp.Vector, x1, y1, x2, y2 int, c color.Color) {
	if canvas == nil {
		return
	}
	x1, y1, x2, y2 = worldSegment(s, pos, x1, y1, x2, y2)
	w, h := canvas.Size()
	ox := int(math.Floor(camera.X)) - w/2
	oy := int(math.Floor(camera.Y)) - h/2
	canvas.FillRect(x1-ox, y1-oy, x2-ox, y2-oy, c)
}
