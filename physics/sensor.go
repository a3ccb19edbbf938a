package physics

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Sensor is an axis-aligned probe segment described relative to the
// actor's centre in the floor frame. Endpoints are stored min/max ordered.
type Sensor struct {
	x1, y1 int
	x2, y2 int
	color  color.Color
}

// NewHorizontalSensor spans x1..x2 at height y.
func NewHorizontalSensor(y, x1, x2 int, c color.Color) *Sensor {
	return &Sensor{x1: min(x1, x2), y1: y, x2: max(x1, x2), y2: y, color: c}
}

// NewVerticalSensor spans y1..y2 at column x.
func NewVerticalSensor(x, y1, y2 int, c color.Color) *Sensor {
	return &Sensor{x1: x, y1: min(y1, y2), x2: x, y2: max(y1, y2), color: c}
}

// Endpoints returns the floor-relative segment.
func (s *Sensor) Endpoints() (x1, y1, x2, y2 int) {
	return s.x1, s.y1, s.x2, s.y2
}

func (s *Sensor) Color() color.Color { return s.color }

// Length is the number of pixels covered minus one.
func (s *Sensor) Length() int {
	return s.x2 - s.x1 + s.y2 - s.y1
}

// Check returns the best obstacle the sensor touches when the actor is at
// pos in mode mm. One-way obstacles are judged as if the sensor moved
// along mm's down axis, so a head or wall sensor can report a cloud it
// reaches from the wrong side; such callers must skip non-solid results.
func (s *Sensor) Check(pos cp.Vector, mm MovMode, obstacles *ObstacleMap) *Obstacle {
	return SensorStateFor(mm).Check(pos, obstacles, s.x1, s.y1, s.x2, s.y2)
}

// WorldSegment is the sensor in world pixels, ordered min/max.
func (s *Sensor) WorldSegment(pos cp.Vector, mm MovMode) (x1, y1, x2, y2 int) {
	return worldSegment(SensorStateFor(mm), pos, s.x1, s.y1, s.x2, s.y2)
}

// Render draws the sensor with its debug colour.
func (s *Sensor) Render(canvas Canvas, pos cp.Vector, mm MovMode, camera cp.Vector) {
	SensorStateFor(mm).Render(canvas, pos, camera, s.x1, s.y1, s.x2, s.y2, s.color)
}

// probe checks the sensor rotated into mm but ranks surfaces along dir,
// which need not be mm's down axis (ceiling and wall sensors).
func (s *Sensor) probe(pos cp.Vector, mm, dir MovMode, obstacles *ObstacleMap, solidOnly bool) *Obstacle {
	if obstacles == nil {
		panic("physics: sensor check against nil obstacle map")
	}
	x1, y1, x2, y2 := s.WorldSegment(pos, mm)
	return obstacles.bestObstacle(x1, y1, x2, y2, dir, solidOnly)
}
