package physics

import "fmt"

// ObstacleMap is the set of obstacles near an actor for one frame. It is
// rebuilt by the host every frame and never owns the obstacles.
type ObstacleMap struct {
	obstacles []*Obstacle
}

func NewObstacleMap() *ObstacleMap {
	return &ObstacleMap{}
}

// AddObstacle registers o. nil is ignored.
func (m *ObstacleMap) AddObstacle(o *Obstacle) {
	if o == nil {
		return
	}
	m.obstacles = append(m.obstacles, o)
}

// Reset empties the map while keeping its storage.
func (m *ObstacleMap) Reset() {
	clear(m.obstacles)
	m.obstacles = m.obstacles[:0]
}

func (m *ObstacleMap) Len() int { return len(m.obstacles) }

// Obstacles returns the registered obstacles. The slice must not be
// modified.
func (m *ObstacleMap) Obstacles() []*Obstacle { return m.obstacles }

// BestObstacleAt returns the obstacle that owns the surface a probe over
// the inclusive rectangle (x1, y1)-(x2, y2) should react to when moving in
// mode mm, or nil.
//
// Candidates must have a solid pixel inside the probe. Among them the one
// whose surface is met first along mm's down axis wins; ties go to the
// older obstacle. One-way obstacles only count when the probe reaches them
// from mm's up side (from below in Ceiling mode): the probe must extend
// along the down axis and its trailing end must not be past the surface.
func (m *ObstacleMap) BestObstacleAt(x1, y1, x2, y2 int, mm MovMode) *Obstacle {
	return m.bestObstacle(x1, y1, x2, y2, mm, false)
}

func (m *ObstacleMap) bestObstacle(x1, y1, x2, y2 int, mm MovMode, solidOnly bool) *Obstacle {
	if x1 > x2 || y1 > y2 {
		panic(fmt.Sprintf("physics: probe (%d,%d)-(%d,%d) is not min/max ordered", x1, y1, x2, y2))
	}

	var (
		best      *Obstacle
		bestDepth float64
		bestOK    bool
	)
	for _, o := range m.obstacles {
		depth, ok, hit := o.probed(x1, y1, x2, y2, mm, solidOnly)
		if !hit {
			continue
		}
		if best == nil || better(ok, depth, o.id, bestOK, bestDepth, best.id) {
			best, bestDepth, bestOK = o, depth, ok
		}
	}
	return best
}

// probed reports whether a probe over the rectangle reacts to o in mode
// mm. depth is o's surface projected on mm's down axis, valid when ok.
func (o *Obstacle) probed(x1, y1, x2, y2 int, mm MovMode, solidOnly bool) (depth float64, ok, hit bool) {
	if solidOnly && !o.IsSolid() {
		return 0, false, false
	}
	if !o.collides(x1, y1, x2, y2) {
		return 0, false, false
	}
	c := (y1 + y2) >> 1
	if mm.vertical() {
		c = (x1 + x2) >> 1
	}
	surface, ok := o.SurfaceAt(c, mm)
	if ok {
		if mm.vertical() {
			depth = mm.project(0, float64(surface))
		} else {
			depth = mm.project(float64(surface), 0)
		}
	}
	if !o.IsSolid() && !acceptsOneWay(x1, y1, x2, y2, mm, depth, ok) {
		return depth, ok, false
	}
	return depth, ok, true
}

func acceptsOneWay(x1, y1, x2, y2 int, mm MovMode, depth float64, ok bool) bool {
	if !ok {
		return false
	}
	var trailing float64
	switch mm {
	case Floor:
		if y2 == y1 {
			return false
		}
		trailing = float64(y1)
	case Ceiling:
		if y2 == y1 {
			return false
		}
		trailing = -float64(y2)
	case RightWall:
		if x2 == x1 {
			return false
		}
		trailing = float64(x1)
	case LeftWall:
		if x2 == x1 {
			return false
		}
		trailing = -float64(x2)
	}
	return trailing <= depth
}

func better(ok bool, depth float64, id uint64, bestOK bool, bestDepth float64, bestID uint64) bool {
	switch {
	case ok && !bestOK:
		return true
	case !ok && bestOK:
		return false
	case ok && depth != bestDepth:
		return depth < bestDepth
	}
	return id < bestID
}
