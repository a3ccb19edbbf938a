package physics

import (
	"math"

	"github.com/milk9111/slopescroller/common"
)

// move integrates the velocity in sub-steps and resolves collisions after
// each one.
func (a *Actor) move(obstacles *ObstacleMap, in intents, dt float64) {
	dist := math.Hypot(a.xsp, a.ysp) * dt
	steps := max(1, int(math.Ceil(dist/maxSubstep)))
	h := dt / float64(steps)
	for i := 0; i < steps; i++ {
		if !a.inTheAir {
			a.decompose()
		}
		a.position.X += a.xsp * h
		a.position.Y += a.ysp * h
		a.collide(obstacles, in)
	}
	if !a.inTheAir {
		a.decompose()
	}
}

func (a *Actor) collide(obstacles *ObstacleMap, in intents) {
	a.collideWalls(obstacles, in)
	if a.inTheAir {
		a.collideCeiling(obstacles)
	}

	wasInTheAir, mode := a.inTheAir, a.movmode
	a.collideGround(obstacles)
	if !a.inTheAir && (wasInTheAir || a.movmode != mode) {
		// the body shape or the frame changed; settle again
		a.collideGround(obstacles)
	}
}

// clearance is the signed gap along dir between the body edge reach
// pixels from the centre and the surface of o under sensor s. It is
// negative when the body is embedded.
func (a *Actor) clearance(s *Sensor, o *Obstacle, dir MovMode, reach int) (float64, bool) {
	x1, y1, x2, y2 := s.WorldSegment(a.position, a.movmode)
	var c int
	if dir.vertical() {
		c = (x1 + x2) >> 1
	} else {
		c = (y1 + y2) >> 1
	}
	surface, ok := o.SurfaceAt(c, dir)
	if !ok {
		return 0, false
	}
	var edge, surf float64
	if dir.vertical() {
		edge = dir.project(0, a.position.Y)
		surf = dir.project(0, float64(surface))
	} else {
		edge = dir.project(a.position.X, 0)
		surf = dir.project(float64(surface), 0)
	}
	return surf - (edge + float64(reach)), true
}

// nearest probes sensors along dir and returns the surface with the
// smallest clearance, with the number of sensors that found one.
func (a *Actor) nearest(obstacles *ObstacleMap, dir MovMode, reach int, solidOnly bool, sensors ...*Sensor) (*Obstacle, float64, int) {
	var (
		best *Obstacle
		gap  float64
		hits int
	)
	for _, s := range sensors {
		o := s.probe(a.position, a.movmode, dir, obstacles, solidOnly)
		if o == nil {
			continue
		}
		g, ok := a.clearance(s, o, dir, reach)
		if !ok {
			continue
		}
		hits++
		if best == nil || g < gap {
			best, gap = o, g
		}
	}
	return best, gap, hits
}

func (a *Actor) collideWalls(obstacles *ObstacleMap, in intents) {
	s := a.sensors()
	sides := [...]struct {
		sensor *Sensor
		dir    MovMode
		sign   float64
		input  bool
	}{
		{s.m, a.movmode.Rotate(3), -1, in.left && !in.right},
		{s.n, a.movmode.Rotate(1), 1, in.right && !in.left},
	}
	for _, side := range sides {
		o, gap, _ := a.nearest(obstacles, side.dir, s.wall, true, side.sensor)
		if o == nil || gap > 0 {
			continue
		}
		d := side.dir.Down()
		a.position = a.position.Add(d.Mult(gap))
		if a.inTheAir {
			if v := a.xsp*d.X + a.ysp*d.Y; v > 0 {
				a.xsp -= d.X * v
				a.ysp -= d.Y * v
			}
			continue
		}
		if a.gsp*side.sign > 0 {
			a.gsp = 0
			a.braking = false
		}
		if side.input {
			a.pushing = true
		}
	}
}

func (a *Actor) collideCeiling(obstacles *ObstacleMap) {
	if a.ysp >= 0 {
		return
	}
	s := a.sensors()
	dir := a.movmode.Rotate(2)
	o, gap, _ := a.nearest(obstacles, dir, s.head, true, s.c, s.d)
	if o == nil || gap > 0 {
		return
	}
	a.position = a.position.Add(dir.Down().Mult(gap))

	steep := common.SignedDegrees(o.Angle())
	if steep < 0 {
		steep = -steep
	}
	if steep > 90 && steep <= 135 {
		a.landOnCeiling(o.Angle())
		return
	}
	a.ysp = 0
}

func (a *Actor) collideGround(obstacles *ObstacleMap) {
	if a.inTheAir && a.ysp < 0 {
		return
	}
	s := a.sensors()
	dir := a.movmode
	o, gap, hits := a.nearest(obstacles, dir, s.foot, false, s.a, s.b)
	if o == nil {
		a.ledge = false
		if !a.inTheAir {
			a.detach()
		}
		return
	}
	if a.inTheAir && gap > 0 {
		return
	}
	a.position = a.position.Add(dir.Down().Mult(gap))
	a.ledge = hits == 1
	if a.inTheAir {
		a.land(o.Angle())
		return
	}
	a.angle = o.Angle()
	a.movmode = AngleToMovMode(a.angle, a.movmode)
}

// land converts the airborne velocity into ground speed according to how
// steep the surface is.
func (a *Actor) land(angle int) {
	a.angle = common.WrapDegrees(angle)
	a.movmode = AngleToMovMode(a.angle, a.movmode)

	steep := common.SignedDegrees(a.angle)
	if steep < 0 {
		steep = -steep
	}
	falling := math.Abs(a.xsp) <= a.ysp
	sin := common.SinDeg(a.angle)
	switch {
	case steep <= 22 || !falling:
		a.gsp = a.xsp
	case steep <= 45:
		a.gsp = a.ysp * 0.5 * -common.Sign(sin)
	default:
		a.gsp = a.ysp * -common.Sign(sin)
	}

	a.inTheAir = false
	a.jumping = false
	if a.state == GettingHit {
		a.gsp = 0
		a.setState(Stopped)
	}
	a.decompose()
}

func (a *Actor) landOnCeiling(angle int) {
	a.angle = common.WrapDegrees(angle)
	a.movmode = AngleToMovMode(a.angle, a.movmode)
	a.gsp = a.ysp * -common.Sign(common.SinDeg(a.angle))
	a.inTheAir = false
	a.jumping = false
	a.decompose()
}

// IsStandingOn reports whether a foot sensor rests on o.
func (a *Actor) IsStandingOn(o *Obstacle) bool {
	if a.inTheAir || o == nil {
		return false
	}
	s := a.sensors()
	for _, foot := range [2]*Sensor{s.a, s.b} {
		x1, y1, x2, y2 := foot.WorldSegment(a.position, a.movmode)
		if _, _, hit := o.probed(x1, y1, x2, y2, a.movmode, false); hit {
			return true
		}
	}
	return false
}
