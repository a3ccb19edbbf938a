package physics

import (
	"math"

	"github.com/milk9111/slopescroller/common"
)

const (
	fallOffSlideAngle  = 46
	fallOffDetachAngle = 90
)

// Update advances the actor by dt seconds against obstacles and consumes
// the intents set since the last call.
func (a *Actor) Update(obstacles *ObstacleMap, dt float64) {
	if obstacles == nil {
		panic("physics: update with nil obstacle map")
	}

	in := a.input
	a.input = intents{}
	jumpPressed := in.jump && !a.prevJump
	a.prevJump = in.jump

	if dt <= 0 {
		return
	}

	if a.state.terminal() {
		a.ysp = min(a.ysp+a.tuning.Grv*dt, a.tuning.TopYSpeed)
		a.position.X += a.xsp * dt
		a.position.Y += a.ysp * dt
		return
	}

	if a.state == Breathing {
		a.breatheTimer -= dt
	}
	if a.winningPose || a.state == GettingHit || a.state == Breathing {
		in.left, in.right = false, false
		jumpPressed = false
	}
	if !a.inTheAir && a.hlockTimer > 0 {
		a.hlockTimer = max(0, a.hlockTimer-dt)
		in.left, in.right = false, false
	}

	a.pushing = false
	if a.inTheAir {
		a.airPhysics(in, dt)
	} else {
		a.groundPhysics(in, dt)
		if jumpPressed && !a.inTheAir {
			a.jump()
		}
	}

	a.move(obstacles, in, dt)
	a.deriveState(in, dt)
	a.updateFacing(in)
}

func (a *Actor) groundPhysics(in intents, dt float64) {
	t := a.tuning
	if a.state != Rolling && in.duck && !in.left && !in.right && math.Abs(a.gsp) >= t.RollThreshold {
		a.setState(Rolling)
	}

	if a.state == Rolling {
		a.rollPhysics(in, dt)
	} else {
		a.walkPhysics(in, dt)
	}
	a.fallOff()
	if !a.inTheAir {
		a.decompose()
	}
}

func (a *Actor) walkPhysics(in intents, dt float64) {
	t := a.tuning
	slope := t.Slp * common.SinDeg(a.angle)
	if a.gsp != 0 || math.Abs(slope) >= t.Frc {
		a.gsp -= slope * dt
	}

	switch {
	case in.right && !in.left:
		if a.gsp < 0 {
			if -a.gsp >= t.BrakingThreshold && a.movmode == Floor {
				a.braking = true
			}
			a.gsp += t.Dec * dt
			if a.gsp >= 0 {
				a.gsp = 0
				a.braking = false
			}
		} else {
			a.braking = false
			if a.gsp < t.TopSpeed {
				a.gsp = min(a.gsp+t.Acc*dt, t.TopSpeed)
			}
		}
	case in.left && !in.right:
		if a.gsp > 0 {
			if a.gsp >= t.BrakingThreshold && a.movmode == Floor {
				a.braking = true
			}
			a.gsp -= t.Dec * dt
			if a.gsp <= 0 {
				a.gsp = 0
				a.braking = false
			}
		} else {
			a.braking = false
			if a.gsp > -t.TopSpeed {
				a.gsp = max(a.gsp-t.Acc*dt, -t.TopSpeed)
			}
		}
	default:
		a.braking = false
		a.gsp -= min(math.Abs(a.gsp), t.Frc*dt) * common.Sign(a.gsp)
	}
}

func (a *Actor) rollPhysics(in intents, dt float64) {
	t := a.tuning
	a.braking = false

	sin := common.SinDeg(a.angle)
	slp := t.RollDownhillSlp
	if common.Sign(a.gsp) == common.Sign(sin) {
		slp = t.RollUphillSlp
	}
	a.gsp -= slp * sin * dt

	switch {
	case in.right && a.gsp < 0:
		a.gsp = min(0, a.gsp+t.RollDec*dt)
	case in.left && a.gsp > 0:
		a.gsp = max(0, a.gsp-t.RollDec*dt)
	}
	a.gsp -= min(math.Abs(a.gsp), t.RollFrc*dt) * common.Sign(a.gsp)

	if math.Abs(a.gsp) < t.UnrollThreshold {
		a.setState(Walking)
	}
}

// fallOff handles walls and ceilings taken too slowly: the actor slides
// with its controls locked, or drops off when past vertical.
func (a *Actor) fallOff() {
	if a.hlockTimer > 0 || math.Abs(a.gsp) >= a.tuning.FallOffThreshold {
		return
	}
	steep := common.SignedDegrees(a.angle)
	if steep < 0 {
		steep = -steep
	}
	if steep < fallOffSlideAngle {
		return
	}
	a.hlockTimer = fallOffLock
	if steep >= fallOffDetachAngle {
		a.detach()
	}
}

// jump leaves the ground along the surface normal.
func (a *Actor) jump() {
	t := a.tuning
	sin, cos := common.SinDeg(a.angle), common.CosDeg(a.angle)
	a.xsp = a.gsp*cos - t.Jmp*sin
	a.ysp = -a.gsp*sin - t.Jmp*cos
	a.gsp = 0
	a.angle = 0
	a.movmode = Floor
	a.inTheAir = true
	a.jumping = true
	a.braking = false
	a.setState(Jumping)
}

func (a *Actor) airPhysics(in intents, dt float64) {
	t := a.tuning
	if a.state != GettingHit {
		switch {
		case in.right && !in.left:
			if a.xsp < t.TopSpeed {
				a.xsp = min(a.xsp+t.Air*dt, t.TopSpeed)
			}
		case in.left && !in.right:
			if a.xsp > -t.TopSpeed {
				a.xsp = max(a.xsp-t.Air*dt, -t.TopSpeed)
			}
		}
		if a.ysp < 0 && a.ysp > t.AirDragThreshold && math.Abs(a.xsp) >= t.AirDragCondition {
			a.xsp *= math.Pow(t.AirDragMultiplier, dt*common.TicksPerSecond)
		}
	}

	if a.jumping && !in.jump && a.ysp < -t.JmpRel {
		a.ysp = -t.JmpRel
	}

	a.ysp = min(a.ysp+t.Grv*dt, t.TopYSpeed)
}

func (a *Actor) deriveState(in intents, dt float64) {
	switch a.state {
	case GettingHit:
		if a.inTheAir {
			return
		}
	case Springing:
		if a.inTheAir && a.ysp <= 0 {
			return
		}
	case Breathing:
		if a.breatheTimer > 0 {
			return
		}
	}

	if a.inTheAir {
		a.waitTimer = 0
		a.setState(Jumping)
		return
	}
	if a.state == Rolling {
		a.waitTimer = 0
		return
	}

	switch {
	case a.gsp == 0 && a.pushing:
		a.setState(Pushing)
	case a.braking:
		a.setState(Braking)
	case a.gsp == 0:
		a.deriveRestingState(in, dt)
		return
	case math.Abs(a.gsp) >= a.tuning.TopSpeed:
		a.setState(Running)
	default:
		a.setState(Walking)
	}
	a.waitTimer = 0
}

func (a *Actor) deriveRestingState(in intents, dt float64) {
	switch {
	case a.winningPose:
		a.setState(Winning)
	case in.duck:
		a.setState(Ducking)
	case in.lookUp:
		a.setState(LookingUp)
	case a.ledge && a.movmode == Floor:
		a.setState(Ledge)
	default:
		if a.state != Stopped && a.state != Waiting {
			a.waitTimer = 0
		}
		a.waitTimer += dt
		if a.waitTimer >= waitingDelay {
			a.setState(Waiting)
		} else {
			a.setState(Stopped)
		}
		return
	}
	a.waitTimer = 0
}

func (a *Actor) updateFacing(in intents) {
	if a.state == GettingHit || a.state.terminal() {
		return
	}
	right := in.right && !in.left
	left := in.left && !in.right
	if a.inTheAir || a.state == Rolling {
		if right {
			a.facingRight = true
		} else if left {
			a.facingRight = false
		}
		return
	}
	switch {
	case right && a.gsp >= 0:
		a.facingRight = true
	case left && a.gsp <= 0:
		a.facingRight = false
	case a.gsp > 0 && !left:
		a.facingRight = true
	case a.gsp < 0 && !right:
		a.facingRight = false
	}
}
