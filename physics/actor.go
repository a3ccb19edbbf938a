package physics

import (
	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slopescroller/common"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

const (
	// maxSubstep bounds the distance travelled between two collision
	// passes so no sensor can step over a surface.
	maxSubstep = 4.0

	waitingDelay      = 3.0
	breathingDuration = 0.5
	fallOffLock       = 0.5

	// groundStick lets grounded feet follow surfaces that drop away.
	groundStick = 8
)

type intents struct {
	left, right bool
	duck        bool
	lookUp      bool
	jump        bool
}

// sensorSet is one body shape: feet (a, b), head (c, d) and walls (m, n),
// authored in the floor frame around the actor's centre.
type sensorSet struct {
	a, b *Sensor
	c, d *Sensor
	m, n *Sensor

	foot int
	head int
	wall int
}

func newSensorSet(halfWidth, foot, head, wallY, wall, stick int) sensorSet {
	return sensorSet{
		a:    NewVerticalSensor(-halfWidth, 0, foot+stick, colornames.Lime),
		b:    NewVerticalSensor(halfWidth, 0, foot+stick, colornames.Cyan),
		c:    NewVerticalSensor(-halfWidth, -head, 0, colornames.Dodgerblue),
		d:    NewVerticalSensor(halfWidth, -head, 0, colornames.Yellow),
		m:    NewHorizontalSensor(wallY, -wall, 0, colornames.Hotpink),
		n:    NewHorizontalSensor(wallY, 0, wall, colornames.Red),
		foot: foot,
		head: head,
		wall: wall,
	}
}

func (s *sensorSet) all() []*Sensor {
	return []*Sensor{s.a, s.b, s.c, s.d, s.m, s.n}
}

// Actor is a controllable body moving over height-mapped obstacles with
// ground speed on slopes, loops and ceilings.
type Actor struct {
	id     uuid.UUID
	logger *zap.Logger
	tuning Tuning

	position cp.Vector
	xsp, ysp float64
	gsp      float64
	angle    int
	movmode  MovMode
	state    State

	inTheAir    bool
	facingRight bool
	jumping     bool
	braking     bool
	pushing     bool
	ledge       bool
	winningPose bool

	hlockTimer   float64
	waitTimer    float64
	breatheTimer float64

	input    intents
	prevJump bool

	standing sensorSet
	airborne sensorSet
	rolling  sensorSet
	jumpRoll sensorSet
}

type ActorOption func(*Actor)

func WithTuning(t Tuning) ActorOption {
	return func(a *Actor) { a.tuning = t }
}

func WithLogger(logger *zap.Logger) ActorOption {
	return func(a *Actor) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func WithFacingRight(right bool) ActorOption {
	return func(a *Actor) { a.facingRight = right }
}

// NewActor creates an airborne actor centred at position. It settles onto
// the ground on its first Update.
func NewActor(position cp.Vector, opts ...ActorOption) *Actor {
	a := &Actor{
		id:          uuid.New(),
		logger:      zap.NewNop(),
		tuning:      DefaultTuning(),
		position:    position,
		movmode:     Floor,
		state:       Stopped,
		inTheAir:    true,
		facingRight: true,
		standing:    newSensorSet(9, 20, 20, 4, 10, groundStick),
		airborne:    newSensorSet(9, 20, 20, 4, 10, 0),
		rolling:     newSensorSet(7, 14, 14, 0, 10, groundStick),
		jumpRoll:    newSensorSet(7, 14, 14, 0, 10, 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(zap.Stringer("actor", a.id))
	return a
}

// sensors returns the body shape for the current state.
func (a *Actor) sensors() *sensorSet {
	ball := a.state == Rolling || (a.inTheAir && a.jumping)
	switch {
	case ball && a.inTheAir:
		return &a.jumpRoll
	case ball:
		return &a.rolling
	case a.inTheAir:
		return &a.airborne
	}
	return &a.standing
}

// Intents are consumed by the next Update.

func (a *Actor) WalkLeft()  { a.input.left = true }
func (a *Actor) WalkRight() { a.input.right = true }
func (a *Actor) Duck()      { a.input.duck = true }
func (a *Actor) LookUp()    { a.input.lookUp = true }

// Jump must be repeated every frame the button is held; the jump starts on
// the first frame and releasing it early cuts the jump short.
func (a *Actor) Jump() { a.input.jump = true }

func (a *Actor) ID() uuid.UUID           { return a.id }
func (a *Actor) State() State            { return a.state }
func (a *Actor) Angle() int              { return a.angle }
func (a *Actor) Position() cp.Vector     { return a.position }
func (a *Actor) IsFacingRight() bool     { return a.facingRight }
func (a *Actor) IsInTheAir() bool        { return a.inTheAir }
func (a *Actor) MovMode() MovMode        { return a.movmode }
func (a *Actor) Xsp() float64            { return a.xsp }
func (a *Actor) Ysp() float64            { return a.ysp }
func (a *Actor) Gsp() float64            { return a.gsp }
func (a *Actor) HorizontalLock() float64 { return a.hlockTimer }

func (a *Actor) SetPosition(p cp.Vector) { a.position = p }
func (a *Actor) SetXsp(v float64)        { a.xsp = v }
func (a *Actor) SetYsp(v float64)        { a.ysp = v }

// SetGsp sets the ground speed. While grounded the Cartesian speeds follow
// immediately.
func (a *Actor) SetGsp(v float64) {
	a.gsp = v
	if !a.inTheAir {
		a.decompose()
	}
}

// LockHorizontallyFor ignores walking input on the ground for the given
// number of seconds.
func (a *Actor) LockHorizontallyFor(seconds float64) {
	a.hlockTimer = max(a.hlockTimer, seconds)
}

// EnableWinningPose ignores walking input from now on; the actor poses
// once it comes to rest.
func (a *Actor) EnableWinningPose() {
	a.winningPose = true
}

// Hit knocks the actor into the air. The caller sets the knockback speed.
func (a *Actor) Hit() {
	if a.state.terminal() {
		return
	}
	a.detach()
	a.jumping = false
	a.setState(GettingHit)
}

// Kill starts the death hop. The actor no longer collides.
func (a *Actor) Kill() {
	if a.state.terminal() {
		return
	}
	a.detach()
	a.xsp = 0
	a.ysp = -a.tuning.Jmp
	a.jumping = false
	a.setState(Dead)
}

func (a *Actor) Drown() {
	if a.state.terminal() {
		return
	}
	a.detach()
	a.xsp, a.ysp = 0, 0
	a.jumping = false
	a.setState(Drowned)
}

// Breathe freezes the actor briefly, as when catching an air bubble.
func (a *Actor) Breathe() {
	if a.state.terminal() {
		return
	}
	a.xsp, a.ysp, a.gsp = 0, 0, 0
	a.breatheTimer = breathingDuration
	a.setState(Breathing)
}

// Spring launches the actor. The caller sets the launch speed.
func (a *Actor) Spring() {
	if a.state.terminal() {
		return
	}
	if !a.inTheAir {
		a.detach()
	}
	a.jumping = false
	a.setState(Springing)
}

// Roll curls the actor into a ball regardless of speed.
func (a *Actor) Roll() {
	if a.state.terminal() {
		return
	}
	a.setState(Rolling)
}

// Bounce reverses a falling actor, as after landing on an enemy.
func (a *Actor) Bounce() {
	if a.state.terminal() || !a.inTheAir {
		return
	}
	if a.ysp > 0 {
		a.ysp = -a.ysp
	}
	a.setState(Jumping)
}

// Respawn puts the actor back at position with every timer cleared.
func (a *Actor) Respawn(position cp.Vector) {
	a.position = position
	a.xsp, a.ysp, a.gsp = 0, 0, 0
	a.angle = 0
	a.movmode = Floor
	a.inTheAir = true
	a.jumping, a.braking, a.pushing, a.ledge = false, false, false, false
	a.winningPose = false
	a.hlockTimer, a.waitTimer, a.breatheTimer = 0, 0, 0
	a.input = intents{}
	a.prevJump = false
	a.setState(Stopped)
}

// RenderSensors draws the active sensor set.
func (a *Actor) RenderSensors(canvas Canvas, camera cp.Vector) {
	for _, s := range a.sensors().all() {
		s.Render(canvas, a.position, a.movmode, camera)
	}
}

// Sensors returns the six sensors of the active body shape.
func (a *Actor) Sensors() []*Sensor {
	return a.sensors().all()
}

func (a *Actor) setState(s State) {
	if a.state == s {
		return
	}
	a.logger.Debug("state transition",
		zap.Stringer("from", a.state),
		zap.Stringer("to", s),
	)
	a.state = s
}

// decompose derives the Cartesian speeds from the ground speed.
func (a *Actor) decompose() {
	a.xsp = a.gsp * common.CosDeg(a.angle)
	a.ysp = -a.gsp * common.SinDeg(a.angle)
}

// detach leaves the ground keeping the current velocity.
func (a *Actor) detach() {
	if !a.inTheAir {
		a.decompose()
	}
	a.gsp = 0
	a.inTheAir = true
	a.angle = 0
	a.movmode = Floor
	a.braking = false
}
