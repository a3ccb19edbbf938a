package physics

// State is the locomotion state of an actor. Presentation code picks the
// animation from it.
type State int

const (
	Stopped State = iota
	Walking
	Running
	Jumping
	Springing
	Rolling
	Pushing
	GettingHit
	Dead
	Braking
	Ledge
	Drowned
	Breathing
	Ducking
	LookingUp
	Waiting
	Winning
)

var stateNames = [...]string{
	Stopped:    "stopped",
	Walking:    "walking",
	Running:    "running",
	Jumping:    "jumping",
	Springing:  "springing",
	Rolling:    "rolling",
	Pushing:    "pushing",
	GettingHit: "getting_hit",
	Dead:       "dead",
	Braking:    "braking",
	Ledge:      "ledge",
	Drowned:    "drowned",
	Breathing:  "breathing",
	Ducking:    "ducking",
	LookingUp:  "looking_up",
	Waiting:    "waiting",
	Winning:    "winning",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// terminal states are left only through Respawn.
func (s State) terminal() bool {
	return s == Dead || s == Drowned
}

// forced states are set by external events and override the derived
// state until they run their course.
func (s State) forced() bool {
	return s == GettingHit || s == Springing || s == Breathing
}
