package physics

// Tuning holds every physical constant of an actor. Speeds are in pixels
// per second and accelerations in pixels per second squared.
type Tuning struct {
	Acc               float64 `yaml:"acc"`
	Dec               float64 `yaml:"dec"`
	Frc               float64 `yaml:"frc"`
	TopSpeed          float64 `yaml:"topspeed"`
	TopYSpeed         float64 `yaml:"topyspeed"`
	Air               float64 `yaml:"air"`
	AirDragMultiplier float64 `yaml:"airdrag"`
	AirDragThreshold  float64 `yaml:"airdragthreshold"`
	AirDragCondition  float64 `yaml:"airdragcondition"`
	Jmp               float64 `yaml:"jmp"`
	JmpRel            float64 `yaml:"jmprel"`
	Grv               float64 `yaml:"grv"`
	Slp               float64 `yaml:"slp"`
	RollThreshold     float64 `yaml:"rollthreshold"`
	UnrollThreshold   float64 `yaml:"unrollthreshold"`
	RollFrc           float64 `yaml:"rollfrc"`
	RollDec           float64 `yaml:"rolldec"`
	RollUphillSlp     float64 `yaml:"rolluphillslp"`
	RollDownhillSlp   float64 `yaml:"rolldownhillslp"`
	FallOffThreshold  float64 `yaml:"falloffthreshold"`
	BrakingThreshold  float64 `yaml:"brakingthreshold"`
}

// DefaultTuning returns the classic constants converted from per-frame
// values at 60 frames per second.
func DefaultTuning() Tuning {
	return Tuning{
		Acc:               168.75,
		Dec:               1800,
		Frc:               168.75,
		TopSpeed:          360,
		TopYSpeed:         960,
		Air:               337.5,
		AirDragMultiplier: 0.96875,
		AirDragThreshold:  -240,
		AirDragCondition:  7.5,
		Jmp:               390,
		JmpRel:            240,
		Grv:               787.5,
		Slp:               450,
		RollThreshold:     61.875,
		UnrollThreshold:   60,
		RollFrc:           84.375,
		RollDec:           450,
		RollUphillSlp:     281.25,
		RollDownhillSlp:   1125,
		FallOffThreshold:  150,
		BrakingThreshold:  270,
	}
}

func (a *Actor) Tuning() Tuning { return a.tuning }
func (a *Actor) SetTuning(t Tuning) { a.tuning = t }

func (a *Actor) Acc() float64 { return a.tuning.Acc }
func (a *Actor) SetAcc(v float64) { a.tuning.Acc = v }
func (a *Actor) Dec() float64 { return a.tuning.Dec }
func (a *Actor) SetDec(v float64) { a.tuning.Dec = v }
func (a *Actor) Frc() float64 { return a.tuning.Frc }
func (a *Actor) SetFrc(v float64) { a.tuning.Frc = v }
func (a *Actor) TopSpeed() float64 { return a.tuning.TopSpeed }
func (a *Actor) SetTopSpeed(v float64) { a.tuning.TopSpeed = v }
func (a *Actor) TopYSpeed() float64 { return a.tuning.TopYSpeed }
func (a *Actor) SetTopYSpeed(v float64) { a.tuning.TopYSpeed = v }
func (a *Actor) Air() float64 { return a.tuning.Air }
func (a *Actor) SetAir(v float64) { a.tuning.Air = v }
func (a *Actor) AirDragMultiplier() float64 { return a.tuning.AirDragMultiplier }
func (a *Actor) SetAirDragMultiplier(v float64) { a.tuning.AirDragMultiplier = v }
func (a *Actor) AirDragThreshold() float64 { return a.tuning.AirDragThreshold }
func (a *Actor) SetAirDragThreshold(v float64) { a.tuning.AirDragThreshold = v }
func (a *Actor) AirDragCondition() float64 { return a.tuning.AirDragCondition }
func (a *Actor) SetAirDragCondition(v float64) { a.tuning.AirDragCondition = v }
func (a *Actor) Jmp() float64 { return a.tuning.Jmp }
func (a *Actor) SetJmp(v float64) { a.tuning.Jmp = v }
func (a *Actor) JmpRel() float64 { return a.tuning.JmpRel }
func (a *Actor) SetJmpRel(v float64) { a.tuning.JmpRel = v }
func (a *Actor) Grv() float64 { return a.tuning.Grv }
func (a *Actor) SetGrv(v float64) { a.tuning.Grv = v }
func (a *Actor) Slp() float64 { return a.tuning.Slp }
func (a *Actor) SetSlp(v float64) { a.tuning.Slp = v }
func (a *Actor) RollThreshold() float64 { return a.tuning.RollThreshold }
func (a *Actor) SetRollThreshold(v float64) { a.tuning.RollThreshold = v }
func (a *Actor) UnrollThreshold() float64 { return a.tuning.UnrollThreshold }
func (a *Actor) SetUnrollThreshold(v float64) { a.tuning.UnrollThreshold = v }
func (a *Actor) RollFrc() float64 { return a.tuning.RollFrc }
func (a *Actor) SetRollFrc(v float64) { a.tuning.RollFrc = v }
func (a *Actor) RollDec() float64 { return a.tuning.RollDec }
func (a *Actor) SetRollDec(v float64) { a.tuning.RollDec = v }
func (a *Actor) RollUphillSlp() float64 { return a.tuning.RollUphillSlp }
func (a *Actor) SetRollUphillSlp(v float64) { a.tuning.RollUphillSlp = v }
func (a *Actor) RollDownhillSlp() float64 { return a.tuning.RollDownhillSlp }
func (a *Actor) SetRollDownhillSlp(v float64) { a.tuning.RollDownhillSlp = v }
func (a *Actor) FallOffThreshold() float64 { return a.tuning.FallOffThreshold }
func (a *Actor) SetFallOffThreshold(v float64) { a.tuning.FallOffThreshold = v }
func (a *Actor) BrakingThreshold() float64 { return a.tuning.BrakingThreshold }
func (a *Actor) SetBrakingThreshold(v float64) { a.tuning.BrakingThreshold = v }
