package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/slopescroller/physics"
)

const stickDeadZone = 0.3

// Input is one frame of keyboard and gamepad state.
type Input struct {
	Left, Right bool
	Duck        bool
	LookUp      bool
	// JumpHeld is true every frame the button is down; the actor detects
	// the press itself.
	JumpHeld bool

	RespawnPressed   bool
	CharacterPressed bool
	DebugPressed     bool
	QuitPressed      bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and the first gamepad.
func (i *Input) Update() {
	i.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	i.Duck = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown)
	i.LookUp = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp)
	i.JumpHeld = ebiten.IsKeyPressed(ebiten.KeySpace)

	i.RespawnPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.CharacterPressed = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return
	}
	gid := ids[0]

	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
	i.Left = i.Left || leftX < -stickDeadZone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft)
	i.Right = i.Right || leftX > stickDeadZone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight)
	i.Duck = i.Duck || leftY > stickDeadZone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftBottom)
	i.LookUp = i.LookUp || leftY < -stickDeadZone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftTop)
	i.JumpHeld = i.JumpHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)

	i.RespawnPressed = i.RespawnPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterLeft)
	i.CharacterPressed = i.CharacterPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightTop)
	i.DebugPressed = i.DebugPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
}

// Apply forwards the held directions and jump to the actor as intents.
func (i *Input) Apply(a *physics.Actor) {
	if i.Left {
		a.WalkLeft()
	}
	if i.Right {
		a.WalkRight()
	}
	if i.Duck {
		a.Duck()
	}
	if i.LookUp {
		a.LookUp()
	}
	if i.JumpHeld {
		a.Jump()
	}
}
