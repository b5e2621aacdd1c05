package yars

import (
	"github.com/EngoEngine/engo"
)

// PlayerInput is the state of the controls for one frame. Fire is an edge:
// it is true only on the frame the button went down.
type PlayerInput struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
}

type InputSource interface {
	Poll() PlayerInput
}

// RegisterButtons binds the keyboard buttons KeyboardInput reads.
func RegisterButtons() {
	engo.Input.RegisterButton("Up", engo.KeyArrowUp, engo.KeyW)
	engo.Input.RegisterButton("Down", engo.KeyArrowDown, engo.KeyS)
	engo.Input.RegisterButton("Left", engo.KeyArrowLeft, engo.KeyA)
	engo.Input.RegisterButton("Right", engo.KeyArrowRight, engo.KeyD)
	engo.Input.RegisterButton("Fire", engo.KeySpace)
	engo.Input.RegisterButton("Enter", engo.KeyEnter)
}

// KeyboardInput reads engo's keyboard state.
type KeyboardInput struct{}

func (KeyboardInput) Poll() PlayerInput {
	var p PlayerInput

	p.Up = engo.Input.Button("Up").Down()
	p.Down = engo.Input.Button("Down").Down()
	p.Left = engo.Input.Button("Left").Down()
	p.Right = engo.Input.Button("Right").Down()
	p.Fire = engo.Input.Button("Fire").JustPressed()
	if p.Fire {
		log.Debugf("Fire pressed")
	}

	return p
}

// NoInput never presses anything; used when nothing is attached.
type NoInput struct{}

func (NoInput) Poll() PlayerInput { return PlayerInput{} }
