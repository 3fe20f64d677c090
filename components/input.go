package components

import "github.com/yohamta/donburi"

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool // Currently held down
	JustPressed bool // Pressed this frame
}

// InputData is the per-frame player intent handed to the simulation.
type InputData struct {
	MoveX  float64 // -1..1
	Jump   ActionState
	Attack ActionState
	Dash   ActionState
	Parry  ActionState
}

var Input = donburi.NewComponentType[InputData]()
