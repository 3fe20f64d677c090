package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. Frozen is set when the simulation
// stops itself and cannot be cleared by the pause toggle.
type PauseData struct {
	IsPaused bool
	Frozen   bool
}

var Pause = donburi.NewComponentType[PauseData]()
