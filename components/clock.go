package components

import "github.com/yohamta/donburi"

// ClockData is simulation time. Delta is the step being simulated.
type ClockData struct {
	Now   float64
	Delta float64
	Frame uint64
}

var Clock = donburi.NewComponentType[ClockData]()
