package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances simulation time by the pending delta.
// It must run before every system that reads the clock.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Now += clock.Delta
	clock.Frame++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Clock))
	}

	ent, _ := components.Clock.First(ecs.World)
	return components.Clock.Get(ent)
}

// GetOrCreateInput returns the singleton Input component, creating if needed.
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Input))
	}

	ent, _ := components.Input.First(ecs.World)
	return components.Input.Get(ent)
}
