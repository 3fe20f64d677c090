package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/yohamta/donburi/ecs"
)

// WithPauseCheck wraps a system to skip execution when paused or frozen.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsHalted(e) {
			return
		}
		system(e)
	}
}

// TogglePause flips the user pause. It has no effect once frozen.
func TogglePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	if pause.Frozen {
		return
	}
	pause.IsPaused = !pause.IsPaused
}

// Freeze stops the simulation for good. Only a rebuilt world runs again.
func Freeze(ecs *ecs.ECS) {
	GetOrCreatePause(ecs).Frozen = true
}

func IsHalted(ecs *ecs.ECS) bool {
	pause := GetOrCreatePause(ecs)
	return pause.IsPaused || pause.Frozen
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
