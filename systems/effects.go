package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTints advances tint tweens. A finished tween holds its last value.
func UpdateTints(ecs *ecs.ECS) {
	dt := float32(GetOrCreateClock(ecs).Delta)
	components.Tint.Each(ecs.World, func(e *donburi.Entry) {
		tint := components.Tint.Get(e)
		if tint.Tween == nil {
			return
		}
		value, finished := tint.Tween.Update(dt)
		tint.Value = value
		if finished {
			tint.Tween = nil
		}
	})
}
