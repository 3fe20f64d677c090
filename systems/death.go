package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyKnockback launches a body away from the way it faces.
// Lift is applied upward.
func ApplyKnockback(physics *components.PhysicsData, facing, force, lift float64) {
	dir := -sign(facing)
	if dir == 0 {
		dir = -1
	}
	physics.VelX = dir * force
	physics.VelY = -lift
}

// ScheduleDestroy marks e for removal after delay seconds. Marking an entry
// twice keeps the first schedule.
func ScheduleDestroy(e *donburi.Entry, delay float64) {
	if e == nil || !e.Valid() || e.HasComponent(components.Death) {
		return
	}
	donburi.Add(e, components.Death, &components.DeathData{Timer: delay})
}

// UpdateDeaths removes entities whose destroy timer ran out, together with
// their hitboxes. It runs after the logic and physics passes.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta

	var expiredEntries []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= 0 {
			expiredEntries = append(expiredEntries, e)
		}
	})

	for _, e := range expiredEntries {
		destroyEntity(ecs, e)
	}
}

func destroyEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Enemy) {
		removeFromWorld(ecs, components.Enemy.Get(e).Hitbox)
	}
	if e.HasComponent(components.Player) {
		removeFromWorld(ecs, components.Player.Get(e).Hitbox)
	}
	removeFromWorld(ecs, e)
}

func removeFromWorld(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok && e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
