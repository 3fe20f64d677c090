package archetypes

import (
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Actor,
		components.Object,
		components.Health,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Actor,
		components.Object,
		components.Health,
		components.Physics,
		components.Tint,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Parent,
		components.Object,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	comps := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	comps = append(comps, a.components...)
	comps = append(comps, cs...)
	return ecs.World.Entry(ecs.World.Create(comps...))
}
