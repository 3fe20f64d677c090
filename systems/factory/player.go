package factory

import (
	"github.com/automoto/duelcore/archetypes"
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer builds the player body and its hitbox. The combat controller
// is attached by the caller.
func CreatePlayer(ecs *ecs.ECS, x, y float64, t config.Tuning) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, t.Player.Width, t.Player.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, t.Player.Width, t.Player.Height))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      t.Physics.Gravity,
		MaxFallSpeed: t.Physics.MaxFallSpeed,
		GravityScale: 1,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: t.Player.Health,
		Max:     t.Player.Health,
	})

	hitbox := CreateHitbox(ecs, player, t.Combat.PlayerHitbox, tags.ResolvEnemy)
	components.Player.SetValue(player, components.PlayerData{
		Facing: config.DirectionRight,
		Hitbox: hitbox,
	})

	return player
}
