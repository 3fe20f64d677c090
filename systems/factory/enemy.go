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

// CreateEnemy builds an enemy body and its hitbox, seeding runtime stats
// from tuning. The AI controller is attached by the caller.
func CreateEnemy(ecs *ecs.ECS, x, y float64, t config.Tuning) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, t.Enemy.Width, t.Enemy.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, t.Enemy.Width, t.Enemy.Height))
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      t.Physics.Gravity,
		MaxFallSpeed: t.Physics.MaxFallSpeed,
		GravityScale: 1,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: t.Enemy.Health,
		Max:     t.Enemy.Health,
	})

	hitbox := CreateHitbox(ecs, enemy, t.Combat.EnemyHitbox, tags.ResolvPlayer)
	components.Enemy.SetValue(enemy, components.EnemyData{
		Facing:      config.DirectionLeft, // Start facing left
		Speed:       t.Enemy.Speed,
		DetectRange: t.Enemy.DetectRange,
		AttackRange: t.Enemy.AttackRange,
		Hitbox:      hitbox,
	})

	return enemy
}
