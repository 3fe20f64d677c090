package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SpawnPlayer creates the player entity and its controller.
func SpawnPlayer(ecs *ecs.ECS, x, y float64, t config.Tuning, svc *Services) *Player {
	entry := factory.CreatePlayer(ecs, x, y, t)
	p := newPlayer(ecs, entry, t.Player, svc)
	components.Actor.SetValue(entry, components.ActorData{Controller: p})
	return p
}

// SpawnEnemy creates an enemy entity and its AI controller, then applies mods.
func SpawnEnemy(ecs *ecs.ECS, x, y float64, t config.Tuning, svc *Services, mods SpawnModifiers) *Enemy {
	entry := factory.CreateEnemy(ecs, x, y, t)
	e := newEnemy(ecs, entry, t.Enemy, svc)
	components.Actor.SetValue(entry, components.ActorData{Controller: e})
	e.ApplyModifiers(mods)
	svc.Logger.Debug("enemy spawned",
		zap.Float64("x", x), zap.Float64("y", y),
		zap.Float64("speed", e.data().Speed),
		zap.Int("health", e.Health()))
	return e
}
