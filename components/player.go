package components

import (
	"github.com/automoto/duelcore/timing"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing       float64 // -1 left, 1 right
	Combo        int     // 1..3, advanced on each attack entry
	LastAttackAt float64
	Dead         bool
	Invulnerable bool
	Animation    string

	DashCooldown  timing.Cooldown
	ParryCooldown timing.Cooldown

	Hitbox *donburi.Entry
}

var Player = donburi.NewComponentType[PlayerData]()
