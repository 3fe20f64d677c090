package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Facing    float64
	Dead      bool
	Animation string

	// Runtime values, seeded from tuning and adjusted by the spawner.
	Speed       float64
	DetectRange float64
	AttackRange float64

	Hitbox *donburi.Entry
}

var Enemy = donburi.NewComponentType[EnemyData]()
