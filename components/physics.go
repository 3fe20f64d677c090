package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	VelX float64
	VelY float64

	Gravity      float64
	MaxFallSpeed float64

	// GravityScale multiplies Gravity. 0 means weightless.
	GravityScale float64

	// Kinematic bodies ignore gravity; their velocity is set by their owner.
	Kinematic bool

	OnGround bool

	// IgnoreTags lists resolv tags this body passes through.
	IgnoreTags []string
}

var Physics = donburi.NewComponentType[PhysicsData]()
