package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Defender is anything a hitbox can damage.
type Defender interface {
	TakeDamage(amount int)
}

// SourceAwareDefender also receives the geometry of the hitbox that hit it.
type SourceAwareDefender interface {
	Defender
	TakeDamageFrom(amount int, source *resolv.Object)
}

// Stunnable can be stunned by a successful parry.
type Stunnable interface {
	Stun()
}

// ActorData links an entity to the controller that handles its combat.
type ActorData struct {
	Controller Defender
}

var Actor = donburi.NewComponentType[ActorData]()

// ParentData points a child entity, like a hitbox, at the entity it belongs to.
type ParentData struct {
	Entry *donburi.Entry
}

var Parent = donburi.NewComponentType[ParentData]()
