package components

import "github.com/yohamta/donburi"

// DeathData marks an entity scheduled for removal.
// Timer counts down in seconds; at 0 the entity leaves the space and world.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
