package components

import (
	"github.com/yohamta/donburi"
)

type HitboxData struct {
	Owner       *donburi.Entry // actor that owns this hitbox
	Damage      int
	DefenderTag string // resolv tag a defender must carry to be hit
	Enabled     bool

	// Width, Height and Offset place the hitbox in front of the owner.
	Width  float64
	Height float64
	Offset float64

	// Overlapping holds defenders touched since the hitbox was enabled.
	// A defender is only hit again after it leaves and re-enters.
	Overlapping map[*donburi.Entry]bool
}

var Hitbox = donburi.NewComponentType[HitboxData]()
