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

// CreateHitbox attaches a disabled melee hitbox to owner. It hits entities
// whose body carries defenderTag.
func CreateHitbox(ecs *ecs.ECS, owner *donburi.Entry, hb config.HitboxConfig, defenderTag string) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	ownerObj := components.Object.Get(owner)
	obj := resolv.NewObject(ownerObj.X, ownerObj.Y, hb.Width, hb.Height, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, hb.Width, hb.Height))
	obj.Data = hitbox

	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})
	components.Parent.SetValue(hitbox, components.ParentData{Entry: owner})
	components.Hitbox.SetValue(hitbox, components.HitboxData{
		Owner:       owner,
		Damage:      hb.Damage,
		DefenderTag: defenderTag,
		Width:       hb.Width,
		Height:      hb.Height,
		Offset:      hb.Offset,
		Overlapping: make(map[*donburi.Entry]bool),
	})
	addToSpace(ecs, obj)

	return hitbox
}
