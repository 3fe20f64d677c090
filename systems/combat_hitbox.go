package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type pendingHit struct {
	defender *donburi.Entry
	damage   int
	source   *resolv.Object
}

// UpdateHitboxes moves every hitbox in front of its owner and delivers damage
// to defenders that started overlapping an enabled hitbox this frame.
func UpdateHitboxes(ecs *ecs.ECS) {
	var hits []pendingHit

	components.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hitbox := components.Hitbox.Get(e)
		obj := components.Object.Get(e)
		owner := hitbox.Owner
		if owner == nil || !owner.Valid() || obj.Object == nil {
			return
		}

		placeHitbox(hitbox, obj.Object, owner)
		if !hitbox.Enabled {
			return
		}
		hits = append(hits, checkHitboxCollisions(hitbox, obj.Object)...)
	})

	// Delivery happens after the scan: a hit may kill or stun an actor,
	// which changes the world.
	for _, hit := range hits {
		deliverDamage(hit)
	}
}

func checkHitboxCollisions(hitbox *components.HitboxData, hitboxObject *resolv.Object) []pendingHit {
	if hitbox.Overlapping == nil {
		hitbox.Overlapping = make(map[*donburi.Entry]bool)
	}

	touching := make(map[*donburi.Entry]bool)
	var hits []pendingHit

	if check := hitboxObject.Check(0, 0, hitbox.DefenderTag); check != nil {
		for _, obj := range check.ObjectsByTags(hitbox.DefenderTag) {
			if !overlaps(hitboxObject, obj) {
				continue
			}
			defender := owningActor(obj)
			if defender == nil || defender == hitbox.Owner {
				continue
			}
			touching[defender] = true
			if hitbox.Overlapping[defender] {
				continue
			}
			hitbox.Overlapping[defender] = true
			hits = append(hits, pendingHit{defender: defender, damage: hitbox.Damage, source: hitboxObject})
		}
	}

	for defender := range hitbox.Overlapping {
		if !touching[defender] {
			delete(hitbox.Overlapping, defender)
		}
	}
	return hits
}

// deliverDamage routes a hit to the defender. Only the player learns which
// hitbox hit it, so a parry can find the attacker.
func deliverDamage(hit pendingHit) {
	if !hit.defender.Valid() {
		return
	}
	controller := components.Actor.Get(hit.defender).Controller
	if controller == nil {
		return
	}
	if hit.defender.HasComponent(tags.Player) {
		if aware, ok := controller.(components.SourceAwareDefender); ok {
			aware.TakeDamageFrom(hit.damage, hit.source)
			return
		}
	}
	controller.TakeDamage(hit.damage)
}

// owningActor walks from a collision object up the parent chain to the
// nearest entity with a combat controller.
func owningActor(obj *resolv.Object) *donburi.Entry {
	if obj == nil {
		return nil
	}
	e, _ := obj.Data.(*donburi.Entry)
	for e != nil && e.Valid() {
		if e.HasComponent(components.Actor) {
			return e
		}
		if !e.HasComponent(components.Parent) {
			return nil
		}
		e = components.Parent.Get(e).Entry
	}
	return nil
}

// ownerController resolves the controller behind a hitbox object, or nil.
func ownerController(source *resolv.Object) components.Defender {
	e := owningActor(source)
	if e == nil {
		return nil
	}
	return components.Actor.Get(e).Controller
}

func placeHitbox(hitbox *components.HitboxData, hitboxObject *resolv.Object, owner *donburi.Entry) {
	ownerObj := components.Object.Get(owner)
	if ownerObj == nil || ownerObj.Object == nil {
		return
	}

	facing := facingOf(owner)
	if facing >= 0 {
		hitboxObject.X = ownerObj.X + ownerObj.W + hitbox.Offset
	} else {
		hitboxObject.X = ownerObj.X - hitbox.Offset - hitbox.Width
	}
	hitboxObject.Y = ownerObj.Y + (ownerObj.H-hitbox.Height)/2
	hitboxObject.Update()
}

func facingOf(e *donburi.Entry) float64 {
	switch {
	case e.HasComponent(components.Player):
		return components.Player.Get(e).Facing
	case e.HasComponent(components.Enemy):
		return components.Enemy.Get(e).Facing
	}
	return 1
}

func setHitboxEnabled(e *donburi.Entry, enabled bool) {
	if e == nil || !e.Valid() {
		return
	}
	hitbox := components.Hitbox.Get(e)
	hitbox.Enabled = enabled
	if !enabled {
		clear(hitbox.Overlapping)
	}
}

func hitboxEnabled(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	return components.Hitbox.Get(e).Enabled
}

func hitboxObject(e *donburi.Entry) *resolv.Object {
	if e == nil || !e.Valid() {
		return nil
	}
	return components.Object.Get(e).Object
}
