package systems

import (
	"math"

	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// groundProbe is how far below its feet a body looks for ground.
const groundProbe = 1.0

// queryPad widens resolv queries past the far edge, which resolv rounds
// inward. Candidates are filtered exactly afterwards.
const queryPad = 1.0

// UpdatePhysics integrates every body's velocity against the collision space.
// Velocities are in pixels per second.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta
	if dt <= 0 {
		return
	}

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		if obj == nil || obj.Object == nil {
			return
		}

		if !physics.Kinematic {
			physics.VelY += physics.Gravity * physics.GravityScale * dt
			if physics.MaxFallSpeed > 0 && physics.VelY > physics.MaxFallSpeed {
				physics.VelY = physics.MaxFallSpeed
			}
		}

		blockers := blockingTags(e, physics)
		moveHorizontal(physics, obj.Object, physics.VelX*dt, blockers)
		moveVertical(physics, obj.Object, physics.VelY*dt, blockers)
		physics.OnGround = isGrounded(obj.Object, blockers)
		obj.Update()
	})
}

// blockingTags lists the resolv tags that stop a body, minus the ones it ignores.
func blockingTags(e *donburi.Entry, physics *components.PhysicsData) []string {
	candidates := []string{tags.ResolvSolid}
	switch {
	case e.HasComponent(tags.Player):
		candidates = append(candidates, tags.ResolvEnemy)
	case e.HasComponent(tags.Enemy):
		candidates = append(candidates, tags.ResolvPlayer)
	}

	out := candidates[:0]
	for _, t := range candidates {
		if !containsTag(physics.IgnoreTags, t) {
			out = append(out, t)
		}
	}
	return out
}

func moveHorizontal(physics *components.PhysicsData, object *resolv.Object, dx float64, blockers []string) {
	if dx == 0 {
		return
	}
	if check := object.Check(dx+sign(dx)*queryPad, 0, blockers...); check != nil {
		for _, other := range check.Objects {
			if !other.HasTags(blockers...) || overlaps(object, other) {
				continue
			}
			if object.Y+object.H <= other.Y || object.Y >= other.Y+other.H {
				continue
			}
			if dx > 0 && other.X >= object.X+object.W {
				if gap := other.X - (object.X + object.W); gap < dx {
					dx = gap
					physics.VelX = 0
				}
			} else if dx < 0 && other.X+other.W <= object.X {
				if gap := other.X + other.W - object.X; gap > dx {
					dx = gap
					physics.VelX = 0
				}
			}
		}
	}
	object.X += dx
}

func moveVertical(physics *components.PhysicsData, object *resolv.Object, dy float64, blockers []string) {
	if dy == 0 {
		return
	}
	if check := object.Check(0, dy+sign(dy)*queryPad, blockers...); check != nil {
		for _, other := range check.Objects {
			if !other.HasTags(blockers...) || overlaps(object, other) {
				continue
			}
			if object.X+object.W <= other.X || object.X >= other.X+other.W {
				continue
			}
			if dy > 0 && other.Y >= object.Y+object.H {
				if gap := other.Y - (object.Y + object.H); gap < dy {
					dy = gap
					physics.VelY = 0
				}
			} else if dy < 0 && other.Y+other.H <= object.Y {
				if gap := other.Y + other.H - object.Y; gap > dy {
					dy = gap
					physics.VelY = 0
				}
			}
		}
	}
	object.Y += dy
}

func isGrounded(object *resolv.Object, blockers []string) bool {
	check := object.Check(0, groundProbe+queryPad, blockers...)
	if check == nil {
		return false
	}
	feet := object.Y + object.H
	for _, other := range check.Objects {
		if !other.HasTags(blockers...) {
			continue
		}
		if object.X+object.W <= other.X || object.X >= other.X+other.W {
			continue
		}
		if other.Y >= feet-0.01 && other.Y <= feet+groundProbe {
			return true
		}
	}
	return false
}

// overlaps is an exact AABB test; resolv checks only report shared cells.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func containsTag(list []string, tag string) bool {
	for _, t := range list {
		if t == tag {
			return true
		}
	}
	return false
}

func addTag(list []string, tag string) []string {
	if containsTag(list, tag) {
		return list
	}
	return append(list, tag)
}

func removeTag(list []string, tag string) []string {
	out := list[:0]
	for _, t := range list {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

func center(obj *resolv.Object) (float64, float64) {
	return obj.X + obj.W/2, obj.Y + obj.H/2
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func squaredDistance(ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	return dx*dx + dy*dy
}

// unreachable is the distance reported when there is nothing to measure against.
const unreachable = math.MaxFloat64
