package systems

import (
	"testing"

	"github.com/automoto/duelcore/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitboxFollowsOwnerFacing(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	hb := h.tuning.Combat.PlayerHitbox

	UpdateHitboxes(h.ecs)
	obj := p.Hitbox()
	assert.Equal(t, 100+h.tuning.Player.Width+hb.Offset, obj.X)
	assert.Equal(t, floorY-h.tuning.Player.Height+(h.tuning.Player.Height-hb.Height)/2, obj.Y)

	p.data().Facing = -1
	UpdateHitboxes(h.ecs)
	assert.Equal(t, 100-hb.Offset-hb.Width, obj.X)
}

func TestOwningActorWalksParents(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	e := h.enemy(300, SpawnModifiers{})

	assert.Equal(t, p.Entry(), owningActor(p.Hitbox()))
	assert.Equal(t, e.Entry(), owningActor(e.Hitbox()))
	assert.Equal(t, p.Entry(), owningActor(components.Object.Get(p.Entry()).Object))
	assert.Same(t, e, ownerController(e.Hitbox()))
	assert.Nil(t, owningActor(nil))
}

func TestPlayerAttackKillsEnemy(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	e := h.enemy(130, SpawnModifiers{})
	h.idle(1)

	h.step(components.InputData{Attack: press()})
	require.Equal(t, PlayerAttack, p.State())

	assert.True(t, e.IsDead())
	assert.Equal(t, EnemyDead, e.State())

	h.stepUntil(90, func() bool { return countEnemies(h.ecs) == 0 })
	assert.Len(t, h.kills.destroyed, 1)
	assert.False(t, p.IsDead())
}

func TestHitboxHitsOncePerOverlap(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	e := h.enemy(130, SpawnModifiers{ExtraHealth: 4})
	p.data().Invulnerable = true
	h.idle(1)

	h.step(components.InputData{Attack: press()})
	require.True(t, p.HitboxEnabled())
	h.idle(10)
	assert.Equal(t, 4, e.Health(), "a hitbox held over a defender hits once")

	h.stepUntil(30, func() bool { return p.State() != PlayerAttack })
	h.step(components.InputData{Attack: press()})
	assert.Equal(t, 3, e.Health(), "a fresh swing hits again")
}

func TestHitboxIgnoresSameSide(t *testing.T) {
	h := newHarness(t)
	a := h.enemy(200, SpawnModifiers{})
	b := h.enemy(170, SpawnModifiers{})

	setHitboxEnabled(a.data().Hitbox, true)
	UpdateHitboxes(h.ecs)

	assert.True(t, overlaps(a.Hitbox(), components.Object.Get(b.Entry()).Object))
	assert.Equal(t, 1, b.Health())
	assert.Equal(t, 1, a.Health())
}

func TestDisabledHitboxDoesNothing(t *testing.T) {
	h := newHarness(t)
	h.player(100)
	e := h.enemy(130, SpawnModifiers{})

	UpdateHitboxes(h.ecs)
	assert.Equal(t, 1, e.Health())
}

func TestEnemyStrikeIntoParryStunsIt(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	e := h.enemy(140, SpawnModifiers{})

	h.stepUntil(5, func() bool { return e.State() == EnemyAttack })
	h.stepUntil(60, func() bool { return e.AnimationName() == "attack" })

	h.step(components.InputData{Parry: press()})
	require.True(t, p.IsParrying())

	h.stepUntil(30, func() bool { return e.State() == EnemyStun })
	assert.False(t, p.IsDead())
	assert.False(t, e.HitboxEnabled())
	assert.Equal(t, 1, h.feedback.parries)
}
