package systems

import (
	"testing"

	"github.com/automoto/duelcore/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerSettlesIdleOnGround(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)

	h.idle(1)

	assert.Equal(t, PlayerIdle, p.State())
	assert.Equal(t, "idle", p.AnimationName())
	assert.True(t, p.body().OnGround)
	_, y := p.Center()
	assert.InDelta(t, floorY-16, y, 1e-9)
}

func TestPlayerMoveFacesInput(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	h.step(components.InputData{MoveX: -1})
	assert.Equal(t, PlayerMove, p.State())
	assert.Equal(t, -1.0, p.Facing())
	vx, _ := p.Velocity()
	assert.Equal(t, -h.tuning.Player.MoveSpeed, vx)

	h.step(components.InputData{})
	assert.Equal(t, PlayerIdle, p.State())
	vx, _ = p.Velocity()
	assert.Zero(t, vx)
}

func TestPlayerJumpLandsBackInIdle(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	h.step(components.InputData{Jump: press()})
	require.Equal(t, PlayerAir, p.State())
	assert.Equal(t, "jump", p.AnimationName())
	_, vy := p.Velocity()
	assert.Less(t, vy, 0.0)

	h.stepUntil(180, func() bool { return p.State() == PlayerIdle })
	assert.True(t, p.body().OnGround)
}

func TestPlayerJumpIgnoredInAir(t *testing.T) {
	h := newHarness(t)
	p := SpawnPlayer(h.ecs, 100, 100, h.tuning, h.svc)

	h.step(components.InputData{Jump: press()})
	assert.Equal(t, PlayerAir, p.State())
	_, vy := p.Velocity()
	assert.Greater(t, vy, 0.0, "falling body must not receive a jump impulse")
}

func TestPlayerAttackComboCycles(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	var anims []string
	var combos []int
	last := ""
	for i := 0; i < 200 && len(anims) < 4; i++ {
		in := components.InputData{}
		if i%5 == 0 {
			in.Attack = press()
		}
		h.step(in)
		if p.State() == PlayerAttack && p.AnimationName() != last {
			last = p.AnimationName()
			anims = append(anims, last)
			combos = append(combos, p.Combo())
			assert.True(t, p.HitboxEnabled())
		}
	}

	assert.Equal(t, []string{"attack1", "attack2", "attack3", "attack1"}, anims)
	assert.Equal(t, []int{1, 2, 3, 1}, combos)
	assert.Equal(t, 4, h.feedback.swings)
}

func TestPlayerComboResetsAfterPause(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	h.step(components.InputData{Attack: press()})
	require.Equal(t, 1, p.Combo())
	h.stepUntil(60, func() bool { return p.State() == PlayerIdle })
	assert.False(t, p.HitboxEnabled())

	h.idle(60)
	h.step(components.InputData{Attack: press()})
	assert.Equal(t, 1, p.Combo())
}

func TestPlayerDashIsInvulnerable(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	h.step(components.InputData{MoveX: 1, Dash: press()})
	require.Equal(t, PlayerDash, p.State())
	assert.True(t, p.IsDashing())
	assert.True(t, p.IsInvulnerable())

	p.TakeDamage(1)
	assert.False(t, p.IsDead())

	vx, vy := p.Velocity()
	assert.Equal(t, h.tuning.Player.DashSpeed, vx)
	assert.Zero(t, vy)

	h.stepUntil(30, func() bool { return p.State() != PlayerDash })
	assert.False(t, p.IsInvulnerable())
	assert.Equal(t, 1.0, p.body().GravityScale)
	assert.Empty(t, p.body().IgnoreTags)
}

func TestPlayerDashCooldownIsMonotonic(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	h.step(components.InputData{Dash: press()})
	require.Equal(t, PlayerDash, p.State())
	start := h.now()

	wasReady := false
	for i := 0; i < 60; i++ {
		h.idle(1)
		ready := p.CanDash()
		if wasReady {
			assert.True(t, ready, "cooldown must not re-arm without a dash")
		}
		if ready && !wasReady {
			assert.GreaterOrEqual(t, h.now()-start, h.tuning.Player.DashCooldown-1e-9)
		}
		if !ready {
			assert.Less(t, h.now()-start, h.tuning.Player.DashCooldown+1e-9)
		}
		wasReady = ready
	}
	assert.True(t, wasReady)
}

func TestPlayerDashBlockedDuringCooldown(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	h.step(components.InputData{Dash: press()})
	h.stepUntil(30, func() bool { return p.State() == PlayerIdle })
	require.False(t, p.CanDash())

	h.step(components.InputData{Dash: press()})
	assert.Equal(t, PlayerIdle, p.State())
}

func TestPlayerDashAttack(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	h.step(components.InputData{Dash: press()})
	h.step(components.InputData{Attack: press()})
	require.Equal(t, PlayerDashAttack, p.State())
	assert.True(t, p.IsDashing())
	assert.True(t, p.IsInvulnerable())
	assert.True(t, p.HitboxEnabled())
	assert.Equal(t, 1, h.feedback.swings)

	p.TakeDamage(1)
	assert.False(t, p.IsDead())

	h.stepUntil(40, func() bool { return p.State() != PlayerDashAttack })
	assert.False(t, p.HitboxEnabled())
	assert.False(t, p.IsInvulnerable())
}

func TestPlayerDashInterruptsAttack(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	h.step(components.InputData{Attack: press()})
	require.Equal(t, PlayerAttack, p.State())
	h.step(components.InputData{Dash: press()})
	assert.Equal(t, PlayerDash, p.State())
	assert.False(t, p.HitboxEnabled())
}

func TestPlayerParryStunsAttacker(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	e := h.enemy(600, SpawnModifiers{})
	h.idle(1)

	h.step(components.InputData{Parry: press()})
	require.True(t, p.IsParrying())

	p.TakeDamageFrom(1, e.Hitbox())

	assert.False(t, p.IsDead())
	assert.Equal(t, EnemyStun, e.State())
	assert.Equal(t, 1, e.Health(), "a parried hit deals no damage to anyone")
	assert.Equal(t, 1, h.feedback.parries)
	assert.Equal(t, 1, h.logs.FilterMessage("parry").Len())
}

func TestPlayerParryWithoutSourceAbsorbsHit(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	h.step(components.InputData{Parry: press()})
	p.TakeDamage(1)

	assert.False(t, p.IsDead())
	assert.Zero(t, h.feedback.parries)
}

func TestPlayerHitAfterParryWindowIsLethal(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	e := h.enemy(600, SpawnModifiers{})
	h.idle(1)

	h.step(components.InputData{Parry: press()})
	h.stepUntil(30, func() bool { return !p.IsParrying() })
	assert.False(t, p.CanParry())

	p.TakeDamageFrom(1, e.Hitbox())

	assert.True(t, p.IsDead())
	assert.Equal(t, EnemyIdle, e.State())
}

func TestPlayerParryCooldown(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	h.step(components.InputData{Parry: press()})
	h.stepUntil(30, func() bool { return !p.IsParrying() })

	h.step(components.InputData{Parry: press()})
	assert.False(t, p.IsParrying())

	h.stepUntil(60, p.CanParry)
	h.step(components.InputData{Parry: press()})
	assert.True(t, p.IsParrying())
}

func TestPlayerDashCancelsParry(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	h.step(components.InputData{Parry: press()})
	h.step(components.InputData{Dash: press()})
	assert.Equal(t, PlayerDash, p.State())
	assert.True(t, p.CanParry(), "an interrupted parry does not arm its cooldown")
}

func TestPlayerDiesOnce(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(1)

	h.step(components.InputData{Attack: press()})
	require.True(t, p.HitboxEnabled())

	p.TakeDamage(1)
	p.TakeDamage(1)

	assert.True(t, p.IsDead())
	assert.Equal(t, "death", p.AnimationName())
	assert.False(t, p.HitboxEnabled())
	assert.Equal(t, 1, h.feedback.deaths)
	assert.Zero(t, components.Health.Get(p.Entry()).Current)

	h.step(components.InputData{Attack: press(), Dash: press()})
	assert.False(t, p.HitboxEnabled(), "a dead player does not act")

	h.stepUntil(90, func() bool { return h.gameOver.calls > 0 })
	h.idle(120)
	assert.Equal(t, 1, h.gameOver.calls)
}

func TestPlayerDamageAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		dead   bool
	}{
		{"zero is not a hit", 0, false},
		{"negative is not a hit", -3, false},
		{"one is lethal", 1, true},
		{"large is lethal once", 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			p := h.player(100)
			h.idle(1)

			p.TakeDamage(tt.amount)
			assert.Equal(t, tt.dead, p.IsDead())
			if tt.dead {
				h.stepUntil(90, func() bool { return h.gameOver.calls > 0 })
				assert.Equal(t, 1, h.gameOver.calls)
			}
		})
	}
}

func TestPlayerDeathFreezesWithoutGameOverHandler(t *testing.T) {
	h := newHarness(t, withoutGameOver)
	p := h.player(100)
	h.idle(1)

	p.TakeDamage(1)
	h.stepUntil(90, func() bool { return IsHalted(h.ecs) })
	assert.True(t, GetOrCreatePause(h.ecs).Frozen)

	now := h.now()
	h.idle(10)
	assert.Equal(t, now, h.now(), "a frozen world does not advance")
	assert.Equal(t, 1, h.logs.FilterMessage("collaborator not registered").Len())
}

func TestPlayerDeathLogsFrame(t *testing.T) {
	h := newHarness(t)
	p := h.player(100)
	h.idle(3)

	p.TakeDamage(1)
	entries := h.logs.FilterMessage("player died").All()
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(3), entries[0].ContextMap()["frame"])
}
