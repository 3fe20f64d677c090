package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/fsm"
	"github.com/automoto/duelcore/tags"
	"github.com/automoto/duelcore/timing"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Player is the combat controller for the player entity.
type Player struct {
	entry *donburi.Entry
	ecs   *ecs.ECS
	cfg   config.PlayerConfig
	svc   *Services
	log   *zap.Logger

	machine *fsm.Machine[*Player]
	states  [playerStateCount]playerState
	routine timing.Runner

	gameOverSent bool
}

func newPlayer(ecs *ecs.ECS, entry *donburi.Entry, cfg config.PlayerConfig, svc *Services) *Player {
	p := &Player{
		entry: entry,
		ecs:   ecs,
		cfg:   cfg,
		svc:   svc,
		log:   svc.Logger.Named("player"),
	}
	p.states = [playerStateCount]playerState{
		PlayerIdle:       &playerIdle{},
		PlayerMove:       &playerMove{},
		PlayerJump:       &playerJump{},
		PlayerAir:        &playerAir{},
		PlayerAttack:     &playerAttack{},
		PlayerParry:      &playerParry{},
		PlayerDash:       &playerDash{},
		PlayerDashAttack: &playerDashAttack{},
	}
	p.machine = fsm.New(p)
	p.machine.OnChange(func(from, to fsm.State[*Player]) {
		if from == nil {
			return
		}
		p.log.Debug("state change",
			zap.Stringer("from", from.(playerState).ID()),
			zap.Stringer("to", to.(playerState).ID()))
	})
	p.machine.Initialize(p.states[PlayerIdle])
	return p
}

// PlayerOf returns the controller attached to a player entry, or nil.
func PlayerOf(e *donburi.Entry) *Player {
	if e == nil || !e.Valid() || !e.HasComponent(components.Actor) {
		return nil
	}
	p, _ := components.Actor.Get(e).Controller.(*Player)
	return p
}

// FindPlayer returns the player controller in the world, or nil.
func FindPlayer(ecs *ecs.ECS) *Player {
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil
	}
	return PlayerOf(e)
}

// UpdatePlayerLogic runs the logic tick of every player.
func UpdatePlayerLogic(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if p := PlayerOf(e); p != nil {
			p.LogicTick()
		}
	})
}

// UpdatePlayerPhysics runs the physics tick of every player.
func UpdatePlayerPhysics(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if p := PlayerOf(e); p != nil {
			p.PhysicsTick()
		}
	})
}

// LogicTick advances the running timed sequence, then the state machine.
// A dead player only advances its death sequence.
func (p *Player) LogicTick() {
	if !p.entry.Valid() {
		return
	}
	p.routine.Tick(p.dt())
	if !p.data().Dead {
		p.machine.LogicUpdate()
	}
}

func (p *Player) PhysicsTick() {
	if !p.entry.Valid() || p.data().Dead {
		return
	}
	p.machine.PhysicsUpdate()
}

func (p *Player) Entry() *donburi.Entry { return p.entry }

func (p *Player) State() PlayerStateID {
	return p.machine.Current().(playerState).ID()
}

// IsDashing reports whether the player is in Dash or DashAttack.
func (p *Player) IsDashing() bool {
	s := p.State()
	return s == PlayerDash || s == PlayerDashAttack
}

func (p *Player) IsParrying() bool { return p.State() == PlayerParry }

func (p *Player) IsDead() bool {
	return !p.entry.Valid() || p.data().Dead
}

func (p *Player) IsInvulnerable() bool { return p.data().Invulnerable }

func (p *Player) Combo() int { return p.data().Combo }

func (p *Player) AnimationName() string { return p.data().Animation }

func (p *Player) Facing() float64 { return p.data().Facing }

func (p *Player) CanDash() bool { return p.data().DashCooldown.Ready(p.now()) }

func (p *Player) CanParry() bool { return p.data().ParryCooldown.Ready(p.now()) }

// Velocity returns the body velocity in pixels per second.
func (p *Player) Velocity() (float64, float64) {
	body := p.body()
	return body.VelX, body.VelY
}

// Center returns the body's center in world space.
func (p *Player) Center() (float64, float64) {
	return center(components.Object.Get(p.entry).Object)
}

// TakeDamage applies a hit with no known source. It can never stun an attacker.
func (p *Player) TakeDamage(amount int) {
	p.TakeDamageFrom(amount, nil)
}

// TakeDamageFrom applies a hit delivered by the hitbox geometry source.
// While parrying the hit is converted into a stun on whoever owns source.
// Any other hit that gets through is lethal, whatever its amount. Amounts
// of zero or less are not hits and are ignored.
func (p *Player) TakeDamageFrom(amount int, source *resolv.Object) {
	if !p.entry.Valid() {
		return
	}
	d := p.data()
	if d.Dead || d.Invulnerable || amount <= 0 {
		return
	}

	if p.IsParrying() {
		attacker := ownerController(source)
		stunnable, ok := attacker.(components.Stunnable)
		if !ok {
			return
		}
		stunnable.Stun()
		x, y := p.Center()
		p.svc.parrySucceeded(x, y)
		p.log.Info("parry", zap.Float64("x", x), zap.Float64("y", y))
		return
	}

	p.die()
}

func (p *Player) die() {
	d := p.data()
	d.Dead = true
	d.Animation = "death"
	components.Health.Get(p.entry).Current = 0

	body := p.body()
	body.VelX, body.VelY = 0, 0
	body.GravityScale = 1
	p.setHitbox(false)

	x, y := p.Center()
	p.log.Info("player died", zap.Float64("x", x), zap.Float64("y", y), zap.Uint64("frame", p.frame()))
	p.svc.playerDied(x, y)

	p.routine.Start(timing.NewRoutine("death").
		Wait(p.cfg.DeathDuration).
		Do(p.signalGameOver))
}

func (p *Player) signalGameOver() {
	if p.gameOverSent {
		return
	}
	p.gameOverSent = true
	if p.svc.GameOver == nil {
		p.svc.warnMissing("game over")
		Freeze(p.ecs)
		return
	}
	p.svc.GameOver.PlayerDied()
}

func (p *Player) data() *components.PlayerData  { return components.Player.Get(p.entry) }
func (p *Player) body() *components.PhysicsData { return components.Physics.Get(p.entry) }
func (p *Player) input() *components.InputData  { return GetOrCreateInput(p.ecs) }
func (p *Player) now() float64                  { return GetOrCreateClock(p.ecs).Now }
func (p *Player) dt() float64                   { return GetOrCreateClock(p.ecs).Delta }
func (p *Player) frame() uint64                 { return GetOrCreateClock(p.ecs).Frame }
func (p *Player) grounded() bool                { return p.body().OnGround }
func (p *Player) setAnimation(name string)      { p.data().Animation = name }
func (p *Player) change(id PlayerStateID)       { p.machine.ChangeState(p.states[id]) }
func (p *Player) setHitbox(enabled bool)        { setHitboxEnabled(p.data().Hitbox, enabled) }

// HitboxEnabled reports whether the attack hitbox is live.
func (p *Player) HitboxEnabled() bool { return hitboxEnabled(p.data().Hitbox) }

// Hitbox returns the attack hitbox geometry.
func (p *Player) Hitbox() *resolv.Object { return hitboxObject(p.data().Hitbox) }

// settle leaves a timed state for Idle on the ground or Air otherwise.
func (p *Player) settle() {
	if p.grounded() {
		p.change(PlayerIdle)
		return
	}
	p.change(PlayerAir)
}

// faceInput turns the player toward horizontal input, if any.
func (p *Player) faceInput() {
	if dir := sign(p.input().MoveX); dir != 0 {
		p.data().Facing = dir
	}
}

// handleActions applies the shared action priority of Idle, Move and Air.
// It reports whether a transition happened.
func (p *Player) handleActions() bool {
	in := p.input()
	switch {
	case in.Dash.JustPressed && p.CanDash():
		p.change(PlayerDash)
	case in.Jump.JustPressed && p.grounded():
		p.change(PlayerJump)
	case in.Attack.JustPressed:
		p.change(PlayerAttack)
	case in.Parry.JustPressed && p.CanParry():
		p.change(PlayerParry)
	default:
		return false
	}
	return true
}

// advanceCombo moves the combo to its next position, 1..3 cyclically.
func (p *Player) advanceCombo() int {
	d := p.data()
	now := p.now()
	if d.Combo == 0 || now-d.LastAttackAt > p.cfg.ComboResetTime {
		d.Combo = 1
	} else {
		d.Combo++
		if d.Combo > 3 {
			d.Combo = 1
		}
	}
	d.LastAttackAt = now
	return d.Combo
}
