package systems

import (
	"math"

	"github.com/automoto/duelcore/fsm"
	"github.com/automoto/duelcore/tags"
)

type PlayerStateID int

const (
	PlayerIdle PlayerStateID = iota
	PlayerMove
	PlayerJump
	PlayerAir
	PlayerAttack
	PlayerParry
	PlayerDash
	PlayerDashAttack
	playerStateCount
)

func (s PlayerStateID) String() string {
	switch s {
	case PlayerIdle:
		return "Idle"
	case PlayerMove:
		return "Move"
	case PlayerJump:
		return "Jump"
	case PlayerAir:
		return "Air"
	case PlayerAttack:
		return "Attack"
	case PlayerParry:
		return "Parry"
	case PlayerDash:
		return "Dash"
	case PlayerDashAttack:
		return "DashAttack"
	}
	return "Unknown"
}

type playerState interface {
	fsm.State[*Player]
	ID() PlayerStateID
}

// expired compares accumulated frame time against a duration, tolerating
// float drift from summing fixed steps.
func expired(elapsed, duration float64) bool {
	return elapsed >= duration-1e-9
}

// Idle

type playerIdle struct{}

func (*playerIdle) ID() PlayerStateID { return PlayerIdle }

func (*playerIdle) Enter(p *Player) {
	p.setAnimation("idle")
	p.body().GravityScale = 1
}

func (*playerIdle) Exit(*Player) {}

func (*playerIdle) LogicUpdate(p *Player) {
	if p.handleActions() {
		return
	}
	if p.input().MoveX != 0 {
		p.change(PlayerMove)
		return
	}
	if !p.grounded() {
		p.change(PlayerAir)
	}
}

func (*playerIdle) PhysicsUpdate(p *Player) {
	p.body().VelX = 0
}

// Move

type playerMove struct{}

func (*playerMove) ID() PlayerStateID { return PlayerMove }

func (*playerMove) Enter(p *Player) {
	p.setAnimation("run")
	p.body().GravityScale = 1
}

func (*playerMove) Exit(*Player) {}

func (*playerMove) LogicUpdate(p *Player) {
	if p.handleActions() {
		return
	}
	if p.input().MoveX == 0 {
		p.change(PlayerIdle)
		return
	}
	if !p.grounded() {
		p.change(PlayerAir)
	}
}

func (*playerMove) PhysicsUpdate(p *Player) {
	p.faceInput()
	p.body().VelX = p.input().MoveX * p.cfg.MoveSpeed
}

// Jump applies the launch velocity and hands over to Air in the same tick.

type playerJump struct{}

func (*playerJump) ID() PlayerStateID { return PlayerJump }

func (*playerJump) Enter(p *Player) {
	p.setAnimation("jump")
	body := p.body()
	body.VelY = -p.cfg.JumpForce
	body.OnGround = false
	p.change(PlayerAir)
}

func (*playerJump) Exit(*Player)          {}
func (*playerJump) LogicUpdate(*Player)   {}
func (*playerJump) PhysicsUpdate(*Player) {}

// Air

type playerAir struct{}

func (*playerAir) ID() PlayerStateID { return PlayerAir }

func (*playerAir) Enter(p *Player) {
	p.updateAirAnimation()
}

func (*playerAir) Exit(p *Player) {
	p.body().GravityScale = 1
}

func (*playerAir) LogicUpdate(p *Player) {
	if p.handleActions() {
		return
	}
	p.updateAirAnimation()
	if p.grounded() && math.Abs(p.body().VelY) < p.cfg.GroundedEpsilon {
		p.change(PlayerIdle)
	}
}

func (*playerAir) PhysicsUpdate(p *Player) {
	p.faceInput()
	body := p.body()
	body.VelX = p.input().MoveX * p.cfg.MoveSpeed

	switch {
	case body.VelY > 0:
		body.GravityScale = p.cfg.FallMultiplier
	case body.VelY < 0 && !p.input().Jump.Pressed:
		body.GravityScale = p.cfg.LowJumpMultiplier
	default:
		body.GravityScale = 1
	}
}

func (p *Player) updateAirAnimation() {
	if p.body().VelY < 0 {
		p.setAnimation("jump")
		return
	}
	p.setAnimation("fall")
}

// Attack

type playerAttack struct {
	elapsed float64
	latched bool
}

func (*playerAttack) ID() PlayerStateID { return PlayerAttack }

func (s *playerAttack) Enter(p *Player) {
	s.elapsed = 0
	s.latched = false

	combo := p.advanceCombo()
	p.setAnimation(attackAnimations[combo-1])
	p.setHitbox(true)

	x, y := p.Center()
	p.svc.attackSwing(x, y)
}

var attackAnimations = [3]string{"attack1", "attack2", "attack3"}

func (*playerAttack) Exit(p *Player) {
	p.setHitbox(false)
}

func (s *playerAttack) LogicUpdate(p *Player) {
	in := p.input()
	if in.Dash.JustPressed && p.CanDash() {
		p.change(PlayerDash)
		return
	}
	if in.Attack.JustPressed {
		s.latched = true
	}

	s.elapsed += p.dt()
	if !expired(s.elapsed, p.cfg.AttackDuration) {
		return
	}
	if s.latched {
		p.change(PlayerAttack)
		return
	}
	p.settle()
}

func (*playerAttack) PhysicsUpdate(p *Player) {
	if p.grounded() {
		p.body().VelX = 0
	}
}

// Parry

type playerParry struct {
	elapsed float64
}

func (*playerParry) ID() PlayerStateID { return PlayerParry }

func (s *playerParry) Enter(p *Player) {
	s.elapsed = 0
	p.setAnimation("parry")
	p.applyParryGravity()
}

func (*playerParry) Exit(p *Player) {
	p.body().GravityScale = 1
}

func (s *playerParry) LogicUpdate(p *Player) {
	if p.input().Dash.JustPressed && p.CanDash() {
		p.change(PlayerDash)
		return
	}

	s.elapsed += p.dt()
	if !expired(s.elapsed, p.cfg.ParryDuration) {
		return
	}
	p.data().ParryCooldown.Arm(p.now(), p.cfg.ParryCooldown)
	p.settle()
}

func (*playerParry) PhysicsUpdate(p *Player) {
	p.body().VelX = 0
	p.applyParryGravity()
}

func (p *Player) applyParryGravity() {
	if p.grounded() {
		p.body().GravityScale = 1
		return
	}
	p.body().GravityScale = p.cfg.ParryAirGravity
}

// Dash

type playerDash struct {
	elapsed float64
	dir     float64
}

func (*playerDash) ID() PlayerStateID { return PlayerDash }

func (s *playerDash) Enter(p *Player) {
	s.elapsed = 0
	d := p.data()
	s.dir = sign(p.input().MoveX)
	if s.dir == 0 {
		s.dir = d.Facing
	}
	d.Facing = s.dir
	d.DashCooldown.Arm(p.now(), p.cfg.DashCooldown)
	d.Invulnerable = true
	p.setAnimation("dash")

	// Velocity is set here too so enemies see the dash on the tick it starts.
	body := p.body()
	body.GravityScale = 0
	body.VelX = s.dir * p.cfg.DashSpeed
	body.VelY = 0
	body.IgnoreTags = addTag(body.IgnoreTags, tags.ResolvEnemy)
}

func (*playerDash) Exit(p *Player) {
	p.data().Invulnerable = false
	body := p.body()
	body.GravityScale = 1
	body.IgnoreTags = removeTag(body.IgnoreTags, tags.ResolvEnemy)
}

func (s *playerDash) LogicUpdate(p *Player) {
	if p.input().Attack.JustPressed {
		p.change(PlayerDashAttack)
		return
	}

	s.elapsed += p.dt()
	if expired(s.elapsed, p.cfg.DashDuration) {
		p.settle()
	}
}

func (s *playerDash) PhysicsUpdate(p *Player) {
	body := p.body()
	body.VelX = s.dir * p.cfg.DashSpeed
	body.VelY = 0
}

// DashAttack

type playerDashAttack struct {
	elapsed float64
}

func (*playerDashAttack) ID() PlayerStateID { return PlayerDashAttack }

func (s *playerDashAttack) Enter(p *Player) {
	s.elapsed = 0
	p.data().Invulnerable = true
	p.setAnimation("dash_attack")
	p.setHitbox(true)

	body := p.body()
	body.GravityScale = 0
	body.VelX = p.data().Facing * p.cfg.DashSpeed / 2
	body.VelY = 0

	x, y := p.Center()
	p.svc.attackSwing(x, y)
}

func (*playerDashAttack) Exit(p *Player) {
	p.setHitbox(false)
	p.data().Invulnerable = false
	p.body().GravityScale = 1
}

func (s *playerDashAttack) LogicUpdate(p *Player) {
	s.elapsed += p.dt()
	if expired(s.elapsed, p.cfg.AttackDuration) {
		p.settle()
	}
}

func (*playerDashAttack) PhysicsUpdate(p *Player) {
	body := p.body()
	body.VelX = p.data().Facing * p.cfg.DashSpeed / 2
	body.VelY = 0
}
