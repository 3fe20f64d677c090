package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/fsm"
	"github.com/automoto/duelcore/timing"
	"go.uber.org/zap"
)

type EnemyStateID int

const (
	EnemyIdle EnemyStateID = iota
	EnemyChase
	EnemyAttack
	EnemyStun
	EnemyDead
	enemyStateCount
)

func (s EnemyStateID) String() string {
	switch s {
	case EnemyIdle:
		return "Idle"
	case EnemyChase:
		return "Chase"
	case EnemyAttack:
		return "Attack"
	case EnemyStun:
		return "Stun"
	case EnemyDead:
		return "Dead"
	}
	return "Unknown"
}

type enemyState interface {
	fsm.State[*Enemy]
	ID() EnemyStateID
}

// Idle

type enemyIdle struct{}

func (*enemyIdle) ID() EnemyStateID { return EnemyIdle }

func (*enemyIdle) Enter(e *Enemy) {
	e.setAnimation("idle")
	body := e.body()
	body.Kinematic = true
	body.VelX, body.VelY = 0, 0
}

func (*enemyIdle) Exit(e *Enemy) {
	e.setHitbox(false)
}

func (*enemyIdle) LogicUpdate(e *Enemy) {
	t := e.target()
	if e.targetDead(t) {
		return
	}
	if e.sqDistTo(t) < e.sqRange(e.data().DetectRange) {
		e.change(EnemyChase)
	}
}

func (*enemyIdle) PhysicsUpdate(*Enemy) {}

// Chase

type enemyChase struct{}

func (*enemyChase) ID() EnemyStateID { return EnemyChase }

func (*enemyChase) Enter(e *Enemy) {
	e.setAnimation("run")
	e.body().Kinematic = false
}

func (*enemyChase) Exit(e *Enemy) {
	e.setHitbox(false)
	e.body().VelX = 0
}

func (*enemyChase) LogicUpdate(e *Enemy) {
	t := e.target()
	if e.targetDead(t) {
		e.change(EnemyIdle)
		return
	}

	d := e.data()
	sqDist := e.sqDistTo(t)
	if sqDist >= e.sqRange(d.DetectRange) {
		e.change(EnemyIdle)
		return
	}
	if e.ambushing(t, sqDist) || sqDist <= e.sqRange(d.AttackRange) {
		e.change(EnemyAttack)
	}
}

func (*enemyChase) PhysicsUpdate(e *Enemy) {
	dir := e.faceTarget(e.target())
	e.body().VelX = dir * e.data().Speed
}

// Attack runs windup, strike and cooldown as one timed sequence.

type enemyAttack struct{}

func (*enemyAttack) ID() EnemyStateID { return EnemyAttack }

func (*enemyAttack) Enter(e *Enemy) {
	body := e.body()
	body.Kinematic = false
	body.VelX = 0
	e.faceTarget(e.target())

	cfg := e.cfg
	e.routine.Start(timing.NewRoutine("attack").
		Do(func() {
			e.setAnimation("idle")
			e.setTint(components.TintTelegraph, 0, 1, cfg.WindupDuration)
		}).
		Wait(cfg.WindupDuration).
		Do(func() {
			e.clearTint()
			e.setAnimation("attack")
			x, y := e.Center()
			e.svc.attackSwing(x, y)
		}).
		Wait(cfg.StrikeDelay).
		Do(func() { e.setHitbox(true) }).
		Wait(cfg.StrikeActive).
		Do(func() { e.setHitbox(false) }).
		Wait(cfg.AttackCooldown).
		Do(e.finishAttack))
}

func (*enemyAttack) Exit(e *Enemy) {
	e.setHitbox(false)
	e.clearTint()
}

func (*enemyAttack) LogicUpdate(*Enemy) {}

func (*enemyAttack) PhysicsUpdate(e *Enemy) {
	e.body().VelX = 0
}

func (e *Enemy) finishAttack() {
	t := e.target()
	if e.targetDead(t) {
		e.setHitbox(false)
		e.change(EnemyIdle)
		return
	}
	if e.sqDistTo(t) <= e.sqRange(e.data().AttackRange+e.cfg.AttackRangeBuffer) {
		e.change(EnemyAttack)
		return
	}
	e.change(EnemyChase)
}

// Stun is only entered through Stun().

type enemyStun struct{}

func (*enemyStun) ID() EnemyStateID { return EnemyStun }

func (*enemyStun) Enter(e *Enemy) {
	e.setAnimation("stun")
	e.setHitbox(false)
	body := e.body()
	body.Kinematic = true
	body.VelX, body.VelY = 0, 0
	e.setTint(components.TintStun, 1, 0, e.cfg.StunDuration)

	e.routine.Start(timing.NewRoutine("stun").
		Wait(e.cfg.StunDuration).
		Do(func() { e.change(EnemyChase) }))
}

func (*enemyStun) Exit(e *Enemy) {
	e.clearTint()
	e.body().Kinematic = false
}

func (*enemyStun) LogicUpdate(*Enemy)   {}
func (*enemyStun) PhysicsUpdate(*Enemy) {}

// Dead has no way out. The entity is destroyed when the sequence ends.

type enemyDead struct{}

func (*enemyDead) ID() EnemyStateID { return EnemyDead }

func (*enemyDead) Enter(e *Enemy) {
	d := e.data()
	d.Dead = true
	e.setAnimation("death")
	e.setHitbox(false)
	e.clearTint()

	body := e.body()
	body.Kinematic = false
	ApplyKnockback(body, d.Facing, e.cfg.KnockbackForce, e.cfg.KnockbackLift)

	x, y := e.Center()
	e.log.Info("enemy died", zap.Float64("x", x), zap.Float64("y", y), zap.Uint64("frame", GetOrCreateClock(e.ecs).Frame))

	e.routine.Start(timing.NewRoutine("death").
		Wait(e.cfg.DeathDuration).
		Do(e.finishDeath))
}

func (*enemyDead) Exit(*Enemy)          {}
func (*enemyDead) LogicUpdate(*Enemy)   {}
func (*enemyDead) PhysicsUpdate(*Enemy) {}

func (e *Enemy) finishDeath() {
	if !e.killReported {
		e.killReported = true
		if e.svc.Kills != nil {
			e.svc.Kills.EnemyDestroyed(e)
		} else {
			e.svc.warnMissing("kill tracker")
		}
	}
	ScheduleDestroy(e.entry, 0)
}
