package systems

import (
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/fsm"
	"github.com/automoto/duelcore/tags"
	"github.com/automoto/duelcore/timing"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SpawnModifiers scale a spawned enemy. Zero multipliers leave a value alone.
type SpawnModifiers struct {
	SpeedMultiplier       float64
	DetectRangeMultiplier float64
	ExtraHealth           int
}

// Enemy is the combat AI controller for one enemy entity.
type Enemy struct {
	entry *donburi.Entry
	ecs   *ecs.ECS
	cfg   config.EnemyConfig
	svc   *Services
	log   *zap.Logger

	machine *fsm.Machine[*Enemy]
	states  [enemyStateCount]enemyState
	routine timing.Runner

	killReported bool
}

func newEnemy(ecs *ecs.ECS, entry *donburi.Entry, cfg config.EnemyConfig, svc *Services) *Enemy {
	e := &Enemy{
		entry: entry,
		ecs:   ecs,
		cfg:   cfg,
		svc:   svc,
		log:   svc.Logger.Named("enemy").With(zap.Uint64("entity", uint64(entry.Entity().Id()))),
	}
	e.states = [enemyStateCount]enemyState{
		EnemyIdle:   &enemyIdle{},
		EnemyChase:  &enemyChase{},
		EnemyAttack: &enemyAttack{},
		EnemyStun:   &enemyStun{},
		EnemyDead:   &enemyDead{},
	}
	e.machine = fsm.New(e)
	e.machine.OnChange(func(from, to fsm.State[*Enemy]) {
		// Leaving any state ends whatever timed sequence it was running.
		e.routine.Cancel()
		if from == nil {
			return
		}
		e.log.Debug("state change",
			zap.Stringer("from", from.(enemyState).ID()),
			zap.Stringer("to", to.(enemyState).ID()))
	})
	e.machine.Initialize(e.states[EnemyIdle])
	return e
}

// EnemyOf returns the controller attached to an enemy entry, or nil.
func EnemyOf(e *donburi.Entry) *Enemy {
	if e == nil || !e.Valid() || !e.HasComponent(components.Actor) {
		return nil
	}
	en, _ := components.Actor.Get(e).Controller.(*Enemy)
	return en
}

// UpdateEnemyLogic runs the logic tick of every enemy.
func UpdateEnemyLogic(ecs *ecs.ECS) {
	for _, en := range enemies(ecs) {
		en.LogicTick()
	}
}

// UpdateEnemyPhysics runs the physics tick of every enemy.
func UpdateEnemyPhysics(ecs *ecs.ECS) {
	for _, en := range enemies(ecs) {
		en.PhysicsTick()
	}
}

// enemies snapshots the controllers so ticks may change the world.
func enemies(ecs *ecs.ECS) []*Enemy {
	var out []*Enemy
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if en := EnemyOf(e); en != nil {
			out = append(out, en)
		}
	})
	return out
}

// LogicTick advances the running timed sequence, then the state machine.
// A sequence started during this tick begins counting on the next one.
func (e *Enemy) LogicTick() {
	if !e.entry.Valid() {
		return
	}
	e.routine.Tick(e.dt())
	if !e.entry.Valid() {
		return
	}
	e.machine.LogicUpdate()
}

func (e *Enemy) PhysicsTick() {
	if !e.entry.Valid() {
		return
	}
	e.machine.PhysicsUpdate()
}

func (e *Enemy) Entry() *donburi.Entry { return e.entry }

func (e *Enemy) State() EnemyStateID {
	return e.machine.Current().(enemyState).ID()
}

func (e *Enemy) IsDead() bool {
	return !e.entry.Valid() || e.data().Dead
}

func (e *Enemy) Health() int {
	if !e.entry.Valid() {
		return 0
	}
	return components.Health.Get(e.entry).Current
}

func (e *Enemy) Facing() float64 { return e.data().Facing }

func (e *Enemy) AnimationName() string { return e.data().Animation }

// Velocity returns the body velocity in pixels per second.
func (e *Enemy) Velocity() (float64, float64) {
	body := e.body()
	return body.VelX, body.VelY
}

func (e *Enemy) Center() (float64, float64) {
	return center(components.Object.Get(e.entry).Object)
}

// Tint returns the current telegraph or stun overlay.
func (e *Enemy) Tint() (components.TintKind, float32) {
	t := components.Tint.Get(e.entry)
	return t.Kind, t.Value
}

// HitboxEnabled reports whether the attack hitbox is live.
func (e *Enemy) HitboxEnabled() bool { return hitboxEnabled(e.data().Hitbox) }

// Hitbox returns the attack hitbox geometry.
func (e *Enemy) Hitbox() *resolv.Object { return hitboxObject(e.data().Hitbox) }

// ApplyModifiers adjusts runtime stats. Safe to call at any point of the enemy's life.
func (e *Enemy) ApplyModifiers(m SpawnModifiers) {
	if !e.entry.Valid() {
		return
	}
	d := e.data()
	if m.SpeedMultiplier > 0 {
		d.Speed *= m.SpeedMultiplier
	}
	if m.DetectRangeMultiplier > 0 {
		d.DetectRange *= m.DetectRangeMultiplier
	}
	if m.ExtraHealth != 0 && !d.Dead {
		h := components.Health.Get(e.entry)
		h.Current += m.ExtraHealth
		h.Max += m.ExtraHealth
		if h.Current < 1 {
			h.Current = 1
		}
	}
}

// TakeDamage reduces health by amount and starts dying at zero.
// Hits on a dead enemy are ignored.
func (e *Enemy) TakeDamage(amount int) {
	if !e.entry.Valid() || amount <= 0 {
		return
	}
	if e.data().Dead || e.State() == EnemyDead {
		return
	}
	h := components.Health.Get(e.entry)
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		e.change(EnemyDead)
	}
}

// Stun interrupts the enemy. It is ignored while already stunned or dead.
func (e *Enemy) Stun() {
	if !e.entry.Valid() {
		return
	}
	switch e.State() {
	case EnemyStun, EnemyDead:
		return
	}
	e.log.Debug("stunned")
	e.change(EnemyStun)
}

func (e *Enemy) data() *components.EnemyData   { return components.Enemy.Get(e.entry) }
func (e *Enemy) body() *components.PhysicsData { return components.Physics.Get(e.entry) }
func (e *Enemy) dt() float64                   { return GetOrCreateClock(e.ecs).Delta }
func (e *Enemy) setAnimation(name string)      { e.data().Animation = name }
func (e *Enemy) change(id EnemyStateID)        { e.machine.ChangeState(e.states[id]) }
func (e *Enemy) setHitbox(enabled bool)        { setHitboxEnabled(e.data().Hitbox, enabled) }
func (e *Enemy) target() *Player               { return FindPlayer(e.ecs) }
func (e *Enemy) targetDead(t *Player) bool     { return t == nil || t.IsDead() }
func (e *Enemy) sqRange(r float64) float64     { return r * r }

// sqDistTo is the squared center distance to t, or unreachable without one.
func (e *Enemy) sqDistTo(t *Player) float64 {
	if t == nil || !t.entry.Valid() {
		return unreachable
	}
	ex, ey := e.Center()
	px, py := t.Center()
	return squaredDistance(ex, ey, px, py)
}

// faceTarget turns toward t horizontally and returns the direction.
func (e *Enemy) faceTarget(t *Player) float64 {
	if t == nil || !t.entry.Valid() {
		return 0
	}
	ex, _ := e.Center()
	px, _ := t.Center()
	dir := sign(px - ex)
	if dir != 0 {
		e.data().Facing = dir
	}
	return dir
}

// ambushing reports whether a dashing player is closing in fast enough to
// warrant striking before normal attack range.
func (e *Enemy) ambushing(t *Player, sqDist float64) bool {
	if t == nil || !t.IsDashing() {
		return false
	}
	ex, _ := e.Center()
	px, _ := t.Center()
	vx, _ := t.Velocity()
	toward := sign(ex - px)
	if toward == 0 || sign(vx) != toward {
		return false
	}
	return sqDist <= e.sqRange(e.data().AttackRange*e.cfg.AmbushRangeFactor)
}

// setTint starts an overlay ramp from begin to end over duration seconds.
func (e *Enemy) setTint(kind components.TintKind, begin, end, duration float64) {
	t := components.Tint.Get(e.entry)
	t.Kind = kind
	t.Value = float32(begin)
	t.Tween = nil
	if duration > 0 {
		t.Tween = gween.New(float32(begin), float32(end), float32(duration), ease.Linear)
	}
}

func (e *Enemy) clearTint() {
	components.Tint.SetValue(e.entry, components.TintData{})
}
