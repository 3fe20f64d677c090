// Package core assembles the combat systems into a steppable simulation.
package core

import (
	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/leveldata"
	"github.com/automoto/duelcore/systems"
	"github.com/automoto/duelcore/systems/factory"
	"github.com/automoto/duelcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const defaultCellSize = 16

// Options configure a Simulation. Zero sizes fall back to a 640x360 arena.
type Options struct {
	Width    int
	Height   int
	CellSize int
	Tuning   config.Tuning
	Services systems.Services
}

// Simulation owns one world and runs it one fixed step at a time.
// It is not safe for concurrent use.
type Simulation struct {
	ecs    *ecs.ECS
	opts   Options
	tuning config.Tuning
	svc    *systems.Services
	log    *zap.Logger
}

func NewSimulation(opts Options) *Simulation {
	if opts.Width <= 0 {
		opts.Width = 640
	}
	if opts.Height <= 0 {
		opts.Height = 360
	}
	if opts.CellSize <= 0 {
		opts.CellSize = defaultCellSize
	}
	s := &Simulation{
		opts:   opts,
		tuning: opts.Tuning,
		svc:    systems.NewServices(opts.Services),
	}
	s.log = s.svc.Logger.Named("sim")
	s.Reset()
	return s
}

// Reset discards every entity and starts an empty world with the same
// arena size, services and tuning.
func (s *Simulation) Reset() {
	w := ecs.NewECS(donburi.NewWorld())

	// Logic pass, then physics pass, then overlap resolution and cleanup.
	w.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	w.AddSystem(systems.WithPauseCheck(systems.UpdatePlayerLogic))
	w.AddSystem(systems.WithPauseCheck(systems.UpdateEnemyLogic))
	w.AddSystem(systems.WithPauseCheck(systems.UpdateTints))
	w.AddSystem(systems.WithPauseCheck(systems.UpdatePlayerPhysics))
	w.AddSystem(systems.WithPauseCheck(systems.UpdateEnemyPhysics))
	w.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	w.AddSystem(systems.WithPauseCheck(systems.UpdateHitboxes))
	w.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))

	s.ecs = w
	factory.CreateSpace(w, s.opts.Width, s.opts.Height, s.opts.CellSize, s.opts.CellSize)
	systems.GetOrCreateClock(w)
	systems.GetOrCreateInput(w)
	systems.GetOrCreatePause(w)
	s.log.Debug("world reset", zap.Int("width", s.opts.Width), zap.Int("height", s.opts.Height))
}

// Step advances the world by dt seconds using the given player intent.
func (s *Simulation) Step(dt float64, input components.InputData) {
	*systems.GetOrCreateInput(s.ecs) = input
	systems.GetOrCreateClock(s.ecs).Delta = dt
	s.ecs.Update()
}

// SetTuning replaces the tuning used for actors spawned from now on.
func (s *Simulation) SetTuning(t config.Tuning) {
	s.tuning = t
}

func (s *Simulation) Tuning() config.Tuning { return s.tuning }

func (s *Simulation) SpawnPlayer(x, y float64) *systems.Player {
	return systems.SpawnPlayer(s.ecs, x, y, s.tuning, s.svc)
}

func (s *Simulation) SpawnEnemy(x, y float64, mods systems.SpawnModifiers) *systems.Enemy {
	return systems.SpawnEnemy(s.ecs, x, y, s.tuning, s.svc, mods)
}

// AddSolid adds static level geometry.
func (s *Simulation) AddSolid(x, y, w, h float64) {
	factory.CreateWall(s.ecs, x, y, w, h)
}

// LoadArena resets the world to the arena's size and builds its geometry,
// the player and every enemy spawn.
func (s *Simulation) LoadArena(a *leveldata.Arena) *systems.Player {
	s.opts.Width, s.opts.Height = a.Width, a.Height
	s.Reset()
	for _, r := range a.Solids {
		s.AddSolid(r.X, r.Y, r.W, r.H)
	}
	for _, sp := range a.EnemySpawns {
		s.SpawnEnemy(sp.X, sp.Y, systems.SpawnModifiers{})
	}
	if a.PlayerSpawn == nil {
		return nil
	}
	return s.SpawnPlayer(a.PlayerSpawn.X, a.PlayerSpawn.Y)
}

func (s *Simulation) Player() *systems.Player {
	return systems.FindPlayer(s.ecs)
}

func (s *Simulation) Enemies() []*systems.Enemy {
	var out []*systems.Enemy
	tags.Enemy.Each(s.ecs.World, func(e *donburi.Entry) {
		if en := systems.EnemyOf(e); en != nil {
			out = append(out, en)
		}
	})
	return out
}

func (s *Simulation) Now() float64 { return systems.GetOrCreateClock(s.ecs).Now }

// Frame counts the steps simulated so far.
func (s *Simulation) Frame() uint64 { return systems.GetOrCreateClock(s.ecs).Frame }

func (s *Simulation) TogglePause() { systems.TogglePause(s.ecs) }

func (s *Simulation) Paused() bool { return systems.GetOrCreatePause(s.ecs).IsPaused }

// Frozen reports whether the simulation stopped itself after the player died
// with no game-over handler registered.
func (s *Simulation) Frozen() bool { return systems.GetOrCreatePause(s.ecs).Frozen }

// ECS exposes the world for renderers.
func (s *Simulation) ECS() *ecs.ECS { return s.ecs }
