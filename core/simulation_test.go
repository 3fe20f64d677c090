package core

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/leveldata"
	"github.com/automoto/duelcore/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

type kills struct{ n int }

func (k *kills) EnemyDestroyed(*systems.Enemy) { k.n++ }

type gameOver struct{ n int }

func (g *gameOver) PlayerDied() { g.n++ }

func newTestSimulation(svc systems.Services) *Simulation {
	sim := NewSimulation(Options{Tuning: config.Default(), Services: svc})
	sim.AddSolid(0, 320, 640, 40)
	return sim
}

func run(sim *Simulation, n int) {
	for i := 0; i < n; i++ {
		sim.Step(dt, components.InputData{})
	}
}

func TestNewSimulationDefaults(t *testing.T) {
	sim := NewSimulation(Options{Tuning: config.Default()})

	assert.Equal(t, 640, sim.opts.Width)
	assert.Equal(t, 360, sim.opts.Height)
	assert.Nil(t, sim.Player())
	assert.Empty(t, sim.Enemies())
	assert.Zero(t, sim.Now())
	assert.False(t, sim.Paused())
	assert.False(t, sim.Frozen())
}

func TestStepAdvancesClock(t *testing.T) {
	sim := newTestSimulation(systems.Services{})
	run(sim, 30)
	assert.InDelta(t, 0.5, sim.Now(), 1e-9)
	assert.Equal(t, uint64(30), sim.Frame())
}

func TestDuelPlaysOut(t *testing.T) {
	k, g := &kills{}, &gameOver{}
	sim := newTestSimulation(systems.Services{Kills: k, GameOver: g})
	p := sim.SpawnPlayer(100, 288)
	e := sim.SpawnEnemy(131, 288, systems.SpawnModifiers{})

	sim.Step(dt, components.InputData{})
	sim.Step(dt, components.InputData{Attack: components.ActionState{Pressed: true, JustPressed: true}})
	require.True(t, e.IsDead())

	for i := 0; i < 120 && len(sim.Enemies()) > 0; i++ {
		sim.Step(dt, components.InputData{})
	}
	assert.Empty(t, sim.Enemies())
	assert.Equal(t, 1, k.n)
	assert.False(t, p.IsDead())
	assert.Zero(t, g.n)
}

func TestPlayerDeathReachesGameOverOnce(t *testing.T) {
	g := &gameOver{}
	sim := newTestSimulation(systems.Services{GameOver: g})
	p := sim.SpawnPlayer(100, 288)
	sim.SpawnEnemy(140, 288, systems.SpawnModifiers{})

	for i := 0; i < 300 && g.n == 0; i++ {
		sim.Step(dt, components.InputData{})
	}
	require.True(t, p.IsDead())
	run(sim, 120)
	assert.Equal(t, 1, g.n)
	assert.False(t, sim.Frozen())
}

func TestPlayerDeathFreezesWithoutHandler(t *testing.T) {
	sim := newTestSimulation(systems.Services{})
	p := sim.SpawnPlayer(100, 288)
	run(sim, 1)

	p.TakeDamage(1)
	loop := NewGameLoop(sim, 60, nil)
	loop.RunSteps(1000)

	assert.True(t, sim.Frozen())
	assert.Less(t, sim.Now(), 2.0)

	sim.TogglePause()
	assert.False(t, sim.Paused(), "a frozen simulation cannot be unpaused")
}

func TestTogglePause(t *testing.T) {
	sim := newTestSimulation(systems.Services{})
	run(sim, 1)
	now := sim.Now()

	sim.TogglePause()
	assert.True(t, sim.Paused())
	run(sim, 10)
	assert.Equal(t, now, sim.Now())

	sim.TogglePause()
	run(sim, 1)
	assert.Greater(t, sim.Now(), now)
}

func TestSetTuningAppliesToNewSpawns(t *testing.T) {
	sim := newTestSimulation(systems.Services{})
	first := sim.SpawnEnemy(300, 288, systems.SpawnModifiers{})

	tuning := config.Default()
	tuning.Enemy.Health = 3
	sim.SetTuning(tuning)
	second := sim.SpawnEnemy(400, 288, systems.SpawnModifiers{})

	assert.Equal(t, 1, first.Health())
	assert.Equal(t, 3, second.Health())
	assert.Equal(t, 3, sim.Tuning().Enemy.Health)
}

func TestResetClearsWorld(t *testing.T) {
	sim := newTestSimulation(systems.Services{})
	sim.SpawnPlayer(100, 288)
	sim.SpawnEnemy(300, 288, systems.SpawnModifiers{})
	run(sim, 10)

	sim.Reset()
	assert.Nil(t, sim.Player())
	assert.Empty(t, sim.Enemies())
	assert.Zero(t, sim.Now())
}

func TestLoadArena(t *testing.T) {
	arena, err := leveldata.Load(leveldata.Builtin, leveldata.DefaultArena)
	require.NoError(t, err)

	sim := NewSimulation(Options{Tuning: config.Default()})
	p := sim.LoadArena(arena)
	require.NotNil(t, p)
	assert.Same(t, p, sim.Player())
	assert.Len(t, sim.Enemies(), len(arena.EnemySpawns))

	run(sim, 30)
	assert.Equal(t, systems.PlayerIdle, p.State())
	_, y := p.Center()
	assert.InDelta(t, 336-16, y, 1e-6)
}

func TestLoadArenaWithoutPlayerSpawn(t *testing.T) {
	sim := NewSimulation(Options{Tuning: config.Default()})
	p := sim.LoadArena(&leveldata.Arena{Width: 320, Height: 180})
	assert.Nil(t, p)
	assert.Equal(t, 320, sim.opts.Width)
}

func TestGameLoopRunStopsOnContext(t *testing.T) {
	sim := newTestSimulation(systems.Services{})
	var seen []float64
	loop := NewGameLoop(sim, 120, func(now float64) components.InputData {
		seen = append(seen, now)
		return components.InputData{}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	steps := loop.Run(ctx)

	assert.Greater(t, steps, 0)
	assert.Len(t, seen, steps)
	assert.InDelta(t, float64(steps)/120, sim.Now(), 1e-9)
}

func TestGameLoopRunStopsWhenFrozen(t *testing.T) {
	sim := newTestSimulation(systems.Services{})
	p := sim.SpawnPlayer(100, 288)
	run(sim, 1)
	p.TakeDamage(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan int, 1)
	go func() { done <- NewGameLoop(sim, 240, nil).Run(ctx) }()

	select {
	case steps := <-done:
		assert.True(t, sim.Frozen())
		assert.Greater(t, steps, 0)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop after the simulation froze")
	}
}
