package core

import (
	"context"
	"time"

	"github.com/automoto/duelcore/components"
	"go.uber.org/zap"
)

// InputSource supplies the player intent for the next step.
type InputSource func(now float64) components.InputData

// GameLoop drives a Simulation at a fixed tick rate without a window,
// for soak runs and bots.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	input    InputSource
	log      *zap.Logger
}

func NewGameLoop(sim *Simulation, tickRate int, input InputSource) *GameLoop {
	if input == nil {
		input = func(float64) components.InputData { return components.InputData{} }
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		input:    input,
		log:      sim.log.Named("loop"),
	}
}

// Run ticks in real time until ctx is done or the simulation freezes.
// It returns the number of steps taken.
func (g *GameLoop) Run(ctx context.Context) int {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.log.Info("game loop started", zap.Int("tick_rate", g.tickRate))

	steps := 0
	for {
		select {
		case <-ctx.Done():
			g.log.Info("game loop stopped", zap.Int("steps", steps))
			return steps
		case <-ticker.C:
			g.tick()
			steps++
			if g.sim.Frozen() {
				g.log.Info("simulation frozen", zap.Int("steps", steps))
				return steps
			}
		}
	}
}

// RunSteps advances n steps back to back, ignoring wall time.
func (g *GameLoop) RunSteps(n int) {
	for i := 0; i < n && !g.sim.Frozen(); i++ {
		g.tick()
	}
}

func (g *GameLoop) tick() {
	dt := 1.0 / float64(g.tickRate)
	g.sim.Step(dt, g.input(g.sim.Now()))
}
