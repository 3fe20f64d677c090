package systems

import (
	"testing"

	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testDT = 1.0 / 60

// floorY is the top of the test floor. Actors spawned at floorY-32 stand on it.
const floorY = 320

type killRecorder struct{ destroyed []*Enemy }

func (r *killRecorder) EnemyDestroyed(e *Enemy) { r.destroyed = append(r.destroyed, e) }

type gameOverRecorder struct{ calls int }

func (r *gameOverRecorder) PlayerDied() { r.calls++ }

type feedbackRecorder struct {
	swings  int
	parries int
	deaths  int
}

func (r *feedbackRecorder) AttackSwing(x, y float64)    { r.swings++ }
func (r *feedbackRecorder) ParrySucceeded(x, y float64) { r.parries++ }
func (r *feedbackRecorder) PlayerDied(x, y float64)     { r.deaths++ }

type harness struct {
	t        *testing.T
	ecs      *ecs.ECS
	tuning   config.Tuning
	svc      *Services
	kills    *killRecorder
	gameOver *gameOverRecorder
	feedback *feedbackRecorder
	logs     *observer.ObservedLogs
}

type harnessOption func(*Services)

func withoutGameOver(s *Services) { s.GameOver = nil }
func withoutKills(s *Services)    { s.Kills = nil }

// newHarness builds a 640x360 world with a floor and every combat system
// registered in simulation order.
func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	h := &harness{
		t:        t,
		tuning:   config.Default(),
		kills:    &killRecorder{},
		gameOver: &gameOverRecorder{},
		feedback: &feedbackRecorder{},
		logs:     logs,
	}
	s := Services{
		Kills:    h.kills,
		GameOver: h.gameOver,
		Feedback: h.feedback,
		Logger:   zap.New(core),
	}
	for _, opt := range opts {
		opt(&s)
	}
	h.svc = NewServices(s)

	w := ecs.NewECS(donburi.NewWorld())
	w.AddSystem(WithPauseCheck(UpdateClock))
	w.AddSystem(WithPauseCheck(UpdatePlayerLogic))
	w.AddSystem(WithPauseCheck(UpdateEnemyLogic))
	w.AddSystem(WithPauseCheck(UpdateTints))
	w.AddSystem(WithPauseCheck(UpdatePlayerPhysics))
	w.AddSystem(WithPauseCheck(UpdateEnemyPhysics))
	w.AddSystem(WithPauseCheck(UpdatePhysics))
	w.AddSystem(WithPauseCheck(UpdateHitboxes))
	w.AddSystem(WithPauseCheck(UpdateDeaths))
	h.ecs = w

	factory.CreateSpace(w, 640, 360, 16, 16)
	factory.CreateWall(w, 0, floorY, 640, 40)
	return h
}

func (h *harness) player(x float64) *Player {
	return SpawnPlayer(h.ecs, x, floorY-h.tuning.Player.Height, h.tuning, h.svc)
}

func (h *harness) enemy(x float64, mods SpawnModifiers) *Enemy {
	return SpawnEnemy(h.ecs, x, floorY-h.tuning.Enemy.Height, h.tuning, h.svc, mods)
}

func (h *harness) step(in components.InputData) {
	*GetOrCreateInput(h.ecs) = in
	GetOrCreateClock(h.ecs).Delta = testDT
	h.ecs.Update()
}

func (h *harness) idle(n int) {
	for i := 0; i < n; i++ {
		h.step(components.InputData{})
	}
}

// stepUntil steps with no input until cond holds, failing after limit steps.
func (h *harness) stepUntil(limit int, cond func() bool) int {
	h.t.Helper()
	for i := 1; i <= limit; i++ {
		h.step(components.InputData{})
		if cond() {
			return i
		}
	}
	h.t.Fatalf("condition not met after %d steps", limit)
	return limit
}

func (h *harness) now() float64 { return GetOrCreateClock(h.ecs).Now }

func press() components.ActionState {
	return components.ActionState{Pressed: true, JustPressed: true}
}

func countEnemies(w *ecs.ECS) int {
	return len(enemies(w))
}
