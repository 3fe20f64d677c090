package systems

import (
	"go.uber.org/zap"
)

// KillTracker is told once about every enemy that finished dying.
type KillTracker interface {
	EnemyDestroyed(e *Enemy)
}

// GameOverHandler is told once when the player has died.
type GameOverHandler interface {
	PlayerDied()
}

// Feedback receives fire-and-forget presentation cues. Positions are
// the world-space center of the actor involved.
type Feedback interface {
	AttackSwing(x, y float64)
	ParrySucceeded(x, y float64)
	PlayerDied(x, y float64)
}

// Services are the collaborators the combat controllers call out to.
// Every field is optional.
type Services struct {
	Kills    KillTracker
	GameOver GameOverHandler
	Feedback Feedback
	Logger   *zap.Logger

	warned map[string]bool
}

// NewServices fills in a no-op logger when none is given.
func NewServices(s Services) *Services {
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	s.warned = make(map[string]bool)
	return &s
}

// warnMissing logs a missing collaborator the first time it is needed.
func (s *Services) warnMissing(name string) {
	if s.warned[name] {
		return
	}
	s.warned[name] = true
	s.Logger.Warn("collaborator not registered", zap.String("collaborator", name))
}

func (s *Services) attackSwing(x, y float64) {
	if s.Feedback != nil {
		s.Feedback.AttackSwing(x, y)
	}
}

func (s *Services) parrySucceeded(x, y float64) {
	if s.Feedback != nil {
		s.Feedback.ParrySucceeded(x, y)
	}
}

func (s *Services) playerDied(x, y float64) {
	if s.Feedback != nil {
		s.Feedback.PlayerDied(x, y)
	}
}
