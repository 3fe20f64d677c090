// Package fsm provides the finite-state machine every combat actor runs.
//
// A Machine owns exactly one active State. Transitions are synchronous:
// the old state's Exit runs, the new state becomes current, then its Enter
// runs. A state may change state again from inside Enter; the innermost
// change wins.
package fsm

// State is one behavior of an actor. C is the context passed to every hook,
// usually the actor controller itself.
type State[C any] interface {
	Enter(ctx C)
	Exit(ctx C)
	LogicUpdate(ctx C)
	PhysicsUpdate(ctx C)
}

type Machine[C any] struct {
	ctx         C
	current     State[C]
	transitions int
	onChange    func(from, to State[C])
}

func New[C any](ctx C) *Machine[C] {
	return &Machine[C]{ctx: ctx}
}

// OnChange registers a hook called after the new state is assigned and
// before its Enter runs.
func (m *Machine[C]) OnChange(fn func(from, to State[C])) {
	m.onChange = fn
}

// Initialize sets the starting state and enters it without calling Exit.
func (m *Machine[C]) Initialize(s State[C]) {
	m.current = s
	m.transitions = 0
	if m.onChange != nil {
		m.onChange(nil, s)
	}
	s.Enter(m.ctx)
}

// ChangeState exits the current state and enters s. Changing to the state
// that is already current runs a full Exit/Enter cycle.
func (m *Machine[C]) ChangeState(s State[C]) {
	prev := m.current
	if prev != nil {
		prev.Exit(m.ctx)
	}
	m.current = s
	m.transitions++
	if m.onChange != nil {
		m.onChange(prev, s)
	}
	s.Enter(m.ctx)
}

func (m *Machine[C]) Current() State[C] {
	return m.current
}

// Transitions counts ChangeState calls since Initialize.
func (m *Machine[C]) Transitions() int {
	return m.transitions
}

func (m *Machine[C]) LogicUpdate() {
	if m.current != nil {
		m.current.LogicUpdate(m.ctx)
	}
}

func (m *Machine[C]) PhysicsUpdate() {
	if m.current != nil {
		m.current.PhysicsUpdate(m.ctx)
	}
}
