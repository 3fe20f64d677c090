package timing

// Routine is an ordered sequence of actions and waits. Build one with
// NewRoutine and run it on a Runner.
type Routine struct {
	name  string
	steps []step
}

type step struct {
	wait float64
	do   func()
}

func NewRoutine(name string) *Routine {
	return &Routine{name: name}
}

// Do appends an action that runs as soon as the routine reaches it.
func (r *Routine) Do(fn func()) *Routine {
	r.steps = append(r.steps, step{do: fn})
	return r
}

// Wait appends a pause of seconds of simulation time.
func (r *Routine) Wait(seconds float64) *Routine {
	if seconds < 0 {
		seconds = 0
	}
	r.steps = append(r.steps, step{wait: seconds})
	return r
}

func (r *Routine) Name() string {
	return r.name
}

// Runner drives at most one Routine at a time. Starting a routine replaces
// whatever was running; a replaced or cancelled routine never runs another step.
type Runner struct {
	name     string
	steps    []step
	pc       int
	waitLeft float64
	waiting  bool
	running  bool
	gen      uint64
}

// Start cancels the current routine and runs r until its first unfinished wait.
func (rn *Runner) Start(r *Routine) {
	rn.gen++
	rn.name = r.name
	rn.steps = r.steps
	rn.pc = 0
	rn.waitLeft = 0
	rn.waiting = false
	rn.running = true
	rn.advance(0)
}

// Cancel stops the running routine, if any.
func (rn *Runner) Cancel() {
	rn.gen++
	rn.running = false
	rn.steps = nil
	rn.name = ""
}

// Tick advances the running routine by dt seconds. Time left over after a
// wait finishes carries into the following waits of the same tick.
func (rn *Runner) Tick(dt float64) {
	if !rn.running {
		return
	}
	rn.advance(dt)
}

func (rn *Runner) Running() bool {
	return rn.running
}

// Name returns the name of the running routine or "" when idle.
func (rn *Runner) Name() string {
	if !rn.running {
		return ""
	}
	return rn.name
}

func (rn *Runner) advance(budget float64) {
	gen := rn.gen
	for rn.pc < len(rn.steps) {
		s := rn.steps[rn.pc]
		if s.do != nil {
			rn.pc++
			s.do()
			if rn.gen != gen {
				return
			}
			continue
		}

		if !rn.waiting {
			rn.waitLeft = s.wait
			rn.waiting = true
		}
		if budget < rn.waitLeft {
			rn.waitLeft -= budget
			return
		}
		budget -= rn.waitLeft
		rn.waitLeft = 0
		rn.waiting = false
		rn.pc++
	}
	rn.running = false
	rn.steps = nil
}
