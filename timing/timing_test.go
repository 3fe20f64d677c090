package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldown(t *testing.T) {
	var c Cooldown
	assert.True(t, c.Ready(0), "zero value is ready")

	c.Arm(1.0, 0.5)
	assert.False(t, c.Ready(1.0))
	assert.False(t, c.Ready(1.49))
	assert.True(t, c.Ready(1.5))
	assert.InDelta(t, 0.25, c.Remaining(1.25), 1e-9)
	assert.Zero(t, c.Remaining(2))
}

func TestCooldownNeverReadyBeforeDeadline(t *testing.T) {
	var c Cooldown
	c.Arm(2, 0.75)
	for now := 2.0; now < 2.75; now += 0.05 {
		require.False(t, c.Ready(now), "ready at %.2f", now)
	}
	assert.True(t, c.Ready(2.75))
}

func TestRunnerRunsUntilFirstWait(t *testing.T) {
	var log []string
	r := NewRoutine("seq").
		Do(func() { log = append(log, "a") }).
		Wait(0.5).
		Do(func() { log = append(log, "b") })

	var rn Runner
	rn.Start(r)
	assert.Equal(t, []string{"a"}, log)
	assert.True(t, rn.Running())
	assert.Equal(t, "seq", rn.Name())

	rn.Tick(0.3)
	assert.Equal(t, []string{"a"}, log)

	rn.Tick(0.3)
	assert.Equal(t, []string{"a", "b"}, log)
	assert.False(t, rn.Running())
	assert.Empty(t, rn.Name())
}

func TestRunnerCarriesSurplusTime(t *testing.T) {
	count := 0
	r := NewRoutine("two-waits").
		Wait(0.1).
		Do(func() { count++ }).
		Wait(0.1).
		Do(func() { count++ })

	var rn Runner
	rn.Start(r)
	rn.Tick(0.25)
	assert.Equal(t, 2, count)
	assert.False(t, rn.Running())
}

func TestRunnerCancel(t *testing.T) {
	fired := false
	var rn Runner
	rn.Start(NewRoutine("x").Wait(0.2).Do(func() { fired = true }))
	rn.Cancel()
	rn.Tick(1)
	assert.False(t, fired)
	assert.False(t, rn.Running())
}

func TestRunnerRestartFromInsideStep(t *testing.T) {
	var rn Runner
	var log []string

	second := NewRoutine("second").Do(func() { log = append(log, "second") })
	first := NewRoutine("first").
		Do(func() {
			log = append(log, "first")
			rn.Start(second)
		}).
		Do(func() { log = append(log, "unreachable") })

	rn.Start(first)
	assert.Equal(t, []string{"first", "second"}, log)
	assert.False(t, rn.Running())
}

func TestRunnerCancelFromInsideStep(t *testing.T) {
	var rn Runner
	after := false
	rn.Start(NewRoutine("self-cancel").
		Do(func() { rn.Cancel() }).
		Do(func() { after = true }))
	assert.False(t, after)
	assert.False(t, rn.Running())
}

func TestRoutineNegativeWaitClamped(t *testing.T) {
	done := false
	var rn Runner
	rn.Start(NewRoutine("neg").Wait(-1).Do(func() { done = true }))
	assert.True(t, done)
}
