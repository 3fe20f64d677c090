package scenes

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestArenaSceneMissingArenaFails(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	as := NewArenaScene(nil, ArenaOptions{
		Tuning:    config.Default(),
		ArenaFS:   fstest.MapFS{},
		ArenaPath: "arenas/missing.tmx",
		Logger:    zap.New(core),
	})

	as.Update()

	require.Error(t, as.Err())
	assert.Nil(t, as.sim)
	assert.Equal(t, 1, logs.FilterMessage("could not start match").Len())

	// Later frames stay idle instead of touching the missing simulation.
	as.Update()
	assert.Equal(t, 1, logs.FilterMessage("could not start match").Len())
}

func TestArenaSceneConfigureBuiltin(t *testing.T) {
	as := NewArenaScene(nil, ArenaOptions{
		Tuning:    config.Default(),
		ArenaFS:   leveldata.Builtin,
		ArenaPath: leveldata.DefaultArena,
	})

	require.NoError(t, as.configure())
	assert.NotNil(t, as.sim.Player())
	assert.NoError(t, as.Err())
}
