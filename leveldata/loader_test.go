package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltinArena(t *testing.T) {
	arena, err := Load(Builtin, DefaultArena)
	require.NoError(t, err)

	assert.Equal(t, 640, arena.Width)
	assert.Equal(t, 368, arena.Height)
	assert.Len(t, arena.Solids, 4)
	assert.Equal(t, Rect{X: 0, Y: 336, W: 640, H: 32}, arena.Solids[0])

	require.NotNil(t, arena.PlayerSpawn)
	assert.Equal(t, 96.0, arena.PlayerSpawn.X)

	require.Len(t, arena.EnemySpawns, 2)
	assert.Less(t, arena.EnemySpawns[0].X, arena.EnemySpawns[1].X, "spawns sorted left to right")
}

func TestLoadRequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="48" width="64" height="16"/>
 </objectgroup>
</map>
`)},
	}

	_, err := Load(fsys, "empty.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), PlayerSpawnGroup)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.tmx")
}
