package leveldata

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Object group and layer names read from TMX files.
const (
	SolidsGroup      = "Solids"
	PlayerSpawnGroup = "PlayerSpawn"
	EnemySpawnGroup  = "EnemySpawn"
)

//go:embed arenas/*.tmx
var builtin embed.FS

// Builtin holds the arenas shipped with the module, under arenas/.
var Builtin fs.FS = builtin

// DefaultArena is the path of the stock arena inside Builtin.
const DefaultArena = "arenas/duel.tmx"

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	// Tile layer solids, one rect per tile
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidsGroup {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				arena.Solids = append(arena.Solids, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SolidsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Solids = append(arena.Solids, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case PlayerSpawnGroup:
			if len(og.Objects) > 0 && arena.PlayerSpawn == nil {
				o := og.Objects[0]
				arena.PlayerSpawn = &Point{X: o.X, Y: o.Y, Name: o.Name}
			}
		case EnemySpawnGroup:
			for _, o := range og.Objects {
				arena.EnemySpawns = append(arena.EnemySpawns, Point{X: o.X, Y: o.Y, Name: o.Name})
			}
		}
	}

	if arena.PlayerSpawn == nil {
		return nil, fmt.Errorf("leveldata: %s: no %s object", tmxPath, PlayerSpawnGroup)
	}

	// Sort spawns left-to-right for a stable spawn order
	sort.Slice(arena.EnemySpawns, func(i, j int) bool {
		return arena.EnemySpawns[i].X < arena.EnemySpawns[j].X
	})

	return arena, nil
}
