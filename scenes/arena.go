package scenes

import (
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/core"
	"github.com/automoto/duelcore/leveldata"
	"github.com/automoto/duelcore/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const (
	respawnDelay = 1.5
	maxEnemies   = 3
)

// ArenaOptions configure a match.
type ArenaOptions struct {
	Tuning config.Tuning

	// TuningFile is re-read whenever it changes on disk. Empty disables reloading.
	TuningFile string

	ArenaFS   fs.FS
	ArenaPath string

	Records *Records
	Logger  *zap.Logger
	Debug   bool
}

// match tracks the run and answers the simulation's kill and game-over calls.
type match struct {
	sim      *core.Simulation
	kills    int
	respawns []float64
	over     bool
}

func (m *match) EnemyDestroyed(*systems.Enemy) {
	m.kills++
	m.respawns = append(m.respawns, m.sim.Now()+respawnDelay)
}

func (m *match) PlayerDied() {
	m.over = true
}

// ArenaScene runs one match in the window until the player dies.
type ArenaScene struct {
	sc   SceneChanger
	opts ArenaOptions
	log  *zap.Logger

	sim      *core.Simulation
	arena    *leveldata.Arena
	match    *match
	effects  *effects
	controls Controls
	watcher  *config.Watcher
	debug    bool

	once sync.Once
	err  error
}

func NewArenaScene(sc SceneChanger, opts ArenaOptions) *ArenaScene {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &ArenaScene{
		sc:    sc,
		opts:  opts,
		log:   opts.Logger.Named("arena"),
		debug: opts.Debug,
	}
}

func (as *ArenaScene) configure() error {
	arena, err := leveldata.Load(as.opts.ArenaFS, as.opts.ArenaPath)
	if err != nil {
		return err
	}
	as.arena = arena

	as.match = &match{}
	as.effects = &effects{}
	as.sim = core.NewSimulation(core.Options{
		Width:  arena.Width,
		Height: arena.Height,
		Tuning: as.opts.Tuning,
		Services: systems.Services{
			Kills:    as.match,
			GameOver: as.match,
			Feedback: as.effects,
			Logger:   as.opts.Logger,
		},
	})
	as.match.sim = as.sim
	as.sim.LoadArena(arena)

	if as.opts.TuningFile != "" {
		w, err := config.NewWatcher(filepath.Dir(as.opts.TuningFile))
		if err != nil {
			as.log.Warn("tuning hot reload disabled", zap.Error(err))
		} else {
			as.watcher = w
		}
	}

	as.log.Info("match started",
		zap.String("arena", as.opts.ArenaPath),
		zap.Int("enemies", len(arena.EnemySpawns)))
	return nil
}

// Err reports why the match could not start, if it could not.
func (as *ArenaScene) Err() error { return as.err }

func (as *ArenaScene) Update() {
	as.once.Do(func() {
		if as.err = as.configure(); as.err != nil {
			as.log.Error("could not start match", zap.String("arena", as.opts.ArenaPath), zap.Error(as.err))
		}
	})
	if as.err != nil {
		return
	}

	as.controls.Poll()
	if as.controls.Action(ActionPause).JustPressed {
		as.sim.TogglePause()
	}
	if as.controls.Action(ActionDebug).JustPressed {
		as.debug = !as.debug
	}
	as.pollTuning()

	dt := 1.0 / float64(ebiten.TPS())
	as.sim.Step(dt, as.controls.InputData())
	if !as.sim.Paused() {
		as.effects.update(dt)
	}
	as.respawnEnemies()

	if as.match.over {
		as.finish()
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if as.sim == nil {
		return
	}
	drawArena(screen, as.sim, as.debug)
	as.effects.draw(screen)
	drawHUD(screen, as.sim, as.match.kills, as.opts.Records.BestKills())
}

// respawnEnemies brings killed enemies back, a little faster each time.
func (as *ArenaScene) respawnEnemies() {
	if len(as.arena.EnemySpawns) == 0 {
		return
	}
	now := as.sim.Now()
	pending := as.match.respawns[:0]
	for _, at := range as.match.respawns {
		if at > now || len(as.sim.Enemies()) >= maxEnemies {
			pending = append(pending, at)
			continue
		}
		spawn := as.arena.EnemySpawns[as.match.kills%len(as.arena.EnemySpawns)]
		ramp := float64(min(as.match.kills, 10))
		as.sim.SpawnEnemy(spawn.X, spawn.Y, systems.SpawnModifiers{
			SpeedMultiplier:       1 + ramp*0.05,
			DetectRangeMultiplier: 1 + ramp*0.03,
		})
	}
	as.match.respawns = pending
}

func (as *ArenaScene) pollTuning() {
	if as.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-as.watcher.Events:
			if !ok {
				as.watcher = nil
				return
			}
			if filepath.Base(path) != filepath.Base(as.opts.TuningFile) {
				continue
			}
			dir, base := filepath.Split(as.opts.TuningFile)
			if dir == "" {
				dir = "."
			}
			t, err := config.Load(os.DirFS(dir), base)
			if err != nil {
				as.log.Warn("tuning reload rejected", zap.Error(err))
				continue
			}
			as.sim.SetTuning(t)
			as.log.Info("tuning reloaded", zap.String("path", path))
		case err, ok := <-as.watcher.Errors:
			if !ok {
				as.watcher = nil
				return
			}
			as.log.Warn("tuning watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (as *ArenaScene) finish() {
	if as.watcher != nil {
		_ = as.watcher.Close()
		as.watcher = nil
	}

	// Later tuning edits carry into the next match.
	as.opts.Tuning = as.sim.Tuning()

	best := as.opts.Records.Submit(as.match.kills)
	as.log.Info("match over", zap.Int("kills", as.match.kills), zap.Bool("new_best", best))
	as.sc.ChangeScene(NewGameOverScene(as.sc, as.opts, as.match.kills, best))
}
