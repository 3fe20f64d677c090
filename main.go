package main

import (
	"context"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/config"
	"github.com/automoto/duelcore/core"
	"github.com/automoto/duelcore/fonts"
	"github.com/automoto/duelcore/leveldata"
	"github.com/automoto/duelcore/scenes"
	"github.com/automoto/duelcore/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const tickRate = 60

type Game struct {
	scene scenes.Scene
	err   error
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	g.scene.Update()
	if f, ok := g.scene.(scenes.Failer); ok && f.Err() != nil {
		g.err = f.Err()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return scenes.ScreenWidth, scenes.ScreenHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overlaid on the default tuning, reloaded on change")
	arenaPath := flag.String("arena", "", "TMX arena on disk (default: built-in duel arena)")
	fontPath := flag.String("font", "", "TrueType font for on-screen text")
	debug := flag.Bool("debug", false, "draw state labels")
	headless := flag.Bool("headless", false, "run without a window, driven by a sparring script")
	duration := flag.Duration("duration", 30*time.Second, "headless run length")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	tuning := config.Default()
	if *tuningPath != "" {
		dir, base := filepath.Split(*tuningPath)
		if dir == "" {
			dir = "."
		}
		if tuning, err = config.Load(os.DirFS(dir), base); err != nil {
			log.Fatal("could not load tuning", zap.String("path", *tuningPath), zap.Error(err))
		}
	}

	var arenaFS fs.FS = leveldata.Builtin
	arenaFile := leveldata.DefaultArena
	if *arenaPath != "" {
		dir, base := filepath.Split(*arenaPath)
		if dir == "" {
			dir = "."
		}
		arenaFS, arenaFile = os.DirFS(dir), base
	}
	arena, err := leveldata.Load(arenaFS, arenaFile)
	if err != nil {
		log.Fatal("could not load arena", zap.String("path", arenaFile), zap.Error(err))
	}

	if *headless {
		runHeadless(log, tuning, arena, *duration)
		return
	}

	fonts.LoadDefaults()
	if *fontPath != "" {
		if err := loadFont(*fontPath); err != nil {
			log.Warn("falling back to the built-in font", zap.Error(err))
		}
	}

	g := &Game{}
	g.scene = scenes.NewArenaScene(g, scenes.ArenaOptions{
		Tuning:     tuning,
		TuningFile: *tuningPath,
		ArenaFS:    arenaFS,
		ArenaPath:  arenaFile,
		Records:    scenes.OpenRecords("duelcore", log),
		Logger:     log,
		Debug:      *debug,
	})

	ebiten.SetWindowSize(scenes.ScreenWidth*2, scenes.ScreenHeight*2)
	ebiten.SetWindowTitle("duelcore")
	ebiten.SetTPS(tickRate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("game exited", zap.Error(err))
	}
	if g.err != nil {
		log.Error("game stopped", zap.Error(g.err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func loadFont(path string) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := fonts.LoadTTF(fonts.HUD, ttf, 12); err != nil {
		return err
	}
	return fonts.LoadTTF(fonts.Title, ttf, 24)
}

type headlessMatch struct {
	log   *zap.Logger
	kills int
}

func (m *headlessMatch) EnemyDestroyed(*systems.Enemy) { m.kills++ }

func (m *headlessMatch) PlayerDied() { m.log.Info("player died", zap.Int("kills", m.kills)) }

func runHeadless(log *zap.Logger, tuning config.Tuning, arena *leveldata.Arena, d time.Duration) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	m := &headlessMatch{log: log}
	sim := core.NewSimulation(core.Options{
		Width:  arena.Width,
		Height: arena.Height,
		Tuning: tuning,
		Services: systems.Services{
			Kills:    m,
			GameOver: m,
			Logger:   log,
		},
	})
	sim.LoadArena(arena)

	steps := core.NewGameLoop(sim, tickRate, sparringScript()).Run(ctx)
	log.Info("headless run finished", zap.Int("steps", steps), zap.Int("kills", m.kills))
}

// sparringScript swings once a second and parries half a second later.
func sparringScript() core.InputSource {
	tick := 0
	return func(float64) components.InputData {
		phase := tick % tickRate
		tick++
		tap := components.ActionState{Pressed: true, JustPressed: true}

		var in components.InputData
		switch phase {
		case 0:
			in.Attack = tap
		case tickRate / 2:
			in.Parry = tap
		}
		return in
	}
}
