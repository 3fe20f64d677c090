// Package scenes is the windowed shell around the combat simulation:
// input polling, debug drawing and the match loop.
package scenes

import "github.com/hajimehoshi/ebiten/v2"

const (
	ScreenWidth  = 640
	ScreenHeight = 368
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Failer is implemented by scenes that can fail to start. A non-nil Err
// ends the game.
type Failer interface {
	Err() error
}

// SceneChanger swaps the active scene.
type SceneChanger interface {
	ChangeScene(scene Scene)
}
