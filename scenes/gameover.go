package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/duelcore/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// GameOverScene shows the result of a match until the player restarts.
type GameOverScene struct {
	sc       SceneChanger
	opts     ArenaOptions
	kills    int
	newBest  bool
	controls Controls
	ready    bool
}

func NewGameOverScene(sc SceneChanger, opts ArenaOptions, kills int, newBest bool) *GameOverScene {
	return &GameOverScene{sc: sc, opts: opts, kills: kills, newBest: newBest}
}

func (gs *GameOverScene) Update() {
	gs.controls.Poll()

	// Buttons still held from the final swing should not skip the screen.
	if !gs.ready {
		gs.ready = !gs.controls.Action(ActionAttack).Pressed && !gs.controls.Action(ActionRestart).Pressed
		return
	}

	if gs.controls.Action(ActionRestart).JustPressed || gs.controls.Action(ActionAttack).JustPressed {
		gs.sc.ChangeScene(NewArenaScene(gs.sc, gs.opts))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	cx, cy := ScreenWidth/2, ScreenHeight/2
	text.Draw(screen, "GAME OVER", fonts.Title.Get(), cx-32, cy-32, colorText)
	text.Draw(screen, fmt.Sprintf("KILLS %d", gs.kills), fonts.HUD.Get(), cx-28, cy, colorText)

	best := fmt.Sprintf("BEST %d", max(gs.kills, gs.opts.Records.BestKills()))
	if gs.newBest {
		best = "NEW BEST!"
	}
	text.Draw(screen, best, fonts.HUD.Get(), cx-28, cy+16, colorText)
	text.Draw(screen, "ENTER or Z to fight again", fonts.HUD.Get(), cx-88, cy+48, colorText)
}
