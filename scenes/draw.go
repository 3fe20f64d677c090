package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/duelcore/components"
	"github.com/automoto/duelcore/core"
	"github.com/automoto/duelcore/fonts"
	"github.com/automoto/duelcore/systems"
	"github.com/automoto/duelcore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
)

var (
	colorSolid      = color.RGBA{100, 100, 100, 255}
	colorPlayer     = color.RGBA{60, 120, 255, 255}
	colorInvuln     = color.RGBA{220, 220, 255, 255}
	colorParry      = color.RGBA{255, 255, 120, 255}
	colorEnemy      = color.RGBA{200, 40, 40, 255}
	colorTelegraph  = color.RGBA{255, 200, 0, 255}
	colorStun       = color.RGBA{80, 160, 255, 255}
	colorDead       = color.RGBA{70, 70, 70, 255}
	colorHitbox     = color.RGBA{255, 255, 0, 255}
	colorEnemyHit   = color.RGBA{255, 120, 0, 255}
	colorText       = color.RGBA{230, 230, 230, 255}
	colorPauseShade = color.RGBA{0, 0, 0, 160}
)

func drawArena(screen *ebiten.Image, sim *core.Simulation, debug bool) {
	if spaceEntry, ok := components.Space.First(sim.ECS().World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			if obj.HasTags(tags.ResolvSolid) {
				fillObject(screen, obj, colorSolid)
			}
		}
	}

	for _, e := range sim.Enemies() {
		drawEnemy(screen, e, debug)
	}
	if p := sim.Player(); p != nil {
		drawPlayer(screen, p, debug)
	}
	if debug {
		text.Draw(screen, fmt.Sprintf("frame %d", sim.Frame()), fonts.HUD.Get(), screen.Bounds().Dx()-112, 24, colorText)
	}
}

func drawPlayer(screen *ebiten.Image, p *systems.Player, debug bool) {
	obj := components.Object.Get(p.Entry()).Object
	c := colorPlayer
	switch {
	case p.IsDead():
		c = colorDead
	case p.IsParrying():
		c = colorParry
	case p.IsInvulnerable():
		c = colorInvuln
	}
	fillObject(screen, obj, c)
	drawFacing(screen, obj, p.Facing())

	if p.HitboxEnabled() {
		strokeObject(screen, p.Hitbox(), colorHitbox)
	}
	if debug {
		label(screen, obj, fmt.Sprintf("%s %s", p.State(), p.AnimationName()))
	}
}

func drawEnemy(screen *ebiten.Image, e *systems.Enemy, debug bool) {
	obj := components.Object.Get(e.Entry()).Object
	fillObject(screen, obj, enemyColor(e))
	drawFacing(screen, obj, e.Facing())

	if e.HitboxEnabled() {
		strokeObject(screen, e.Hitbox(), colorEnemyHit)
	}
	if debug {
		label(screen, obj, fmt.Sprintf("%s hp%d", e.State(), e.Health()))
	}
}

func enemyColor(e *systems.Enemy) color.RGBA {
	if e.IsDead() {
		return colorDead
	}
	kind, v := e.Tint()
	switch kind {
	case components.TintTelegraph:
		return lerpColor(colorEnemy, colorTelegraph, v)
	case components.TintStun:
		return lerpColor(colorEnemy, colorStun, v)
	}
	return colorEnemy
}

func lerpColor(a, b color.RGBA, t float32) color.RGBA {
	t = max(0, min(1, t))
	mix := func(x, y uint8) uint8 { return uint8(float32(x) + (float32(y)-float32(x))*t) }
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

func fillObject(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c, false)
}

func strokeObject(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	if obj == nil {
		return
	}
	vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
}

// drawFacing marks the side an actor faces with a thin bar.
func drawFacing(screen *ebiten.Image, obj *resolv.Object, facing float64) {
	x := obj.X + obj.W - 3
	if facing < 0 {
		x = obj.X
	}
	vector.FillRect(screen, float32(x), float32(obj.Y+6), 3, 4, color.White, false)
}

func label(screen *ebiten.Image, obj *resolv.Object, s string) {
	text.Draw(screen, s, fonts.HUD.Get(), int(obj.X)-8, int(obj.Y)-4, colorText)
}

func drawHUD(screen *ebiten.Image, sim *core.Simulation, kills, best int) {
	face := fonts.HUD.Get()
	text.Draw(screen, fmt.Sprintf("KILLS %d  BEST %d", kills, max(kills, best)), face, 24, 24, colorText)

	if p := sim.Player(); p != nil && !p.IsDead() {
		data := components.Player.Get(p.Entry())
		now := sim.Now()
		text.Draw(screen, cooldownLabel("DASH", data.DashCooldown.Remaining(now)), face, 24, 40, colorText)
		text.Draw(screen, cooldownLabel("PARRY", data.ParryCooldown.Remaining(now)), face, 24, 56, colorText)
		if p.Combo() > 0 {
			text.Draw(screen, fmt.Sprintf("COMBO %d", p.Combo()), face, 24, 72, colorText)
		}
	}

	if sim.Paused() {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.FillRect(screen, 0, 0, float32(w), float32(h), colorPauseShade, false)
		text.Draw(screen, "PAUSED", fonts.Title.Get(), w/2-24, h/2, colorText)
	}
}

func cooldownLabel(name string, remaining float64) string {
	if remaining <= 0 {
		return name + " ready"
	}
	return fmt.Sprintf("%s %.1fs", name, remaining)
}
