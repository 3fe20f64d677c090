package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type markKind int

const (
	markSwing markKind = iota
	markParry
	markDeath
)

var markStyles = map[markKind]struct {
	ttl    float64
	radius float32
	color  color.RGBA
}{
	markSwing: {0.12, 14, color.RGBA{255, 255, 255, 255}},
	markParry: {0.3, 28, color.RGBA{255, 255, 120, 255}},
	markDeath: {0.6, 40, color.RGBA{255, 60, 60, 255}},
}

type mark struct {
	kind markKind
	x, y float64
	left float64
}

// effects turns the simulation's feedback calls into short-lived rings.
type effects struct {
	marks []mark
}

func (f *effects) AttackSwing(x, y float64)    { f.add(markSwing, x, y) }
func (f *effects) ParrySucceeded(x, y float64) { f.add(markParry, x, y) }
func (f *effects) PlayerDied(x, y float64)     { f.add(markDeath, x, y) }

func (f *effects) add(kind markKind, x, y float64) {
	f.marks = append(f.marks, mark{kind: kind, x: x, y: y, left: markStyles[kind].ttl})
}

func (f *effects) update(dt float64) {
	live := f.marks[:0]
	for _, m := range f.marks {
		m.left -= dt
		if m.left > 0 {
			live = append(live, m)
		}
	}
	f.marks = live
}

func (f *effects) draw(screen *ebiten.Image) {
	for _, m := range f.marks {
		style := markStyles[m.kind]
		progress := float32(1 - m.left/style.ttl)
		c := style.color
		c.A = uint8(255 * (1 - progress))
		vector.StrokeCircle(screen, float32(m.x), float32(m.y), style.radius*(0.5+progress/2), 2, c, true)
	}
}
