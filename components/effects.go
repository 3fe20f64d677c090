package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type TintKind int

const (
	TintNone TintKind = iota
	TintTelegraph
	TintStun
)

// TintData is a color overlay a renderer can apply to an actor.
// Value runs 0..1 and is driven by Tween when one is set.
type TintData struct {
	Kind  TintKind
	Value float32
	Tween *gween.Tween
}

var Tint = donburi.NewComponentType[TintData]()
