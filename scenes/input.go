package scenes

import (
	"github.com/automoto/duelcore/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical input action.
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionDash
	ActionParry
	ActionPause
	ActionRestart
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding is the set of keys and gamepad buttons that trigger an action.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

const analogDeadzone = 0.25

var bindings = map[ActionID]InputBinding{
	ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionJump: {
		Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyW, ebiten.KeyUp},
		// A / Cross
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	ActionAttack: {
		Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ},
		// X / Square
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	ActionDash: {
		Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyK},
		// RB / R1
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	ActionParry: {
		Keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyL},
		// B / Circle
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	ActionRestart: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	ActionDebug: {
		Keys: []ebiten.Key{ebiten.KeyF1},
	},
}

// Controls polls keyboard and gamepads once per frame and keeps the previous
// frame around so edges can be derived.
type Controls struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool

	gamepadIDs []ebiten.GamepadID
}

// Poll swaps the buffers and reads this frame's raw input.
func (c *Controls) Poll() {
	c.Previous = c.Current
	c.Current = [ActionCount]bool{}

	c.gamepadIDs = ebiten.AppendGamepadIDs(c.gamepadIDs[:0])

	for actionID, binding := range bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				c.Current[actionID] = true
			}
		}
		for _, gpID := range c.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					c.Current[actionID] = true
				}
			}
		}
	}

	for _, gpID := range c.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -analogDeadzone {
			c.Current[ActionMoveLeft] = true
		}
		if horizontal > analogDeadzone {
			c.Current[ActionMoveRight] = true
		}
	}
}

// Action returns the held and edge state of one action.
func (c *Controls) Action(id ActionID) components.ActionState {
	curr := c.Current[id]
	prev := c.Previous[id]
	return components.ActionState{
		Pressed:     curr,
		JustPressed: curr && !prev,
	}
}

// InputData converts the polled actions into simulation intent.
func (c *Controls) InputData() components.InputData {
	var moveX float64
	if c.Current[ActionMoveLeft] {
		moveX--
	}
	if c.Current[ActionMoveRight] {
		moveX++
	}
	return components.InputData{
		MoveX:  moveX,
		Jump:   c.Action(ActionJump),
		Attack: c.Action(ActionAttack),
		Dash:   c.Action(ActionDash),
		Parry:  c.Action(ActionParry),
	}
}
