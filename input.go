package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dragonfight/ecs/component"
)

// keyboardMouse samples ebiten devices into the per-frame Input snapshot.
type keyboardMouse struct {
	lastX, lastY int
	primed       bool
}

func newKeyboardMouse() *keyboardMouse {
	return &keyboardMouse{}
}

func (k *keyboardMouse) Sample() component.Input {
	x, y := ebiten.CursorPosition()
	var dx, dy float64
	if k.primed {
		dx, dy = float64(x-k.lastX), float64(y-k.lastY)
	}
	k.lastX, k.lastY, k.primed = x, y, true

	return component.Input{
		Forward: ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Back:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),

		DashPressed:        inpututil.IsKeyJustPressed(ebiten.KeyQ),
		JumpPressed:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
		DebugDamagePressed: inpututil.IsKeyJustPressed(ebiten.KeyF),
		RestartPressed:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		QuitPressed:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),

		MouseDX: dx,
		MouseDY: dy,
	}
}
