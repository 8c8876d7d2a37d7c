package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/palismanto/screen"
)

// pointerButtons are the mouse buttons reported as pointer events.
var pointerButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Palismanto implements ebiten.Game interface.
type Palismanto struct {
	screens       *screen.Manager
	width, height int
	debugMode     bool

	keys    []ebiten.Key
	touches []ebiten.TouchID
	events  []screen.Event
}

func (g *Palismanto) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}

	for _, ev := range g.collectEvents() {
		g.screens.HandleEvent(ev)
	}
	g.screens.Update()
	return nil
}

// collectEvents turns this frame's input into screen events: mouse buttons,
// then touches, then keys.
func (g *Palismanto) collectEvents() []screen.Event {
	g.events = g.events[:0]

	x, y := ebiten.CursorPosition()
	for _, b := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			g.events = append(g.events, screen.Event{
				Kind: screen.PointerPress, X: float64(x), Y: float64(y), Button: b,
			})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			g.events = append(g.events, screen.Event{
				Kind: screen.PointerRelease, X: float64(x), Y: float64(y), Button: b,
			})
		}
	}

	g.events = g.appendTouchEvents(g.events)

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k == ebiten.KeyF1 {
			continue
		}
		g.events = append(g.events, screen.Event{Kind: screen.KeyDown, Key: k})
	}
	return g.events
}

func (g *Palismanto) Draw(dst *ebiten.Image) {
	g.screens.Draw(dst)

	if g.debugMode {
		state := screen.Name(g.screens.Current())
		if g.screens.Transitioning() {
			state += " (transitioning)"
		}
		ebitenutil.DebugPrint(dst, fmt.Sprintf("FPS: %.2f TPS: %.2f\nScreen: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), state))
	}
}

// Layout keeps a fixed canvas and lets ebiten scale it to the window.
func (g *Palismanto) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
