package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/palismanto/screen"
)

// appendTouchEvents reports new touches as pointer presses and lifted
// touches as pointer releases, so a tap works like a click.
func (g *Palismanto) appendTouchEvents(events []screen.Event) []screen.Event {
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		events = append(events, touchEvent(screen.PointerPress, x, y))
	}

	g.touches = inpututil.AppendJustReleasedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		events = append(events, touchEvent(screen.PointerRelease, x, y))
	}
	return events
}

func touchEvent(kind screen.EventKind, x, y int) screen.Event {
	return screen.Event{
		Kind:   kind,
		X:      float64(x),
		Y:      float64(y),
		Button: ebiten.MouseButtonLeft,
	}
}
