// Package screen implements the title and game screens of Palismanto and the
// manager that switches between them.
//
// The host loop calls Manager.HandleEvent for every input event of a frame,
// then Manager.Update once, then Manager.Draw. A screen asks for a transition
// by returning a Request from HandleEvent; screens never hold a reference to
// the manager.
package screen

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/palismanto/audio"
)

// Screen is a self-contained UI state.
type Screen interface {
	// HandleEvent consumes one input event and returns a transition request,
	// or nil to stay on this screen.
	HandleEvent(ev Event) *Request
	// Update advances the screen by one tick.
	Update()
	// Draw renders the screen. It must not change simulation state.
	Draw(dst *ebiten.Image)
}

// Exiter is implemented by screens that hold resources beyond their
// transition request. The manager calls Exit on the screen it discards.
type Exiter interface {
	Exit()
}

// Base provides no-op implementations of the Screen methods.
type Base struct{}

func (Base) HandleEvent(Event) *Request { return nil }
func (Base) Update()                    {}
func (Base) Draw(*ebiten.Image)         {}

// Factory builds a screen from the shared environment.
type Factory func(env Env) Screen

// Request asks the manager to replace the current screen.
type Request struct {
	Next Factory
	// Delay keeps the current screen active for this long before Next is
	// built. Zero switches immediately.
	Delay time.Duration
}

// EventKind classifies input events.
type EventKind int

const (
	PointerPress EventKind = iota + 1
	PointerRelease
	KeyDown
)

func (k EventKind) String() string {
	switch k {
	case PointerPress:
		return "PointerPress"
	case PointerRelease:
		return "PointerRelease"
	case KeyDown:
		return "KeyDown"
	}
	return "Unknown"
}

// Event is one discrete input event. Pointer events carry a canvas position,
// key events a key code.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Button ebiten.MouseButton
	Key    ebiten.Key
}

// Audio starts tracks by file name with a volume in 0-100.
type Audio interface {
	Loop(name string, volume int) audio.Track
	Once(name string, volume int) audio.Track
}

// Env carries the collaborators every screen is built with.
type Env struct {
	Theme Theme
	Audio Audio
	Rand  *rand.Rand
	// Cursor returns the current pointer position on the canvas.
	Cursor func() (x, y int)
}

func (e Env) cursor() (float64, float64) {
	if e.Cursor == nil {
		return -1, -1
	}
	x, y := e.Cursor()
	return float64(x), float64(y)
}
