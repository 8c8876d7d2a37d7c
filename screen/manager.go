package screen

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// pending is a transition waiting for its deadline.
type pending struct {
	next     Factory
	deadline time.Time
}

// Manager owns the active screen and forwards the frame calls to it.
//
// Besides the active screen the manager may be transitioning: a screen has
// asked to be replaced after a delay. While transitioning the old screen is
// still updated and drawn but receives no events.
type Manager struct {
	env     Env
	current Screen
	pending *pending
	now     func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now as the source of transition deadlines.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a manager showing the title screen.
func NewManager(env Env, opts ...Option) *Manager {
	return NewManagerWith(env, newTitle, opts...)
}

// NewManagerWith creates a manager showing the screen built by initial.
func NewManagerWith(env Env, initial Factory, opts ...Option) *Manager {
	m := &Manager{
		env: env,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.current = initial(env)
	return m
}

// Current returns the active screen.
func (m *Manager) Current() Screen {
	return m.current
}

// Transitioning reports whether a delayed transition is waiting.
func (m *Manager) Transitioning() bool {
	return m.pending != nil
}

// GoTo replaces the active screen unconditionally. The old screen is
// discarded, its Exit called, and any pending transition is dropped.
// Passing the active screen exits it as well.
func (m *Manager) GoTo(s Screen) {
	old := m.current
	m.current = s
	m.pending = nil
	if ex, ok := old.(Exiter); ok {
		ex.Exit()
	}
	log.Printf("[Screen] %s -> %s", Name(old), Name(s))
}

// HandleEvent forwards ev to the active screen and acts on its request.
// Events that arrive while transitioning are dropped.
func (m *Manager) HandleEvent(ev Event) {
	if m.pending != nil {
		return
	}
	req := m.current.HandleEvent(ev)
	if req == nil || req.Next == nil {
		return
	}
	if req.Delay <= 0 {
		m.GoTo(req.Next(m.env))
		return
	}
	m.pending = &pending{
		next:     req.Next,
		deadline: m.now().Add(req.Delay),
	}
}

// Update completes a due transition, then updates the active screen.
func (m *Manager) Update() {
	if p := m.pending; p != nil && !m.now().Before(p.deadline) {
		m.GoTo(p.next(m.env))
	}
	m.current.Update()
}

// Draw forwards to the active screen.
func (m *Manager) Draw(dst *ebiten.Image) {
	m.current.Draw(dst)
}

// Name returns a short label for a screen, for logs and the debug overlay.
func Name(s Screen) string {
	switch s.(type) {
	case nil:
		return "none"
	case *TitleScreen:
		return "title"
	case *GameScreen:
		return "game"
	}
	return fmt.Sprintf("%T", s)
}
