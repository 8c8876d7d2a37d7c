package screen

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewTitleScreen(t *testing.T) {
	env, a := newTestEnv()
	s := NewTitleScreen(env)

	if got := len(s.Squares()); got != 15 {
		t.Fatalf("got %d squares; want 15", got)
	}
	if s.Squares()[0] != env.Theme.BaseSquare {
		t.Errorf("first square = %+v; want base square", s.Squares()[0])
	}
	if got := a.playing(); len(got) != 1 || got[0] != env.Theme.Tracks.Title {
		t.Errorf("playing = %v; want title track only", got)
	}
	if !a.last().loop {
		t.Error("title music does not loop")
	}

	b := s.Button().Bounds()
	if b.X != 220 || b.Y != 240 || b.Width != 200 || b.Height != 50 {
		t.Errorf("button = %+v; want {220 240 200 50}", b)
	}
}

func TestTitleScreenUpdateKeepsSquaresInside(t *testing.T) {
	env, _ := newTestEnv()
	s := NewTitleScreen(env)
	w, h := float64(env.Theme.Width), float64(env.Theme.Height)

	for tick := 0; tick < 1000; tick++ {
		s.Update()
		for i, sq := range s.Squares() {
			if sq.Pos.X < 0 || sq.Pos.X > w-sq.Size || sq.Pos.Y < 0 || sq.Pos.Y > h-sq.Size {
				t.Fatalf("tick %d square %d out of bounds: %+v", tick, i, sq.Pos)
			}
		}
	}
}

func TestTitleScreenHandleEvent(t *testing.T) {
	tests := []struct {
		name        string
		event       func(s *TitleScreen) Event
		wantRequest bool
	}{
		{
			name:        "Press on Start",
			event:       startClick,
			wantRequest: true,
		},
		{
			name:  "Press outside Start",
			event: func(*TitleScreen) Event { return Event{Kind: PointerPress, X: 10, Y: 10} },
		},
		{
			name:  "Press outside canvas",
			event: func(*TitleScreen) Event { return Event{Kind: PointerPress, X: -40, Y: 2000} },
		},
		{
			name: "Release on Start",
			event: func(s *TitleScreen) Event {
				ev := startClick(s)
				ev.Kind = PointerRelease
				return ev
			},
		},
		{
			name:  "Key press",
			event: func(*TitleScreen) Event { return Event{Kind: KeyDown, Key: ebiten.KeyEnter} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, a := newTestEnv()
			s := NewTitleScreen(env)
			title := a.last()

			req := s.HandleEvent(tt.event(s))

			if (req != nil) != tt.wantRequest {
				t.Fatalf("request = %v; want request %v", req, tt.wantRequest)
			}
			if !tt.wantRequest {
				if title.stopped != 0 || len(a.tracks) != 1 {
					t.Errorf("audio changed without a transition: %+v", a.tracks)
				}
				return
			}

			if title.stopped == 0 {
				t.Error("title music still playing")
			}
			stinger := a.last()
			if stinger.name != env.Theme.Tracks.Stinger || stinger.loop {
				t.Errorf("last track = %+v; want one-shot stinger", stinger)
			}
			if req.Delay != env.Theme.StingerDelay {
				t.Errorf("delay = %v; want %v", req.Delay, env.Theme.StingerDelay)
			}
			if _, ok := req.Next(env).(*GameScreen); !ok {
				t.Error("request does not lead to the game screen")
			}
		})
	}
}

func TestTitleScreenExitStopsStinger(t *testing.T) {
	env, a := newTestEnv()
	s := NewTitleScreen(env)
	s.HandleEvent(startClick(s))
	stinger := a.last()

	s.Exit()

	if stinger.stopped == 0 {
		t.Error("stinger still playing after Exit")
	}
}

func TestTitleScreenRepeatedStartStopsEarlierStinger(t *testing.T) {
	env, a := newTestEnv()
	s := NewTitleScreen(env)

	s.HandleEvent(startClick(s))
	first := a.last()
	s.HandleEvent(startClick(s))
	second := a.last()

	if first == second {
		t.Fatal("second press did not start a new stinger")
	}
	if first.stopped == 0 {
		t.Error("first stinger still playing")
	}
	if second.stopped != 0 {
		t.Error("current stinger stopped")
	}
}
