package screen

import (
	"math/rand/v2"
	"time"

	"github.com/OpticalFlyer/palismanto/audio"
)

// fakeTrack records whether it was stopped.
type fakeTrack struct {
	name    string
	loop    bool
	stopped int
}

func (t *fakeTrack) Stop() { t.stopped++ }

// fakeAudio records every track it starts.
type fakeAudio struct {
	tracks []*fakeTrack
}

func (a *fakeAudio) Loop(name string, volume int) audio.Track {
	t := &fakeTrack{name: name, loop: true}
	a.tracks = append(a.tracks, t)
	return t
}

func (a *fakeAudio) Once(name string, volume int) audio.Track {
	t := &fakeTrack{name: name}
	a.tracks = append(a.tracks, t)
	return t
}

func (a *fakeAudio) last() *fakeTrack {
	if len(a.tracks) == 0 {
		return nil
	}
	return a.tracks[len(a.tracks)-1]
}

// playing returns the names of tracks that were never stopped.
func (a *fakeAudio) playing() []string {
	var names []string
	for _, t := range a.tracks {
		if t.stopped == 0 {
			names = append(names, t.name)
		}
	}
	return names
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEnv() (Env, *fakeAudio) {
	a := &fakeAudio{}
	return Env{
		Theme:  DefaultTheme(640, 480),
		Audio:  a,
		Rand:   rand.New(rand.NewPCG(7, 11)),
		Cursor: func() (int, int) { return 0, 0 },
	}, a
}

func startClick(s *TitleScreen) Event {
	x, y := s.Button().Bounds().Center()
	return Event{Kind: PointerPress, X: x, Y: y}
}
