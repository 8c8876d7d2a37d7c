package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/palismanto/anim"
	"github.com/OpticalFlyer/palismanto/audio"
)

var (
	_ Screen = (*GameScreen)(nil)
	_ Exiter = (*GameScreen)(nil)
)

// GameScreen shows the welcome text above a row of animated bars.
type GameScreen struct {
	env    Env
	bars   []anim.Bar
	layout anim.BarLayout
	time   float64
	music  audio.Track
}

// NewGameScreen builds the game screen and starts its music.
func NewGameScreen(env Env) *GameScreen {
	th := env.Theme
	return &GameScreen{
		env:    env,
		bars:   anim.NewBars(th.BarCount),
		layout: anim.LayoutBars(th.Width, th.BarCount),
		music:  env.Audio.Loop(th.Tracks.Game, th.Volume),
	}
}

func newGame(env Env) Screen { return NewGameScreen(env) }

// Time returns the animation clock.
func (s *GameScreen) Time() float64 {
	return s.time
}

// BarHeight returns the current height of bar i, or 0 when there is no
// such bar.
func (s *GameScreen) BarHeight(i int) float64 {
	if i < 0 || i >= len(s.bars) {
		return 0
	}
	return s.bars[i].Height(s.time, s.env.Theme.BarMaxHeight)
}

func (s *GameScreen) Update() {
	s.time += s.env.Theme.TimeStep
}

// HandleEvent returns to a fresh title screen on Escape. The music is
// stopped before the request is handed back.
func (s *GameScreen) HandleEvent(ev Event) *Request {
	if ev.Kind != KeyDown || ev.Key != ebiten.KeyEscape {
		return nil
	}
	s.music.Stop()
	return &Request{Next: newTitle}
}

func (s *GameScreen) Exit() {
	s.music.Stop()
}

func (s *GameScreen) Draw(dst *ebiten.Image) {
	th := s.env.Theme
	dst.Fill(Green)

	top := float64(th.Height / 6)
	drawCentered(dst, th.Heading, th.Fonts.Large, float64(th.Width)/2, top)
	for i, line := range th.Instructions {
		face := th.Fonts.VerySmall
		if i == 0 {
			face = th.Fonts.Small
		}
		drawCentered(dst, line, face, float64(th.Width)/2, top+50*float64(i+1))
	}

	for i, bar := range s.bars {
		h := int(bar.Height(s.time, th.BarMaxHeight))
		x := s.layout.X(i)
		y := th.Height - th.BarMargin - h
		vector.DrawFilledRect(dst, float32(x), float32(y),
			float32(s.layout.Width), float32(h), bar.Color, false)
	}
}

func drawCentered(dst *ebiten.Image, str string, face text.Face, cx, y float64) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(White)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, str, face, op)
}
