package screen

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/palismanto/anim"
	"github.com/OpticalFlyer/palismanto/audio"
	"github.com/OpticalFlyer/palismanto/ui"
)

var (
	_ Screen = (*TitleScreen)(nil)
	_ Exiter = (*TitleScreen)(nil)
)

// TitleScreen shows bouncing squares behind the title and a Start button.
type TitleScreen struct {
	env     Env
	squares []anim.Square
	button  *ui.Button
	widgets []ui.Component
	music   audio.Track
	stinger audio.Track
}

// NewTitleScreen builds the title screen and starts its music.
func NewTitleScreen(env Env) *TitleScreen {
	th := env.Theme

	squares := make([]anim.Square, 0, 1+th.ExtraSquare)
	squares = append(squares, th.BaseSquare)
	for i := 0; i < th.ExtraSquare; i++ {
		squares = append(squares, anim.RandomSquare(th.SquareSpec,
			float64(th.Width), float64(th.Height), env.Rand))
	}

	button := ui.NewButton(
		float64(th.Width/2)-th.ButtonW/2, float64(th.Height/2),
		th.ButtonW, th.ButtonH, th.StartLabel,
		ui.ButtonStyle{
			Fill:      Blue,
			Hover:     LightBlue,
			TextColor: White,
			Face:      th.Fonts.Small,
		})

	return &TitleScreen{
		env:     env,
		squares: squares,
		button:  button,
		widgets: []ui.Component{button},
		music:   env.Audio.Loop(th.Tracks.Title, th.Volume),
	}
}

func newTitle(env Env) Screen { return NewTitleScreen(env) }

// Squares returns the live squares. Callers must not modify them.
func (s *TitleScreen) Squares() []anim.Square {
	return s.squares
}

// Button returns the Start button.
func (s *TitleScreen) Button() *ui.Button {
	return s.button
}

func (s *TitleScreen) Update() {
	w, h := float64(s.env.Theme.Width), float64(s.env.Theme.Height)
	for i := range s.squares {
		s.squares[i].Step(w, h, s.env.Rand)
	}
}

// HandleEvent starts the game when the Start button is pressed. The music
// is swapped for the stinger right away; the game screen follows once the
// stinger delay has run out.
func (s *TitleScreen) HandleEvent(ev Event) *Request {
	if ev.Kind != PointerPress || !s.button.Hit(ev.X, ev.Y) {
		return nil
	}
	s.music.Stop()
	if s.stinger != nil {
		s.stinger.Stop()
	}
	s.stinger = s.env.Audio.Once(s.env.Theme.Tracks.Stinger, s.env.Theme.Volume)
	return &Request{Next: newGame, Delay: s.env.Theme.StingerDelay}
}

// Exit stops whatever this screen is still playing.
func (s *TitleScreen) Exit() {
	s.music.Stop()
	if s.stinger != nil {
		s.stinger.Stop()
	}
}

func (s *TitleScreen) Draw(dst *ebiten.Image) {
	th := s.env.Theme
	dst.Fill(White)

	for _, sq := range s.squares {
		vector.DrawFilledRect(dst,
			float32(math.Round(sq.Pos.X)), float32(math.Round(sq.Pos.Y)),
			float32(sq.Size), float32(sq.Size), sq.Color, false)
	}

	if th.Fonts.Large != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(th.Width)/2, float64(th.Height/3))
		op.ColorScale.ScaleWithColor(Black)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(dst, th.Title, th.Fonts.Large, op)
	}

	cx, cy := s.env.cursor()
	for _, w := range s.widgets {
		w.Draw(dst, cx, cy)
	}
}
