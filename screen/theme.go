package screen

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/OpticalFlyer/palismanto/anim"
)

// Palette
var (
	White     = color.RGBA{255, 255, 255, 255}
	Black     = color.RGBA{0, 0, 0, 255}
	Blue      = color.RGBA{70, 130, 180, 255}
	LightBlue = color.RGBA{100, 160, 210, 255}
	Green     = color.RGBA{50, 180, 100, 255}
)

// Fonts holds the three text sizes used by the screens. A nil face skips
// the text it would draw.
type Fonts struct {
	Large     text.Face
	Small     text.Face
	VerySmall text.Face
}

// LoadFonts builds the faces from the embedded Go fonts.
func LoadFonts() (Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return Fonts{}, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return Fonts{}, fmt.Errorf("load bold font: %w", err)
	}
	return Fonts{
		Large:     &text.GoTextFace{Source: bold, Size: 30},
		Small:     &text.GoTextFace{Source: regular, Size: 24},
		VerySmall: &text.GoTextFace{Source: regular, Size: 17},
	}, nil
}

// Tracks names the music files, relative to the music directory.
type Tracks struct {
	Title   string
	Stinger string
	Game    string
}

// Theme is the fixed configuration every screen is built with. Screens copy
// it and never modify it.
type Theme struct {
	Width, Height int

	Fonts  Fonts
	Tracks Tracks
	Volume int // 0-100

	// StingerDelay is how long the stinger plays before the game screen.
	StingerDelay time.Duration

	// Title screen
	Title       string
	StartLabel  string
	ButtonW     float64
	ButtonH     float64
	BaseSquare  anim.Square
	ExtraSquare int
	SquareSpec  anim.SquareSpec

	// Game screen
	Heading      string
	Instructions []string
	BarCount     int
	BarMaxHeight float64
	BarMargin    int     // gap between the bars and the bottom edge
	TimeStep     float64 // animation time added per tick
}

// DefaultTheme returns the stock Palismanto theme for a canvas size.
// Fonts are left empty; fill them from LoadFonts.
func DefaultTheme(width, height int) Theme {
	return Theme{
		Width:  width,
		Height: height,
		Tracks: Tracks{
			Title:   "royalty_free_music/Palismanto_Title_Card.mp3",
			Stinger: "royalty_free_music/Palismanto_Stinger.mp3",
			Game:    "royalty_free_music/Palismanto_Menu.mp3",
		},
		Volume:       80,
		StingerDelay: 2200 * time.Millisecond,

		Title:      "Palismanto: The Card Battling Game",
		StartLabel: "Start Game",
		ButtonW:    200,
		ButtonH:    50,
		BaseSquare: anim.Square{
			Size:  40,
			Pos:   anim.Vec{X: 50, Y: 50},
			Vel:   anim.Vec{X: 2.4, Y: 1.8},
			Color: color.RGBA{200, 60, 60, 255},
		},
		ExtraSquare: 14,
		SquareSpec: anim.SquareSpec{
			MinSize: 24, MaxSize: 68,
			MinVX: 1.2, MaxVX: 3.0,
			MinVY: 1.0, MaxVY: 2.8,
		},

		Heading: "Welcome To A New Adventure!",
		Instructions: []string{
			"Make a selection:",
			"Press ENTER to start!",
			"Press SPACE to adjust settings?",
			"Or press ESC to return...",
		},
		BarCount:     8,
		BarMaxHeight: 120,
		BarMargin:    12,
		TimeStep:     0.06,
	}
}
