package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/palismanto/audio"
	"github.com/OpticalFlyer/palismanto/config"
	"github.com/OpticalFlyer/palismanto/screen"
)

const windowTitle = "Palismanto"

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "palismanto",
		Short:         "Palismanto: The Card Battling Game",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.New()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("bind flags: %w", err)
			}
			if err := config.ReadFile(v, configPath); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file (yaml, toml or json)")
	config.BindFlags(cmd.Flags())
	return cmd
}

func run(cfg config.Config) error {
	fonts, err := screen.LoadFonts()
	if err != nil {
		return err
	}

	theme := screen.DefaultTheme(cfg.Width, cfg.Height)
	theme.Fonts = fonts
	theme.Volume = cfg.Volume
	theme.StingerDelay = cfg.StingerDelay

	sound := audio.Silent()
	if !cfg.Mute {
		sound = audio.New(os.DirFS(cfg.MusicDir))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	env := screen.Env{
		Theme:  theme,
		Audio:  sound,
		Rand:   rand.New(rand.NewPCG(seed, seed>>1|1)),
		Cursor: ebiten.CursorPosition,
	}
	app := &Palismanto{
		screens:   screen.NewManager(env),
		width:     cfg.Width,
		height:    cfg.Height,
		debugMode: cfg.Debug,
	}

	ebiten.SetWindowSize(int(float64(cfg.Width)*cfg.Scale), int(float64(cfg.Height)*cfg.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetVsyncEnabled(true)

	log.Printf("[Config] %dx%d canvas, volume %d, seed %d, music from %q (mute=%v)",
		cfg.Width, cfg.Height, cfg.Volume, seed, cfg.MusicDir, cfg.Mute)

	return ebiten.RunGame(app)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
