// Package config loads Palismanto settings from flags, environment variables
// (PALISMANTO_*) and an optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. PALISMANTO_VOLUME.
const EnvPrefix = "PALISMANTO"

// Keys
const (
	KeyWidth        = "width"
	KeyHeight       = "height"
	KeyScale        = "scale"
	KeyTPS          = "tps"
	KeyVolume       = "volume"
	KeyMusicDir     = "music-dir"
	KeyMute         = "mute"
	KeySeed         = "seed"
	KeyStingerDelay = "stinger-delay"
	KeyDebug        = "debug"
)

// Config holds the resolved settings.
type Config struct {
	Width        int
	Height       int
	Scale        float64 // window size relative to the canvas
	TPS          int
	Volume       int // 0-100
	MusicDir     string
	Mute         bool
	Seed         uint64 // 0 picks a random seed
	StingerDelay time.Duration
	Debug        bool
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		Width:        640,
		Height:       480,
		Scale:        1,
		TPS:          60,
		Volume:       80,
		MusicDir:     ".",
		StingerDelay: 2200 * time.Millisecond,
	}
}

// BindFlags registers a flag for every setting.
func BindFlags(flags *pflag.FlagSet) {
	d := Default()
	flags.Int(KeyWidth, d.Width, "canvas width in pixels")
	flags.Int(KeyHeight, d.Height, "canvas height in pixels")
	flags.Float64(KeyScale, d.Scale, "window scale factor")
	flags.Int(KeyTPS, d.TPS, "ticks per second")
	flags.Int(KeyVolume, d.Volume, "music volume (0-100)")
	flags.String(KeyMusicDir, d.MusicDir, "directory containing royalty_free_music/")
	flags.Bool(KeyMute, d.Mute, "disable all audio")
	flags.Uint64(KeySeed, d.Seed, "random seed (0 = random)")
	flags.Duration(KeyStingerDelay, d.StingerDelay, "time the stinger plays before the game screen")
	flags.Bool(KeyDebug, d.Debug, "start with the debug overlay shown")
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyHeight, d.Height)
	v.SetDefault(KeyScale, d.Scale)
	v.SetDefault(KeyTPS, d.TPS)
	v.SetDefault(KeyVolume, d.Volume)
	v.SetDefault(KeyMusicDir, d.MusicDir)
	v.SetDefault(KeyMute, d.Mute)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyStingerDelay, d.StingerDelay)
	v.SetDefault(KeyDebug, d.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges a config file into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load resolves and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Width:        v.GetInt(KeyWidth),
		Height:       v.GetInt(KeyHeight),
		Scale:        v.GetFloat64(KeyScale),
		TPS:          v.GetInt(KeyTPS),
		Volume:       v.GetInt(KeyVolume),
		MusicDir:     v.GetString(KeyMusicDir),
		Mute:         v.GetBool(KeyMute),
		Seed:         v.GetUint64(KeySeed),
		StingerDelay: v.GetDuration(KeyStingerDelay),
		Debug:        v.GetBool(KeyDebug),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas %dx%d must be positive", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %v must be positive", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.Volume < 0 || c.Volume > 100 {
		errs = append(errs, fmt.Errorf("volume %d outside 0-100", c.Volume))
	}
	if c.StingerDelay < 0 {
		errs = append(errs, fmt.Errorf("stinger delay %v is negative", c.StingerDelay))
	}
	return errors.Join(errs...)
}
