// Package audio plays background music and one-shot clips from mp3 files.
//
// Every failure (missing file, bad data, no device) degrades to a silent
// track so the frame loop never sees an error.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

// SampleRate is the rate, in Hz, every track is decoded to.
const SampleRate = 44100

// Track is a playing clip.
type Track interface {
	Stop()
}

// Service opens tracks from a file system. The zero value is not usable; use
// New or Silent.
type Service struct {
	fsys fs.FS
	ctx  *audio.Context
	mute bool
}

// New creates a Service reading mp3 files from fsys.
// Only one Service with sound may exist per process.
func New(fsys fs.FS) *Service {
	return &Service{
		fsys: fsys,
		ctx:  audio.NewContext(SampleRate),
	}
}

// Silent returns a Service whose tracks never make a sound.
func Silent() *Service {
	return &Service{mute: true}
}

// Loop starts name looping forever at volume (0-100).
func (s *Service) Loop(name string, volume int) Track {
	return s.play(name, volume, true)
}

// Once plays name a single time at volume (0-100).
func (s *Service) Once(name string, volume int) Track {
	return s.play(name, volume, false)
}

func (s *Service) play(name string, volume int, loop bool) Track {
	if s.mute {
		return silentTrack{}
	}
	src, err := s.open(name, loop)
	if err != nil {
		log.Printf("[Audio] %v; continuing without sound", err)
		return silentTrack{}
	}
	if s.ctx == nil {
		return silentTrack{}
	}

	p, err := s.ctx.NewPlayer(src)
	if err != nil {
		log.Printf("[Audio] new player for %s: %v", name, err)
		return silentTrack{}
	}
	p.SetVolume(Volume(volume))
	p.Play()
	return &playerTrack{player: p}
}

// open decodes name into a stream ready for a player.
func (s *Service) open(name string, loop bool) (io.Reader, error) {
	if s.fsys == nil {
		return nil, fmt.Errorf("open %s: no music directory", name)
	}
	raw, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	stream, err := mp3.DecodeWithSampleRate(SampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if loop {
		return audio.NewInfiniteLoop(stream, stream.Length()), nil
	}
	return stream, nil
}

// Volume converts a 0-100 volume into the 0-1 scale of the player.
func Volume(v int) float64 {
	return float64(min(max(v, 0), 100)) / 100
}

type silentTrack struct{}

func (silentTrack) Stop() {}

type playerTrack struct {
	once   sync.Once
	player *audio.Player
}

// Stop halts playback and releases the player. Repeated calls are no-ops.
func (t *playerTrack) Stop() {
	t.once.Do(func() {
		t.player.Pause()
		if err := t.player.Close(); err != nil {
			log.Printf("[Audio] close player: %v", err)
		}
	})
}
