package audio

import (
	"testing"
	"testing/fstest"
)

func TestVolume(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want float64
	}{
		{name: "Silent", in: 0, want: 0},
		{name: "Default", in: 80, want: 0.8},
		{name: "Full", in: 100, want: 1},
		{name: "Clamped high", in: 250, want: 1},
		{name: "Clamped low", in: -5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Volume(tt.in); got != tt.want {
				t.Errorf("Volume(%d) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSilentService(t *testing.T) {
	s := Silent()
	tr := s.Loop("royalty_free_music/Palismanto_Title_Card.mp3", 80)
	if _, ok := tr.(silentTrack); !ok {
		t.Fatalf("got %T; want silentTrack", tr)
	}
	tr.Stop()
	tr.Stop()
}

func TestMissingFileIsSilent(t *testing.T) {
	// No audio context: a failed open must return before touching the device.
	s := &Service{fsys: fstest.MapFS{}}

	for _, tr := range []Track{
		s.Loop("royalty_free_music/missing.mp3", 80),
		s.Once("royalty_free_music/missing.mp3", 80),
	} {
		if _, ok := tr.(silentTrack); !ok {
			t.Errorf("got %T; want silentTrack", tr)
		}
	}
}

func TestNoMusicDirectory(t *testing.T) {
	s := &Service{}
	if _, err := s.open("x.mp3", true); err == nil {
		t.Fatal("expected error without a file system")
	}
}
