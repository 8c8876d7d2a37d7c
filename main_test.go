package main

import (
	"strings"
	"testing"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "width", "height", "volume", "music-dir", "mute", "seed", "stinger-delay", "debug"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
}

func TestRootCmdRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "Volume out of range", args: []string{"--volume=500"}, wantErr: "volume"},
		{name: "Zero canvas", args: []string{"--width=0"}, wantErr: "canvas"},
		{name: "Missing config file", args: []string{"--config=/nonexistent/palismanto.yaml"}, wantErr: "read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("got %v; want error containing %q", err, tt.wantErr)
			}
		})
	}
}
