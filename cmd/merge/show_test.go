package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-merge/internal/games/merge/model"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in       string
		from, to model.Coord
		ok       bool
	}{
		{"0,0,1,0", model.C(0, 0), model.C(1, 0), true},
		{" 2, 3 ,4,5", model.C(2, 3), model.C(4, 5), true},
		{"0,0,1", model.Coord{}, model.Coord{}, false},
		{"a,0,1,0", model.Coord{}, model.Coord{}, false},
	}

	for _, tt := range tests {
		from, to, err := parseMove(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("parseMove(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && (from != tt.from || to != tt.to) {
			t.Errorf("parseMove(%q) = %v, %v", tt.in, from, to)
		}
	}
}

func TestShowReplaysMoves(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"show", "swap", "--move", "0,0,1,0"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("show failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"B1 F1", "pushed flower/1 (1,0)->(0,0)", "F1 B1"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
