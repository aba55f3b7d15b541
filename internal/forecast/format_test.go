package forecast

import (
	"testing"
	"time"
)

func TestWindArrowSectors(t *testing.T) {
	// 350 and 5 degrees fall in the same 22.5-degree northern sector; 180 is
	// the southern sector and must differ.
	if WindArrow(350) != WindArrow(5) {
		t.Errorf("350 and 5 degrees should share an arrow: %q vs %q", WindArrow(350), WindArrow(5))
	}
	if WindArrow(350) == WindArrow(180) {
		t.Errorf("north and south winds should differ, both %q", WindArrow(350))
	}

	tests := []struct {
		deg  float64
		want string
	}{
		{0, "↓"},
		{45, "↙"},
		{90, "←"},
		{135, "↖"},
		{180, "↑"},
		{225, "↗"},
		{270, "→"},
		{315, "↘"},
		{360, "↓"},
	}
	for _, tt := range tests {
		if got := WindArrow(tt.deg); got != tt.want {
			t.Errorf("WindArrow(%v) = %q, want %q", tt.deg, got, tt.want)
		}
	}
}

func TestWindCardinal(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{0, "N"},
		{5, "N"},
		{350, "N"},
		{22.5, "NNE"},
		{180, "S"},
		{292.5, "WNW"},
	}
	for _, tt := range tests {
		if got := WindCardinal(tt.deg); got != tt.want {
			t.Errorf("WindCardinal(%v) = %q, want %q", tt.deg, got, tt.want)
		}
	}
}

func TestClockLabel(t *testing.T) {
	// 06:42 UTC is 09:42 at +03:00.
	ts := time.Date(2023, 8, 28, 6, 42, 0, 0, time.UTC).Unix()
	offset := 3 * 3600
	if got := ClockLabel(ts, &offset); got != "09:42" {
		t.Errorf("ClockLabel = %q, want 09:42", got)
	}

	negative := -4 * 3600
	if got := ClockLabel(ts, &negative); got != "02:42" {
		t.Errorf("ClockLabel = %q, want 02:42", got)
	}
}
