package sensor

import (
	"context"
	"math"
	"testing"
	"time"
)

func TestAltitude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pressureHPa float64
		want        float64
		tolerance   float64
	}{
		{"sea level", 1013.25, 0, 0.001},
		{"roughly 1000m", 899.0, 998, 5},
		{"roughly 5500m", 505.0, 5502, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Altitude(tt.pressureHPa)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Altitude(%v) = %v, want %v ± %v", tt.pressureHPa, got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestAltitudeMonotonic(t *testing.T) {
	t.Parallel()

	// Lower pressure always means higher altitude.
	prev := Altitude(1050)
	for p := 1040.0; p >= 500; p -= 10 {
		alt := Altitude(p)
		if alt <= prev {
			t.Fatalf("altitude not increasing at %v hPa: %v <= %v", p, alt, prev)
		}
		prev = alt
	}
}

type staticSource struct {
	ch chan Reading
}

func (s *staticSource) Readings() <-chan Reading { return s.ch }

func TestMonitorTracksLatestReading(t *testing.T) {
	t.Parallel()

	src := &staticSource{ch: make(chan Reading)}
	m := NewMonitor()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		m.Run(ctx, src)
		close(done)
	}()

	if _, _, ok := m.Current(); ok {
		t.Error("monitor should report no data before the first reading")
	}

	src.ch <- Reading{PressureHPa: 1013.25, At: time.Now()}
	src.ch <- Reading{PressureHPa: 899.0, At: time.Now()}
	close(src.ch)
	<-done

	r, alt, ok := m.Current()
	if !ok {
		t.Fatal("expected data after readings")
	}
	if r.PressureHPa != 899.0 {
		t.Errorf("expected latest pressure 899.0, got %v", r.PressureHPa)
	}
	if math.Abs(alt-Altitude(899.0)) > 1e-9 {
		t.Errorf("altitude not recomputed for latest reading: %v", alt)
	}
}

func TestSimulatedSourceEmits(t *testing.T) {
	t.Parallel()

	s := NewSimulated(1013.25, 5*time.Millisecond)
	defer s.Close()

	select {
	case r := <-s.Readings():
		if r.PressureHPa < 1000 || r.PressureHPa > 1025 {
			t.Errorf("reading drifted implausibly far: %v", r.PressureHPa)
		}
	case <-time.After(time.Second):
		t.Fatal("no reading emitted")
	}
}
