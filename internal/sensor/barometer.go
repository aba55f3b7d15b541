// Package sensor consumes push-based barometric pressure readings and derives
// altitude from them. Readings arrive on their own channel and are not
// coordinated with weather fetches; they feed an independent display field.
package sensor

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/raexp917/weather-app/internal/metrics"
)

// seaLevelPressureHPa is the standard atmosphere reference.
const seaLevelPressureHPa = 1013.25

// Reading is one barometer sample.
type Reading struct {
	PressureHPa float64
	At          time.Time
}

// Source pushes periodic pressure readings. The channel closes when the
// source stops.
type Source interface {
	Readings() <-chan Reading
}

// Altitude derives altitude in meters from pressure using the standard
// barometric formula.
func Altitude(pressureHPa float64) float64 {
	return 44330.0 * (1 - math.Pow(pressureHPa/seaLevelPressureHPa, 1/5.255))
}

// Monitor keeps the latest reading and its derived altitude, recomputed per
// reading and never persisted.
type Monitor struct {
	mu       sync.RWMutex
	last     Reading
	altitude float64
	hasData  bool
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

// Run consumes the source until the context is done or the channel closes.
func (m *Monitor) Run(ctx context.Context, src Source) {
	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-src.Readings():
			if !ok {
				return
			}
			m.observe(r)
		}
	}
}

func (m *Monitor) observe(r Reading) {
	alt := Altitude(r.PressureHPa)

	m.mu.Lock()
	m.last = r
	m.altitude = alt
	m.hasData = true
	m.mu.Unlock()

	metrics.SensorReadingsTotal.Inc()
	metrics.SensorPressureHPa.Set(r.PressureHPa)
	metrics.SensorAltitudeMeters.Set(alt)
}

// Current returns the latest reading and derived altitude; ok is false until
// the first reading arrives.
func (m *Monitor) Current() (r Reading, altitude float64, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last, m.altitude, m.hasData
}

// Simulated is a stand-in barometer for hosts without a pressure sensor. It
// emits readings drifting around a base pressure at a fixed interval.
type Simulated struct {
	ch   chan Reading
	stop chan struct{}
	once sync.Once
}

func NewSimulated(basePressureHPa float64, interval time.Duration) *Simulated {
	s := &Simulated{
		ch:   make(chan Reading, 1),
		stop: make(chan struct{}),
	}
	go s.run(basePressureHPa, interval)
	return s
}

func (s *Simulated) run(base float64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(s.ch)

	pressure := base
	for {
		select {
		case <-s.stop:
			return
		case t := <-ticker.C:
			// Small random walk, clamped near the base.
			pressure += (rand.Float64() - 0.5) * 0.4
			if pressure > base+5 {
				pressure = base + 5
			} else if pressure < base-5 {
				pressure = base - 5
			}
			select {
			case s.ch <- Reading{PressureHPa: pressure, At: t}:
			default:
			}
		}
	}
}

func (s *Simulated) Readings() <-chan Reading {
	return s.ch
}

// Close stops the simulated sensor and closes its channel.
func (s *Simulated) Close() {
	s.once.Do(func() { close(s.stop) })
}
