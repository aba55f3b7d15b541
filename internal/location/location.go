// Package location abstracts the device location provider: a best-effort,
// single on-demand fix that may simply be unavailable.
package location

import (
	"context"
	"errors"
)

// ErrNoFix means the provider could not produce a location.
var ErrNoFix = errors.New("no location fix available")

// Fix is one latitude/longitude reading.
type Fix struct {
	Latitude  float64
	Longitude float64
}

// Provider supplies a best-effort single fix on demand.
type Provider interface {
	CurrentFix(ctx context.Context) (Fix, error)
}

// Static always reports a fixed coordinate pair, the server-side analogue of
// a GPS fix configured at startup.
type Static struct {
	fix Fix
	set bool
}

func NewStatic(lat, lon float64) *Static {
	return &Static{fix: Fix{Latitude: lat, Longitude: lon}, set: true}
}

// NewUnavailable returns a provider that never has a fix.
func NewUnavailable() *Static {
	return &Static{}
}

func (s *Static) CurrentFix(ctx context.Context) (Fix, error) {
	if !s.set {
		return Fix{}, ErrNoFix
	}
	return s.fix, nil
}
