// Package location models acquisition of the user's position fix.
package location

import (
	"context"
	"errors"
)

// Fix is a single position reading. Accuracy is the radius in meters and
// may be zero when the source does not report one.
type Fix struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy,omitempty"`
}

// Acquisition failure classes. Callers classify with errors.Is and render
// via Describe; none of these are fatal.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("location request timed out")
	ErrUnsupported         = errors.New("geolocation not supported")
)

// Provider is the contract for acquiring a single high-accuracy position fix.
type Provider interface {
	CurrentPosition(ctx context.Context) (Fix, error)
}

// Describe renders an acquisition error as a displayable message.
func Describe(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return "Location access denied. Please enable location permissions."
	case errors.Is(err, ErrPositionUnavailable):
		return "Location information is unavailable."
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "Location request timed out."
	case errors.Is(err, ErrUnsupported):
		return "Geolocation is not supported by this environment."
	default:
		return "Unable to retrieve your location."
	}
}
