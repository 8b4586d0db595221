package routing

import (
	"context"

	"github.com/nearest-throne/service-restroom/internal/domain/restroom"
)

// Route is an ordered driving polyline in [lat,lng] convention, with a
// human-readable distance and duration summary.
type Route struct {
	Coordinates []restroom.Position
	Distance    string
	Duration    string
}

// Provider is the contract for retrieving a driving route between two
// coordinates. Implementations do not retry; a single failure is surfaced
// to the caller, which owns any fallback behavior.
type Provider interface {
	FetchRoute(ctx context.Context, origin, destination restroom.Position) (*Route, error)
}
