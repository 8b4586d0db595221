package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nearest-throne/service-restroom/internal/domain"
	"github.com/nearest-throne/service-restroom/internal/domain/restroom"
	"github.com/nearest-throne/service-restroom/internal/geo"
	"github.com/nearest-throne/service-restroom/internal/location"
	"github.com/nearest-throne/service-restroom/internal/routing"
)

// Default map viewport over central Manila.
var defaultCenter = restroom.Position{Lat: 14.5995, Lng: 120.9842}

const (
	defaultZoom = 13
	locateZoom  = 15
	closeZoom   = 16
)

const (
	fallbackDuration      = "Estimated"
	fallbackDistance      = "Unknown"
	fallbackRouteWarning  = "Using approximate route. Road details may not be accurate."
	noLocationForRouteMsg = "User location not available for directions."
)

// Viewport is the map's center coordinate and zoom level.
type Viewport struct {
	Center restroom.Position `json:"center"`
	Zoom   int               `json:"zoom"`
}

// RouteInfo is the human-readable route summary.
type RouteInfo struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}

// RouteState describes the current directions overlay. Warning carries a
// degraded-service note when the fallback route is in effect; it is not a
// blocking error.
type RouteState struct {
	Active      bool                `json:"active"`
	Coordinates []restroom.Position `json:"coordinates,omitempty"`
	Info        *RouteInfo          `json:"info,omitempty"`
	IsLoading   bool                `json:"is_loading"`
	Destination *restroom.Restroom  `json:"destination,omitempty"`
	Warning     string              `json:"warning,omitempty"`
}

// Snapshot is an immutable view of the catalog state. Every mutating
// operation returns the snapshot it produced.
type Snapshot struct {
	Restrooms         []restroom.Restroom `json:"restrooms"`
	Filtered          []restroom.Restroom `json:"filtered"`
	SearchQuery       string              `json:"search_query"`
	Selected          *restroom.Restroom  `json:"selected,omitempty"`
	Viewport          Viewport            `json:"viewport"`
	Filters           restroom.Criteria   `json:"filters"`
	UserLocation      *location.Fix       `json:"user_location,omitempty"`
	IsLocationLoading bool                `json:"is_location_loading"`
	LocationError     string              `json:"location_error,omitempty"`
	Route             RouteState          `json:"route"`
}

// CatalogService owns the restroom collection and all session state:
// filters, search, selection, viewport, user location and directions.
// All mutation goes through its operations; records are replaced, never
// mutated in place, so snapshots can share slices safely.
type CatalogService struct {
	routes  routing.Provider
	locator location.Provider
	logger  *zap.Logger

	mu              sync.Mutex
	restrooms       []restroom.Restroom
	filtered        []restroom.Restroom
	searchQuery     string
	selected        *restroom.Restroom
	viewport        Viewport
	filters         restroom.Criteria
	userLocation    *location.Fix
	locationLoading bool
	locationErr     string
	route           RouteState

	// Generation tokens: a completion that lost the race against a newer
	// request of the same kind is discarded.
	locationGen uint64
	routeGen    uint64

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewCatalogService creates a catalog seeded with the given collection.
func NewCatalogService(
	seed []restroom.Restroom,
	routes routing.Provider,
	locator location.Provider,
	logger *zap.Logger,
) *CatalogService {
	all := append([]restroom.Restroom{}, seed...)
	return &CatalogService{
		routes:    routes,
		locator:   locator,
		logger:    logger,
		restrooms: all,
		filtered:  append([]restroom.Restroom{}, all...),
		viewport:  Viewport{Center: defaultCenter, Zoom: defaultZoom},
		filters:   restroom.OpenCriteria(),
		subs:      map[int]func(Snapshot){},
	}
}

// Subscribe registers a change listener invoked with each new snapshot.
// The returned function unregisters it.
func (s *CatalogService) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Snapshot returns the current state.
func (s *CatalogService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// FindByID returns the restroom with the given id from the full collection.
func (s *CatalogService) FindByID(id uuid.UUID) (restroom.Restroom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.restrooms {
		if r.ID == id {
			return r, nil
		}
	}
	return restroom.Restroom{}, domain.NewNotFoundError("restroom", id.String())
}

// SetSearchQuery updates the search text and re-filters. A non-empty query
// with at least one match selects the first match and re-centers the map on
// it; clearing the query resets selection and viewport to defaults.
func (s *CatalogService) SetSearchQuery(query string) Snapshot {
	s.mu.Lock()
	s.searchQuery = query
	s.applyFiltersLocked()

	if strings.TrimSpace(query) != "" {
		if len(s.filtered) > 0 {
			first := s.filtered[0]
			s.selected = &first
			s.viewport = Viewport{Center: first.Position, Zoom: closeZoom}
		}
	} else {
		s.selected = nil
		s.viewport = Viewport{Center: defaultCenter, Zoom: defaultZoom}
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// SetFilters folds the update into the active criteria and re-filters.
func (s *CatalogService) SetFilters(update restroom.Update) Snapshot {
	s.mu.Lock()
	s.filters = update.Apply(s.filters)
	s.applyFiltersLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// ResetFilters restores open criteria. Unlike the filter reset it replaces,
// any active search text keeps filtering: the filtered collection stays a
// pure function of collection, criteria and search.
func (s *CatalogService) ResetFilters() Snapshot {
	s.mu.Lock()
	s.filters = restroom.OpenCriteria()
	s.applyFiltersLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// AddRestroom assigns a fresh id and appends the entry to both the full and
// filtered collections without re-filtering, so a just-added restroom is
// always visible regardless of active criteria. Distances are then
// recalculated if a user location is known.
func (s *CatalogService) AddRestroom(draft restroom.Draft) (restroom.Restroom, Snapshot) {
	entry := restroom.Restroom{
		ID:          uuid.New(),
		Name:        draft.Name,
		Position:    draft.Position,
		Cleanliness: draft.Cleanliness,
		Features:    append([]string{}, draft.Features...),
		PaymentType: draft.PaymentType,
		Type:        draft.Type,
		Gender:      append([]string{}, draft.Gender...),
	}

	s.mu.Lock()
	s.restrooms = append(s.restrooms, entry)
	s.filtered = append(s.filtered, entry)
	if s.userLocation != nil {
		s.recalculateDistancesLocked()
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info("restroom added",
		zap.String("restroom_id", entry.ID.String()),
		zap.String("name", entry.Name),
	)
	s.publish(snap)
	return entry, snap
}

// SetSelected updates the selected restroom with no derived side effects.
func (s *CatalogService) SetSelected(r *restroom.Restroom) Snapshot {
	s.mu.Lock()
	s.selected = r
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// SetMapCenter moves the viewport. A nil zoom defaults to the close level.
func (s *CatalogService) SetMapCenter(center restroom.Position, zoom *int) Snapshot {
	z := closeZoom
	if zoom != nil {
		z = *zoom
	}

	s.mu.Lock()
	s.viewport = Viewport{Center: center, Zoom: z}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// GetUserLocation acquires a position fix from the location provider. On
// success it records the fix, re-centers the viewport on the user and
// recalculates distances; on failure it records a displayable error and
// leaves any prior location untouched. Never returns an error: every
// failure path resolves to consistent, renderable state.
func (s *CatalogService) GetUserLocation(ctx context.Context) Snapshot {
	if s.locator == nil {
		s.mu.Lock()
		s.locationErr = location.Describe(location.ErrUnsupported)
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.publish(snap)
		return snap
	}

	s.mu.Lock()
	s.locationGen++
	gen := s.locationGen
	s.locationLoading = true
	s.locationErr = ""
	loading := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(loading)

	fix, err := s.locator.CurrentPosition(ctx)

	s.mu.Lock()
	if gen != s.locationGen {
		// Superseded by a newer request; drop this completion.
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}
	s.locationLoading = false
	if err != nil {
		s.locationErr = location.Describe(err)
		snap := s.snapshotLocked()
		s.mu.Unlock()

		s.logger.Warn("location acquisition failed", zap.Error(err))
		s.publish(snap)
		return snap
	}

	s.userLocation = &fix
	s.locationErr = ""
	s.viewport = Viewport{Center: restroom.Position{Lat: fix.Lat, Lng: fix.Lng}, Zoom: locateZoom}
	s.recalculateDistancesLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// SetUserLocation records a caller-supplied fix (or clears it with nil) and
// recalculates distances when one is set. Supersedes any in-flight
// acquisition.
func (s *CatalogService) SetUserLocation(fix *location.Fix) Snapshot {
	s.mu.Lock()
	s.locationGen++
	s.locationLoading = false
	s.userLocation = fix
	if fix != nil {
		s.locationErr = ""
		s.recalculateDistancesLocked()
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// CalculateDistances recomputes every restroom's distance from the current
// user location and re-filters. No-op when no location is known.
func (s *CatalogService) CalculateDistances() Snapshot {
	s.mu.Lock()
	s.recalculateDistancesLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// SortByDistance stably reorders the filtered collection ascending by
// distance. Entries with unknown distance sort after all known ones and
// keep their relative order.
func (s *CatalogService) SortByDistance() Snapshot {
	s.mu.Lock()
	sort.SliceStable(s.filtered, func(i, j int) bool {
		a, b := s.filtered[i].Distance, s.filtered[j].Distance
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// GetDirections fetches a driving route from the user location to the
// destination. Without a known location it records an error and returns
// with no other side effects. On provider failure it degrades to a direct
// two-point route with an approximate summary and a warning, still
// activating the route.
func (s *CatalogService) GetDirections(ctx context.Context, destination restroom.Restroom) Snapshot {
	s.mu.Lock()
	if s.userLocation == nil {
		s.locationErr = noLocationForRouteMsg
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.publish(snap)
		return snap
	}

	s.routeGen++
	gen := s.routeGen
	s.route.IsLoading = true
	s.route.Warning = ""
	s.locationErr = ""
	origin := restroom.Position{Lat: s.userLocation.Lat, Lng: s.userLocation.Lng}
	loading := s.snapshotLocked()
	s.mu.Unlock()
	s.publish(loading)

	fetched, err := s.routes.FetchRoute(ctx, origin, destination.Position)

	s.mu.Lock()
	if gen != s.routeGen {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}

	dest := destination
	if err != nil {
		s.logger.Warn("route fetch failed, using two-point fallback",
			zap.String("restroom_id", destination.ID.String()),
			zap.Error(err),
		)
		s.route = RouteState{
			Active:      true,
			Coordinates: []restroom.Position{origin, destination.Position},
			Info: &RouteInfo{
				Distance: fallbackDistanceFor(destination),
				Duration: fallbackDuration,
			},
			Destination: &dest,
			Warning:     fallbackRouteWarning,
		}
	} else {
		s.route = RouteState{
			Active:      true,
			Coordinates: fetched.Coordinates,
			Info:        &RouteInfo{Distance: fetched.Distance, Duration: fetched.Duration},
			Destination: &dest,
		}
	}
	s.selected = &dest
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// ClearDirections deactivates the route overlay and discards its waypoints
// and summary. User location and selection are untouched.
func (s *CatalogService) ClearDirections() Snapshot {
	s.mu.Lock()
	s.routeGen++
	s.route = RouteState{}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
	return snap
}

// --- internals ---

// applyFiltersLocked recomputes the filtered collection as a pure function
// of the full collection, the criteria and the search text, preserving
// input order.
func (s *CatalogService) applyFiltersLocked() {
	filtered := make([]restroom.Restroom, 0, len(s.restrooms))
	for _, r := range s.restrooms {
		if s.filters.Matches(r, s.searchQuery) {
			filtered = append(filtered, r)
		}
	}
	s.filtered = filtered
}

func (s *CatalogService) recalculateDistancesLocked() {
	if s.userLocation == nil {
		return
	}
	origin := restroom.Position{Lat: s.userLocation.Lat, Lng: s.userLocation.Lng}
	updated := make([]restroom.Restroom, len(s.restrooms))
	for i, r := range s.restrooms {
		d := geo.DistanceKm(origin, r.Position)
		r.Distance = &d
		updated[i] = r
	}
	s.restrooms = updated
	s.applyFiltersLocked()
}

func (s *CatalogService) snapshotLocked() Snapshot {
	snap := Snapshot{
		Restrooms:         append([]restroom.Restroom{}, s.restrooms...),
		Filtered:          append([]restroom.Restroom{}, s.filtered...),
		SearchQuery:       s.searchQuery,
		Viewport:          s.viewport,
		Filters:           s.filters,
		IsLocationLoading: s.locationLoading,
		LocationError:     s.locationErr,
		Route:             s.route,
	}
	if s.selected != nil {
		sel := *s.selected
		snap.Selected = &sel
	}
	if s.userLocation != nil {
		fix := *s.userLocation
		snap.UserLocation = &fix
	}
	if s.route.Coordinates != nil {
		snap.Route.Coordinates = append([]restroom.Position{}, s.route.Coordinates...)
	}
	if s.route.Info != nil {
		info := *s.route.Info
		snap.Route.Info = &info
	}
	return snap
}

func (s *CatalogService) publish(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func fallbackDistanceFor(r restroom.Restroom) string {
	if r.Distance == nil {
		return fallbackDistance
	}
	return fmt.Sprintf("%.1f km", *r.Distance)
}
