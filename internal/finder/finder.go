// Package finder runs one search action: geocode, query, filter, dedup, persist.
package finder

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/zap"

	"bizfinder/internal/geocode"
	"bizfinder/internal/metrics"
	"bizfinder/internal/models"
	"bizfinder/internal/store"
)

// PlaceSource returns the places around a point.
type PlaceSource interface {
	Nearby(ctx context.Context, lat, lon float64, radiusMiles int) ([]models.Place, error)
}

// Query is the user input for one action.
type Query struct {
	Place       string
	RadiusMiles int
}

// Result is the outcome of Search, waiting to be rendered and committed.
type Result struct {
	ID       uuid.UUID
	Query    Query
	Location string    // geocoder display name
	Center   orb.Point // lon, lat
	All      []models.Place
	New      []models.Place
	AllIDs   models.IDSet

	known     models.IDSet
	commitMu  sync.Mutex
	committed bool
}

// Committed reports whether the known-ID set has been persisted for this result.
func (r *Result) Committed() bool {
	r.commitMu.Lock()
	defer r.commitMu.Unlock()
	return r.committed
}

// Service wires the geocoder, POI source and known-ID store together.
type Service struct {
	geocoder geocode.Client
	places   PlaceSource
	store    store.Store
}

// NewService creates a finder service.
func NewService(g geocode.Client, p PlaceSource, s store.Store) *Service {
	return &Service{geocoder: g, places: p, store: s}
}

// Store returns the known-ID store.
func (s *Service) Store() store.Store {
	return s.store
}

// Search runs the read side of an action. Nothing is persisted until Commit.
func (s *Service) Search(ctx context.Context, q Query) (*Result, error) {
	q.Place = strings.TrimSpace(q.Place)
	if q.Place == "" {
		metrics.RecordSearch(metrics.OutcomeInputMissing)
		return nil, ErrInputMissing
	}

	start := time.Now()
	loc, err := s.geocoder.Geocode(ctx, q.Place)
	metrics.ObserveUpstream(metrics.ServiceGeocoder, time.Since(start))
	if err != nil {
		metrics.RecordSearch(metrics.OutcomeError)
		return nil, fmt.Errorf("%w: geocode %q: %v", ErrTransport, q.Place, err)
	}
	if !loc.Matched {
		metrics.RecordSearch(metrics.OutcomeNotFound)
		return nil, ErrLocationNotFound
	}

	start = time.Now()
	fetched, err := s.places.Nearby(ctx, loc.Latitude, loc.Longitude, q.RadiusMiles)
	metrics.ObserveUpstream(metrics.ServicePOI, time.Since(start))
	if err != nil {
		metrics.RecordSearch(metrics.OutcomeError)
		return nil, fmt.Errorf("%w: query places: %v", ErrTransport, err)
	}

	center := orb.Point{loc.Longitude, loc.Latitude}
	all := FilterNoWebsite(fetched)
	for i := range all {
		all[i].DistanceMiles = geo.Distance(center, all[i].Point()) / models.MetersPerMile
	}

	known, err := s.store.Load(ctx)
	if err != nil {
		metrics.RecordSearch(metrics.OutcomeError)
		return nil, fmt.Errorf("load known ids: %w", err)
	}

	newPlaces, allIDs := Partition(all, known)

	zap.L().Info("search complete",
		zap.String("place", q.Place),
		zap.Int("radius_miles", q.RadiusMiles),
		zap.Int("fetched", len(fetched)),
		zap.Int("without_website", len(all)),
		zap.Int("new", len(newPlaces)),
	)
	metrics.RecordSearch(metrics.OutcomeSuccess)
	metrics.RecordNewPlaces(len(newPlaces))

	return &Result{
		ID:       uuid.New(),
		Query:    q,
		Location: loc.DisplayName,
		Center:   center,
		All:      all,
		New:      newPlaces,
		AllIDs:   allIDs,
		known:    known,
	}, nil
}

// Commit merges the result's ids into the known set loaded by Search and saves
// it. It runs once per result; later calls return nil without writing.
func (s *Service) Commit(ctx context.Context, r *Result) error {
	r.commitMu.Lock()
	defer r.commitMu.Unlock()

	if r.committed {
		return nil
	}

	merged := r.known.Merge(r.AllIDs)
	if err := s.store.Save(ctx, merged); err != nil {
		return fmt.Errorf("save known ids: %w", err)
	}
	r.committed = true

	zap.L().Debug("known ids saved",
		zap.String("result_id", r.ID.String()),
		zap.Int("known", merged.Len()),
	)
	return nil
}
