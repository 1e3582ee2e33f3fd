// Package testutil provides test doubles for the upstream services.
package testutil

import (
	"context"
	"sync"

	"bizfinder/internal/geocode"
	"bizfinder/internal/models"
)

// FakeGeocoder answers from a fixed table of queries.
type FakeGeocoder struct {
	mu      sync.Mutex
	Results map[string]geocode.Result
	Err     error
	Calls   []string
}

// NewFakeGeocoder returns a geocoder that knows a single place.
func NewFakeGeocoder(place string, lat, lon float64) *FakeGeocoder {
	return &FakeGeocoder{
		Results: map[string]geocode.Result{
			place: {Latitude: lat, Longitude: lon, DisplayName: place, Matched: true},
		},
	}
}

// Geocode implements geocode.Client. Unknown queries are a miss.
func (g *FakeGeocoder) Geocode(_ context.Context, query string) (*geocode.Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Calls = append(g.Calls, query)
	if g.Err != nil {
		return nil, g.Err
	}
	r, ok := g.Results[query]
	if !ok {
		return &geocode.Result{Matched: false}, nil
	}
	return &r, nil
}

// FakePlaces returns a fixed list of places for every query.
type FakePlaces struct {
	mu     sync.Mutex
	Places []models.Place
	Err    error
	Calls  int
	Radii  []int
}

// Nearby implements finder.PlaceSource.
func (p *FakePlaces) Nearby(_ context.Context, _, _ float64, radiusMiles int) ([]models.Place, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Calls++
	p.Radii = append(p.Radii, radiusMiles)
	if p.Err != nil {
		return nil, p.Err
	}
	out := make([]models.Place, len(p.Places))
	copy(out, p.Places)
	return out, nil
}

// ScenarioPlaces returns one place without a website (id 1, "A") and one with
// a website (id 2, "B"), both near Philadelphia.
func ScenarioPlaces() []models.Place {
	return []models.Place{
		{ID: 1, Name: "A", Category: "cafe", Phone: "555-0100", Latitude: 39.96, Longitude: -75.16},
		{ID: 2, Name: "B", Category: "bakery", Website: "x.com", Latitude: 39.97, Longitude: -75.17},
	}
}
