package models

import (
	"github.com/paulmach/orb"
)

// MetersPerMile converts search radii from miles to the metres the query service expects.
const MetersPerMile = 1609.34

// OSM tag keys read when building a Place.
const (
	TagName         = "name"
	TagShop         = "shop"
	TagAmenity      = "amenity"
	TagWebsite      = "website"
	TagPhone        = "phone"
	TagContactPhone = "contact:phone"
)

// Place is a business point of interest returned by the map-data query service.
type Place struct {
	ID        int64   `json:"id"` // OSM node id
	Name      string  `json:"name"`
	Category  string  `json:"category"` // shop or amenity classification
	Website   string  `json:"website"`
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Set by the finder relative to the search centre.
	DistanceMiles float64 `json:"distance_miles"`
}

// PlaceFromTags extracts the known fields from a raw OSM tag map.
// Missing tags leave the corresponding field empty.
func PlaceFromTags(id int64, lat, lon float64, tags map[string]string) Place {
	return Place{
		ID:        id,
		Name:      tags[TagName],
		Category:  firstNonEmpty(tags[TagShop], tags[TagAmenity]),
		Website:   tags[TagWebsite],
		Phone:     firstNonEmpty(tags[TagPhone], tags[TagContactPhone]),
		Latitude:  lat,
		Longitude: lon,
	}
}

// HasWebsite returns true if the place carries a non-empty website.
func (p Place) HasWebsite() bool {
	return p.Website != ""
}

// Point returns the place location as an orb point (lon, lat order).
func (p Place) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
