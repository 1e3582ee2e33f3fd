package models

import (
	"github.com/google/uuid"
)

// SearchAPIRequest is the JSON body accepted by the search API.
type SearchAPIRequest struct {
	Place       string `json:"place"`
	RadiusMiles int    `json:"radius_miles"`
}

// SearchAPIResponse contains the outcome of one search action for the API.
type SearchAPIResponse struct {
	ResultID     uuid.UUID `json:"result_id"`
	Location     string    `json:"location"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMiles  int       `json:"radius_miles"`
	NewPlaces    []Place   `json:"new_places"`
	WithoutSites int       `json:"without_website_count"`
}
