package finder

import "errors"

// Errors that end a search action. Callers test them with errors.Is.
var (
	// ErrInputMissing means the place text was empty. No network call was made.
	ErrInputMissing = errors.New("place is required")

	// ErrLocationNotFound means the geocoder had no match for the place.
	ErrLocationNotFound = errors.New("location not found")

	// ErrTransport means a call to the geocoder or the POI service failed.
	ErrTransport = errors.New("upstream request failed")
)
