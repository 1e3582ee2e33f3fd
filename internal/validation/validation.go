package validation

import (
	"slices"
	"strconv"
	"strings"
)

// NormalizePlace trims surrounding whitespace and collapses inner runs of spaces.
// Any other text is passed to the geocoder as is; an empty result is reported
// by the finder as missing input.
func NormalizePlace(place string) string {
	return strings.Join(strings.Fields(place), " ")
}

// ParseRadius parses a radius in miles and checks it is one of the allowed options.
// An empty value selects fallback.
func ParseRadius(value string, options []int, fallback int) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, true
	}

	r, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	if !slices.Contains(options, r) {
		return 0, false
	}
	return r, true
}
