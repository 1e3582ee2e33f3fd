package overpass

import (
	"fmt"
	"strconv"
	"strings"
)

// selectors are the tag filters unioned by the radius query: named shops and named amenities.
var selectors = []string{
	"[name][shop]",
	"[name][amenity]",
}

// BuildQuery returns an Overpass QL query selecting named shop or amenity nodes
// within radiusMeters of lat/lon, with full tag output.
func BuildQuery(lat, lon, radiusMeters float64, timeoutSeconds int) string {
	around := fmt.Sprintf("around:%s,%s,%s",
		formatFloat(radiusMeters), formatFloat(lat), formatFloat(lon))

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", timeoutSeconds)
	for _, sel := range selectors {
		fmt.Fprintf(&b, "  node(%s)%s;\n", around, sel)
	}
	b.WriteString(");\nout body;\n")
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
