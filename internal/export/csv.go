// Package export renders places as the downloadable CSV file.
package export

import (
	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"bizfinder/internal/models"
)

// Filename is the name offered for the download.
const Filename = "new_companies.csv"

// ContentType is the MIME type of the export.
const ContentType = "text/csv; charset=utf-8"

// Header is the column order of the export.
var Header = []string{"OSM_ID", "Name", "Type", "Website", "Phone", "Latitude", "Longitude"}

// row is one exported line. Field order defines column order.
type row struct {
	ID        int64   `csv:"OSM_ID"`
	Name      string  `csv:"Name"`
	Type      string  `csv:"Type"`
	Website   string  `csv:"Website"`
	Phone     string  `csv:"Phone"`
	Latitude  float64 `csv:"Latitude"`
	Longitude float64 `csv:"Longitude"`
}

// CSV encodes places with a header row. The header is written even for an empty list.
func CSV(places []models.Place) ([]byte, error) {
	rows := make([]row, 0, len(places))
	for _, p := range places {
		rows = append(rows, row{
			ID:        p.ID,
			Name:      p.Name,
			Type:      p.Category,
			Website:   p.Website,
			Phone:     p.Phone,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		})
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		return nil, eris.Wrap(err, "export: marshal csv")
	}
	return data, nil
}
