package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizfinder/internal/models"
)

func TestCSV(t *testing.T) {
	places := []models.Place{
		{ID: 1, Name: "A", Category: "cafe", Phone: "555-0100", Latitude: 40.5, Longitude: -75.25, DistanceMiles: 3},
		{ID: 2, Name: "Smith, Jones & Co", Category: "hardware"},
	}

	data, err := CSV(places)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"1", "A", "cafe", "", "555-0100"}, records[1][:5])
	assert.Equal(t, "Smith, Jones & Co", records[2][1])
	assert.Equal(t, "2", records[2][0])
}

func TestCSV_HeaderLine(t *testing.T) {
	data, err := CSV([]models.Place{{ID: 7}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "OSM_ID,Name,Type,Website,Phone,Latitude,Longitude\n"))
}

func TestCSV_Empty(t *testing.T) {
	data, err := CSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "OSM_ID,Name,Type,Website,Phone,Latitude,Longitude\n", string(data))
}
