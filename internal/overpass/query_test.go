package overpass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuery(t *testing.T) {
	got := BuildQuery(39.9526, -75.1652, 24140.1, 25)

	want := "[out:json][timeout:25];\n" +
		"(\n" +
		"  node(around:24140.1,39.9526,-75.1652)[name][shop];\n" +
		"  node(around:24140.1,39.9526,-75.1652)[name][amenity];\n" +
		");\n" +
		"out body;\n"
	assert.Equal(t, want, got)
}

func TestBuildQuery_Timeout(t *testing.T) {
	got := BuildQuery(0, 0, 1000, 60)
	assert.Contains(t, got, "[timeout:60]")
	assert.Contains(t, got, "around:1000,0,0")
}
