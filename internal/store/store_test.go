package store

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizfinder/internal/models"
)

func TestDecodeIDs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int64
		wantErr bool
	}{
		{"empty input", "", []int64{}, false},
		{"header only", "id\n", []int64{}, false},
		{"rows", "id\n5\n1\n3\n", []int64{1, 3, 5}, false},
		{"duplicate rows", "id\n7\n7\n", []int64{7}, false},
		{"surrounding spaces", "id\n 42 \n", []int64{42}, false},
		{"no trailing newline", "id\n9", []int64{9}, false},
		{"wrong header", "osm_id\n1\n", nil, true},
		{"non-integer row", "id\n1\nabc\n", nil, true},
		{"float row", "id\n1.5\n", nil, true},
		{"extra column", "id\n1,2\n", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeIDs(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedState), "error %v is not ErrMalformedState", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestEncodeIDs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeIDs(&buf, models.NewIDSet(3, 1, 2)))
	assert.Equal(t, "id\n1\n2\n3\n", buf.String())
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	sets := []models.IDSet{
		models.NewIDSet(),
		models.NewIDSet(1),
		models.NewIDSet(9007199254740993, -4, 0, 12345678901),
	}

	for _, ids := range sets {
		var buf bytes.Buffer
		require.NoError(t, encodeIDs(&buf, ids))
		got, err := decodeIDs(&buf)
		require.NoError(t, err)
		assert.Equal(t, ids.Sorted(), got.Sorted())
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(1)

	ids, err := s.Load(ctx)
	require.NoError(t, err)
	ids.Add(2)

	// Load hands out a copy.
	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, again.Sorted())

	require.NoError(t, s.Save(ctx, ids))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, got.Sorted())
	assert.Equal(t, 1, s.Saves())
}
