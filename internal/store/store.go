// Package store persists the set of OSM node identifiers already shown to the user.
package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bizfinder/internal/models"
)

// IDColumn is the header of the single column in the persisted CSV.
const IDColumn = "id"

// ErrMalformedState is returned when persisted identifiers cannot be parsed.
var ErrMalformedState = errors.New("known-id state is malformed")

// Store loads and saves the known-ID set. Save replaces the whole set.
type Store interface {
	Load(ctx context.Context) (models.IDSet, error)
	Save(ctx context.Context, ids models.IDSet) error
}

// Pinger is implemented by stores that can check their backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// decodeIDs reads the CSV form: an "id" header then one integer per row.
// Empty input is an empty set.
func decodeIDs(r io.Reader) (models.IDSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 1

	ids := models.NewIDSet()

	header, err := reader.Read()
	if err == io.EOF {
		return ids, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedState, err)
	}
	if strings.TrimSpace(header[0]) != IDColumn {
		return nil, fmt.Errorf("%w: header %q, want %q", ErrMalformedState, header[0], IDColumn)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return ids, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
		}

		line, _ := reader.FieldPos(0)
		id, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformedState, line, record[0])
		}
		ids.Add(id)
	}
}

// encodeIDs writes ids in ascending order under the "id" header.
func encodeIDs(w io.Writer, ids models.IDSet) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{IDColumn}); err != nil {
		return err
	}
	for _, id := range ids.Sorted() {
		if err := writer.Write([]string{strconv.FormatInt(id, 10)}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
