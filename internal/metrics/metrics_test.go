package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordSearch(t *testing.T) {
	before := testutil.ToFloat64(searchesTotal.WithLabelValues(OutcomeNotFound))

	RecordSearch(OutcomeNotFound)
	RecordSearch(OutcomeNotFound)

	if got := testutil.ToFloat64(searchesTotal.WithLabelValues(OutcomeNotFound)) - before; got != 2 {
		t.Errorf("not_found delta = %v, want 2", got)
	}
}

func TestRecordNewPlaces(t *testing.T) {
	before := testutil.ToFloat64(newPlacesTotal)

	RecordNewPlaces(3)
	RecordNewPlaces(0)

	if got := testutil.ToFloat64(newPlacesTotal) - before; got != 3 {
		t.Errorf("new places delta = %v, want 3", got)
	}
}

func TestObserveUpstream(t *testing.T) {
	ObserveUpstream(ServicePOI, 1500*time.Millisecond)

	if n := testutil.CollectAndCount(upstreamDuration); n < 1 {
		t.Errorf("CollectAndCount() = %d, want at least 1 series", n)
	}
}

func TestInitIdempotent(t *testing.T) {
	Init()
	Init()
}
