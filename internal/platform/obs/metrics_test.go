package obs

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsRequestsAndPostings(t *testing.T) {
	m := NewMetrics()

	m.RequestStarted()
	m.RequestFinished("POST", "/api/v1/journal-entries", "201", 0.01)
	m.ObservePosting(OutcomePosted)
	m.ObservePosting(OutcomeRejected)
	m.ObservePosting(OutcomeRejected)
	m.SetBooksLoaded(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/journal-entries", "201")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.entriesTotal.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.booksLoaded))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObservePosting(OutcomePosted)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "ledger_journal_entries_total"))
}
