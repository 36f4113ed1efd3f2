package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-userform/internal/metrics"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.ObserveSubmission(true)
	m.ObserveSubmission(false)
	m.ObserveSubmission(false)
	m.ObserveFieldUpdate("country", nil)
	m.ObserveFieldUpdate("country", errors.New("bad"))
	m.SessionsChanged(3)
	m.SessionsEvicted(2)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues(metrics.ResultAccepted)))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Submissions.WithLabelValues(metrics.ResultRejected)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.FieldUpdates.WithLabelValues("country", metrics.ResultRejected)))
	require.Equal(t, 3.0, testutil.ToFloat64(m.ActiveSessions))
	require.Equal(t, 2.0, testutil.ToFloat64(m.EvictedSessions))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	a.ObserveSubmission(true)

	require.Equal(t, 0.0, testutil.ToFloat64(b.Submissions.WithLabelValues(metrics.ResultAccepted)))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ObserveSubmission(true)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.Contains(string(body), `userform_submissions_total{result="accepted"} 1`))
}
