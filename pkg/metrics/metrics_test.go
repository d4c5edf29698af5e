package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAnalysis(t *testing.T) {
	m := New(nil)
	m.ObserveAnalysis("file", 5, 2, 4)
	m.ObserveAnalysis("input", 3, 1, 6)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("file")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("input")))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.TokensCounted))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.StopWordsDropped))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.DistinctTokens))
}

func TestIndependentRegistries(t *testing.T) {
	a := New(prometheus.NewRegistry())
	b := New(prometheus.NewRegistry())
	a.FileFailuresTotal.Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.FileFailuresTotal))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New(nil)
	m.RendersTotal.WithLabelValues("chart", "ok").Inc()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `wordfreq_renders_total{kind="chart",status="ok"} 1`)
}
