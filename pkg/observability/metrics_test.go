package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortviz/sortviz/pkg/domain"
)

func sampleTrace() domain.Trace {
	return domain.Trace{
		{Type: domain.StepCompare},
		{Type: domain.StepSwap},
		{Type: domain.StepCompare},
		{Type: domain.StepPassComplete},
	}
}

func TestMetrics_ObserveSort(t *testing.T) {
	m := NewMetrics()

	m.ObserveSort(sampleTrace(), 5*time.Millisecond)
	m.ObserveSort(sampleTrace(), 3*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.sortsTotal))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.stepsTotal.WithLabelValues("compare")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.stepsTotal.WithLabelValues("swap")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.stepsTotal.WithLabelValues("pass_complete")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveSort(sampleTrace(), time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "sortviz_sorts_total 1")
	assert.Contains(t, body, `sortviz_steps_total{type="compare"} 2`)
	assert.Contains(t, body, "sortviz_sort_duration_seconds_count 1")
}
