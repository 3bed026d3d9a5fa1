package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestHTTPObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := NewHTTP(reg)
	require.NoError(t, err)

	h.ObserveRequest("POST", "/api/v1/faq/reply", 200, 5*time.Millisecond)
	h.ObserveRequest("POST", "/api/v1/faq/reply", 200, 7*time.Millisecond)
	h.ObserveRequest("GET", "", 404, time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(h.requests.WithLabelValues("POST", "/api/v1/faq/reply", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(h.requests.WithLabelValues("GET", "unmatched", "404")))
	require.Equal(t, 2, testutil.CollectAndCount(h.duration))
}
