package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCarryProjectNamespace(t *testing.T) {
	RequestCounter.WithLabelValues("GET", "/api/health", "200").Inc()
	RequestDuration.WithLabelValues("GET", "/api/health").Observe(0.01)

	assert.Equal(t, 1, testutil.CollectAndCount(RequestCounter, "lms_http_requests_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(RequestDuration, "lms_http_request_duration_seconds"))
}
