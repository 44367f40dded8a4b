// Copyright 2025 NetApp, Inc. All Rights Reserved.

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/vnx-blockdevice/config"
	. "github.com/netapp/vnx-blockdevice/logging"
)

func TestMain(m *testing.M) {
	// Disable any standard log output
	InitLogOutput(io.Discard)
	os.Exit(m.Run())
}

var testCounter = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: config.OrchestratorName,
	Name:      "metrics_frontend_test_total",
	Help:      "Counter registered by the metrics frontend tests",
})

func TestNewMetricsServer(t *testing.T) {
	server := NewMetricsServer("localhost", config.DefaultMetricsPort)

	assert.Equal(t, "localhost:8001", server.server.Addr)
	assert.Equal(t, config.HTTPTimeout, server.server.ReadTimeout)
	assert.Equal(t, config.HTTPTimeout, server.server.WriteTimeout)
	assert.Equal(t, "metrics", server.GetName())
	assert.Equal(t, config.OrchestratorAPIVersion, server.Version())
}

func TestMetricsServer_ServesRegistry(t *testing.T) {
	testCounter.Inc()
	server := NewMetricsServer("", "0")

	recorder := httptest.NewRecorder()
	server.server.Handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, metricsPath, nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "vnxbd_metrics_frontend_test_total 1")

	recorder = httptest.NewRecorder()
	server.server.Handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestMetricsServer_ActivateDeactivate(t *testing.T) {
	server := NewMetricsServer("localhost", "0")

	assert.NoError(t, server.Activate())

	// Give the server a moment to start
	time.Sleep(50 * time.Millisecond)

	assert.NoError(t, server.Deactivate())
}
