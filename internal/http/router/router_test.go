package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"service-livreur-client/internal/http/handlers"
	"service-livreur-client/internal/http/router"
)

func TestNew_NotNil(t *testing.T) {
	var _ http.Handler = router.New(&handlers.Handlers{}, nil)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "probe_total"})
	registry.MustRegister(c)
	c.Inc()

	srv := httptest.NewServer(router.New(&handlers.Handlers{}, registry))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthcheckHead(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(router.New(&handlers.Handlers{}, nil))
	t.Cleanup(srv.Close)

	resp, err := http.Head(srv.URL + "/healthcheck")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}
