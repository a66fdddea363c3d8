package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAuthRequestsCounted(t *testing.T) {
	router := newTestRouter(t)
	m := testMetrics()

	accepted := m.authRequestsTotal.WithLabelValues(statusSuccess)
	rejected := m.authRequestsTotal.WithLabelValues(statusError)

	t.Run("accepted key increments success", func(t *testing.T) {
		before := testutil.ToFloat64(accepted)

		req := httptest.NewRequest("GET", "/api/v1/health", nil)
		req.Header.Set("X-API-Key", testAPIKey)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, before+1, testutil.ToFloat64(accepted))
	})

	t.Run("rejected key increments error", func(t *testing.T) {
		before := testutil.ToFloat64(rejected)

		req := httptest.NewRequest("GET", "/api/v1/health", nil)
		req.Header.Set("X-API-Key", "wrong-key")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		assert.Equal(t, before+1, testutil.ToFloat64(rejected))
	})

	t.Run("missing key is not counted", func(t *testing.T) {
		beforeAccepted := testutil.ToFloat64(accepted)
		beforeRejected := testutil.ToFloat64(rejected)

		req := httptest.NewRequest("GET", "/api/v1/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		assert.Equal(t, beforeAccepted, testutil.ToFloat64(accepted))
		assert.Equal(t, beforeRejected, testutil.ToFloat64(rejected))
	})
}
