package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{name: "matching key", header: "secret", wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantError: "API key required"},
		{name: "wrong key", header: "other", wantStatus: http.StatusUnauthorized, wantError: "API key rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := requireAPIKey("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sendSuccess(w, nil)
			}))

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("X-API-Key", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				var resp APIResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, tt.wantError, resp.Error)
			}
		})
	}
}

func TestResponseEnvelope(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		sendSuccess(w, map[string]string{"state": "ok"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Empty(t, resp.Error)
	})

	t.Run("error", func(t *testing.T) {
		w := httptest.NewRecorder()
		sendError(w, "stamp not found", http.StatusNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "stamp not found", resp.Error)
		assert.Nil(t, resp.Data)
	})
}
