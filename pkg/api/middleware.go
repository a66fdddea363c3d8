package api

import "net/http"

// requireAPIKey gates a route group on the X-API-Key header matching the
// configured key. Both the missing-header and wrong-key cases answer 401
// with the standard error envelope.
func requireAPIKey(expectedKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			switch {
			case key == "":
				sendError(w, "API key required", http.StatusUnauthorized)
			case key != expectedKey:
				sendError(w, "API key rejected", http.StatusUnauthorized)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
