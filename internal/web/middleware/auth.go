package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/wfm/internal/config"
)

// APIKeyHeader carries the client's key.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth guards the reporting data behind X-API-Key when
// cfg.RequireAPIKey is set. A missing key is 401, a wrong key is 403.
// With auth disabled the returned middleware is a pass-through.
func APIKeyAuth(cfg config.SecurityConfig) func(http.Handler) http.Handler {
	if !cfg.RequireAPIKey {
		return func(next http.Handler) http.Handler { return next }
	}

	keys := make([][]byte, len(cfg.APIKeys))
	for i, k := range cfg.APIKeys {
		keys[i] = []byte(k)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(APIKeyHeader)
			switch {
			case key == "":
				deny(w, r, http.StatusUnauthorized, "missing API key", "AUTH_MISSING_KEY")
			case !keyMatches([]byte(key), keys):
				deny(w, r, http.StatusForbidden, "invalid API key", "AUTH_INVALID_KEY")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// keyMatches compares against every configured key so timing does not
// reveal which one (if any) matched.
func keyMatches(key []byte, keys [][]byte) bool {
	match := 0
	for _, k := range keys {
		match |= subtle.ConstantTimeCompare(key, k)
	}
	return match == 1
}

func deny(w http.ResponseWriter, r *http.Request, status int, msg, code string) {
	slog.Warn("auth: request rejected",
		"reason", msg,
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg, "code": code})
}
