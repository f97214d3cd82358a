package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/javimartin54-cpu/arbitraje-inteligente/pkg/apierror"
)

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	// APIKeys is the list of accepted keys. When empty, API_KEYS/API_KEY
	// environment variables are consulted; if those are empty too, every
	// request is allowed (open deployment).
	APIKeys []string
}

// NewAuthMiddleware creates an optional API-key gate with injected
// configuration. Health and the service banner stay public.
func NewAuthMiddleware(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/" || r.URL.Path == "/api/health" {
				next.ServeHTTP(w, r)
				return
			}

			validKeys := cfg.APIKeys
			if len(validKeys) == 0 {
				validKeys = apiKeysFromEnv()
			}
			if len(validKeys) == 0 {
				// no keys configured: open deployment
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get("X-API-Key")
			if apiKey == "" {
				auth := r.Header.Get("Authorization")
				if strings.HasPrefix(auth, "Bearer ") {
					apiKey = strings.TrimPrefix(auth, "Bearer ")
				}
			}

			if apiKey == "" {
				writeError(w, apierror.Unauthorized("Authentication required. Use X-API-Key header."))
				return
			}

			if !isValidKey(apiKey, validKeys) {
				writeError(w, apierror.Unauthorized("Invalid API key"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeError writes an API error response.
func writeError(w http.ResponseWriter, err *apierror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_, _ = w.Write(err.ToJSON())
}

// apiKeysFromEnv returns API keys from environment variables.
func apiKeysFromEnv() []string {
	keysEnv := os.Getenv("API_KEYS")
	if keysEnv == "" {
		if singleKey := os.Getenv("API_KEY"); singleKey != "" {
			return []string{singleKey}
		}
		return nil
	}

	keys := strings.Split(keysEnv, ",")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	return keys
}

// isValidKey checks if the provided key is in the valid keys list.
func isValidKey(key string, validKeys []string) bool {
	for _, valid := range validKeys {
		if key == valid {
			return true
		}
	}
	return false
}
