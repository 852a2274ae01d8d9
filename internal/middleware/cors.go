package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/benx421/payment-gateway/pos/internal/config"
)

var (
	corsAllowedMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}
	corsAllowedHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader}
)

const corsMaxAgeSeconds = 3600

// CORS answers preflight requests and decorates responses for the origins
// listed in cfg.CORSAllowedOrigins. Credentials are allowed.
func CORS(cfg *config.AppConfig) func(http.Handler) http.Handler {
	allowedMethods := strings.Join(corsAllowedMethods, ", ")
	allowedHeaders := strings.Join(corsAllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""

			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")
			if !slices.Contains(cfg.CORSAllowedOrigins, origin) {
				if preflight {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)

			if preflight {
				w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(corsMaxAgeSeconds))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
