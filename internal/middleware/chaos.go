// Package middleware provides HTTP middleware components for the POS terminal API
// and the gateway simulator.
package middleware

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"log/slog"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/benx421/payment-gateway/pos/internal/config"
)

type chaosErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var excludedPaths = []string{
	"/health",
	"/docs",
}

// FailureInjection creates middleware that injects latency and random failures
// so the terminal's communication failure path gets exercised.
func FailureInjection(cfg *config.SimulatorConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExcludedPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			injectLatency(r.Context(), cfg.MinLatencyMS, cfg.MaxLatencyMS)

			if shouldInjectFailure(cfg.FailureRate) {
				logger.Info("injecting random failure",
					"path", r.URL.Path,
					"method", r.Method,
					"request_id", r.Header.Get("X-Request-ID"),
				)
				writeFailureResponse(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isExcludedPath(path string) bool {
	for _, excluded := range excludedPaths {
		if strings.HasPrefix(path, excluded) {
			return true
		}
	}
	return false
}

func injectLatency(ctx context.Context, minMS, maxMS int) {
	if minMS <= 0 && maxMS <= 0 {
		return
	}

	sleepMS := minMS
	if rangeMS := maxMS - minMS; rangeMS > 0 {
		if randomOffset, err := rand.Int(rand.Reader, big.NewInt(int64(rangeMS))); err == nil {
			sleepMS += int(randomOffset.Int64())
		}
	}

	timer := time.NewTimer(time.Duration(sleepMS) * time.Millisecond)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func shouldInjectFailure(failureRate float64) bool {
	if failureRate <= 0 {
		return false
	}
	if failureRate >= 1 {
		return true
	}

	const precision = 1000000
	randomNum, err := rand.Int(rand.Reader, big.NewInt(precision))
	if err != nil {
		return false
	}

	threshold := int64(failureRate * precision)
	return randomNum.Int64() < threshold
}

func writeFailureResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)

	resp := chaosErrorResponse{
		Status:  "ERR",
		Message: "simulated gateway failure",
	}

	//nolint:errcheck // Best effort response writing in chaos injection
	json.NewEncoder(w).Encode(resp)
}
