// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package middleware provides HTTP middleware for the analysis server.
package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit rejects requests above the given rate with 429. Each analysis
// request triggers a full model generation, so the server is throttled well
// below what the transport could handle.
func RateLimit(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error": "Too many requests. Try again later."}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
