// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/curioswitch/go-curiostack/server"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/analysis"
	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/config"
	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/handler/analyzevideo"
	ratelimit "github.com/AlexandreLenglet/tiktok-to-recipe/internal/middleware"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	mux.Use(middleware.RealIP)
	// One generation call per second sustained is already generous for a
	// single Gemini key.
	mux.Use(ratelimit.RateLimit(rate.Limit(1), 4))

	h := analyzevideo.NewHandler(analysis.NewClient(conf.Analysis.Model))
	mux.Post("/analyze", h.Analyze)
	mux.Post("/analyze/structured", h.AnalyzeStructured)

	mux.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ok", "message": "TikTok to Recipe API is running"}`))
	})

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
