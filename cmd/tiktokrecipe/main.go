// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/tui"
	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/upstream"
)

const backendEnv = "TIKTOK_RECIPE_BACKEND_URL"

func main() {
	// Optional, the app works from plain environment variables too.
	_ = godotenv.Load()

	backendURL := flag.String("backend", "", "analysis backend base URL (defaults to $"+backendEnv+")")
	flag.Parse()

	url := *backendURL
	if url == "" {
		url = os.Getenv(backendEnv)
	}
	if url == "" {
		url = upstream.DefaultBaseURL
	}

	backend := upstream.NewClient(url, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := backend.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: backend %s is not reachable (%v), submissions will fail until it is up\n", url, err)
	}
	cancel()

	if _, err := tea.NewProgram(tui.New(backend), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
