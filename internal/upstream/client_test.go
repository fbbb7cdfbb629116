// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAnalyzeVideoSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/analyze" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if !strings.Contains(req.TikTokURL, "tiktok.com") {
			t.Errorf("tiktok_url = %q", req.TikTokURL)
		}
		_ = json.NewEncoder(w).Encode(RecipeResponse{
			Success:    true,
			RecipeName: "Pasta",
			Servings:   2,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	res, err := client.AnalyzeVideo(context.Background(), "https://www.tiktok.com/@x/video/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RecipeName != "Pasta" || res.Servings != 2 {
		t.Errorf("unexpected response: %+v", res)
	}
}

func TestAnalyzeVideoBackendFailure(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    RecipeResponse
		wantMsg string
	}{
		{"error field", http.StatusUnauthorized, RecipeResponse{Error: "API key invalid"}, "API key invalid"},
		{"detail preferred", http.StatusBadRequest, RecipeResponse{Error: "bad request", Detail: "Invalid TikTok URL"}, "Invalid TikTok URL"},
		{"no message", http.StatusInternalServerError, RecipeResponse{}, "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(tt.body)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, srv.Client())
			_, err := client.AnalyzeVideo(context.Background(), "https://www.tiktok.com/@x/video/1")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestPing(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls < 2 {
		t.Errorf("expected retry, got %d calls", calls)
	}
}
