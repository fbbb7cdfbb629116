// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package analyzevideo handles requests to analyze a cooking video into a
// recipe, either as markdown or as structured JSON.
package analyzevideo

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/analysis"
	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/recipe"
)

// Analyzer runs one multimodal analysis of a video.
type Analyzer interface {
	Analyze(ctx context.Context, apiKey string, payload analysis.Payload) (string, error)
	AnalyzeStructured(ctx context.Context, apiKey string, payload analysis.Payload) (*recipe.Content, error)
}

func NewHandler(analyzer Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

type Handler struct {
	analyzer Analyzer

	// flights collapses concurrent identical requests into one upstream
	// call. Nothing is retained after the call returns, so prior analyses
	// are never served from memory.
	flights singleflight.Group
}

type analyzeRequest struct {
	APIKey    string `json:"apiKey"`
	VideoData string `json:"videoData"`
	MIMEType  string `json:"mimeType"`
}

type analyzeResponse struct {
	Recipe string `json:"recipe"`
}

type structuredResponse struct {
	Success bool `json:"success"`
	recipe.Content
}

// Analyze returns the recipe extracted from the posted video as raw markdown.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	apiKey, payload, err := decodeRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err, _ := h.flights.Do("md:"+flightKey(apiKey, payload), func() (any, error) {
		return h.analyzer.Analyze(ctx, apiKey, payload)
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, analyzeResponse{Recipe: res.(string)})
}

// AnalyzeStructured returns the recipe extracted from the posted video as
// structured JSON.
func (h *Handler) AnalyzeStructured(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	apiKey, payload, err := decodeRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	res, err, _ := h.flights.Do("json:"+flightKey(apiKey, payload), func() (any, error) {
		return h.analyzer.AnalyzeStructured(ctx, apiKey, payload)
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, structuredResponse{
		Success: true,
		Content: *res.(*recipe.Content),
	})
}

func decodeRequest(r *http.Request) (string, analysis.Payload, error) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", analysis.Payload{}, analysis.Validation("Invalid request body.")
	}
	if req.APIKey == "" {
		return "", analysis.Payload{}, analysis.MissingInput("Missing API key.")
	}
	if req.VideoData == "" {
		return "", analysis.Payload{}, analysis.MissingInput("Missing video.")
	}
	data, err := base64.StdEncoding.DecodeString(req.VideoData)
	if err != nil {
		return "", analysis.Payload{}, analysis.Validation("Invalid video encoding.")
	}
	return req.APIKey, analysis.Payload{Data: data, MIMEType: req.MIMEType}, nil
}

// flightKey identifies a request by key and content. The key is hashed, never
// stored or logged.
func flightKey(apiKey string, payload analysis.Payload) string {
	digest := sha256.New()
	digest.Write([]byte(apiKey))
	digest.Write(payload.Data)
	return hex.EncodeToString(digest.Sum(nil))
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "analyzevideo: writing response", "error", err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var classified *analysis.Error
	if !errors.As(err, &classified) {
		classified = analysis.Unexpected(err)
	}
	slog.ErrorContext(ctx, "analyzevideo: analysis failed", "kind", string(classified.Kind), "error", err)
	writeJSON(ctx, w, classified.Status, map[string]string{"error": classified.Message})
}
