// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package upstream is the client for the video acquisition backend, which
// downloads the source video and returns the structured recipe in one opaque
// call. Its response shape is a fixed external contract.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/recipe"
)

// DefaultBaseURL is used when no backend URL is configured.
const DefaultBaseURL = "http://localhost:8000"

// analyzeTimeout bounds the full download-and-analyze round trip, which
// routinely takes 30-90 seconds.
const analyzeTimeout = 2 * time.Minute

// AnalyzeRequest is the request body for the backend's analyze endpoint.
type AnalyzeRequest struct {
	TikTokURL string `json:"tiktok_url"`
}

// RecipeResponse is the backend's fixed response shape. Its internal
// consistency is not re-validated here beyond what display requires.
type RecipeResponse struct {
	Success     bool                `json:"success"`
	RecipeName  string              `json:"recipe_name"`
	Description string              `json:"description"`
	Servings    int                 `json:"servings"`
	Ingredients []recipe.Ingredient `json:"ingredients"`
	Steps       []recipe.Step       `json:"steps"`
	Tips        []string            `json:"tips"`
	Error       string              `json:"error,omitempty"`
	Detail      string              `json:"detail,omitempty"`
}

// Message returns the most specific failure message in the response.
func (r *RecipeResponse) Message() string {
	if r.Detail != "" {
		return r.Detail
	}
	return r.Error
}

func NewClient(baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: analyzeTimeout}
	}
	return &Client{
		baseURL: baseURL,
		client:  client,
	}
}

type Client struct {
	baseURL string
	client  *http.Client
}

// AnalyzeVideo submits a video URL and returns the structured recipe. A
// non-2xx response is returned as an error carrying the backend's message.
func (c *Client) AnalyzeVideo(ctx context.Context, videoURL string) (*RecipeResponse, error) {
	body, err := json.Marshal(AnalyzeRequest{TikTokURL: videoURL})
	if err != nil {
		return nil, fmt.Errorf("upstream: marshalling analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("upstream: creating analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream: sending analyze request: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	var recipeRes RecipeResponse
	if err := json.NewDecoder(res.Body).Decode(&recipeRes); err != nil {
		return nil, fmt.Errorf("upstream: decoding analyze response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		msg := recipeRes.Message()
		if msg == "" {
			msg = res.Status
		}
		return nil, errors.New(msg)
	}
	return &recipeRes, nil
}

// Ping probes the backend's health endpoint with bounded retries. It is used
// once at startup to report a missing backend early, never to retry
// submissions.
func (c *Client) Ping(ctx context.Context) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		res, err := c.client.Do(req)
		if err != nil {
			return struct{}{}, err
		}
		_ = res.Body.Close()
		if res.StatusCode != http.StatusOK {
			return struct{}{}, fmt.Errorf("upstream: health status %d", res.StatusCode)
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(4))
	if err != nil {
		return fmt.Errorf("upstream: backend not reachable at %s: %w", c.baseURL, err)
	}
	return nil
}
