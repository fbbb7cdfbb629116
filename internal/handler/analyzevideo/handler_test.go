// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package analyzevideo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/analysis"
	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/recipe"
)

type fakeAnalyzer struct {
	markdown   string
	structured *recipe.Content
	err        error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, apiKey string, payload analysis.Payload) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.markdown, nil
}

func (f *fakeAnalyzer) AnalyzeStructured(_ context.Context, apiKey string, payload analysis.Payload) (*recipe.Content, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.structured, nil
}

func postAnalyze(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func validBody(t *testing.T) string {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"apiKey":    "test-key",
		"videoData": base64.StdEncoding.EncodeToString([]byte("not really a video")),
	})
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func TestAnalyzeSuccess(t *testing.T) {
	h := NewHandler(&fakeAnalyzer{markdown: "# Pasta\n\n## Shopping List"})

	rec := postAnalyze(t, h.Analyze, validBody(t))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !strings.HasPrefix(res.Recipe, "# Pasta") {
		t.Errorf("recipe = %q, want markdown verbatim", res.Recipe)
	}
}

func TestAnalyzeMissingInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing key", `{"videoData": "AAAA"}`},
		{"missing video", `{"apiKey": "k"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeAnalyzer{})
			rec := postAnalyze(t, h.Analyze, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			var res map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if res["error"] == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestAnalyzeInvalidBase64(t *testing.T) {
	h := NewHandler(&fakeAnalyzer{})
	rec := postAnalyze(t, h.Analyze, `{"apiKey": "k", "videoData": "%%not base64%%"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeClassifiedFailure(t *testing.T) {
	h := NewHandler(&fakeAnalyzer{
		err: analysis.Classify(context.Background(), errors.New("API_KEY_INVALID")),
	})

	rec := postAnalyze(t, h.Analyze, validBody(t))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var res map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !strings.Contains(res["error"], "API key") {
		t.Errorf("error = %q, want credential message", res["error"])
	}
}

func TestAnalyzeUnclassifiedFailure(t *testing.T) {
	h := NewHandler(&fakeAnalyzer{err: errors.New("plain failure")})

	rec := postAnalyze(t, h.Analyze, validBody(t))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestAnalyzeStructuredSuccess(t *testing.T) {
	h := NewHandler(&fakeAnalyzer{
		structured: &recipe.Content{
			Name:     "Pasta",
			Servings: 2,
			Ingredients: []recipe.Ingredient{
				{Name: "Flour", Quantity: 200, Unit: "g"},
			},
			Steps: []recipe.Step{
				{Number: 1, Title: "Mix", Description: "Combine."},
			},
		},
	})

	rec := postAnalyze(t, h.AnalyzeStructured, validBody(t))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var res struct {
		Success    bool   `json:"success"`
		RecipeName string `json:"recipe_name"`
		Servings   int    `json:"servings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !res.Success || res.RecipeName != "Pasta" || res.Servings != 2 {
		t.Errorf("unexpected response: %+v", res)
	}
}
