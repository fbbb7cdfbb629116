// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package analysis owns the single outbound call to the generative model:
// it packages inline video data with the extraction prompt, enforces the
// request budget, and classifies failures into user-facing categories.
package analysis

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/llm"
	"github.com/AlexandreLenglet/tiktok-to-recipe/internal/recipe"
)

const (
	defaultModel = "gemini-2.5-flash"

	// requestTimeout bounds the one generation call. Exceeding it is a
	// transport failure; retrying is the caller's decision.
	requestTimeout = 60 * time.Second

	temperature     = 0.4
	maxOutputTokens = 4096
)

// Payload is the video sent for analysis. It is owned by the client for the
// duration of one request and discarded after the call returns.
type Payload struct {
	// Data is the raw video bytes.
	Data []byte

	// MIMEType is the MIME type of the video. Defaults to video/mp4.
	MIMEType string
}

func NewClient(model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{model: model}
}

// Client issues multimodal generation requests. A fresh genai client is
// created per attempt since the API key is supplied by the caller of each
// request and must not outlive it.
type Client struct {
	model string
}

// Analyze runs one generation request over the video and returns the model's
// raw markdown response verbatim. Parsing the markdown is the caller's
// responsibility. All failures are returned as a classified *Error.
func (c *Client) Analyze(ctx context.Context, apiKey string, payload Payload) (string, error) {
	if err := checkInput(apiKey, payload); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", Classify(ctx, fmt.Errorf("analysis: creating genai client: %w", err))
	}

	res, err := client.Models.GenerateContent(ctx, c.model, videoContents(payload, llm.RecipeMarkdown()), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](temperature),
		MaxOutputTokens: maxOutputTokens,
	})
	if err != nil {
		return "", Classify(ctx, err)
	}
	text := res.Text()
	if text == "" {
		return "", Unexpected(fmt.Errorf("analysis: empty response from model: %v", res))
	}
	return text, nil
}

// AnalyzeStructured runs one generation request over the video constrained to
// the recipe content schema and returns the parsed recipe.
func (c *Client) AnalyzeStructured(ctx context.Context, apiKey string, payload Payload) (*recipe.Content, error) {
	if err := checkInput(apiKey, payload); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, Classify(ctx, fmt.Errorf("analysis: creating genai client: %w", err))
	}

	res, err := client.Models.GenerateContent(ctx, c.model, videoContents(payload, ""), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(llm.RecipeJSON(), genai.RoleModel),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    recipe.ContentSchema,
		Temperature:       genai.Ptr[float32](temperature),
		MaxOutputTokens:   maxOutputTokens,
	})
	if err != nil {
		return nil, Classify(ctx, err)
	}
	text := res.Text()
	if text == "" {
		return nil, Unexpected(fmt.Errorf("analysis: empty response from model: %v", res))
	}

	content, err := recipe.DecodeContent(text)
	if err != nil {
		return nil, Unexpected(err)
	}
	if content.Servings < 1 {
		return nil, Unexpected(fmt.Errorf("analysis: model returned servings %d", content.Servings))
	}
	return content, nil
}

// checkInput fails fast on missing required fields, before any network
// activity.
func checkInput(apiKey string, payload Payload) *Error {
	if apiKey == "" {
		return MissingInput("Missing API key.")
	}
	if len(payload.Data) == 0 {
		return MissingInput("Missing video.")
	}
	return nil
}

func videoContents(payload Payload, prompt string) []*genai.Content {
	mimeType := payload.MIMEType
	if mimeType == "" {
		mimeType = "video/mp4"
	}
	parts := []*genai.Part{
		genai.NewPartFromBytes(payload.Data, mimeType),
	}
	if prompt != "" {
		parts = append(parts, genai.NewPartFromText(prompt))
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}
