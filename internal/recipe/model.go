// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package recipe defines the structured recipe model extracted from a cooking
// video, the generation schema used to request it from the model, and the
// serving-size scaling applied when displaying quantities.
package recipe

import (
	"google.golang.org/genai"
)

// Ingredient is a single shopping-list entry. Quantity is always expressed
// relative to the recipe's base serving count, in grams or millilitres.
type Ingredient struct {
	// Name is the name of the ingredient.
	Name string `json:"name"`

	// Quantity is the amount of the ingredient at the base serving count.
	Quantity float64 `json:"quantity"`

	// Unit is the measurement unit, "g" or "ml".
	Unit string `json:"unit"`

	// Checked marks the ingredient as collected in the shopping list. It is
	// display state only and is never sent back to the model.
	Checked bool `json:"checked"`
}

// Step is one preparation step. Steps are presented in increasing Number
// order, matching the chronological order of preparation in the video.
type Step struct {
	// Number is the 1-based position of the step.
	Number int `json:"number"`

	// Title is a short label for the step.
	Title string `json:"title"`

	// Description is the full instruction text.
	Description string `json:"description"`
}

// Content is the structured content of a recipe extracted from a video.
type Content struct {
	// Name is the name of the dish.
	Name string `json:"recipe_name"`

	// Description is a one or two sentence description of the dish.
	Description string `json:"description"`

	// Servings is the number of people the listed quantities are for.
	Servings int `json:"servings"`

	// Ingredients are the ingredients of the recipe.
	Ingredients []Ingredient `json:"ingredients"`

	// Steps are the preparation steps in chronological order.
	Steps []Step `json:"steps"`

	// Tips are optional chef tips.
	Tips []string `json:"tips"`
}

var ingredientsSchema = &genai.Schema{
	Type:        "array",
	Description: "The ingredients of the recipe.",
	Items: &genai.Schema{
		Type:        "object",
		Description: "An ingredient in the recipe.",
		Properties: map[string]*genai.Schema{
			"name": {
				Type:        "string",
				Description: "The name of the ingredient.",
			},
			"quantity": {
				Type:        "number",
				Description: "The amount of the ingredient as a number, never text.",
			},
			"unit": {
				Type:        "string",
				Description: "The unit of the quantity, g for solids or ml for liquids.",
			},
		},
		Required: []string{"name", "quantity", "unit"},
	},
}

// ContentSchema is the generation schema for Content.
var ContentSchema = &genai.Schema{
	Type:        "object",
	Description: "The structured content of a recipe extracted from a cooking video.",
	Required:    []string{"recipe_name", "description", "servings", "ingredients", "steps", "tips"},
	Properties: map[string]*genai.Schema{
		"recipe_name": {
			Type:        "string",
			Description: "The name of the dish.",
		},
		"description": {
			Type:        "string",
			Description: "A short description of the dish in one or two sentences.",
		},
		"servings": {
			Type:        "integer",
			Description: "The number of people the listed quantities are for.",
		},
		"ingredients": ingredientsSchema,
		"steps": {
			Type:        "array",
			Description: "The preparation steps in chronological order.",
			Items: &genai.Schema{
				Type:        "object",
				Description: "A step in the recipe.",
				Properties: map[string]*genai.Schema{
					"number": {
						Type:        "integer",
						Description: "The 1-based position of the step.",
					},
					"title": {
						Type:        "string",
						Description: "A short label for the step.",
					},
					"description": {
						Type:        "string",
						Description: "The full instruction text of the step.",
					},
				},
				Required: []string{"number", "title", "description"},
			},
		},
		"tips": {
			Type:        "array",
			Description: "Optional chef tips.",
			Items: &genai.Schema{
				Type:        "string",
				Description: "A chef tip.",
			},
		},
	},
}
