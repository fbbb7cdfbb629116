// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package recipe

import (
	"testing"
)

const sampleJSON = `{
  "recipe_name": "Pasta",
  "description": "A simple pasta.",
  "servings": 2,
  "ingredients": [{"name": "Flour", "quantity": 200, "unit": "g"}],
  "steps": [{"number": 1, "title": "Mix", "description": "Combine."}],
  "tips": ["Salt the water."]
}`

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"plain json", sampleJSON, false},
		{"fenced json", "```json\n" + sampleJSON + "\n```", false},
		{"bare fence", "```\n" + sampleJSON + "\n```", false},
		{"surrounding prose", "Here is the recipe:\n" + sampleJSON + "\nEnjoy!", false},
		{"not json", "the video shows someone making pasta", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := DecodeContent(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if content.Name != "Pasta" {
				t.Errorf("recipe name = %q, want %q", content.Name, "Pasta")
			}
			if content.Servings != 2 {
				t.Errorf("servings = %d, want 2", content.Servings)
			}
			if len(content.Ingredients) != 1 || content.Ingredients[0].Quantity != 200 {
				t.Errorf("unexpected ingredients: %+v", content.Ingredients)
			}
			if len(content.Steps) != 1 || content.Steps[0].Number != 1 {
				t.Errorf("unexpected steps: %+v", content.Steps)
			}
		})
	}
}
