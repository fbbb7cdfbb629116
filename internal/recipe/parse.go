// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package recipe

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CleanModelJSON strips the markdown code fences models sometimes wrap JSON
// output in, falling back to the outermost braces when the text has extra
// prose around the object.
func CleanModelJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		return strings.TrimSpace(text)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}

// DecodeContent parses model output into a Content, tolerating code fences
// and surrounding prose.
func DecodeContent(text string) (*Content, error) {
	var content Content
	if err := json.Unmarshal([]byte(CleanModelJSON(text)), &content); err != nil {
		return nil, fmt.Errorf("recipe: unmarshalling model output: %w", err)
	}
	return &content, nil
}
