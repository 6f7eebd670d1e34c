package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/astroracle/starway/ai"
)

// extractContent pulls the response text out of a completion. Compatible-mode
// deployments disagree about where the text lives, so three wire shapes are
// accepted for the same logical field:
//
//  1. the choice's Content attribute (the common case),
//  2. a "content"/"text" key in the choice's generation info map,
//  3. text nested inside a serialized JSON object, e.g. {"text": "..."}.
//
// Anything else is a malformed response and wraps ai.ErrGateway.
func extractContent(response *llms.ContentResponse) (string, error) {
	if response == nil || len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: response carries no choices", ai.ErrGateway)
	}
	choice := response.Choices[0]

	text := strings.TrimSpace(choice.Content)
	if text == "" {
		text = strings.TrimSpace(generationInfoText(choice.GenerationInfo))
	}
	if text == "" {
		return "", fmt.Errorf("%w: empty response content", ai.ErrGateway)
	}

	text = stripFences(text)
	if unwrapped, ok := unwrapJSONText(text); ok {
		text = unwrapped
	}
	if text == "" {
		return "", fmt.Errorf("%w: empty response content", ai.ErrGateway)
	}
	return text, nil
}

func generationInfoText(info map[string]any) string {
	for _, key := range []string{"content", "text"} {
		if v, ok := info[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// stripFences removes a surrounding markdown code fence if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// unwrapJSONText detects a response that arrived as a serialized object
// wrapping the actual text, e.g. {"text": "..."} or {"content": "..."}.
func unwrapJSONText(s string) (string, bool) {
	if !strings.HasPrefix(s, "{") {
		return "", false
	}
	var wrapper map[string]any
	if err := json.Unmarshal([]byte(s), &wrapper); err != nil {
		return "", false
	}
	for _, key := range []string{"text", "content"} {
		if v, ok := wrapper[key]; ok {
			if inner, ok := v.(string); ok && inner != "" {
				return strings.TrimSpace(inner), true
			}
		}
	}
	return "", false
}
