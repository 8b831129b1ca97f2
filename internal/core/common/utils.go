package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSON cleans and unmarshals a JSON string into a type T.
// It handles common LLM quirks: markdown code fences around the object and
// extra prose before or after it. Parsing is two-stage: a direct unmarshal
// of the fence-stripped text, then a retry on the first-'{' to last-'}'
// substring.
func ParseJSON[T any](response string) (T, error) {
	var zero T
	s := StripFences(strings.TrimSpace(response))

	var result T
	if err := json.Unmarshal([]byte(s), &result); err == nil {
		return result, nil
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return zero, fmt.Errorf("no JSON object found in response (missing '{')")
	}

	if err := json.Unmarshal([]byte(s[start:end+1]), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}

// StripFences removes a surrounding markdown code fence, including the
// language tag on the opening fence (```json ... ```).
func StripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i != -1 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
