package compare

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat marks a response that reached us but did not decode as the
// expected JSON object.
var ErrInvalidFormat = errors.New("model returned an invalid format")

// StripFence removes a surrounding ```json markdown fence if present. Models
// sometimes wrap the object despite being told not to. Input without a fence
// is returned unchanged, so stripping is safe to apply unconditionally.
func StripFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```json") {
		return s
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// ParseResult decodes the raw model response into a Result after fence
// stripping. Decode failures wrap ErrInvalidFormat.
func ParseResult(raw string) (*Result, error) {
	cleaned := StripFence(raw)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	return &result, nil
}
