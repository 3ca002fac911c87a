package interpret

import (
	"encoding/json"
	"strings"
)

// ParseModelJSON decodes a model reply into a Result. Models sometimes
// wrap JSON in markdown code fences, so those are stripped first.
// Returns nil when the payload is not valid JSON or carries no keywords.
func ParseModelJSON(raw string) *Result {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil
	}
	if result.InterpretedQuestion == "" || len(result.SearchKeywords) == 0 {
		return nil
	}
	return &result
}
