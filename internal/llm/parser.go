package llm

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON means all extraction strategies failed; the caller owns the fallback.
var ErrNoJSON = errors.New("no valid JSON object in model output")

var fencedRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ExtractJSON pulls a JSON object out of free-form model output.
// Strategies, first success wins:
//  1. parse the trimmed text directly
//  2. regex: a fenced code block, or a bare object containing marker
//  3. strip markdown fences and re-parse
//
// marker is a field name expected inside the object ("" matches any object).
func ExtractJSON(content, marker string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return trimmed, nil
	}

	if m := fencedRe.FindStringSubmatch(content); m != nil {
		if json.Valid([]byte(m[1])) {
			return m[1], nil
		}
	}

	bare := `(?s)\{.*\}`
	if marker != "" {
		bare = `(?s)\{.*"` + regexp.QuoteMeta(marker) + `".*\}`
	}
	if m := regexp.MustCompile(bare).FindString(content); m != "" {
		if json.Valid([]byte(m)) {
			return m, nil
		}
	}

	stripped := strings.ReplaceAll(content, "```json", "")
	stripped = strings.ReplaceAll(stripped, "```", "")
	stripped = strings.TrimSpace(stripped)
	if json.Valid([]byte(stripped)) && strings.HasPrefix(stripped, "{") {
		return stripped, nil
	}

	return "", ErrNoJSON
}
