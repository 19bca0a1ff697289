package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed is returned when content is not JSON, bare or fenced.
var ErrParseFailed = errors.New("failed to parse response")

var fencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)\\n?```")

// Parse decodes content as JSON into T. Model output frequently wraps JSON
// in a markdown code fence, so the first fenced block is tried when direct
// decoding fails.
func Parse[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	if err := json.Unmarshal([]byte(content), &result); err == nil {
		return result, nil
	}

	if m := fencePattern.FindStringSubmatch(content); len(m) >= 2 {
		var fenced T
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &fenced); err == nil {
			return fenced, nil
		}
	}

	return result, fmt.Errorf("%w: %s", ErrParseFailed, truncate(content, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
