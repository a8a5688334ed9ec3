package llmprovider

import (
	"regexp"
	"strings"
)

var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// CleanJSON removes markdown code fences and leading/trailing prose that
// models often add around JSON output.
func CleanJSON(text string) string {
	if m := codeFence.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
