package util

import "strings"

// StripCodeFences removes a leading ```json or ``` fence and a trailing ```
// fence from a raw model response. This must run before any JSON parse; the
// model wraps structured output in Markdown fences often enough that parsing
// without it is unreliable.
func StripCodeFences(text string) string {
	clean := strings.TrimSpace(text)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")

	return strings.TrimSpace(clean)
}
