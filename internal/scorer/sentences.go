package scorer

import "strings"

// SplitSentences splits text on period boundaries into trimmed, non-empty
// sentences. Shared by the grammar and sentence-complexity scorers so both
// see identical sentence lists.
func SplitSentences(text string) []string {
	parts := strings.Split(text, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
