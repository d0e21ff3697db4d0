package textutil

import "strings"

// TrimSentence bounds s to at most max runes, preferring to cut at the
// last sentence boundary within the limit. When no period falls inside
// the limit the text is hard-truncated with room left for a closing
// period. The result always ends with a period.
func TrimSentence(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	window := runes[:max]
	for i := len(window) - 1; i >= 0; i-- {
		if window[i] == '.' {
			return string(window[:i+1])
		}
	}

	return strings.TrimRight(string(window[:max-1]), " ") + "."
}

// TruncateRunes caps s at max runes with no regard for sentence
// boundaries. Used for the transport's caption and message limits.
func TruncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
