package transkey

import "strings"

// groupSize is the number of symbols between dashes in a displayed key.
const groupSize = 4

// WithDashes splits a transport key into dash-separated groups of four
// symbols for display.
func WithDashes(key string) string {
	var sb strings.Builder
	for i := 0; i < len(key); i += groupSize {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(key[i:min(i+groupSize, len(key))])
	}
	return sb.String()
}

// StripDashes removes display dashes and surrounding whitespace from a key.
func StripDashes(key string) string {
	return strings.ReplaceAll(strings.TrimSpace(key), "-", "")
}
