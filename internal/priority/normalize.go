package priority

import "strings"

// CacheKey builds the normalized cache key for a title/description pair.
// Both fields are trimmed and lowercased, then joined with "|", so inputs
// differing only by case or surrounding whitespace collapse to one key.
// An absent description is the empty string.
func CacheKey(title, description string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + strings.ToLower(strings.TrimSpace(description))
}
