package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Whitespace covers Unicode space separators, not only ASCII \s.
	cityNameRegex = regexp.MustCompile(`^[a-zA-Z\p{Zs}\t\n\v\f\r\x{2028}\x{2029}\x{feff},-]*$`)
	themeTagRegex = regexp.MustCompile(`^[a-z][a-z0-9-]{0,31}$`)
)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// HasMinLength reports whether s has at least n characters
func HasMinLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

// IsCityName accepts letters, whitespace, commas and hyphens only
func IsCityName(s string) bool {
	return cityNameRegex.MatchString(s)
}

// IsThemeTag validates a persisted theme tag such as "day" or "night"
func IsThemeTag(s string) bool {
	return themeTagRegex.MatchString(s)
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
