package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen  = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe token from a display name:
// "Ficción Histórica" → "ficcion-historica".
func GenerateSlug(input string) string {
	// Transliterate to ASCII: "Cien años" → "Cien anos"
	ascii := RemoveDiacritics(input)

	lower := strings.ToLower(ascii)

	hyphenated := strings.ReplaceAll(lower, " ", "-")

	// Keep only a-z, 0-9 and hyphens
	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")

	// Collapse runs of hyphens left by dropped characters
	normalized := multiHyphen.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}

// RemoveDiacritics strips combining marks after Unicode decomposition, so
// á→a, ñ→n, ü→u for any Latin-script input.
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return result
}
