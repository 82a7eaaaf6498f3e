// Package chatcolor translates the ampersand color-code scheme used in item
// definitions into the host's native section-sign formatting.
package chatcolor

import (
	"regexp"
	"strings"
)

const (
	// ColorChar is the host's native formatting prefix
	ColorChar = '§'

	// AltColorChar is the prefix accepted in configuration and item definitions
	AltColorChar = '&'

	// formatCodes lists every character that may follow a prefix
	formatCodes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"
)

var stripPattern = regexp.MustCompile(`(?i)` + string(ColorChar) + `[0-9A-FK-ORX]`)

// Translate converts "&a" style markers into native "§a" markers
func Translate(text string) string {
	return TranslateAlternateColorCodes(AltColorChar, text)
}

// TranslateAlternateColorCodes replaces altChar with ColorChar wherever it is
// directly followed by a valid format code. The code itself is lower-cased.
// Any other occurrence of altChar is left untouched.
func TranslateAlternateColorCodes(altChar rune, text string) string {
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] == altChar && strings.ContainsRune(formatCodes, runes[i+1]) {
			runes[i] = ColorChar
			runes[i+1] = toLower(runes[i+1])
		}
	}
	return string(runes)
}

// Strip removes native format markers, leaving the plain text
func Strip(text string) string {
	return stripPattern.ReplaceAllString(text, "")
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
