package matcher

import (
	"strings"
	"unicode"
)

// Normalize lower-cases text, replaces every rune that is not a letter,
// digit, underscore or whitespace with a space, collapses whitespace runs
// and trims the result. Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lowered)
	return strings.Join(strings.Fields(cleaned), " ")
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// tokenSet splits normalised text into its set of unique words.
func tokenSet(normalized string) map[string]struct{} {
	fields := strings.Fields(normalized)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
