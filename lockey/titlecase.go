package lockey

import (
	"regexp"
	"strings"
)

var (
	// reAcronymBoundary separates a run of uppercase letters from a
	// following capitalized word: "URLHandler" -> "URL Handler".
	reAcronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)

	// reCamelBoundary separates a lowercase letter from a following
	// uppercase letter: "IncreaseWarmth" -> "Increase Warmth".
	reCamelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
)

// constantSuffixes are trailing key suffixes removed before title-casing a
// CONSTANT_CASE key, longest match first.
var constantSuffixes = []string{
	"_INTENT_TITLE",
	"_INTENT_DESCRIPTION",
	"_INTENT",
	"_TITLE",
	"_DESCRIPTION",
	"_NAME",
}

// CamelToTitle converts camelCase or PascalCase text to Title Case with
// spaces, preserving recognized acronyms in their canonical form.
//
// Examples:
//
//	CamelToTitle("IncreaseWarmth")          // "Increase Warmth"
//	CamelToTitle("SearchableWebsiteEntity") // "Searchable Website Entity"
//	CamelToTitle("URLHandler")              // "URL Handler"
//
// Parameters:
//   - text: camelCase or PascalCase input
//
// Returns:
//   - string: Title Case text with spaces inserted at case boundaries
func CamelToTitle(text string) string {
	if text == "" {
		return text
	}

	spaced := reAcronymBoundary.ReplaceAllString(text, "$1 $2")
	spaced = reCamelBoundary.ReplaceAllString(spaced, "$1 $2")

	words := strings.Fields(spaced)
	for i, word := range words {
		words[i] = renderWord(word)
	}

	return strings.Join(words, " ")
}

// ConstantToTitle converts a CONSTANT_CASE key to Title Case, removing a
// recognized trailing key suffix first.
//
// Examples:
//
//	ConstantToTitle("CONTROL_CENTER_TOGGLE_RECORDING_INTENT_TITLE") // "Control Center Toggle Recording"
//	ConstantToTitle("URL_HANDLER")                                  // "URL Handler"
//
// Parameters:
//   - text: CONSTANT_CASE input
//
// Returns:
//   - string: Title Case text
func ConstantToTitle(text string) string {
	if text == "" {
		return text
	}

	for _, suffix := range constantSuffixes {
		if strings.HasSuffix(text, suffix) {
			text = text[:len(text)-len(suffix)]
			break
		}
	}

	words := strings.Split(text, "_")
	rendered := words[:0]
	for _, word := range words {
		if word == "" {
			continue
		}
		if canonical, ok := acronyms[word]; ok {
			rendered = append(rendered, canonical)
			continue
		}
		rendered = append(rendered, capitalize(word))
	}

	return strings.Join(rendered, " ")
}
