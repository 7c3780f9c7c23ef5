package lockey

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern identifies which structural convention a classified key follows.
type Pattern uint8

const (
	// PatternNone marks text that is not a key at all.
	PatternNone Pattern = iota
	// PatternEntityType marks app_EntityName_version_entity_type_display_representation keys.
	PatternEntityType
	// PatternParameterDescription marks app_SomeIntent_version_intent_parameter_<p>_description keys.
	PatternParameterDescription
	// PatternVersionBased marks prefix_CapitalizedName_version_suffix keys.
	PatternVersionBased
	// PatternConstantCase marks all-uppercase underscore-delimited keys.
	PatternConstantCase
	// PatternGenericUnderscore marks underscore-delimited keys matching no
	// specific convention.
	PatternGenericUnderscore
	// PatternUnknown marks key-shaped text no extractor could decompose.
	PatternUnknown
)

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case PatternNone:
		return "none"
	case PatternEntityType:
		return "entity_type"
	case PatternParameterDescription:
		return "parameter_description"
	case PatternVersionBased:
		return "version_based"
	case PatternConstantCase:
		return "constant_case"
	case PatternGenericUnderscore:
		return "generic_underscore"
	case PatternUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("pattern(%d)", uint8(p))
	}
}

// Analysis is the result of classifying one string.
//
// Invariant: IsKey == false implies Pattern == PatternNone and
// Confidence == 0.
type Analysis struct {
	// IsKey reports whether the text looks like a localization key.
	IsKey bool
	// Pattern is the convention the key follows.
	Pattern Pattern
	// Label is the derived human-readable label; the original text when the
	// input is not a key.
	Label string
	// Confidence grades the classification in [0, 1].
	Confidence float64
	// Components holds named substrings captured by the extractor.
	Components map[string]string
	// Original is the input text verbatim.
	Original string
}

var (
	// reVersionSegment matches an embedded semantic-version triplet
	// delimited by underscores, the strongest key signal.
	reVersionSegment = regexp.MustCompile(`_\d+\.\d+\.\d+_`)

	// reKeySuffix matches the known trailing key suffixes.
	reKeySuffix = regexp.MustCompile(`(?i)_(description|name|parameter|intent|entity|type|title|representation)$`)

	// reEmbeddedVersionKey matches a version-triplet key shape anywhere
	// inside a larger string.
	reEmbeddedVersionKey = regexp.MustCompile(`\w+_\w+_\d+\.\d+\.\d+_\w+`)
)

// constantMarkers gate the all-uppercase key signal so that short shouty
// constants are not flagged.
var constantMarkers = []string{"_INTENT_", "_TITLE", "_DESCRIPTION", "_NAME", "_PARAMETER"}

// structuralKeywords gate the many-underscores signal to strings containing
// typical key vocabulary.
var structuralKeywords = []string{"intent", "entity", "parameter", "description", "representation"}

// IsKey reports whether text appears to be a localization lookup key rather
// than genuine display text. Any one of the structural signals is
// sufficient; see the package documentation for the key conventions.
func IsKey(text string) bool {
	if text == "" {
		return false
	}

	if reVersionSegment.MatchString(text) {
		return true
	}
	if reKeySuffix.MatchString(text) {
		return true
	}
	if len(text) > 15 && isConstantCase(text) {
		for _, marker := range constantMarkers {
			if strings.Contains(text, marker) {
				return true
			}
		}
	}
	if reEmbeddedVersionKey.MatchString(text) {
		return true
	}
	if strings.Count(text, "_") >= 4 && !strings.Contains(text, " ") {
		lower := strings.ToLower(text)
		for _, keyword := range structuralKeywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}

	return false
}

// Confidence scores how strongly text resembles a localization key,
// independent of classification. Signals are additive and the result is
// clamped to [0, 1]:
//
//	+0.60  embedded version triplet
//	+0.40  recognized key suffix
//	+0.20  four or more underscores
//	+0.15  longer than 20 chars with no spaces
//	+0.30  all-uppercase with underscores
//	-0.40  spaces outnumber underscores (reads like prose)
//	-0.30  Title-case opening (reads like genuine text)
func Confidence(text string) float64 {
	if text == "" {
		return 0.0
	}

	score := 0.0

	if reVersionSegment.MatchString(text) {
		score += 0.6
	}
	if reKeySuffix.MatchString(text) {
		score += 0.4
	}
	if strings.Count(text, "_") >= 4 {
		score += 0.2
	}
	if !strings.Contains(text, " ") && len(text) > 20 {
		score += 0.15
	}
	if isConstantCase(text) {
		score += 0.3
	}

	if spaces := strings.Count(text, " "); spaces > 0 && spaces > strings.Count(text, "_") {
		score -= 0.4
	}
	if len(text) > 1 && isUpperByte(text[0]) && isLowerCased(text[1:]) {
		score -= 0.3
	}

	return clamp01(score)
}

// Classify runs text through the ordered pattern extractors and returns the
// full analysis. Extractors are tried in priority order and the first match
// wins; text that is not key-shaped at all comes back with IsKey false,
// PatternNone, and zero confidence.
func Classify(text string) Analysis {
	analysis := Analysis{
		Pattern:  PatternNone,
		Label:    text,
		Original: text,
	}

	if !IsKey(text) {
		return analysis
	}

	analysis.IsKey = true
	analysis.Confidence = Confidence(text)

	for _, extract := range extractors {
		if extract(&analysis) {
			return analysis
		}
	}

	// Key-shaped, but no extractor could decompose it.
	analysis.Pattern = PatternUnknown
	analysis.Confidence = 0.5

	return analysis
}

// isConstantCase reports whether text contains at least one letter, all its
// letters are uppercase, and it contains an underscore.
func isConstantCase(text string) bool {
	if !strings.Contains(text, "_") {
		return false
	}

	hasLetter := false
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}

	return hasLetter
}

func isUpperByte(b byte) bool { return b >= 'A' && b <= 'Z' }

// isLowerCased reports whether text contains at least one letter and no
// uppercase letters.
func isLowerCased(text string) bool {
	hasLetter := false
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			return false
		}
		if r >= 'a' && r <= 'z' {
			hasLetter = true
		}
	}

	return hasLetter
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
