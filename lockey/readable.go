package lockey

import (
	"fmt"
	"regexp"
	"strings"
)

// Source tags where a readable name came from.
type Source uint8

const (
	// SourceOriginal means the input was usable display text as-is.
	SourceOriginal Source = iota
	// SourceParsedKey means the value was derived from the key structure.
	SourceParsedKey
	// SourceCleanedEmbedded means keys embedded in otherwise-good prose were
	// replaced in place.
	SourceCleanedEmbedded
	// SourceFallback means the caller-supplied fallback was used.
	SourceFallback
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceOriginal:
		return "original"
	case SourceParsedKey:
		return "parsed_key"
	case SourceCleanedEmbedded:
		return "cleaned_embedded"
	case SourceFallback:
		return "fallback"
	default:
		return fmt.Sprintf("source(%d)", uint8(s))
	}
}

// ReadableName is the result of repairing one possibly-key-shaped value.
// It is computed once per input and consumed immediately by the caller; it
// is not persisted independently.
type ReadableName struct {
	// Value is the display text to use.
	Value string
	// Synthetic reports whether Value was derived rather than read verbatim.
	Synthetic bool
	// Source tags how Value was obtained.
	Source Source
	// OriginalKey is the raw key when Synthetic is true, "" otherwise.
	OriginalKey string
	// Confidence grades the transformation in [0, 1].
	Confidence float64
}

var (
	// reEmbeddedKey finds whole version-triplet keys inside free-form text.
	reEmbeddedKey = regexp.MustCompile(`\b\w+_\w+_\d+\.\d+\.\d+_\w+\b`)

	// reEmbeddedConstant finds long all-caps underscore runs inside text.
	reEmbeddedConstant = regexp.MustCompile(`\b[A-Z][A-Z_]{10,}\b`)
)

// CleanEmbeddedKeys scans free-form text for embedded localization keys and
// replaces each with its derived readable label, lower-cased to blend into
// the surrounding prose. A key is replaced only when its classification
// confidence exceeds 0.7; text outside matched spans is left verbatim.
//
// Example:
//
//	CleanEmbeddedKeys("sort the browser_searchablewebsiteentity_1.0.0_entity_type_display_representation by")
//	// "sort the searchablewebsite by"
//
// Parameters:
//   - text: Prose that may contain embedded keys
//
// Returns:
//   - string: Text with confident key matches replaced in place
func CleanEmbeddedKeys(text string) string {
	if text == "" {
		return text
	}

	cleaned := reEmbeddedKey.ReplaceAllStringFunc(text, func(key string) string {
		parsed := Classify(key)
		if parsed.IsKey && parsed.Confidence > 0.7 {
			return strings.ToLower(parsed.Label)
		}

		return key
	})

	cleaned = reEmbeddedConstant.ReplaceAllStringFunc(cleaned, func(key string) string {
		if strings.Contains(key, "_") && Confidence(key) > 0.7 {
			return strings.ToLower(ConstantToTitle(key))
		}

		return key
	})

	return cleaned
}

// GenerateReadable derives a display value from a possibly-key-shaped input.
//
// Resolution order:
//
//  1. Input that is not key-shaped is returned unchanged (SourceOriginal).
//  2. Key-shaped prose (contains a space) with embedded keys is repaired in
//     place when repair changes it (SourceCleanedEmbedded, confidence 0.85).
//  3. A full key whose classification confidence exceeds 0.6 yields the
//     extracted label (SourceParsedKey).
//  4. Otherwise the fallback is used when supplied (SourceFallback), else
//     the original text is returned unchanged.
//
// Parameters:
//   - text: Possibly-key-shaped source value
//   - fallback: Optional replacement when the key cannot be parsed ("" for none)
//
// Returns:
//   - ReadableName: Display value with transformation metadata
func GenerateReadable(text, fallback string) ReadableName {
	result := ReadableName{
		Value:      text,
		Source:     SourceOriginal,
		Confidence: 1.0,
	}

	if text == "" {
		if fallback != "" {
			result.Value = fallback
			result.Source = SourceFallback
		}

		return result
	}

	if !IsKey(text) {
		return result
	}

	if strings.Contains(text, " ") {
		if cleaned := CleanEmbeddedKeys(text); cleaned != text {
			return ReadableName{
				Value:       cleaned,
				Synthetic:   true,
				Source:      SourceCleanedEmbedded,
				OriginalKey: text,
				Confidence:  0.85,
			}
		}
	}

	parsed := Classify(text)
	if parsed.IsKey && parsed.Confidence > 0.6 {
		return ReadableName{
			Value:       parsed.Label,
			Synthetic:   true,
			Source:      SourceParsedKey,
			OriginalKey: text,
			Confidence:  parsed.Confidence,
		}
	}

	if fallback != "" {
		result.Value = fallback
		result.Source = SourceFallback
	}

	return result
}
