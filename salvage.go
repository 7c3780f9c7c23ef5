// Package salvage recovers readable data from schema-less binary blobs.
//
// Salvage targets the blobs found in action catalog databases: binary
// payloads in a protobuf-like wire format stored without any schema to
// decode them against. Instead of conformant decoding, the package family
// performs best-effort recovery in layers:
//
//   - Structural decoding of (field number, wire type, value) triples,
//     degrading to partial results on any malformed framing
//   - Raw printable-run scanning for text the structured pass missed
//   - An ordered sanitization pipeline that strips encoding artifacts
//     from recovered strings and rejects binary garbage
//   - Localization-key classification that turns raw keys like
//     "photos_IncreaseWarmth_1.0.0_intent_title" into display names
//
// # Basic Usage
//
// Analyzing a blob:
//
//	import "github.com/salvagekit/salvage"
//
//	rep := salvage.DecodeBlob(blob)
//	for _, s := range rep.Strings {
//	    fmt.Println(s.Readable.Value)
//	}
//
// Cleaning a single recovered string:
//
//	cleaned, ok := salvage.Sanitize(`(Increase Warmth29"`)
//	// "Increase Warmth", true
//
// Repairing a localization key:
//
//	name := salvage.GenerateReadableName("photos_IncreaseWarmth_1.0.0_intent_title", "")
//	// name.Value == "Increase Warmth", name.Synthetic == true
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the wire,
// sanitize, lockey, and report packages, simplifying the most common use
// cases. For fine-grained control, use those packages directly. The extract
// package builds full catalog schemas on top of them.
package salvage

import (
	"github.com/salvagekit/salvage/lockey"
	"github.com/salvagekit/salvage/report"
	"github.com/salvagekit/salvage/sanitize"
)

// DecodeBlob analyzes one binary blob: transparent decompression, structural
// wire decoding, raw string recovery, sanitization, and readable-name
// resolution. It never fails; an undecodable blob yields a report with
// whatever could be recovered.
//
// Parameters:
//   - blob: Raw bytes to analyze (never mutated)
//
// Returns:
//   - report.Report: Full analysis of the blob
func DecodeBlob(blob []byte) report.Report {
	return report.Analyze(blob)
}

// Sanitize cleans one recovered string: strips leading and trailing binary
// artifacts, splits concatenation garbage, and rejects strings that are
// structural noise rather than text.
//
// Parameters:
//   - text: Raw recovered string
//
// Returns:
//   - string: Cleaned text ("" when rejected)
//   - bool: false when the string was rejected
func Sanitize(text string) (string, bool) {
	return sanitize.Clean(text)
}

// GenerateReadableName derives a display name from a possibly-key-shaped
// value, falling back to the supplied default when the key cannot be parsed.
//
// Parameters:
//   - text: Possibly-key-shaped source value
//   - fallback: Replacement when the key cannot be parsed ("" for none)
//
// Returns:
//   - lockey.ReadableName: Display value with transformation metadata
func GenerateReadableName(text, fallback string) lockey.ReadableName {
	return lockey.GenerateReadable(text, fallback)
}
