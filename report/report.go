package report

import (
	"encoding/hex"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"github.com/salvagekit/salvage/compress"
	"github.com/salvagekit/salvage/lockey"
	"github.com/salvagekit/salvage/sanitize"
	"github.com/salvagekit/salvage/wire"
)

// RecoveredString is one string that survived recovery and sanitization.
type RecoveredString struct {
	// Raw is the text exactly as it appeared in the blob.
	Raw string `json:"raw"`
	// Clean is the sanitized form of Raw.
	Clean string `json:"clean"`
	// Source records how the string was discovered.
	Source wire.Source `json:"-"`
	// Readable is the display-name resolution for Clean.
	Readable lockey.ReadableName `json:"readable"`
}

// Report is the full analysis of one blob.
type Report struct {
	// Size is the blob length in bytes, before decompression.
	Size int `json:"size"`
	// Fingerprint is the xxhash64 of the raw blob bytes. Identical blobs
	// stored on many catalog rows share a fingerprint.
	Fingerprint uint64 `json:"fingerprint"`
	// Compression is the framing that was expanded before analysis, or
	// KindNone when the blob was analyzed as-is.
	Compression compress.Kind `json:"-"`
	// Fields lists the decoded wire fields in blob order.
	Fields []wire.Field `json:"-"`
	// Strings lists every distinct recovered string that passed sanitization,
	// wire-delimited discoveries first, then raw-scan ones.
	Strings []RecoveredString `json:"strings"`
}

// Analyze produces the full analysis of one blob.
//
// The blob is transparently decompressed when a known compression framing is
// recognized, then scanned twice: structurally for wire fields and delimited
// strings, and byte-wise for printable runs the structured scan missed. The
// merged candidate set is deduplicated by raw text, sanitized, and resolved
// to readable names. Candidates the sanitizer rejects are dropped.
//
// Parameters:
//   - blob: Raw bytes to analyze (never mutated)
//
// Returns:
//   - Report: Everything recovered; the zero-valued report for an empty blob
func Analyze(blob []byte) Report {
	rep := Report{
		Size:        len(blob),
		Fingerprint: xxhash.Sum64(blob),
	}
	if len(blob) == 0 {
		return rep
	}

	plain, kind := compress.Expand(blob)
	rep.Compression = kind

	scanned := wire.Scan(plain)
	rep.Fields = scanned.Fields

	candidates := scanned.Strings
	candidates = append(candidates, wire.ScanPrintable(plain, wire.MinStringLength)...)

	seen := make(map[string]struct{}, len(candidates))
	for _, cand := range candidates {
		if _, dup := seen[cand.Text]; dup {
			continue
		}
		seen[cand.Text] = struct{}{}

		clean, ok := sanitize.Clean(cand.Text)
		if !ok {
			continue
		}

		rep.Strings = append(rep.Strings, RecoveredString{
			Raw:      cand.Text,
			Clean:    clean,
			Source:   cand.Source,
			Readable: lockey.GenerateReadable(clean, ""),
		})
	}

	return rep
}

// FieldValues returns the decoded fields as export-friendly values keyed the
// way wire.Result.FieldMap keys them. Varint fields map to uint64, fixed
// fields to their float value, and delimited fields to the payload text when
// printable or its hex encoding otherwise.
//
// Returns:
//   - map[string]any: Rendered field values keyed by disambiguated field key
func (r Report) FieldValues() map[string]any {
	values := make(map[string]any, len(r.Fields))
	seen := make(map[string]int, len(r.Fields))

	for _, f := range r.Fields {
		key := f.Key()
		seen[key]++
		if n := seen[key]; n > 1 {
			key = wire.OccurrenceKey(key, n)
		}
		values[key] = renderFieldValue(f)
	}

	return values
}

func renderFieldValue(f wire.Field) any {
	switch f.Type {
	case wire.TypeVarint:
		return f.Varint
	case wire.TypeFixed64:
		return f.Float64
	case wire.TypeFixed32:
		return f.Float32
	case wire.TypeDelimited:
		if text, ok := printableText(f.Bytes); ok {
			return text
		}

		return hex.EncodeToString(f.Bytes)
	default:
		return nil
	}
}

func printableText(payload []byte) (string, bool) {
	if len(payload) == 0 || !utf8.Valid(payload) {
		return "", false
	}

	text := string(payload)
	for _, r := range text {
		if !unicode.IsPrint(r) {
			return "", false
		}
	}

	return text, true
}
