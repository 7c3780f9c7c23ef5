package wire

import (
	"encoding/binary"
	"math"
	"unicode"
	"unicode/utf8"
)

// MaxDelimitedLength is the plausibility ceiling for length-delimited
// payloads. Lengths above it almost always come from a length varint read at
// a misaligned offset, so the scanner stops rather than chase a runaway span.
const MaxDelimitedLength = 1000

// Result holds everything Scan recovered from a blob.
type Result struct {
	// Fields lists decoded fields in blob order. Duplicate field numbers are
	// retained; nothing is overwritten.
	Fields []Field
	// Strings lists printable length-delimited payloads, tagged
	// SourceWireDelimited, in blob order.
	Strings []Candidate
}

// FieldMap returns the fields keyed by "field_<number>_<type>". When several
// fields share a number and wire type, later occurrences get an occurrence
// suffix ("field_2_varint_2", "field_2_varint_3", ...) so that every decoded
// field stays addressable.
//
// Returns:
//   - map[string]Field: Decoded fields keyed by disambiguated field key
func (r Result) FieldMap() map[string]Field {
	fields := make(map[string]Field, len(r.Fields))
	seen := make(map[string]int, len(r.Fields))

	for _, f := range r.Fields {
		key := f.Key()
		seen[key]++
		if n := seen[key]; n > 1 {
			key = OccurrenceKey(key, n)
		}
		fields[key] = f
	}

	return fields
}

// Scan walks blob as a sequence of (field number, wire type, value) triples.
//
// At each offset a tag varint is decoded; field number is tag>>3 and wire
// type is tag&0x7. Dispatch per wire type:
//
//   - TypeVarint: decode one varint value.
//   - TypeFixed64: read 8 bytes as a little-endian double.
//   - TypeDelimited: decode a length varint, then slice the payload. If the
//     payload decodes as printable UTF-8 it is additionally recorded as a
//     string candidate; the raw payload is always recorded as a field so
//     nested binary structures remain inspectable.
//   - TypeFixed32: read 4 bytes as a little-endian float.
//
// Any condition that would read past the end of the blob, a delimited length
// above MaxDelimitedLength, or an unknown wire type (including the deprecated
// group types) stops the scan and returns the fields decoded so far. Scan
// never fails: the zero Result is the answer for an undecodable blob.
//
// The scan is non-recursive; nested length-delimited messages are not
// descended into structurally, only inspected for embedded printable text by
// the caller via ScanPrintable.
//
// Parameters:
//   - blob: Raw bytes to scan (never mutated)
//
// Returns:
//   - Result: Decoded fields and wire-delimited string candidates
func Scan(blob []byte) Result {
	var res Result

	offset := 0
	for offset < len(blob) {
		tag, n := Uvarint(blob[offset:])
		if n == 0 {
			break
		}
		offset += n

		number := tag >> 3
		wireType := Type(tag & 0x7)

		switch wireType {
		case TypeVarint:
			value, vn := Uvarint(blob[offset:])
			if vn == 0 {
				return res
			}
			res.Fields = append(res.Fields, Field{Number: number, Type: wireType, Varint: value})
			offset += vn

		case TypeFixed64:
			if offset+8 > len(blob) {
				return res
			}
			bits := binary.LittleEndian.Uint64(blob[offset:])
			res.Fields = append(res.Fields, Field{Number: number, Type: wireType, Float64: math.Float64frombits(bits)})
			offset += 8

		case TypeDelimited:
			length, ln := Uvarint(blob[offset:])
			if ln == 0 {
				return res
			}
			offset += ln
			if length > MaxDelimitedLength || offset+int(length) > len(blob) {
				return res
			}

			payload := blob[offset : offset+int(length)]
			if text, ok := printableText(payload); ok {
				res.Strings = append(res.Strings, Candidate{
					Start:  offset,
					End:    offset + int(length),
					Text:   text,
					Source: SourceWireDelimited,
				})
			}
			res.Fields = append(res.Fields, Field{Number: number, Type: wireType, Bytes: payload})
			offset += int(length)

		case TypeFixed32:
			if offset+4 > len(blob) {
				return res
			}
			bits := binary.LittleEndian.Uint32(blob[offset:])
			res.Fields = append(res.Fields, Field{Number: number, Type: wireType, Float32: math.Float32frombits(bits)})
			offset += 4

		default:
			// Unknown wire type carries no self-describing length; guessing a
			// skip distance would desynchronize everything after it.
			return res
		}
	}

	return res
}

// printableText reports whether payload is valid UTF-8 consisting entirely
// of printable runes, and returns the decoded text when it is.
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
