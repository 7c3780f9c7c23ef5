package wire

import "fmt"

// Type identifies how a field's value is framed on the wire.
//
// Only the four types the scanner can dispatch on are decoded; the deprecated
// group types (3 and 4) carry no self-describing length and stop the scan.
type Type uint8

const (
	// TypeVarint frames the value as a base-128 variable-length integer.
	TypeVarint Type = 0
	// TypeFixed64 frames the value as 8 little-endian bytes (double).
	TypeFixed64 Type = 1
	// TypeDelimited frames the value as a length-prefixed byte span.
	TypeDelimited Type = 2
	// TypeStartGroup is the deprecated group-start marker (not decoded).
	TypeStartGroup Type = 3
	// TypeEndGroup is the deprecated group-end marker (not decoded).
	TypeEndGroup Type = 4
	// TypeFixed32 frames the value as 4 little-endian bytes (float).
	TypeFixed32 Type = 5
)

// String returns the short name used in field keys.
func (t Type) String() string {
	switch t {
	case TypeVarint:
		return "varint"
	case TypeFixed64:
		return "double"
	case TypeDelimited:
		return "bytes"
	case TypeFixed32:
		return "float"
	case TypeStartGroup:
		return "start_group"
	case TypeEndGroup:
		return "end_group"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Field is one decoded (field number, wire type, value) triple.
//
// Exactly one value member is meaningful, selected by Type:
// Varint for TypeVarint, Float64 for TypeFixed64, Float32 for TypeFixed32,
// and Bytes for TypeDelimited. Bytes is a sub-slice of the scanned blob and
// must not be modified.
type Field struct {
	// Number is the field number recovered from the tag varint.
	Number uint64
	// Type is the wire type the field was decoded under.
	Type Type
	// Varint holds the value for TypeVarint fields.
	Varint uint64
	// Float64 holds the value for TypeFixed64 fields.
	Float64 float64
	// Float32 holds the value for TypeFixed32 fields.
	Float32 float32
	// Bytes holds the payload for TypeDelimited fields.
	Bytes []byte
}

// Key returns the base map key for the field, disambiguating field number
// and wire type: "field_<number>_<type>". Multiple fields may share a number
// under malformed input; FieldMap appends an occurrence index so that later
// fields never overwrite earlier ones.
func (f Field) Key() string {
	return fmt.Sprintf("field_%d_%s", f.Number, f.Type)
}

// OccurrenceKey appends an occurrence index to a base field key. FieldMap
// applies it from the second occurrence onward; callers building their own
// keyed views use it the same way so keys stay consistent across layers.
func OccurrenceKey(key string, occurrence int) string {
	return fmt.Sprintf("%s_%d", key, occurrence)
}

// Source tags how a candidate string was discovered.
type Source uint8

const (
	// SourceWireDelimited marks text recovered from a length-delimited field.
	SourceWireDelimited Source = iota
	// SourceRawScan marks text recovered by the raw printable-run scanner.
	SourceRawScan
)

// String returns the discovery-method name.
func (s Source) String() string {
	switch s {
	case SourceWireDelimited:
		return "wire_delimited"
	case SourceRawScan:
		return "raw_scan"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Candidate is a text fragment recovered from a blob before sanitization has
// validated it. Start and End delimit the byte range [Start, End) within the
// source blob. Candidates are produced, never mutated.
type Candidate struct {
	Start  int
	End    int
	Text   string
	Source Source
}
