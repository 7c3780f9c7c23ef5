// Package wire implements schema-less decoding of tag/length/value binary
// records.
//
// The scanner walks a blob as a sequence of (field number, wire type, value)
// triples without any schema to validate against. Decoding is strictly
// best-effort: truncated fields, unknown wire types, and malformed varints
// stop the scan and return every field decoded so far. No input, however
// malformed, causes an error or a panic.
//
// Two independent recovery paths are provided:
//
//   - Scan walks the wire-format structure and recovers typed fields plus
//     printable length-delimited payloads.
//   - ScanPrintable ignores framing entirely and recovers maximal runs of
//     printable bytes, catching text that corrupted tag or length varints
//     would otherwise hide.
//
// All functions are pure over immutable inputs and safe for concurrent use.
package wire
