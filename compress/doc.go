// Package compress provides transparent decompression of archived blobs.
//
// Catalog blobs are occasionally stored compressed. The package sniffs the
// frame magic at the start of a blob and, when a known format is recognized,
// decompresses it so the analysis layers can scan the plain bytes. Detection
// failure or a corrupted frame is not an error condition for callers that
// use Expand: the raw bytes are simply analyzed as-is.
//
// Zstandard decompression uses the cgo-backed gozstd implementation when the
// cgo_zstd build tag is set, and the pure-Go implementation otherwise.
package compress
