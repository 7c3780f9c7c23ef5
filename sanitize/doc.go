// Package sanitize repairs candidate strings recovered from schema-less
// binary decoding.
//
// Text pulled out of misaligned wire-format parsing frequently carries
// single-byte framing artifacts that happen to be printable: a stray
// delimiter, a length-prefix digit, a truncated quote. The pipeline strips
// those artifacts or rejects the candidate outright when it is mostly noise.
//
// The pipeline is an explicit ordered list of pure steps. Ordering is load
// bearing: structural rejection runs before the over-strip measurement, and
// the over-strip measurement runs before concatenation splitting, so that an
// intentional split is never misjudged as information loss. Each step sees
// the output of the previous one and may end the pipeline with a rejection.
//
// All functions are pure and safe for concurrent use.
package sanitize
