// Package report composes the recovery layers into per-blob analysis reports.
//
// A Report ties together everything recoverable from one blob: its size and
// content fingerprint, the compression framing that was expanded (if any),
// the decoded wire fields, and the merged, sanitized, readable string set.
// Specialized entry points derive additional facts for blob roles that carry
// known conventions: AnalyzeRequirements spots plausible OS version numbers
// in small varint fields, AnalyzeTypeInstance collects UTI-shaped type
// identifiers, and AnalyzeCoercion is the generic form.
//
// Like the layers beneath it, the package never fails. An undecodable blob
// produces a report with whatever could be recovered, down to an empty one.
package report
