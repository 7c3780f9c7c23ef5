// Package extract reads an action catalog database and assembles complete,
// validated action schemas from it.
//
// The catalog stores display text in per-locale localization tables, and a
// sizeable fraction of rows carry raw localization keys where localized text
// should be. The schema builder repairs those values through the lockey
// package and records repair metadata (synthetic flag, original key,
// confidence, source) alongside every repaired field, so downstream
// consumers can tell derived labels from authored ones.
//
// Validation grades each assembled schema: unrepaired localization keys are
// issues, synthetic repairs and complex type identifiers are warnings, and
// both feed a 0-100 quality score with collection-level aggregation.
package extract
