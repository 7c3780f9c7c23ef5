// Package lockey classifies recovered text as a localization lookup key or
// genuine human-readable text, and derives a best-effort readable label from
// key-shaped input.
//
// Localization keys are internal identifiers that leak into fields meant to
// hold display text when the corresponding localized string is missing from
// the source catalog. They follow a handful of structural conventions:
//
//   - version-based: photos_IncreaseWarmth_1.0.0_intent_title
//   - entity type:   browser_SearchableWebsiteEntity_1.0.0_entity_type_display_representation
//   - constant case: CONTROL_CENTER_TOGGLE_RECORDING_INTENT_TITLE
//   - keys embedded inside otherwise-good prose
//
// Classification and extraction are purely lexical: an ordered list of
// (predicate, extractor) pairs is evaluated in sequence and the first match
// wins. Every derived label is graded with a confidence score; callers
// decide how much synthetic labeling they tolerate.
//
// All functions are pure and safe for concurrent use.
package lockey
