package lockey

import (
	"regexp"
	"strings"
)

// extractor attempts to decompose a key already flagged by IsKey. It fills
// in the analysis and returns true on match. Extractors are evaluated in
// priority order, most specific first; the first match wins.
type extractor func(*Analysis) bool

var extractors = []extractor{
	extractEntityType,
	extractParameterDescription,
	extractVersionBased,
	extractConstantCase,
	extractGenericUnderscore,
}

var (
	// reEntityTypeKey matches entity display-representation keys, including
	// fully lowercased ones:
	// browser_SearchableWebsiteEntity_1.0.0_entity_type_display_representation
	reEntityTypeKey = regexp.MustCompile(`(?i)^(\w+)_(\w+entity)_(\d+\.\d+\.\d+)_entity_type_display_representation$`)

	// reParameterKey matches intent parameter description keys:
	// browser_SearchWebsiteIntent_1.0.0_intent_parameter_website_description
	reParameterKey = regexp.MustCompile(`^(\w+)_(\w+Intent)_(\d+\.\d+\.\d+)_intent_parameter_(\w+)_description$`)

	// reVersionKey matches the general version-based key shape:
	// photos_IncreaseWarmth_1.0.0_intent_title
	reVersionKey = regexp.MustCompile(`^(\w+)_([A-Z]\w+)_(\d+\.\d+\.\d+)_(.+)$`)

	// reEntitySuffix strips the Entity suffix from a captured entity name.
	reEntitySuffix = regexp.MustCompile(`(?i)entity$`)

	// reCamelSegment recognizes a capitalized camel-case segment, the most
	// likely carrier of a displayable name in a generic key.
	reCamelSegment = regexp.MustCompile(`^[A-Z][a-z]+[A-Z]`)
)

func extractEntityType(a *Analysis) bool {
	m := reEntityTypeKey.FindStringSubmatch(a.Original)
	if m == nil {
		return false
	}

	app, entity, version := m[1], m[2], m[3]
	a.Pattern = PatternEntityType
	a.Components = map[string]string{
		"app":     app,
		"entity":  entity,
		"version": version,
	}

	name := reEntitySuffix.ReplaceAllString(entity, "")
	if name != "" && (isUpperByte(name[0]) || !strings.Contains(name, "_")) {
		a.Label = CamelToTitle(name)
	} else {
		// Fully lowercased snake_case entity name.
		words := strings.Split(name, "_")
		for i, w := range words {
			words[i] = capitalize(w)
		}
		a.Label = strings.Join(words, " ")
	}
	a.Confidence = maxFloat(a.Confidence, 0.9)

	return true
}

func extractParameterDescription(a *Analysis) bool {
	m := reParameterKey.FindStringSubmatch(a.Original)
	if m == nil {
		return false
	}

	a.Pattern = PatternParameterDescription
	a.Components = map[string]string{
		"app":       m[1],
		"intent":    m[2],
		"version":   m[3],
		"parameter": m[4],
	}
	a.Label = CamelToTitle(m[4])
	a.Confidence = maxFloat(a.Confidence, 0.85)

	return true
}

func extractVersionBased(a *Analysis) bool {
	m := reVersionKey.FindStringSubmatch(a.Original)
	if m == nil {
		return false
	}

	a.Pattern = PatternVersionBased
	a.Components = map[string]string{
		"prefix":  m[1],
		"entity":  m[2],
		"version": m[3],
		"suffix":  m[4],
	}
	a.Label = CamelToTitle(m[2])
	a.Confidence = maxFloat(a.Confidence, 0.9)

	return true
}

func extractConstantCase(a *Analysis) bool {
	if !isConstantCase(a.Original) {
		return false
	}

	a.Pattern = PatternConstantCase
	a.Components = map[string]string{"words": a.Original}
	a.Label = ConstantToTitle(a.Original)
	a.Confidence = maxFloat(a.Confidence, 0.85)

	return true
}

func extractGenericUnderscore(a *Analysis) bool {
	if !strings.Contains(a.Original, "_") {
		return false
	}

	a.Pattern = PatternGenericUnderscore
	parts := strings.Split(a.Original, "_")
	a.Components = map[string]string{"parts": strings.Join(parts, " ")}

	// Prefer a capitalized camel-case segment; it most likely carries the
	// displayable name.
	for _, part := range parts {
		if reCamelSegment.MatchString(part) {
			a.Label = CamelToTitle(part)
			a.Confidence = maxFloat(a.Confidence, 0.7)

			return true
		}
	}

	// Otherwise pick the longest non-numeric segment of useful length.
	longest := ""
	for _, part := range parts {
		if len(part) > 3 && !digitsOnly(part) && len(part) > len(longest) {
			longest = part
		}
	}
	if longest != "" {
		a.Label = capitalize(longest)
		a.Confidence = maxFloat(a.Confidence, 0.6)
	}

	return true
}

func digitsOnly(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}

	return true
}
