package extract

import "fmt"

// VisibilityClass describes what a visibility flag value means in practice.
type VisibilityClass struct {
	Level            string `json:"level"`
	Description      string `json:"description"`
	LikelyDocumented bool   `json:"likely_documented"`
}

// visibilityClasses maps the flag values observed in shipping catalogs.
var visibilityClasses = map[int64]VisibilityClass{
	0:  {Level: "public", Description: "Fully visible and documented", LikelyDocumented: true},
	2:  {Level: "somewhat_hidden", Description: "May have limited visibility", LikelyDocumented: true},
	3:  {Level: "hidden", Description: "Hidden from normal browsing"},
	5:  {Level: "restricted", Description: "Restricted access"},
	7:  {Level: "very_hidden", Description: "Very hidden, possibly internal"},
	13: {Level: "experimental", Description: "Experimental or beta feature"},
	15: {Level: "maximum_hidden", Description: "Maximally hidden, likely internal-only"},
}

// ClassifyVisibility maps an action's visibility flags to a descriptive
// classification. Unobserved flag values classify as unknown.
//
// Parameters:
//   - flags: Visibility flags from the catalog
//
// Returns:
//   - VisibilityClass: Level, description, and documentation likelihood
func ClassifyVisibility(flags int64) VisibilityClass {
	if class, ok := visibilityClasses[flags]; ok {
		return class
	}

	return VisibilityClass{
		Level:       "unknown",
		Description: fmt.Sprintf("Unknown visibility level (%d)", flags),
	}
}

// CollectionSummary aggregates statistics over a set of action schemas.
type CollectionSummary struct {
	TotalCount      int            `json:"total_count"`
	ByType          map[string]int `json:"by_type"`
	ByVisibility    map[int64]int  `json:"by_visibility"`
	ByApp           map[string]int `json:"by_app"`
	HiddenCount     int            `json:"hidden_count"`
	DeprecatedCount int            `json:"deprecated_count"`
	WithParameters  int            `json:"with_parameters"`
	ParameterCount  int            `json:"parameter_count"`
}

// SummarizeActions computes collection statistics over action schemas.
//
// Parameters:
//   - schemas: Assembled action schemas
//
// Returns:
//   - CollectionSummary: Counts by type, visibility, and app, plus totals
func SummarizeActions(schemas []*ActionSchema) CollectionSummary {
	summary := CollectionSummary{
		TotalCount:   len(schemas),
		ByType:       make(map[string]int),
		ByVisibility: make(map[int64]int),
		ByApp:        make(map[string]int),
	}

	for _, schema := range schemas {
		actionType := schema.Type
		if actionType == "" {
			actionType = "unknown"
		}
		summary.ByType[actionType]++

		summary.ByVisibility[schema.VisibilityFlags]++

		appName := schema.App.Name
		if appName == "" {
			appName = "Unknown"
		}
		summary.ByApp[appName]++

		if schema.Hidden {
			summary.HiddenCount++
		}
		if schema.Deprecation != nil {
			summary.DeprecatedCount++
		}
		if len(schema.Parameters) > 0 {
			summary.WithParameters++
			summary.ParameterCount += len(schema.Parameters)
		}
	}

	return summary
}
