package extract

import (
	"fmt"

	"github.com/salvagekit/salvage/lockey"
)

// Issue and warning kinds reported by ValidateActionSchema.
const (
	IssueMissingLocalization  = "missing_localization"
	WarnSyntheticLocalization = "synthetic_localization"
	WarnComplexType           = "complex_type"
	WarnHiddenNoName          = "hidden_no_name"
)

// ValidationIssue is one finding against a schema field.
type ValidationIssue struct {
	Field       string  `json:"field"`
	Issue       string  `json:"issue"`
	Value       string  `json:"value,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
	OriginalKey string  `json:"original_key,omitempty"`
	Message     string  `json:"message"`
}

// Validation is the result of validating one action schema.
type Validation struct {
	Valid        bool              `json:"valid"`
	Issues       []ValidationIssue `json:"issues"`
	Warnings     []ValidationIssue `json:"warnings"`
	QualityScore float64           `json:"quality_score"`
}

// ValidateActionSchema checks one assembled schema for localization defects.
//
// A display field that is still a raw localization key is an issue; a field
// that was synthetically repaired is a warning carrying the repair metadata.
// Complex accepted-type identifiers and hidden actions without a name are
// also warnings. The quality score folds issues and warnings into a 0-100
// grade.
//
// Parameters:
//   - schema: Assembled action schema
//
// Returns:
//   - Validation: Issues, warnings, and quality score
func ValidateActionSchema(schema *ActionSchema) Validation {
	var issues, warnings []ValidationIssue

	checkField := func(field, value string, meta FieldMetadata, keyMessage string) {
		if meta.Synthetic {
			warnings = append(warnings, ValidationIssue{
				Field:       field,
				Issue:       WarnSyntheticLocalization,
				Confidence:  meta.Confidence,
				OriginalKey: meta.OriginalKey,
				Message:     fmt.Sprintf("%s was derived from key: %s", keyMessage, meta.OriginalKey),
			})

			return
		}
		if lockey.IsKey(value) {
			issues = append(issues, ValidationIssue{
				Field:   field,
				Issue:   IssueMissingLocalization,
				Value:   value,
				Message: fmt.Sprintf("%s appears to be a localization key: %s", keyMessage, value),
			})
		}
	}

	checkField("name", schema.Name, schema.NameMetadata, "Action name")
	checkField("description_summary", schema.DescriptionSummary, schema.DescriptionMetadata, "Description")

	for i := range schema.Parameters {
		param := &schema.Parameters[i]
		checkField(fmt.Sprintf("parameters[%d].name", i), param.Name, param.NameMetadata, "Parameter name")
		checkField(fmt.Sprintf("parameters[%d].description", i), param.Description, param.DescriptionMetadata, "Parameter description")

		for _, typeID := range param.AcceptedTypes {
			if IsComplexTypeIdentifier(typeID) {
				warnings = append(warnings, ValidationIssue{
					Field:   fmt.Sprintf("parameters[%d].accepted_types", i),
					Issue:   WarnComplexType,
					Value:   typeID,
					Message: fmt.Sprintf("Complex type identifier (may need type info lookup): %s", typeID),
				})
			}
		}
	}

	if schema.Hidden && schema.Name == "" {
		warnings = append(warnings, ValidationIssue{
			Field:   "name",
			Issue:   WarnHiddenNoName,
			Message: "Hidden action with no localized name",
		})
	}

	return Validation{
		Valid:        len(issues) == 0,
		Issues:       issues,
		Warnings:     warnings,
		QualityScore: qualityScore(schema, issues, warnings),
	}
}

// qualityScore grades a schema 0-100.
//
// Issues cost 10 points each. Complex-type warnings cost 2 each but cap at
// 20 total: home-automation actions legitimately accept dozens of complex
// types. Synthetic repairs cost 2 each, remaining warnings 5 each. Having a
// usable description, any parameters, and any categories each earn 5 back.
func qualityScore(schema *ActionSchema, issues, warnings []ValidationIssue) float64 {
	score := 100.0

	score -= float64(len(issues)) * 10

	var complexTypes, synthetic int
	for _, w := range warnings {
		switch w.Issue {
		case WarnComplexType:
			complexTypes++
		case WarnSyntheticLocalization:
			synthetic++
		}
	}
	other := len(warnings) - complexTypes - synthetic

	score -= min(20, float64(complexTypes)*2)
	score -= float64(synthetic) * 2
	score -= float64(other) * 5

	if schema.DescriptionSummary != "" &&
		(schema.DescriptionMetadata.Synthetic || !lockey.IsKey(schema.DescriptionSummary)) {
		score += 5
	}
	if len(schema.Parameters) > 0 {
		score += 5
	}
	if len(schema.Categories) > 0 {
		score += 5
	}

	return max(0, min(100, score))
}

// QualityBuckets counts schemas by quality band.
type QualityBuckets struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Fair      int `json:"fair"`
	Poor      int `json:"poor"`
}

// ProblemAction identifies one low-quality schema in a validation report.
type ProblemAction struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Quality  float64 `json:"quality"`
	Issues   int     `json:"issues"`
	Warnings int     `json:"warnings"`
}

// ValidationReport aggregates validation over a schema collection.
type ValidationReport struct {
	TotalSchemas        int             `json:"total_schemas"`
	ValidSchemas        int             `json:"valid_schemas"`
	SchemasWithIssues   int             `json:"schemas_with_issues"`
	SchemasWithWarnings int             `json:"schemas_with_warnings"`
	IssuesByType        map[string]int  `json:"issues_by_type"`
	WarningsByType      map[string]int  `json:"warnings_by_type"`
	Quality             QualityBuckets  `json:"quality_scores"`
	AverageQuality      float64         `json:"average_quality"`
	ProblemActions      []ProblemAction `json:"problematic_actions"`
}

// maxProblemActions bounds the tracked worst offenders in a report.
const maxProblemActions = 20

// GenerateValidationReport validates every schema and aggregates the results.
//
// Quality bands: >= 90 excellent, >= 75 good, >= 60 fair, below that poor.
// Up to 20 poor schemas are listed individually as problem actions.
//
// Parameters:
//   - schemas: Assembled action schemas
//
// Returns:
//   - ValidationReport: Collection-level validation summary
func GenerateValidationReport(schemas []*ActionSchema) ValidationReport {
	rep := ValidationReport{
		TotalSchemas:   len(schemas),
		IssuesByType:   make(map[string]int),
		WarningsByType: make(map[string]int),
		ProblemActions: []ProblemAction{},
	}

	totalQuality := 0.0
	for _, schema := range schemas {
		validation := ValidateActionSchema(schema)

		if validation.Valid {
			rep.ValidSchemas++
		} else {
			rep.SchemasWithIssues++
		}
		if len(validation.Warnings) > 0 {
			rep.SchemasWithWarnings++
		}

		for _, issue := range validation.Issues {
			rep.IssuesByType[issue.Issue]++
		}
		for _, warning := range validation.Warnings {
			rep.WarningsByType[warning.Issue]++
		}

		quality := validation.QualityScore
		totalQuality += quality

		switch {
		case quality >= 90:
			rep.Quality.Excellent++
		case quality >= 75:
			rep.Quality.Good++
		case quality >= 60:
			rep.Quality.Fair++
		default:
			rep.Quality.Poor++
			if len(rep.ProblemActions) < maxProblemActions {
				rep.ProblemActions = append(rep.ProblemActions, ProblemAction{
					ID:       schema.ID,
					Name:     schema.Name,
					Quality:  quality,
					Issues:   len(validation.Issues),
					Warnings: len(validation.Warnings),
				})
			}
		}
	}

	if len(schemas) > 0 {
		rep.AverageQuality = totalQuality / float64(len(schemas))
	}

	return rep
}
