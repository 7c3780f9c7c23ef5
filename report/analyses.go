package report

import (
	"strings"

	"github.com/salvagekit/salvage/wire"
)

// RequirementsAnalysis is the analysis of a requirements blob, which by
// convention carries OS version constraints in small varint fields.
type RequirementsAnalysis struct {
	Report
	// LikelyOSVersions lists varint field values in the plausible major
	// OS version range 1 through 20, in field order.
	LikelyOSVersions []uint64 `json:"likely_os_versions"`
}

// TypeInstanceAnalysis is the analysis of a parameter type-instance blob,
// which by convention carries UTI type identifiers like "public.folder".
type TypeInstanceAnalysis struct {
	Report
	// UTITypes lists recovered strings shaped like type identifiers.
	UTITypes []string `json:"uti_types"`
}

// AnalyzeRequirements analyzes a requirements blob.
//
// On top of the generic analysis, every varint field whose value falls in the
// range 1 through 20 is reported as a likely major OS version. The heuristic
// trades precision for recall: a stray small varint costs one spurious entry,
// a missed version constraint costs the caller the fact entirely.
//
// Parameters:
//   - blob: Requirements blob bytes
//
// Returns:
//   - RequirementsAnalysis: Generic report plus likely OS versions
func AnalyzeRequirements(blob []byte) RequirementsAnalysis {
	analysis := RequirementsAnalysis{Report: Analyze(blob)}

	for _, f := range analysis.Fields {
		if f.Type != wire.TypeVarint {
			continue
		}
		if f.Varint >= 1 && f.Varint <= 20 {
			analysis.LikelyOSVersions = append(analysis.LikelyOSVersions, f.Varint)
		}
	}

	return analysis
}

// AnalyzeTypeInstance analyzes a parameter type-instance blob.
//
// On top of the generic analysis, every recovered string containing a dot and
// either a "public" token or a "com." segment is reported as a UTI type.
//
// Parameters:
//   - blob: Type-instance blob bytes
//
// Returns:
//   - TypeInstanceAnalysis: Generic report plus UTI-shaped identifiers
func AnalyzeTypeInstance(blob []byte) TypeInstanceAnalysis {
	analysis := TypeInstanceAnalysis{Report: Analyze(blob)}

	for _, s := range analysis.Strings {
		if isUTIShaped(s.Raw) {
			analysis.UTITypes = append(analysis.UTITypes, s.Raw)
		}
	}

	return analysis
}

// AnalyzeCoercion analyzes a coercion-definition blob. No role-specific
// conventions are known for these, so the generic analysis is the answer.
//
// Parameters:
//   - blob: Coercion-definition blob bytes
//
// Returns:
//   - Report: Generic analysis
func AnalyzeCoercion(blob []byte) Report {
	return Analyze(blob)
}

func isUTIShaped(s string) bool {
	if !strings.Contains(s, ".") {
		return false
	}

	return strings.Contains(s, "public") || strings.Contains(s, "com.")
}
