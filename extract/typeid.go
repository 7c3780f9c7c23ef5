package extract

import "strings"

// ParsedTypeID is a type identifier split into its components.
//
// Identifiers come in three shapes: third-party types wrapped by the host
// namespace ("com.apple.shortcuts.com.agiletortoise.Drafts4.addto.DraftsAddMode"),
// first-party types ("com.apple.Music.LibraryItemEntity"), and bare names.
type ParsedTypeID struct {
	FullID           string `json:"full_id"`
	Namespace        string `json:"namespace,omitempty"`
	BundleID         string `json:"bundle_id,omitempty"`
	ThirdPartyBundle string `json:"third_party_bundle,omitempty"`
	TypeName         string `json:"type_name,omitempty"`
	Category         string `json:"category,omitempty"`
	ThirdParty       bool   `json:"is_third_party"`
	Enum             bool   `json:"is_enum"`
	Entity           bool   `json:"is_entity"`
}

const wrapperNamespace = "com.apple.shortcuts"

// ParseTypeIdentifier splits a type identifier into namespace, bundle, type
// name, and category components, and guesses the type kind from naming
// conventions ("Entity" suffixes mark entities, "Mode"/"Option" mark enums).
//
// Parameters:
//   - typeID: Full type identifier
//
// Returns:
//   - ParsedTypeID: Parsed components; only FullID is set for empty input
func ParseTypeIdentifier(typeID string) ParsedTypeID {
	parsed := ParsedTypeID{FullID: typeID}
	if typeID == "" {
		return parsed
	}

	switch {
	case strings.HasPrefix(typeID, wrapperNamespace+".com."):
		parsed.Namespace = wrapperNamespace
		parsed.ThirdParty = true

		parts := strings.Split(strings.TrimPrefix(typeID, wrapperNamespace+"."), ".")
		if len(parts) >= 3 {
			// The wrapped bundle ID is conventionally the first three parts,
			// e.g. com.agiletortoise.Drafts4.
			parsed.ThirdPartyBundle = strings.Join(parts[:3], ".")

			if len(parts) > 3 {
				if len(parts) > 4 {
					parsed.Category = strings.Join(parts[3:len(parts)-1], ".")
				} else {
					parsed.Category = parts[3]
				}
				parsed.TypeName = parts[len(parts)-1]
			}
		}

	case strings.HasPrefix(typeID, "com.apple."):
		parsed.Namespace = "com.apple"

		parts := strings.Split(typeID, ".")
		if len(parts) >= 3 {
			parsed.BundleID = strings.Join(parts[:3], ".")
			parsed.TypeName = parts[len(parts)-1]
			if len(parts) > 3 {
				parsed.Category = strings.Join(parts[3:len(parts)-1], ".")
			}
		}

	default:
		parsed.TypeName = typeID
	}

	if parsed.TypeName != "" {
		switch {
		case strings.Contains(parsed.TypeName, "Entity"):
			parsed.Entity = true
		case strings.Contains(parsed.TypeName, "Mode"), strings.Contains(parsed.TypeName, "Option"):
			parsed.Enum = true
		}
	}

	return parsed
}

// IsComplexTypeIdentifier reports whether a type identifier carries
// namespace or app information that usually needs a type-info lookup to
// render sensibly.
//
// Parameters:
//   - typeID: Full type identifier
//
// Returns:
//   - bool: true for deeply-dotted first-party or wrapped third-party types
func IsComplexTypeIdentifier(typeID string) bool {
	if typeID == "" {
		return false
	}

	if strings.HasPrefix(typeID, "com.apple.") && strings.Count(typeID, ".") >= 3 {
		return true
	}

	return strings.Contains(typeID, "shortcuts.com.")
}
