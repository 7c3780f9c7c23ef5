package extract

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/salvagekit/salvage/lockey"
	"github.com/salvagekit/salvage/report"
)

// FieldMetadata records how a display field was obtained. Synthetic fields
// were derived from a localization key; the original key, the derivation
// confidence, and the derivation source are kept so consumers can audit or
// re-derive the value.
type FieldMetadata struct {
	Synthetic   bool    `json:"is_synthetic"`
	OriginalKey string  `json:"original_key,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// Deprecation describes an action's replacement.
type Deprecation struct {
	ReplacementID string `json:"replacement_id"`
	Message       string `json:"message,omitempty"`
}

// AppInfo identifies the app an action belongs to.
type AppInfo struct {
	BundleID string `json:"bundle_id,omitempty"`
	Name     string `json:"name,omitempty"`
}

// TypeDetails is the enriched view of one accepted type.
type TypeDetails struct {
	ID         string           `json:"id"`
	Name       string           `json:"name,omitempty"`
	Kind       int64            `json:"kind"`
	KindName   string           `json:"kind_name"`
	Parsed     ParsedTypeID     `json:"parsed"`
	Properties []EntityProperty `json:"properties,omitempty"`
	EnumCases  []EnumCase       `json:"enum_cases,omitempty"`
}

// ParameterSchema is one assembled action parameter.
type ParameterSchema struct {
	Key                 string                       `json:"key"`
	Name                string                       `json:"name,omitempty"`
	NameMetadata        FieldMetadata                `json:"name_metadata"`
	Description         string                       `json:"description,omitempty"`
	DescriptionMetadata FieldMetadata                `json:"description_metadata"`
	SortOrder           int64                        `json:"sort_order"`
	Flags               int64                        `json:"flags"`
	AcceptedTypes       []string                     `json:"accepted_types"`
	LocalizationIssues  []string                     `json:"localization_issues,omitempty"`
	TypeInfo            *report.TypeInstanceAnalysis `json:"type_info,omitempty"`
	TypeDetails         []TypeDetails                `json:"type_details,omitempty"`
}

// ActionSchema is one fully assembled catalog action.
type ActionSchema struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name,omitempty"`
	NameMetadata        FieldMetadata     `json:"name_metadata"`
	DescriptionSummary  string            `json:"description_summary,omitempty"`
	DescriptionMetadata FieldMetadata     `json:"description_metadata"`
	DescriptionNote     string            `json:"description_note,omitempty"`
	Type                string            `json:"type,omitempty"`
	Flags               int64             `json:"flags"`
	VisibilityFlags     int64             `json:"visibility_flags"`
	Hidden              bool              `json:"hidden"`
	SourceProvider      string            `json:"source_provider,omitempty"`
	App                 AppInfo           `json:"app"`
	Deprecation         *Deprecation      `json:"deprecation,omitempty"`
	Parameters          []ParameterSchema `json:"parameters"`
	OutputTypes         []string          `json:"output_types"`
	Categories          []string          `json:"categories"`
	Keywords            []string          `json:"keywords"`
	LocalizationIssues  []string          `json:"localization_issues,omitempty"`
}

// BuildOptions configures schema assembly.
type BuildOptions struct {
	// Locale selects the localization tables ("" means DefaultLocale).
	Locale string
	// AnalyzeBlobs attaches a type-instance blob analysis to parameters
	// that carry one.
	AnalyzeBlobs bool
	// IncludeTypeInfo enriches accepted types with catalog type details.
	// Off by default: it costs several extra queries per parameter.
	IncludeTypeInfo bool
	// FixLocalizations repairs key-shaped display fields through the
	// localization-key analyzer.
	FixLocalizations bool
}

// DefaultBuildOptions returns the options used by the shipping extraction.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Locale:           DefaultLocale,
		AnalyzeBlobs:     true,
		FixLocalizations: true,
	}
}

// Builder assembles action schemas from a catalog store.
type Builder struct {
	store  *Store
	opts   BuildOptions
	logger *zap.Logger
}

// NewBuilder creates a schema builder over store. The builder logs through
// the store's logger.
//
// Parameters:
//   - store: Open catalog store
//   - opts: Assembly options
//
// Returns:
//   - *Builder: Ready builder
func NewBuilder(store *Store, opts BuildOptions) *Builder {
	if opts.Locale == "" {
		opts.Locale = DefaultLocale
	}

	return &Builder{store: store, opts: opts, logger: store.logger}
}

// BuildAll assembles a schema for every action in the catalog.
//
// Returns:
//   - []*ActionSchema: Assembled schemas in catalog order
//   - error: First store failure encountered
func (b *Builder) BuildAll() ([]*ActionSchema, error) {
	actions, err := b.store.Actions(b.opts.Locale)
	if err != nil {
		return nil, err
	}

	b.logger.Info("building action schemas",
		zap.Int("actions", len(actions)),
		zap.String("locale", b.opts.Locale))

	schemas := make([]*ActionSchema, 0, len(actions))
	for i := range actions {
		schema, err := b.BuildActionSchema(&actions[i])
		if err != nil {
			return nil, fmt.Errorf("failed to build schema for %s: %w", actions[i].ID, err)
		}
		schemas = append(schemas, schema)
	}

	b.logger.Info("action schemas built", zap.Int("count", len(schemas)))

	return schemas, nil
}

// BuildActionSchema assembles the complete schema for one action: repaired
// display fields, parameters with accepted types and optional blob analysis,
// output types, categories, and keywords.
//
// Parameters:
//   - action: Action row from Actions or HiddenActions
//
// Returns:
//   - *ActionSchema: Assembled schema
//   - error: Store failure while loading related rows
func (b *Builder) BuildActionSchema(action *ActionRow) (*ActionSchema, error) {
	name, nameMeta := b.resolveField(action.Name)
	description, descMeta := b.resolveField(action.DescriptionSummary)

	schema := &ActionSchema{
		ID:                  action.ID,
		Name:                name,
		NameMetadata:        nameMeta,
		DescriptionSummary:  description,
		DescriptionMetadata: descMeta,
		DescriptionNote:     action.DescriptionNote,
		Type:                action.ToolType,
		Flags:               action.Flags,
		VisibilityFlags:     action.VisibilityFlags,
		Hidden:              action.VisibilityFlags > 0,
		SourceProvider:      action.SourceProvider,
		App: AppInfo{
			BundleID: action.ContainerID,
			Name:     action.AppName,
		},
		Parameters:  []ParameterSchema{},
		OutputTypes: []string{},
		Categories:  []string{},
		Keywords:    []string{},
	}

	if !b.opts.FixLocalizations {
		if lockey.IsKey(action.Name) {
			schema.LocalizationIssues = append(schema.LocalizationIssues, "name_is_key")
		}
		if lockey.IsKey(action.DescriptionSummary) {
			schema.LocalizationIssues = append(schema.LocalizationIssues, "description_is_key")
		}
	}

	if action.DeprecationReplacementID != "" {
		schema.Deprecation = &Deprecation{
			ReplacementID: action.DeprecationReplacementID,
			Message:       action.DeprecationMessage,
		}
	}

	params, err := b.store.ActionParameters(action.RowID, b.opts.Locale)
	if err != nil {
		return nil, err
	}
	for i := range params {
		paramSchema, err := b.buildParameterSchema(action.RowID, &params[i])
		if err != nil {
			return nil, err
		}
		schema.Parameters = append(schema.Parameters, paramSchema)
	}

	if schema.OutputTypes, err = b.store.ActionOutputTypes(action.RowID); err != nil {
		return nil, err
	}
	if schema.OutputTypes == nil {
		schema.OutputTypes = []string{}
	}
	if schema.Categories, err = b.store.ActionCategories(action.RowID, b.opts.Locale); err != nil {
		return nil, err
	}
	if schema.Categories == nil {
		schema.Categories = []string{}
	}
	if schema.Keywords, err = b.store.ActionKeywords(action.RowID, b.opts.Locale); err != nil {
		return nil, err
	}
	if schema.Keywords == nil {
		schema.Keywords = []string{}
	}

	return schema, nil
}

func (b *Builder) buildParameterSchema(toolID int64, param *ParameterRow) (ParameterSchema, error) {
	name, nameMeta := b.resolveField(param.Name)
	description, descMeta := b.resolveField(param.Description)

	acceptedTypes, err := b.store.ParameterTypes(toolID, param.Key)
	if err != nil {
		return ParameterSchema{}, err
	}
	if acceptedTypes == nil {
		acceptedTypes = []string{}
	}

	paramSchema := ParameterSchema{
		Key:                 param.Key,
		Name:                name,
		NameMetadata:        nameMeta,
		Description:         description,
		DescriptionMetadata: descMeta,
		SortOrder:           param.SortOrder,
		Flags:               param.Flags,
		AcceptedTypes:       acceptedTypes,
	}

	if !b.opts.FixLocalizations {
		if lockey.IsKey(param.Name) {
			paramSchema.LocalizationIssues = append(paramSchema.LocalizationIssues, "name_is_key")
		}
		if lockey.IsKey(param.Description) {
			paramSchema.LocalizationIssues = append(paramSchema.LocalizationIssues, "description_is_key")
		}
	}

	if b.opts.AnalyzeBlobs && len(param.TypeInstance) > 0 {
		analysis := report.AnalyzeTypeInstance(param.TypeInstance)
		paramSchema.TypeInfo = &analysis
	}

	if b.opts.IncludeTypeInfo {
		for _, typeID := range acceptedTypes {
			details, err := b.TypeDetails(typeID)
			if err != nil {
				return ParameterSchema{}, err
			}
			if details != nil {
				paramSchema.TypeDetails = append(paramSchema.TypeDetails, *details)
			}
		}
	}

	return paramSchema, nil
}

// resolveField repairs one display value when localization fixing is on.
func (b *Builder) resolveField(text string) (string, FieldMetadata) {
	if !b.opts.FixLocalizations {
		return text, FieldMetadata{}
	}

	readable := lockey.GenerateReadable(text, "")
	if !readable.Synthetic {
		return text, FieldMetadata{}
	}

	return readable.Value, FieldMetadata{
		Synthetic:   true,
		OriginalKey: readable.OriginalKey,
		Confidence:  readable.Confidence,
		Source:      readable.Source.String(),
	}
}

// typeKindNames maps catalog type kinds to their conventional names.
var typeKindNames = map[int64]string{
	1: "primitive",
	2: "entity",
	3: "enum",
	4: "object",
	6: "array",
	8: "special",
}

// KindName returns the conventional name of a catalog type kind.
func KindName(kind int64) string {
	if name, ok := typeKindNames[kind]; ok {
		return name
	}

	return "unknown"
}

// TypeDetails loads the enriched view of one type: parsed identifier, kind,
// and the entity properties or enum cases its kind implies. Returns
// (nil, nil) when the type is not in the catalog.
//
// Parameters:
//   - typeID: Type row identifier
//
// Returns:
//   - *TypeDetails: Enriched type view, nil when absent
//   - error: Store failure
func (b *Builder) TypeDetails(typeID string) (*TypeDetails, error) {
	info, err := b.store.TypeInfo(typeID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, nil
	}

	details := &TypeDetails{
		ID:       typeID,
		Name:     info.Name,
		Kind:     info.Kind,
		KindName: KindName(info.Kind),
		Parsed:   ParseTypeIdentifier(typeID),
	}

	switch info.Kind {
	case 2:
		if details.Properties, err = b.store.EntityProperties(typeID, b.opts.Locale); err != nil {
			return nil, err
		}
	case 3:
		if details.EnumCases, err = b.store.EnumCases(typeID, b.opts.Locale); err != nil {
			return nil, err
		}
	}

	return details, nil
}
