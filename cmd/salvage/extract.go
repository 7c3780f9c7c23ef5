package main

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/salvagekit/salvage/extract"
)

var (
	extractOutput      string
	extractHiddenOnly  bool
	extractNoFix       bool
	extractAnalyzeOff  bool
	extractTypeDetails bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "actions.json", "Output JSON file")
	extractCmd.Flags().BoolVar(&extractHiddenOnly, "hidden-only", false, "Extract only actions with non-zero visibility flags")
	extractCmd.Flags().BoolVar(&extractNoFix, "no-fix", false, "Do not repair localization keys, flag them instead")
	extractCmd.Flags().BoolVar(&extractAnalyzeOff, "no-blobs", false, "Skip type-instance blob analysis")
	extractCmd.Flags().BoolVar(&extractTypeDetails, "type-details", false, "Enrich accepted types with catalog type details (slow)")
}

// catalogExport is the JSON document written by the extract command and read
// back by the validate command.
type catalogExport struct {
	ExtractedAt string                    `json:"extracted_at"`
	Locale      string                    `json:"locale"`
	Summary     extract.CollectionSummary `json:"summary"`
	Actions     []*extract.ActionSchema   `json:"actions"`
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the full action catalog to JSON",
	Long: `Assemble a complete schema for every catalog action: repaired display names,
parameters with accepted types and blob analyses, output types, categories,
and keywords, plus collection-level summary statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig()
		if err != nil {
			return err
		}
		store, err := openStore(config)
		if err != nil {
			return err
		}
		defer store.Close()

		opts := extract.DefaultBuildOptions()
		opts.Locale = config.Locale
		opts.FixLocalizations = !extractNoFix
		opts.AnalyzeBlobs = !extractAnalyzeOff
		opts.IncludeTypeInfo = extractTypeDetails

		builder := extract.NewBuilder(store, opts)

		var schemas []*extract.ActionSchema
		if extractHiddenOnly {
			actions, err := store.HiddenActions(opts.Locale)
			if err != nil {
				return err
			}
			for i := range actions {
				schema, err := builder.BuildActionSchema(&actions[i])
				if err != nil {
					return err
				}
				schemas = append(schemas, schema)

				class := extract.ClassifyVisibility(schema.VisibilityFlags)
				name := schema.Name
				if name == "" {
					name = "(no name)"
				}
				color.Yellow("  [%s] %s - %s", class.Level, schema.ID, name)
			}
		} else {
			if schemas, err = builder.BuildAll(); err != nil {
				return err
			}
		}

		summary := extract.SummarizeActions(schemas)
		export := catalogExport{
			ExtractedAt: time.Now().UTC().Format(time.RFC3339),
			Locale:      opts.Locale,
			Summary:     summary,
			Actions:     schemas,
		}
		if err := exportJSON(extractOutput, export); err != nil {
			return err
		}

		printSummary(summary)

		return nil
	},
}

func printSummary(summary extract.CollectionSummary) {
	bold := color.New(color.Bold, color.FgCyan)

	bold.Println("\nExtraction summary")
	color.White("  Actions:          %d", summary.TotalCount)
	color.White("  Hidden:           %d", summary.HiddenCount)
	color.White("  Deprecated:       %d", summary.DeprecatedCount)
	color.White("  With parameters:  %d", summary.WithParameters)
	color.White("  Total parameters: %d", summary.ParameterCount)
}
