package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/salvagekit/salvage/extract"
	"github.com/salvagekit/salvage/report"
)

var (
	decodeAction          string
	decodeAllParams       bool
	decodeAllRequirements bool
	decodeLimit           int
	decodeExport          string
)

func init() {
	decodeCmd.Flags().StringVar(&decodeAction, "action", "", "Decode blobs of one action by identifier")
	decodeCmd.Flags().BoolVar(&decodeAllParams, "all-params", false, "Decode all distinct parameter type-instance blobs")
	decodeCmd.Flags().BoolVar(&decodeAllRequirements, "all-requirements", false, "Decode all distinct requirements blobs")
	decodeCmd.Flags().IntVar(&decodeLimit, "limit", 0, "Limit distinct blob results (0 for all)")
	decodeCmd.Flags().StringVar(&decodeExport, "export", "", "Export decoded analyses to this directory as JSON")
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode binary blobs from the catalog",
	Long: `Decode the schema-less binary blobs stored in the catalog: either every blob
of one action, or the distinct parameter type-instance and requirements blobs
across the whole catalog, most used first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if decodeAction == "" && !decodeAllParams && !decodeAllRequirements {
			return fmt.Errorf("nothing to decode: pass --action, --all-params, or --all-requirements")
		}

		config, err := resolveConfig()
		if err != nil {
			return err
		}
		store, err := openStore(config)
		if err != nil {
			return err
		}
		defer store.Close()

		if decodeAction != "" {
			if err := decodeActionBlobs(store, decodeAction); err != nil {
				return err
			}
		}
		if decodeAllParams {
			if err := decodeParameterBlobs(store); err != nil {
				return err
			}
		}
		if decodeAllRequirements {
			if err := decodeRequirementBlobs(store); err != nil {
				return err
			}
		}

		return nil
	},
}

func decodeActionBlobs(store *extract.Store, actionID string) error {
	blobs, err := store.ActionBlobs(actionID)
	if err != nil {
		return err
	}
	if blobs == nil {
		return fmt.Errorf("action not found: %s", actionID)
	}

	header := color.New(color.FgCyan, color.Bold)
	section := color.New(color.FgYellow, color.Bold)

	name := blobs.Name
	if name == "" {
		name = "(no name)"
	}
	header.Printf("%s\n", actionID)
	fmt.Println(name)

	if len(blobs.Requirements) > 0 {
		section.Println("\nRequirements blob:")
		fmt.Print(report.AnalyzeRequirements(blobs.Requirements).Format(2))
	}
	if len(blobs.OutputTypeInstance) > 0 {
		section.Println("\nOutput type-instance blob:")
		fmt.Print(report.AnalyzeTypeInstance(blobs.OutputTypeInstance).Format(2))
	}

	params, err := store.ActionParameters(blobs.RowID, flagLocale)
	if err != nil {
		return err
	}
	if len(params) > 0 {
		section.Printf("\nParameters (%d):\n", len(params))
		for _, param := range params {
			if len(param.TypeInstance) == 0 {
				continue
			}
			paramName := param.Name
			if paramName == "" {
				paramName = "(no name)"
			}
			color.Cyan("\n%s - %s", param.Key, paramName)
			fmt.Print(report.AnalyzeTypeInstance(param.TypeInstance).Format(2))
		}
	}

	return nil
}

type decodedParameterBlob struct {
	ParamKey   string                      `json:"param_key"`
	ParamName  string                      `json:"param_name,omitempty"`
	UsageCount int64                       `json:"usage_count"`
	Analysis   report.TypeInstanceAnalysis `json:"analysis"`
}

func decodeParameterBlobs(store *extract.Store) error {
	blobs, err := store.DistinctParameterBlobs(decodeLimit)
	if err != nil {
		return err
	}

	results := make([]decodedParameterBlob, 0, len(blobs))
	for _, blob := range blobs {
		analysis := report.AnalyzeTypeInstance(blob.TypeInstance)
		results = append(results, decodedParameterBlob{
			ParamKey:   blob.Key,
			ParamName:  blob.Name,
			UsageCount: blob.UsageCount,
			Analysis:   analysis,
		})

		if flagVerbose {
			color.Cyan("\n%s (%d uses)", blob.Key, blob.UsageCount)
			fmt.Print(analysis.Format(2))
		}
	}

	if decodeExport != "" {
		if err := exportJSON(filepath.Join(decodeExport, "parameters_decoded.json"), results); err != nil {
			return err
		}
	}

	color.Green("Decoded %d unique parameter blobs", len(results))

	return nil
}

type decodedRequirementBlob struct {
	UsageCount int64                       `json:"usage_count"`
	Analysis   report.RequirementsAnalysis `json:"analysis"`
}

func decodeRequirementBlobs(store *extract.Store) error {
	blobs, err := store.DistinctRequirementBlobs(decodeLimit)
	if err != nil {
		return err
	}

	results := make([]decodedRequirementBlob, 0, len(blobs))
	for _, blob := range blobs {
		analysis := report.AnalyzeRequirements(blob.Requirements)
		results = append(results, decodedRequirementBlob{
			UsageCount: blob.UsageCount,
			Analysis:   analysis,
		})

		if flagVerbose {
			color.Cyan("\nRequirements pattern (%d uses):", blob.UsageCount)
			fmt.Print(analysis.Format(2))
		}
	}

	if decodeExport != "" {
		if err := exportJSON(filepath.Join(decodeExport, "requirements_decoded.json"), results); err != nil {
			return err
		}
	}

	color.Green("Decoded %d unique requirements patterns", len(results))

	return nil
}

// exportJSON writes v as indented JSON, creating parent directories.
func exportJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	color.Green("Exported to %s", path)

	return nil
}
