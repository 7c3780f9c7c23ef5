package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/salvagekit/salvage/extract"
)

var validateOutput string

func init() {
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "", "Write the validation report to this JSON file")
}

var validateCmd = &cobra.Command{
	Use:   "validate <export.json>",
	Short: "Validate an exported catalog and grade its quality",
	Long: `Read a JSON export produced by the extract command, validate every action
schema in it, and print a collection-level quality report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read export: %w", err)
		}

		var export catalogExport
		if err := json.Unmarshal(data, &export); err != nil {
			return fmt.Errorf("failed to parse export: %w", err)
		}

		rep := extract.GenerateValidationReport(export.Actions)
		printValidationReport(rep)

		if validateOutput != "" {
			if err := exportJSON(validateOutput, rep); err != nil {
				return err
			}
		}

		if rep.SchemasWithIssues > 0 {
			return fmt.Errorf("%d of %d schemas have issues", rep.SchemasWithIssues, rep.TotalSchemas)
		}

		return nil
	},
}

func printValidationReport(rep extract.ValidationReport) {
	bold := color.New(color.Bold, color.FgCyan)

	bold.Println("Validation report")
	color.White("  Schemas:       %d", rep.TotalSchemas)
	color.Green("  Valid:         %d", rep.ValidSchemas)
	if rep.SchemasWithIssues > 0 {
		color.Red("  With issues:   %d", rep.SchemasWithIssues)
	}
	if rep.SchemasWithWarnings > 0 {
		color.Yellow("  With warnings: %d", rep.SchemasWithWarnings)
	}
	color.White("  Avg quality:   %.1f", rep.AverageQuality)

	bold.Println("\nQuality")
	color.Green("  Excellent: %d", rep.Quality.Excellent)
	color.White("  Good:      %d", rep.Quality.Good)
	color.Yellow("  Fair:      %d", rep.Quality.Fair)
	color.Red("  Poor:      %d", rep.Quality.Poor)

	if len(rep.IssuesByType) > 0 {
		bold.Println("\nIssues by type")
		for issue, count := range rep.IssuesByType {
			color.Red("  %s: %d", issue, count)
		}
	}
	if len(rep.WarningsByType) > 0 {
		bold.Println("\nWarnings by type")
		for warning, count := range rep.WarningsByType {
			color.Yellow("  %s: %d", warning, count)
		}
	}

	if len(rep.ProblemActions) > 0 {
		bold.Println("\nProblem actions")
		for _, action := range rep.ProblemActions {
			name := action.Name
			if name == "" {
				name = "(no name)"
			}
			color.Red("  %s (%s) quality=%.0f issues=%d warnings=%d",
				action.ID, name, action.Quality, action.Issues, action.Warnings)
		}
	}
}
