// Package classify handles the donation classification command.
package classify

import (
	"errors"

	"dizimo/cents-csv/cmd/root"
	"dizimo/cents-csv/internal/export"
	"dizimo/cents-csv/internal/gridcsv"
	"dizimo/cents-csv/internal/pipeline"
	"dizimo/cents-csv/internal/pipelineerror"
	"dizimo/cents-csv/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify donation records into churches",
	Long: `Classify reads a donation grid CSV, resolves each record's cent code
against the church mapping, and writes records.csv, unmapped.csv and
summaries.csv into the output directory.`,
	Run: classifyFunc,
}

func classifyFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	logger.Info("Classify command called")

	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	if input == "" || output == "" {
		logger.Fatal("Both --input and --output are required")
	}

	mappingFile := root.SharedFlags.Mapping
	if mappingFile == "" {
		mappingFile = root.Cfg.Mapping.File
	}

	grid, err := gridcsv.ReadGridFile(input, logger)
	if err != nil {
		logger.Fatalf("Error reading grid file: %v", err)
	}

	mapping, err := store.NewMappingStore(mappingFile, logger).Load()
	if err != nil {
		logger.Fatalf("Error loading church mapping: %v", err)
	}

	result, err := pipeline.Run(grid, mapping, logger)
	if err != nil {
		var missing *pipelineerror.MissingColumnError
		if errors.As(err, &missing) {
			logger.Fatalf("Grid is missing a required %s column", missing.Column)
		}
		logger.Fatalf("Classification failed: %v", err)
	}

	if err := export.WriteResult(result, output); err != nil {
		logger.Fatalf("Error writing result files: %v", err)
	}

	logger.Info("Classification completed successfully!")
}
