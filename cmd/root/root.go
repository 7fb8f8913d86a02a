// Package root contains the root command for the application.
package root

import (
	"dizimo/cents-csv/internal/config"
	"dizimo/cents-csv/internal/export"
	"dizimo/cents-csv/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by subcommands.
type CommonFlags struct {
	Input   string
	Output  string
	Mapping string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the application configuration, loaded in PersistentPreRun
	Cfg *config.Config

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "cents-csv",
		Short: "A CLI tool to classify donation records into churches by their cent code.",
		Long: `cents-csv reads a donation spreadsheet exported as CSV, derives each
record's cent code from the fractional part of the amount, resolves the code
to a church through a YAML mapping, and writes classified-record and
per-church summary CSVs.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to cents-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			export.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}
)

// GetLogger returns the configured logger behind the logging interface.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input grid CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Mapping, "mapping", "m", "", "Church mapping YAML file")
}
