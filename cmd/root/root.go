// Package root contains the root command for the application.
package root

import (
	"banksheets/internal/config"
	"banksheets/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags holds the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Cfg is the loaded application configuration, available to all
	// commands after PersistentPreRun.
	Cfg *config.Config

	// Logger is the shared structured logger for commands.
	Logger logging.Logger = logging.NewLogrusAdapterFromLogger(logrus.New())

	// SharedFlags are common flags accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "banksheets",
		Short: "Clean a bank-exported transaction CSV and publish it to Google Sheets.",
		Long: `banksheets ingests a bank-exported transaction CSV, infers the column
mapping, normalizes amounts and dates, categorizes transactions, and splits
them into Master, Incoming, Outgoing and eBay-Outgoing datasets. Datasets are
written to local CSV files and optionally uploaded to Google Sheets.`,
		Run: func(cmd *cobra.Command, args []string) {
			Logger.Info("Welcome to banksheets!")
			Logger.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Logger.Fatalf("Invalid configuration: %v", err)
			}
			Cfg = cfg
			Logger = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory for cleaned CSV files")
}
