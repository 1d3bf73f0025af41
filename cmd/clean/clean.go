// Package clean implements the end-to-end cleaning command: load the input
// CSV, run the cleaning pipeline, export the datasets locally and optionally
// upload them to Google Sheets.
package clean

import (
	"context"
	"errors"

	"banksheets/cmd/root"
	"banksheets/internal/classifier"
	"banksheets/internal/csvtable"
	"banksheets/internal/export"
	"banksheets/internal/logging"
	"banksheets/internal/mapper"
	"banksheets/internal/models"
	"banksheets/internal/pipeline"
	"banksheets/internal/sheets"
	"banksheets/internal/store"

	"github.com/spf13/cobra"
)

var (
	dateCol     string
	descCol     string
	amountCol   string
	categoryCol string

	dayFirst   bool
	skipUpload bool

	spreadsheetID   string
	spreadsheetName string
)

// Cmd is the clean command.
var Cmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a bank CSV and export the partitioned datasets",
	Long: `Clean a bank-exported CSV file: infer the column mapping (overridable via
flags), normalize amounts and dates, categorize transactions, partition them
into Master/Incoming/Outgoing/eBay-Outgoing, write one CSV per dataset and
optionally upload the datasets to Google Sheets.`,
	Run: cleanFunc,
}

func init() {
	Cmd.Flags().StringVar(&dateCol, "date-col", "", "Override the inferred date column")
	Cmd.Flags().StringVar(&descCol, "description-col", "", "Override the inferred description column")
	Cmd.Flags().StringVar(&amountCol, "amount-col", "", "Override the inferred amount column")
	Cmd.Flags().StringVar(&categoryCol, "category-col", "", "Override the inferred category column")
	Cmd.Flags().BoolVar(&dayFirst, "day-first", false, "Parse ambiguous dates day-first instead of month-first")
	Cmd.Flags().BoolVar(&skipUpload, "skip-upload", false, "Only write local CSV files, skip the Google Sheets upload")
	Cmd.Flags().StringVar(&spreadsheetID, "spreadsheet-id", "", "Upload to this spreadsheet ID")
	Cmd.Flags().StringVar(&spreadsheetName, "spreadsheet-name", "", "Find or create a spreadsheet with this name")
}

func cleanFunc(cmd *cobra.Command, args []string) {
	log := root.Logger
	cfg := root.Cfg
	ctx := context.Background()

	if root.SharedFlags.Input == "" {
		log.Fatal("Input CSV file is required (use --input)")
	}

	delimiter := []rune(cfg.CSV.Delimiter)[0]
	table, err := csvtable.Load(root.SharedFlags.Input, delimiter)
	if err != nil {
		log.Fatalf("Error loading CSV file: %v", err)
	}
	log.WithFields(
		logging.Field{Key: "file", Value: root.SharedFlags.Input},
		logging.Field{Key: "columns", Value: len(table.Columns)},
		logging.Field{Key: "rows", Value: len(table.Rows)},
	).Info("Loaded input CSV")

	categories, err := store.NewCategoryStore(cfg.Categories.File).LoadCategories()
	if err != nil {
		log.Fatalf("Error loading categories: %v", err)
	}
	cls := classifier.New(categories, log)

	if cfg.AI.Enabled {
		aiStrategy, err := classifier.NewAIStrategy(ctx, cfg.AI.APIKey, cfg.AI.Model, categories, log)
		if err != nil {
			log.WithError(err).Warn("AI categorization unavailable, continuing with keyword rules only")
		} else {
			defer func() {
				_ = aiStrategy.Close()
			}()
			cls.AddStrategy(aiStrategy)
		}
	}

	result, err := pipeline.Run(ctx, table, pipeline.Options{
		Overrides: mapper.Overrides{
			Date:        dateCol,
			Description: descCol,
			Amount:      amountCol,
			Category:    categoryCol,
		},
		DayFirst:   dayFirst || cfg.CSV.DayFirst,
		Classifier: cls,
		Logger:     log,
	})
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrNoAmountColumn):
			log.Fatalf("Amount column is required but could not be resolved: %v", err)
		case errors.Is(err, pipeline.ErrEmptyMaster):
			log.Fatalf("No valid data after cleaning: %v", err)
		default:
			log.Fatalf("Cleaning pipeline failed: %v", err)
		}
	}
	if result.Dropped > 0 {
		log.WithField("dropped", result.Dropped).Warn("Some rows were dropped during cleaning")
	}

	outputDir := root.SharedFlags.Output
	if outputDir == "" {
		outputDir = cfg.CSV.OutputDir
	}
	reports, err := export.WriteDatasets(result.Datasets, outputDir, delimiter, log)
	if err != nil {
		log.Fatalf("Error writing CSV files: %v", err)
	}
	for name, report := range reports {
		log.WithFields(
			logging.Field{Key: "dataset", Value: name},
			logging.Field{Key: "rows", Value: report.Rows},
		).Info("Dataset exported")
	}

	if skipUpload {
		log.Info("Skipping Google Sheets upload as requested")
		return
	}

	uploadDatasets(ctx, cfg.Sheets.CredentialsFile, resolveSpreadsheetName(cfg.Sheets.SpreadsheetName), result, log)
}

func resolveSpreadsheetName(configured string) string {
	if spreadsheetName != "" {
		return spreadsheetName
	}
	return configured
}

func uploadDatasets(ctx context.Context, credentialsFile, name string, result *pipeline.Result, log logging.Logger) {
	uploader, err := sheets.NewUploader(ctx, credentialsFile, log)
	if err != nil {
		// Local CSV files are already written; a failed upload should not
		// discard that work.
		log.WithError(err).Warn("Google Sheets authentication failed; CSV files were saved, upload them manually")
		return
	}

	id := spreadsheetID
	if id != "" {
		sheetName, err := uploader.VerifySpreadsheet(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Cannot access the requested spreadsheet; skipping upload")
			return
		}
		log.WithFields(
			logging.Field{Key: "name", Value: sheetName},
			logging.Field{Key: "id", Value: id},
		).Info("Using spreadsheet")
	} else {
		id, err = uploader.GetOrCreateSpreadsheet(ctx, name)
		if err != nil {
			log.WithError(err).Warn("Could not find or create spreadsheet; skipping upload")
			return
		}
	}

	results, err := uploader.UploadDatasets(ctx, id, result.Datasets)
	if err != nil {
		log.WithError(err).Warn("Upload did not complete; CSV files were saved")
	}
	for _, dataset := range []string{models.DatasetMaster, models.DatasetIncoming, models.DatasetOutgoing, models.DatasetEbayOutgoing} {
		uploaded, ok := results[dataset]
		if !ok {
			continue
		}
		log.WithFields(
			logging.Field{Key: "dataset", Value: dataset},
			logging.Field{Key: "uploaded", Value: uploaded},
		).Info("Upload result")
	}
	log.WithField("url", sheets.SpreadsheetURL(id)).Info("Spreadsheet ready")
}
