// Package export serializes the partitioned datasets to local CSV files.
// The internal Master row number is omitted; its externally meaningful
// encoding is the Source reference column carried by the filtered views.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"banksheets/internal/logging"
	"banksheets/internal/models"
	"banksheets/internal/partitioner"

	"github.com/gocarina/gocsv"
)

// masterRow is the CSV projection of a Master transaction.
type masterRow struct {
	Date     string `csv:"Date"`
	Amount   string `csv:"Amount"`
	Details  string `csv:"Details"`
	Category string `csv:"Category"`
}

// viewRow is the CSV projection of a filtered-view transaction; Source links
// the row back to Master.
type viewRow struct {
	Date     string `csv:"Date"`
	Amount   string `csv:"Amount"`
	Details  string `csv:"Details"`
	Category string `csv:"Category"`
	Source   string `csv:"Source"`
}

// SetReport describes one exported dataset.
type SetReport struct {
	File string
	Rows int
}

// Output file names per dataset.
var fileNames = map[string]string{
	models.DatasetMaster:       "cleaned_master.csv",
	models.DatasetIncoming:     "incoming_payments.csv",
	models.DatasetOutgoing:     "outgoing_payments.csv",
	models.DatasetEbayOutgoing: "ebay_outgoing.csv",
}

// WriteDatasets writes the four datasets to CSV files in outputDir, creating
// the directory if needed. Dates are rendered ISO, amounts with two
// decimals. Empty views still produce a file with a header row.
func WriteDatasets(datasets partitioner.Datasets, outputDir string, delimiter rune, log logging.Logger) (map[string]SetReport, error) {
	if log == nil {
		log = logging.NewLogrusAdapter("info", "text")
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	reports := make(map[string]SetReport, 4)

	if err := writeSet(datasets.Master, models.DatasetMaster, outputDir, delimiter, false, reports); err != nil {
		return nil, err
	}
	views := []struct {
		name string
		set  models.TransactionSet
	}{
		{models.DatasetIncoming, datasets.Incoming},
		{models.DatasetOutgoing, datasets.Outgoing},
		{models.DatasetEbayOutgoing, datasets.EbayOutgoing},
	}
	for _, view := range views {
		if err := writeSet(view.set, view.name, outputDir, delimiter, true, reports); err != nil {
			return nil, err
		}
	}

	for name, report := range reports {
		log.WithFields(
			logging.Field{Key: "dataset", Value: name},
			logging.Field{Key: "file", Value: report.File},
			logging.Field{Key: "rows", Value: report.Rows},
		).Info("Wrote dataset to CSV")
	}

	return reports, nil
}

func writeSet(set models.TransactionSet, name, outputDir string, delimiter rune, withSource bool, reports map[string]SetReport) error {
	path := filepath.Join(outputDir, fileNames[name])

	file, err := os.Create(path) // #nosec G304 -- path built from configured output directory
	if err != nil {
		return fmt.Errorf("error creating CSV file %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter
	safeWriter := gocsv.NewSafeCSVWriter(csvWriter)

	if withSource {
		rows := make([]viewRow, len(set))
		for i, tx := range set {
			rows[i] = viewRow{
				Date:     tx.Date.Format("2006-01-02"),
				Amount:   tx.Amount.StringFixed(2),
				Details:  tx.Details,
				Category: tx.Category,
				Source:   tx.SourceRef,
			}
		}
		err = gocsv.MarshalCSV(&rows, safeWriter)
	} else {
		rows := make([]masterRow, len(set))
		for i, tx := range set {
			rows[i] = masterRow{
				Date:     tx.Date.Format("2006-01-02"),
				Amount:   tx.Amount.StringFixed(2),
				Details:  tx.Details,
				Category: tx.Category,
			}
		}
		err = gocsv.MarshalCSV(&rows, safeWriter)
	}
	if err != nil {
		return fmt.Errorf("error writing CSV data to %s: %w", path, err)
	}

	reports[name] = SetReport{File: path, Rows: len(set)}
	return nil
}
