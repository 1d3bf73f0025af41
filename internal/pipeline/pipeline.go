// Package pipeline orchestrates the cleaning run: column mapping, field
// normalization, per-row classification and partitioning. It consumes an
// in-memory table and produces in-memory datasets; it performs no I/O of its
// own, so exporters and uploaders stay external collaborators.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"banksheets/internal/classifier"
	"banksheets/internal/csvtable"
	"banksheets/internal/logging"
	"banksheets/internal/mapper"
	"banksheets/internal/models"
	"banksheets/internal/normalizer"
	"banksheets/internal/partitioner"
)

// Options configures a pipeline run.
type Options struct {
	// Overrides are user-supplied column choices merged over the inferred
	// mapping.
	Overrides mapper.Overrides
	// DayFirst switches ambiguous numeric dates to the day-first convention.
	DayFirst bool
	// Classifier labels rows whose source category is empty. When nil such
	// rows keep the Uncategorized default.
	Classifier *classifier.Classifier
	Logger     logging.Logger
}

// Result is the outcome of a successful run.
type Result struct {
	Mapping  models.ColumnMapping
	Datasets partitioner.Datasets
	// Dropped counts input rows discarded because their date or amount
	// could not be parsed.
	Dropped int
}

// Run executes the cleaning pipeline over a raw table.
//
// Rows whose amount or date cannot be parsed are dropped, never fatal. The
// two structural failures are fatal: ErrNoAmountColumn before normalization
// starts, and ErrEmptyMaster when cleaning leaves no rows.
func Run(ctx context.Context, table *csvtable.Table, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logging.NewLogrusAdapter("info", "text")
	}

	mapping := mapper.ApplyOverrides(mapper.InferMapping(table.Columns), opts.Overrides)
	if !mapping.HasAmount() {
		return nil, fmt.Errorf("columns %v: %w", table.Columns, ErrNoAmountColumn)
	}
	log.WithFields(
		logging.Field{Key: "date", Value: mapping.Date},
		logging.Field{Key: "description", Value: mapping.Description},
		logging.Field{Key: "amount", Value: mapping.Amount},
		logging.Field{Key: "category", Value: mapping.Category},
	).Info("Resolved column mapping")

	cleaned := make(models.TransactionSet, 0, len(table.Rows))
	dropped := 0
	for i, row := range table.Rows {
		tx, ok := cleanRow(row, mapping, opts.DayFirst)
		if !ok {
			dropped++
			log.WithFields(
				logging.Field{Key: "row", Value: i + 1},
				logging.Field{Key: "date", Value: row.Get(mapping.Date)},
				logging.Field{Key: "amount", Value: row.Get(mapping.Amount)},
			).Warn("Dropping row with unparseable date or amount")
			continue
		}

		if tx.Category == "" {
			if opts.Classifier != nil {
				tx.Category = opts.Classifier.Categorize(ctx, tx.Details, tx.Amount)
			} else {
				tx.Category = models.CategoryUncategorized
			}
		}

		cleaned = append(cleaned, tx)
	}

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%d rows read, %d dropped: %w", len(table.Rows), dropped, ErrEmptyMaster)
	}

	datasets := partitioner.Partition(cleaned)
	log.WithFields(
		logging.Field{Key: "master", Value: len(datasets.Master)},
		logging.Field{Key: "incoming", Value: len(datasets.Incoming)},
		logging.Field{Key: "outgoing", Value: len(datasets.Outgoing)},
		logging.Field{Key: "ebay_outgoing", Value: len(datasets.EbayOutgoing)},
		logging.Field{Key: "dropped", Value: dropped},
	).Info("Cleaning pipeline completed")

	return &Result{Mapping: mapping, Datasets: datasets, Dropped: dropped}, nil
}

// cleanRow normalizes one raw row. The boolean is false when a mandatory
// field (date or amount) is missing or unparseable.
func cleanRow(row csvtable.RawRecord, mapping models.ColumnMapping, dayFirst bool) (models.Transaction, bool) {
	amount, ok := normalizer.CleanAmount(row.Get(mapping.Amount))
	if !ok {
		return models.Transaction{}, false
	}

	date, ok := normalizer.CleanDate(row.Get(mapping.Date), dayFirst)
	if !ok {
		return models.Transaction{}, false
	}

	details := normalizer.MergeDetails(row.Get(mapping.Description), row)

	category := ""
	if mapping.Category != "" {
		category = strings.TrimSpace(row.Get(mapping.Category))
	}

	return models.Transaction{
		Date:     date,
		Amount:   amount,
		Details:  details,
		Category: category,
	}, true
}
