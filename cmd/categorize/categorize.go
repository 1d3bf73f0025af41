// Package categorize implements the one-off categorization command.
package categorize

import (
	"context"

	"banksheets/cmd/root"
	"banksheets/internal/classifier"
	"banksheets/internal/logging"
	"banksheets/internal/normalizer"
	"banksheets/internal/store"

	"github.com/spf13/cobra"
)

var (
	details string
	amount  string
)

// Cmd is the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction from its details and amount",
	Run:   categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&details, "details", "d", "", "Transaction details text (required)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "0.00", "Signed transaction amount (e.g. -12.50)")
	_ = Cmd.MarkFlagRequired("details")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	log := root.Logger
	cfg := root.Cfg

	value, ok := normalizer.CleanAmount(amount)
	if !ok {
		log.Fatalf("Cannot parse amount: %s", amount)
	}

	categories, err := store.NewCategoryStore(cfg.Categories.File).LoadCategories()
	if err != nil {
		log.Fatalf("Error loading categories: %v", err)
	}

	cls := classifier.New(categories, log)
	category := cls.Categorize(context.Background(), details, value)

	log.WithFields(
		logging.Field{Key: "details", Value: details},
		logging.Field{Key: "amount", Value: value.StringFixed(2)},
		logging.Field{Key: "category", Value: category},
	).Info("Transaction categorized")
}
