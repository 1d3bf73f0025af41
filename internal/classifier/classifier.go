package classifier

import (
	"context"

	"banksheets/internal/logging"
	"banksheets/internal/models"

	"github.com/shopspring/decimal"
)

// Classifier runs categorization strategies in order and falls back to the
// default label when none of them matches.
type Classifier struct {
	strategies []Strategy
	logger     logging.Logger
}

// New creates a Classifier with the keyword strategy built from config.
func New(config models.CategoriesConfig, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Classifier{
		strategies: []Strategy{NewKeywordStrategy(config)},
		logger:     logger,
	}
}

// AddStrategy appends a strategy consulted after the existing ones.
func (c *Classifier) AddStrategy(s Strategy) {
	c.strategies = append(c.strategies, s)
}

// Categorize returns the category label for a transaction. Strategy errors
// are logged and treated as a miss; an unmatched transaction is labeled
// Other.
func (c *Classifier) Categorize(ctx context.Context, details string, amount decimal.Decimal) string {
	for _, strategy := range c.strategies {
		category, found, err := strategy.Categorize(ctx, details, amount)
		if err != nil {
			c.logger.WithError(err).WithFields(
				logging.Field{Key: "strategy", Value: strategy.Name()},
				logging.Field{Key: "details", Value: details},
			).Warn("Categorization strategy failed, trying next")
			continue
		}
		if found {
			c.logger.WithFields(
				logging.Field{Key: "strategy", Value: strategy.Name()},
				logging.Field{Key: "category", Value: category},
			).Debug("Transaction categorized")
			return category
		}
	}
	return models.CategoryOther
}
