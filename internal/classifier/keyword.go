package classifier

import (
	"context"
	"strings"

	"banksheets/internal/models"

	"github.com/shopspring/decimal"
)

// rule is one entry of the ordered rule table: a predicate over the
// lowercased details text and the signed amount, and the label it assigns.
type rule struct {
	label string
	match func(details string, amount decimal.Decimal) bool
}

// KeywordStrategy categorizes transactions with the ordered keyword rule
// table: eBay first, then income keywords on positive amounts, then the
// expense keyword tables in declaration order.
type KeywordStrategy struct {
	rules []rule
}

// NewKeywordStrategy builds the rule table from a category configuration.
func NewKeywordStrategy(config models.CategoriesConfig) *KeywordStrategy {
	rules := []rule{
		{
			label: models.CategoryEbay,
			match: func(details string, _ decimal.Decimal) bool {
				return strings.Contains(details, "ebay")
			},
		},
		{
			label: models.CategoryIncome,
			match: func(details string, amount decimal.Decimal) bool {
				return amount.GreaterThan(decimal.Zero) && containsAny(details, config.IncomeKeywords)
			},
		},
	}

	for _, expense := range config.Expenses {
		keywords := expense.Keywords
		rules = append(rules, rule{
			label: expense.Name,
			match: func(details string, _ decimal.Decimal) bool {
				return containsAny(details, keywords)
			},
		})
	}

	return &KeywordStrategy{rules: rules}
}

// Name returns the name of this strategy for logging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize evaluates the rule table top-down; the first matching rule
// wins.
func (s *KeywordStrategy) Categorize(_ context.Context, details string, amount decimal.Decimal) (string, bool, error) {
	lowered := strings.ToLower(details)
	for _, r := range s.rules {
		if r.match(lowered, amount) {
			return r.label, true, nil
		}
	}
	return "", false, nil
}

func containsAny(details string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(details, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
