// Package classifier assigns a category label to a transaction from its
// details text and signed amount. Classification is an ordered list of
// (predicate, label) rules evaluated top-down with first-match-wins
// semantics; strategies layer on top so an optional AI fallback can be
// consulted before the default label applies.
package classifier

import (
	"context"

	"github.com/shopspring/decimal"
)

// Strategy is one categorization approach. Strategies are tried in order;
// the first one that reports found wins.
type Strategy interface {
	// Categorize attempts to label a transaction. The boolean reports
	// whether this strategy produced a label.
	Categorize(ctx context.Context, details string, amount decimal.Decimal) (string, bool, error)

	// Name identifies the strategy in logs.
	Name() string
}
