// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ColumnMapping declares which input column feeds each canonical field.
// An empty value means "not available"; Amount is the only field that must
// resolve before cleaning can proceed.
type ColumnMapping struct {
	Date        string
	Description string
	Amount      string
	Category    string
}

// HasAmount reports whether the mandatory amount column resolved.
func (m ColumnMapping) HasAmount() bool {
	return m.Amount != ""
}

// Transaction is the canonical normalized record produced by the cleaning
// pipeline. MasterRow is the sheet row of the transaction in the Master
// dataset (1-based, offset by the header row); SourceRef is only populated
// on rows belonging to a filtered view and encodes the back-link to Master.
type Transaction struct {
	Date      time.Time
	Amount    decimal.Decimal
	Details   string
	Category  string
	MasterRow int
	SourceRef string
}

// TransactionSet is an ordered sequence of transactions representing the
// Master dataset or one of its derived views.
type TransactionSet []Transaction

// SourceRef encodes a Master row number as a spreadsheet formula that a
// downstream sheet consumer resolves to the originating row.
func SourceRef(masterRow int) string {
	return fmt.Sprintf("=Master!A%d", masterRow)
}

// CategoryRule is one entry of the ordered expense keyword table. Rules are
// evaluated in declaration order; the first rule with a matching keyword wins.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig is the structure of the categories YAML file.
type CategoriesConfig struct {
	IncomeKeywords []string       `yaml:"income_keywords"`
	Expenses       []CategoryRule `yaml:"expenses"`
}
