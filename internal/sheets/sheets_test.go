package sheets

import (
	"testing"
	"time"

	"banksheets/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() models.TransactionSet {
	return models.TransactionSet{
		{
			Date:      time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
			Amount:    decimal.NewFromFloat(-45.00),
			Details:   "EBAY PURCHASE",
			Category:  "eBay",
			MasterRow: 2,
			SourceRef: models.SourceRef(2),
		},
		{
			Date:      time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC),
			Amount:    decimal.NewFromFloat(2000.00),
			Details:   "SALARY",
			Category:  "Income",
			MasterRow: 3,
			SourceRef: models.SourceRef(3),
		},
	}
}

func TestDatasetValuesMaster(t *testing.T) {
	values := DatasetValues(sampleSet(), false)

	require.Len(t, values, 3)
	assert.Equal(t, []interface{}{"Date", "Amount", "Details", "Category"}, values[0])
	assert.Equal(t, []interface{}{"2024-01-02", "-45.00", "EBAY PURCHASE", "eBay"}, values[1])
	assert.Equal(t, []interface{}{"2024-01-03", "2000.00", "SALARY", "Income"}, values[2])
}

func TestDatasetValuesWithSource(t *testing.T) {
	values := DatasetValues(sampleSet(), true)

	require.Len(t, values, 3)
	assert.Equal(t, []interface{}{"Date", "Amount", "Details", "Category", "Source"}, values[0])
	assert.Equal(t, "=Master!A2", values[1][4])
	assert.Equal(t, "=Master!A3", values[2][4])
}

func TestDatasetValuesEmptySet(t *testing.T) {
	values := DatasetValues(models.TransactionSet{}, true)

	require.Len(t, values, 1)
	assert.Equal(t, []interface{}{"Date", "Amount", "Details", "Category", "Source"}, values[0])
}

func TestSpreadsheetURL(t *testing.T) {
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc123", SpreadsheetURL("abc123"))
}
