package partitioner

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"banksheets/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(details string, amount float64) models.Transaction {
	return models.Transaction{
		Date:     time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromFloat(amount),
		Details:  details,
		Category: "Other",
	}
}

func TestPartitionScenario(t *testing.T) {
	input := models.TransactionSet{
		tx("EBAY PURCHASE", -45.00),
		tx("SALARY", 2000.00),
		tx("COFFEE SHOP", -4.50),
	}

	ds := Partition(input)

	require.Len(t, ds.Master, 3)
	assert.Equal(t, []int{2, 3, 4}, masterRows(ds.Master))

	require.Len(t, ds.Incoming, 1)
	assert.True(t, ds.Incoming[0].Amount.Equal(decimal.NewFromFloat(2000.00)))

	require.Len(t, ds.Outgoing, 2)
	assert.True(t, ds.Outgoing[0].Amount.Equal(decimal.NewFromFloat(-45.00)))
	assert.True(t, ds.Outgoing[1].Amount.Equal(decimal.NewFromFloat(-4.50)))

	require.Len(t, ds.EbayOutgoing, 1)
	assert.Equal(t, "=Master!A2", ds.EbayOutgoing[0].SourceRef)
}

func TestMasterRowsSequentialWithoutGaps(t *testing.T) {
	input := models.TransactionSet{}
	for i := 0; i < 10; i++ {
		input = append(input, tx(fmt.Sprintf("TX %d", i), float64(i+1)))
	}

	ds := Partition(input)

	require.Len(t, ds.Master, 10)
	for i, row := range ds.Master {
		assert.Equal(t, i+models.MasterRowOffset, row.MasterRow)
	}
}

func TestMasterRowsNeverCarrySourceRef(t *testing.T) {
	input := models.TransactionSet{tx("EBAY", -1), tx("SALARY", 1)}
	// A stray SourceRef on the input must not leak into Master.
	input[0].SourceRef = "=Master!A99"

	ds := Partition(input)
	for _, row := range ds.Master {
		assert.Empty(t, row.SourceRef)
	}
}

func TestFilteredViewsCarrySourceRefs(t *testing.T) {
	input := models.TransactionSet{
		tx("EBAY SELLER", -10.00),
		tx("DEPOSIT", 50.00),
		tx("GAS STATION", -20.00),
	}

	ds := Partition(input)

	for _, set := range []models.TransactionSet{ds.Incoming, ds.Outgoing, ds.EbayOutgoing} {
		for _, row := range set {
			assert.Equal(t, models.SourceRef(row.MasterRow), row.SourceRef)
		}
	}
}

func TestZeroAmountInMasterOnly(t *testing.T) {
	input := models.TransactionSet{
		tx("ZERO FEE", 0.00),
		tx("SALARY", 100.00),
		tx("SHOP", -5.00),
	}

	ds := Partition(input)

	assert.Len(t, ds.Master, 3)
	assert.Len(t, ds.Incoming, 1)
	assert.Len(t, ds.Outgoing, 1)
	for _, row := range append(ds.Incoming, ds.Outgoing...) {
		assert.False(t, row.Amount.IsZero())
	}
}

func TestSignPartitionCoversMasterWithoutZeros(t *testing.T) {
	input := models.TransactionSet{
		tx("A", 1.00), tx("B", -2.00), tx("C", 3.00), tx("D", -4.00),
	}

	ds := Partition(input)
	assert.Equal(t, len(ds.Master), len(ds.Incoming)+len(ds.Outgoing))
}

func TestEbayOutgoingIsSubsetOfOutgoing(t *testing.T) {
	input := models.TransactionSet{
		tx("EBAY PURCHASE", -45.00),
		tx("EBAY REFUND", 45.00), // positive, must not appear in ebay outgoing
		tx("ebay store", -1.00),
		tx("OTHER SHOP", -2.00),
	}

	ds := Partition(input)

	require.Len(t, ds.EbayOutgoing, 2)
	outgoingRows := masterRows(ds.Outgoing)
	for _, row := range ds.EbayOutgoing {
		assert.Contains(t, outgoingRows, row.MasterRow)
		assert.Contains(t, strings.ToLower(row.Details), "ebay")
		assert.True(t, row.Amount.IsNegative())
	}
}

func TestEmptyViewsAreEmptyNotNil(t *testing.T) {
	input := models.TransactionSet{tx("ZERO", 0.00)}

	ds := Partition(input)

	assert.NotNil(t, ds.Incoming)
	assert.NotNil(t, ds.Outgoing)
	assert.NotNil(t, ds.EbayOutgoing)
	assert.Empty(t, ds.Incoming)
	assert.Empty(t, ds.Outgoing)
	assert.Empty(t, ds.EbayOutgoing)
}

func TestPartitionIsIdempotent(t *testing.T) {
	input := models.TransactionSet{
		tx("EBAY PURCHASE", -45.00),
		tx("SALARY", 2000.00),
		tx("COFFEE SHOP", -4.50),
	}

	first := Partition(input)
	second := Partition(input)
	assert.Equal(t, first, second)
}

func masterRows(set models.TransactionSet) []int {
	rows := make([]int, len(set))
	for i, row := range set {
		rows[i] = row.MasterRow
	}
	return rows
}
