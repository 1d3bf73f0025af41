// Package partitioner builds the Master dataset and derives its filtered
// views. Master is the single source of truth; Incoming, Outgoing and
// eBay-Outgoing are read-only projections whose rows link back to their
// Master row through a spreadsheet reference formula.
package partitioner

import (
	"strings"

	"banksheets/internal/models"

	"github.com/shopspring/decimal"
)

// Datasets holds the Master dataset and the three derived views.
type Datasets struct {
	Master       models.TransactionSet
	Incoming     models.TransactionSet
	Outgoing     models.TransactionSet
	EbayOutgoing models.TransactionSet
}

// Partition assigns Master row numbers in input order and derives the
// filtered views. A transaction with amount exactly zero appears in Master
// but in neither Incoming nor Outgoing. Views are empty, never nil, when no
// row matches. The input order is preserved everywhere.
func Partition(transactions models.TransactionSet) Datasets {
	master := make(models.TransactionSet, len(transactions))
	incoming := models.TransactionSet{}
	outgoing := models.TransactionSet{}
	ebayOutgoing := models.TransactionSet{}

	for i, tx := range transactions {
		tx.MasterRow = i + models.MasterRowOffset
		tx.SourceRef = "" // Master rows never carry a back-reference
		master[i] = tx

		linked := tx
		linked.SourceRef = models.SourceRef(tx.MasterRow)

		if tx.Amount.GreaterThan(decimal.Zero) {
			incoming = append(incoming, linked)
		}
		if tx.Amount.LessThan(decimal.Zero) {
			outgoing = append(outgoing, linked)
			if strings.Contains(strings.ToLower(tx.Details), "ebay") {
				ebayOutgoing = append(ebayOutgoing, linked)
			}
		}
	}

	return Datasets{
		Master:       master,
		Incoming:     incoming,
		Outgoing:     outgoing,
		EbayOutgoing: ebayOutgoing,
	}
}
