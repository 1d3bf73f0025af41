package models

// Category labels assigned by the classifier.
const (
	CategoryEbay          = "eBay"
	CategoryIncome        = "Income"
	CategoryOther         = "Other"
	CategoryUncategorized = "Uncategorized"
)

// MasterRowOffset is the sheet row of the first Master transaction: rows are
// 1-indexed and row 1 is the header.
const MasterRowOffset = 2

// Dataset names, used for export file naming and worksheet titles.
const (
	DatasetMaster       = "Master"
	DatasetIncoming     = "Incoming"
	DatasetOutgoing     = "Outgoing"
	DatasetEbayOutgoing = "eBay_Outgoing"
)
