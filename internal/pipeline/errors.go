package pipeline

import "errors"

// Structural failures of a pipeline run. Row-local parse failures never
// surface as errors; they degrade to dropped rows.
var (
	// ErrNoAmountColumn means the column mapping did not resolve the
	// mandatory amount column. The pipeline refuses to proceed past mapping.
	ErrNoAmountColumn = errors.New("no amount column resolved in column mapping")

	// ErrEmptyMaster means every input row was dropped during cleaning. A
	// zero-row Master is an error, unlike a legitimately empty filtered view.
	ErrEmptyMaster = errors.New("no valid transactions remain after cleaning")
)
