// Package dataset loads the offline analyzer's JSON output into an immutable
// in-memory dataset. Both historical analyzer schemas are normalized into the
// canonical model at load time; after that the dataset is read-only for the
// rest of the process.
package dataset

import (
	"inboxpulse/internal/model"
)

// Dataset is the process-wide read-only view of the analyzer output.
type Dataset struct {
	Emails     []model.EmailRecord
	Summary    model.Summary
	QuickViews model.QuickViews

	// Loaded is true iff one of the JSON sources was read and parsed.
	// A loaded-but-empty mailbox still counts as loaded.
	Loaded bool

	// Enhanced is true iff the first raw email record carried a non-empty
	// sentiment_category, i.e. the file was produced by the newer analyzer.
	Enhanced bool
}

// Empty returns the fail-open default used when no source could be read.
func Empty() *Dataset {
	return &Dataset{
		Emails:     []model.EmailRecord{},
		Summary:    model.EmptySummary(),
		QuickViews: model.EmptyQuickViews(),
	}
}
