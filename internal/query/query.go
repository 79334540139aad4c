// Package query implements the pure filters and reports over the loaded
// dataset. Everything here is a linear scan; the dataset is small, static and
// immutable, so no indexing is worth having.
package query

import (
	"errors"
	"sort"

	"inboxpulse/internal/model"
)

// ErrSenderNotFound is returned when a sender lookup misses.
var ErrSenderNotFound = errors.New("sender not found")

// Priority band thresholds: high is score >= 7, medium is 5 <= score < 7,
// low is score < 5.
const (
	highPriorityMin   = 7.0
	mediumPriorityMin = 5.0
)

// ByPriorityBand returns the emails whose priority score falls in the named
// band. Records without analysis or without a score never match. An unknown
// level yields an empty result, not an error.
func ByPriorityBand(emails []model.EmailRecord, level string) []model.EmailRecord {
	out := []model.EmailRecord{}
	for _, e := range emails {
		if e.Analysis == nil || e.Analysis.PriorityScore == nil {
			continue
		}
		score := *e.Analysis.PriorityScore
		var match bool
		switch level {
		case "high":
			match = score >= highPriorityMin
		case "medium":
			match = score >= mediumPriorityMin && score < highPriorityMin
		case "low":
			match = score < mediumPriorityMin
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// BySentiment returns the emails whose sentiment equals category. The loader
// already resolved the enhanced/legacy sentiment fallback chain, so a single
// equality check covers both schemas.
func BySentiment(emails []model.EmailRecord, category string) []model.EmailRecord {
	out := []model.EmailRecord{}
	for _, e := range emails {
		if e.Analysis != nil && e.Analysis.SentimentCategory == category && category != "" {
			out = append(out, e)
		}
	}
	return out
}

// ByResponseType returns the emails whose response_required equals typ.
func ByResponseType(emails []model.EmailRecord, typ string) []model.EmailRecord {
	out := []model.EmailRecord{}
	for _, e := range emails {
		if e.Analysis != nil && e.Analysis.ResponseRequired == typ && typ != "" {
			out = append(out, e)
		}
	}
	return out
}

// ByTopic returns the emails whose topic_category equals category.
func ByTopic(emails []model.EmailRecord, category string) []model.EmailRecord {
	out := []model.EmailRecord{}
	for _, e := range emails {
		if e.Analysis != nil && e.Analysis.TopicCategory == category && category != "" {
			out = append(out, e)
		}
	}
	return out
}

// SenderLookup returns the precomputed per-sender aggregate for the given
// address. The caller is expected to have URL-decoded the address already.
func SenderLookup(summary model.Summary, address string) (any, error) {
	stats, ok := summary.SenderAnalysis[address]
	if !ok {
		return nil, ErrSenderNotFound
	}
	return stats, nil
}

// priorityRank orders action items high before medium before low; anything
// unrecognized sorts after low and keeps encounter order.
var priorityRank = map[string]int{
	"high":   0,
	"medium": 1,
	"low":    2,
}

func rankOf(priority string) int {
	if r, ok := priorityRank[priority]; ok {
		return r
	}
	return len(priorityRank)
}

// ActionItemsReport flattens every email's action items into one report,
// sorted by priority rank. The sort is stable: items of equal rank keep their
// encounter order, and there is deliberately no secondary sort by deadline.
func ActionItemsReport(emails []model.EmailRecord) []model.ActionItemEntry {
	report := []model.ActionItemEntry{}
	for _, e := range emails {
		if e.Analysis == nil {
			continue
		}
		for _, item := range e.Analysis.ActionItems {
			report = append(report, model.ActionItemEntry{
				EmailID:  e.ID,
				Subject:  e.Subject,
				Sender:   e.Sender,
				Action:   item.Action,
				Priority: item.Priority,
				Type:     item.Type,
				Deadline: item.Deadline,
			})
		}
	}

	sort.SliceStable(report, func(i, j int) bool {
		return rankOf(report[i].Priority) < rankOf(report[j].Priority)
	})
	return report
}
