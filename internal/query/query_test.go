package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inboxpulse/internal/model"
)

func scored(id string, score float64) model.EmailRecord {
	return model.EmailRecord{
		ID:       id,
		Analysis: &model.Analysis{PriorityScore: &score},
	}
}

func ids(emails []model.EmailRecord) []string {
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		out = append(out, e.ID)
	}
	return out
}

func TestByPriorityBandBoundaries(t *testing.T) {
	emails := []model.EmailRecord{
		scored("nine", 9.0),
		scored("seven", 7.0),
		scored("almost-seven", 6.9),
		scored("five", 5.0),
		scored("almost-five", 4.9),
		{ID: "unanalyzed"},
	}

	assert.Equal(t, []string{"nine", "seven"}, ids(ByPriorityBand(emails, "high")))
	assert.Equal(t, []string{"almost-seven", "five"}, ids(ByPriorityBand(emails, "medium")))
	assert.Equal(t, []string{"almost-five"}, ids(ByPriorityBand(emails, "low")))
}

func TestByPriorityBandPartitionsScoredEmails(t *testing.T) {
	emails := []model.EmailRecord{
		scored("a", 1.5), scored("b", 5.0), scored("c", 6.99),
		scored("d", 7.0), scored("e", 10.0),
		{ID: "no-analysis"},
		{ID: "no-score", Analysis: &model.Analysis{}},
	}

	total := 0
	for _, level := range []string{"high", "medium", "low"} {
		total += len(ByPriorityBand(emails, level))
	}
	// every scored email lands in exactly one band; unscored in none
	assert.Equal(t, 5, total)
}

func TestByPriorityBandUnknownLevel(t *testing.T) {
	emails := []model.EmailRecord{scored("a", 8.0)}
	assert.Empty(t, ByPriorityBand(emails, "urgent"))
}

func TestBySentiment(t *testing.T) {
	emails := []model.EmailRecord{
		{ID: "a", Analysis: &model.Analysis{SentimentCategory: "negative"}},
		{ID: "b", Analysis: &model.Analysis{SentimentCategory: "positive"}},
		{ID: "c"},
	}

	assert.Equal(t, []string{"a"}, ids(BySentiment(emails, "negative")))
	assert.Empty(t, BySentiment(emails, "mixed"))
}

func TestByResponseTypeAndTopic(t *testing.T) {
	emails := []model.EmailRecord{
		{ID: "a", Analysis: &model.Analysis{ResponseRequired: "immediate", TopicCategory: "support"}},
		{ID: "b", Analysis: &model.Analysis{ResponseRequired: "none", TopicCategory: "sales"}},
	}

	assert.Equal(t, []string{"a"}, ids(ByResponseType(emails, "immediate")))
	assert.Equal(t, []string{"b"}, ids(ByTopic(emails, "sales")))
	assert.Empty(t, ByTopic(emails, "billing"))
}

func TestSenderLookup(t *testing.T) {
	summary := model.EmptySummary()
	summary.SenderAnalysis["jane@example.com"] = map[string]any{"count": 3}

	stats, err := SenderLookup(summary, "jane@example.com")
	require.NoError(t, err)
	assert.NotNil(t, stats)

	_, err = SenderLookup(summary, "nobody@example.com")
	assert.ErrorIs(t, err, ErrSenderNotFound)
}

func TestActionItemsReportFlattensAndSorts(t *testing.T) {
	emails := []model.EmailRecord{
		{
			ID: "e1", Subject: "s1", Sender: "a@x.com",
			Analysis: &model.Analysis{ActionItems: []model.ActionItem{
				{Action: "first high", Priority: "high", Type: "call"},
				{Action: "a low", Priority: "low", Type: "general"},
			}},
		},
		{ID: "skip me"},
		{
			ID: "e2", Subject: "s2", Sender: "b@x.com",
			Analysis: &model.Analysis{ActionItems: []model.ActionItem{
				{Action: "a medium", Priority: "medium", Type: "general"},
				{Action: "second high", Priority: "high", Type: "email"},
			}},
		},
	}

	report := ActionItemsReport(emails)
	require.Len(t, report, 4)

	// all high, then medium, then low; equal ranks keep encounter order
	assert.Equal(t, "first high", report[0].Action)
	assert.Equal(t, "second high", report[1].Action)
	assert.Equal(t, "a medium", report[2].Action)
	assert.Equal(t, "a low", report[3].Action)

	// parent email fields are denormalized onto each row
	assert.Equal(t, "e2", report[1].EmailID)
	assert.Equal(t, "s2", report[1].Subject)
	assert.Equal(t, "b@x.com", report[1].Sender)
}

func TestActionItemsReportUnrecognizedPrioritySortsLast(t *testing.T) {
	emails := []model.EmailRecord{
		{ID: "e1", Analysis: &model.Analysis{ActionItems: []model.ActionItem{
			{Action: "whenever", Priority: "someday"},
			{Action: "urgent", Priority: "high"},
			{Action: "also whenever", Priority: "unknown"},
		}}},
	}

	report := ActionItemsReport(emails)
	require.Len(t, report, 3)
	assert.Equal(t, "urgent", report[0].Action)
	// unrecognized ranks are equal to each other and keep order
	assert.Equal(t, "whenever", report[1].Action)
	assert.Equal(t, "also whenever", report[2].Action)
}

func TestActionItemsReportEmpty(t *testing.T) {
	assert.Empty(t, ActionItemsReport(nil))
	assert.NotNil(t, ActionItemsReport(nil))
}
