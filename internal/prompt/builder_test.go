package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"inboxpulse/internal/dataset"
	"inboxpulse/internal/model"
)

func score(v float64) *float64 { return &v }

func sampleDataset() *dataset.Dataset {
	ds := dataset.Empty()
	ds.Loaded = true
	ds.Summary.TotalEmails = 3
	ds.Summary.AveragePriority = 6.45
	ds.Summary.ResponseNeeded = 2
	ds.Summary.SentimentDist = map[string]int{"negative": 2, "positive": 1}
	ds.Summary.TopicDist = map[string]int{"support": 3}
	ds.Emails = []model.EmailRecord{
		{
			ID: "e1", Subject: "Checkout broken", Sender: "ops@acme.com",
			Analysis: &model.Analysis{
				PriorityScore:     score(9.25),
				SentimentCategory: "negative",
				ResponseRequired:  "immediate",
				Summary:           "EU checkout is failing.",
			},
		},
		{
			ID: "e2", Subject: "Lunch?", Sender: "friend@x.com",
			Analysis: &model.Analysis{PriorityScore: score(2.0)},
		},
	}
	ds.QuickViews.FiresToPutOut = []any{map[string]any{"id": "e1"}}
	return ds
}

func TestBuildIncludesOverviewAndDistributions(t *testing.T) {
	out := Build(sampleDataset())

	assert.Contains(t, out, "- Total emails analyzed: 3")
	assert.Contains(t, out, "- Average priority score: 6.5")
	assert.Contains(t, out, "- Emails requiring a response: 2")
	assert.Contains(t, out, "- negative: 2")
	assert.Contains(t, out, "- positive: 1")
	assert.Contains(t, out, "- support: 3")
}

func TestBuildListsOnlyHighPriorityEmails(t *testing.T) {
	out := Build(sampleDataset())

	// score formatted to one decimal place
	assert.Contains(t, out, `[9.2] "Checkout broken" from ops@acme.com`)
	assert.Contains(t, out, "sentiment: negative")
	assert.Contains(t, out, "response required: immediate")
	assert.NotContains(t, out, "Lunch?")
}

func TestBuildIncludesQuickViewCounts(t *testing.T) {
	out := Build(sampleDataset())

	assert.Contains(t, out, "- Fires to put out: 1")
	assert.Contains(t, out, "- Quick wins: 0")
	assert.Contains(t, out, "- VIP communications: 0")
}

func TestBuildOnEmptyDataset(t *testing.T) {
	out := Build(dataset.Empty())

	assert.Contains(t, out, "- Total emails analyzed: 0")
	assert.Contains(t, out, "- Average priority score: 0.0")
	// empty distributions render headers with zero entry lines
	assert.Contains(t, out, "Sentiment distribution:\n\n")
	assert.NotContains(t, out, "<nil>")

	// every line is complete: no dangling interpolations
	for _, line := range strings.Split(out, "\n") {
		assert.NotContains(t, line, "%!")
	}
}
