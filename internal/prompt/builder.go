// Package prompt renders the system prompt given to the chat model: a
// digest of the analyzed mailbox that lets the model answer questions about
// it without seeing the raw data.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"inboxpulse/internal/dataset"
)

// Build assembles the system prompt from the loaded dataset. All inputs were
// normalized at load time, so every interpolated value has a typed zero
// default and empty distributions simply render zero lines.
func Build(ds *dataset.Dataset) string {
	var b strings.Builder

	b.WriteString("You are an email analytics assistant for a customer-facing inbox. ")
	b.WriteString("Answer questions using the analysis data below. Be concise and concrete; ")
	b.WriteString("when you reference an email, name its subject and sender.\n\n")

	s := ds.Summary
	b.WriteString("Mailbox overview:\n")
	fmt.Fprintf(&b, "- Total emails analyzed: %d\n", s.TotalEmails)
	fmt.Fprintf(&b, "- Average priority score: %.1f\n", s.AveragePriority)
	fmt.Fprintf(&b, "- Emails requiring a response: %d\n", s.ResponseNeeded)

	writeDistribution(&b, "Sentiment distribution", s.SentimentDist)
	writeDistribution(&b, "Priority distribution", s.PriorityDist)
	writeDistribution(&b, "Topic distribution", s.TopicDist)

	b.WriteString("\nHigh-priority emails (score 7+):\n")
	for _, e := range ds.Emails {
		a := e.Analysis
		if a == nil || a.PriorityScore == nil || *a.PriorityScore < 7 {
			continue
		}
		fmt.Fprintf(&b, "- [%.1f] %q from %s (sentiment: %s, response required: %s): %s\n",
			*a.PriorityScore, e.Subject, e.Sender,
			orDefault(a.SentimentCategory, "unknown"),
			orDefault(a.ResponseRequired, "none"),
			a.Summary,
		)
	}

	qv := ds.QuickViews
	b.WriteString("\nQuick views:\n")
	fmt.Fprintf(&b, "- Fires to put out: %d\n", len(qv.FiresToPutOut))
	fmt.Fprintf(&b, "- Quick wins: %d\n", len(qv.QuickWins))
	fmt.Fprintf(&b, "- Retention risks: %d\n", len(qv.RetentionRisks))
	fmt.Fprintf(&b, "- Positive testimonials: %d\n", len(qv.PositiveTestimonials))
	fmt.Fprintf(&b, "- Needs response today: %d\n", len(qv.NeedsResponseToday))
	fmt.Fprintf(&b, "- VIP communications: %d\n", len(qv.VIPCommunications))

	return b.String()
}

// writeDistribution renders "- key: count" lines in a deterministic order.
func writeDistribution(b *strings.Builder, title string, dist map[string]int) {
	fmt.Fprintf(b, "\n%s:\n", title)
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "- %s: %d\n", k, dist[k])
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
