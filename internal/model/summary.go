package model

// Summary is the canonical aggregate over the whole mailbox. Every field is
// given a typed zero value during normalization so no endpoint ever serializes
// a JSON null for an expected field.
type Summary struct {
	TotalEmails     int            `json:"total_emails"`
	AveragePriority float64        `json:"average_priority"`
	ResponseNeeded  int            `json:"response_needed"`
	SentimentDist   map[string]int `json:"sentiment_distribution"`
	PriorityDist    map[string]int `json:"priority_distribution"`
	TopicDist       map[string]int `json:"topic_distribution"`
	SenderAnalysis  map[string]any `json:"sender_analysis"`
	HighImpactItems []any          `json:"high_impact_items"`
	AIInsights      map[string]any `json:"ai_insights"`
}

// EmptySummary returns a Summary with all collections allocated.
func EmptySummary() Summary {
	return Summary{
		SentimentDist:   map[string]int{},
		PriorityDist:    map[string]int{},
		TopicDist:       map[string]int{},
		SenderAnalysis:  map[string]any{},
		HighImpactItems: []any{},
		AIInsights:      map[string]any{},
	}
}

// QuickViews holds the upstream-curated groupings shown on the dashboard.
// Entries are precomputed email digests served as-is.
type QuickViews struct {
	FiresToPutOut        []any `json:"fires_to_put_out"`
	QuickWins            []any `json:"quick_wins"`
	RetentionRisks       []any `json:"retention_risks"`
	PositiveTestimonials []any `json:"positive_testimonials"`
	NeedsResponseToday   []any `json:"needs_response_today"`
	VIPCommunications    []any `json:"vip_communications"`
}

// EmptyQuickViews returns a QuickViews with every list allocated.
func EmptyQuickViews() QuickViews {
	return QuickViews{
		FiresToPutOut:        []any{},
		QuickWins:            []any{},
		RetentionRisks:       []any{},
		PositiveTestimonials: []any{},
		NeedsResponseToday:   []any{},
		VIPCommunications:    []any{},
	}
}
