package dataset

// Raw wire shapes for the analyzer output. Two generations of the analyzer
// are in circulation: the newer one writes flat "enhanced" analysis fields
// and an overview-based summary, the older one nests sentiment under
// sentiment.ai_analysis and writes a statistics-based summary. Both decode
// into the same raw structs; normalize.go resolves which generation wins.

type rawFile struct {
	Emails     []rawEmail     `json:"emails"`
	Summary    rawSummary     `json:"summary"`
	QuickViews *rawQuickViews `json:"quick_views"`
}

type rawEmail struct {
	ID       any          `json:"id"`
	Subject  string       `json:"subject"`
	Sender   string       `json:"sender"`
	Analysis *rawAnalysis `json:"analysis"`
}

type rawAnalysis struct {
	// enhanced fields
	PriorityScore     *float64        `json:"priority_score"`
	SentimentCategory string          `json:"sentiment_category"`
	ResponseRequired  string          `json:"response_required"`
	TopicCategory     string          `json:"topic_category"`
	Summary           string          `json:"summary"`
	ResponseDeadline  string          `json:"response_deadline"`
	ActionItems       []rawActionItem `json:"action_items"`

	// legacy nested sentiment block
	Sentiment *rawSentiment `json:"sentiment"`
}

type rawActionItem struct {
	Action   string `json:"action"`
	Priority string `json:"priority"`
	Type     string `json:"type"`
	Deadline string `json:"deadline"`
}

type rawSentiment struct {
	Classification string `json:"classification"`
	AIAnalysis     struct {
		OverallSentiment string `json:"overall_sentiment"`
	} `json:"ai_analysis"`
}

type rawSummary struct {
	// enhanced shape
	Overview        *rawOverview      `json:"overview"`
	SenderAnalysis  map[string]any    `json:"sender_analysis"`
	HighImpactItems []any             `json:"high_impact_items"`
	AIInsights      map[string]any    `json:"ai_insights"`
	QuickViews      *rawQuickViews    `json:"quick_views"`
	Distributions   *rawDistributions `json:"distributions"`

	// legacy shape
	Statistics        *rawOverview `json:"statistics"`
	HighPriorityItems []any        `json:"high_priority_items"`
}

type rawOverview struct {
	TotalEmails     int     `json:"total_emails"`
	AveragePriority float64 `json:"average_priority"`
	ResponseNeeded  int     `json:"response_needed"`
}

type rawDistributions struct {
	Sentiment map[string]int `json:"sentiment"`
	Priority  map[string]int `json:"priority"`
	Topic     map[string]int `json:"topic"`
}

type rawQuickViews struct {
	FiresToPutOut        []any `json:"fires_to_put_out"`
	QuickWins            []any `json:"quick_wins"`
	RetentionRisks       []any `json:"retention_risks"`
	PositiveTestimonials []any `json:"positive_testimonials"`
	NeedsResponseToday   []any `json:"needs_response_today"`
	VIPCommunications    []any `json:"vip_communications"`
}
