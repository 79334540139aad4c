package model

// ActionItem is one follow-up extracted by the offline analyzer.
type ActionItem struct {
	Action   string `json:"action"`
	Priority string `json:"priority"`
	Type     string `json:"type"`
	Deadline string `json:"deadline,omitempty"`
}

// Analysis is the canonical per-email analysis. The loader folds both
// historical analyzer schemas into this shape, so nothing downstream has to
// know that a legacy nested sentiment block ever existed.
type Analysis struct {
	PriorityScore     *float64     `json:"priority_score,omitempty"`
	SentimentCategory string       `json:"sentiment_category,omitempty"`
	ResponseRequired  string       `json:"response_required,omitempty"`
	TopicCategory     string       `json:"topic_category,omitempty"`
	Summary           string       `json:"summary,omitempty"`
	ResponseDeadline  string       `json:"response_deadline,omitempty"`
	ActionItems       []ActionItem `json:"action_items,omitempty"`
}

// EmailRecord is one analyzed email. Analysis is nil when the analyzer
// produced nothing for the record; such records are excluded from every
// analysis-based filter.
type EmailRecord struct {
	ID       string    `json:"id"`
	Subject  string    `json:"subject"`
	Sender   string    `json:"sender"`
	Analysis *Analysis `json:"analysis,omitempty"`
}

// ActionItemEntry is one row of the flattened action-items report, carrying
// denormalized fields from the parent email.
type ActionItemEntry struct {
	EmailID  string `json:"email_id"`
	Subject  string `json:"subject"`
	Sender   string `json:"sender"`
	Action   string `json:"action"`
	Priority string `json:"priority"`
	Type     string `json:"type"`
	Deadline string `json:"deadline,omitempty"`
}
