package dataset

import (
	"strconv"

	"inboxpulse/internal/model"
)

// normalize folds a decoded raw file into the canonical dataset. Fallback
// order everywhere is enhanced field first, legacy field second, typed zero
// value last; the first populated source wins and nothing is double-counted.
func normalize(raw *rawFile) *Dataset {
	ds := Empty()
	ds.Loaded = true

	for i, re := range raw.Emails {
		ds.Emails = append(ds.Emails, normalizeEmail(i, re))
	}
	ds.Summary = normalizeSummary(raw.Summary)
	ds.QuickViews = normalizeQuickViews(raw.QuickViews, raw.Summary.QuickViews)

	if len(raw.Emails) > 0 {
		if a := raw.Emails[0].Analysis; a != nil && a.SentimentCategory != "" {
			ds.Enhanced = true
		}
	}
	return ds
}

func normalizeEmail(idx int, re rawEmail) model.EmailRecord {
	rec := model.EmailRecord{
		ID:      emailID(re.ID, idx),
		Subject: re.Subject,
		Sender:  re.Sender,
	}
	if re.Analysis == nil {
		return rec
	}

	a := &model.Analysis{
		PriorityScore:     re.Analysis.PriorityScore,
		SentimentCategory: sentimentOf(re.Analysis),
		ResponseRequired:  re.Analysis.ResponseRequired,
		TopicCategory:     re.Analysis.TopicCategory,
		Summary:           re.Analysis.Summary,
		ResponseDeadline:  re.Analysis.ResponseDeadline,
	}
	for _, item := range re.Analysis.ActionItems {
		typ := item.Type
		if typ == "" {
			typ = "general"
		}
		deadline := item.Deadline
		if deadline == "" {
			deadline = re.Analysis.ResponseDeadline
		}
		a.ActionItems = append(a.ActionItems, model.ActionItem{
			Action:   item.Action,
			Priority: item.Priority,
			Type:     typ,
			Deadline: deadline,
		})
	}
	rec.Analysis = a
	return rec
}

// sentimentOf resolves the sentiment fallback chain: the enhanced flat field,
// then legacy ai_analysis.overall_sentiment, then legacy classification.
func sentimentOf(a *rawAnalysis) string {
	if a.SentimentCategory != "" {
		return a.SentimentCategory
	}
	if a.Sentiment == nil {
		return ""
	}
	if s := a.Sentiment.AIAnalysis.OverallSentiment; s != "" {
		return s
	}
	return a.Sentiment.Classification
}

// emailID renders whatever the analyzer wrote as the record id; records
// without one get their positional index.
func emailID(id any, idx int) string {
	switch v := id.(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.Itoa(idx)
}

func normalizeSummary(rs rawSummary) model.Summary {
	s := model.EmptySummary()

	overview := rs.Overview
	if overview == nil {
		overview = rs.Statistics
	}
	if overview != nil {
		s.TotalEmails = overview.TotalEmails
		s.AveragePriority = overview.AveragePriority
		s.ResponseNeeded = overview.ResponseNeeded
	}

	if rs.Distributions != nil {
		if rs.Distributions.Sentiment != nil {
			s.SentimentDist = rs.Distributions.Sentiment
		}
		if rs.Distributions.Priority != nil {
			s.PriorityDist = rs.Distributions.Priority
		}
		if rs.Distributions.Topic != nil {
			s.TopicDist = rs.Distributions.Topic
		}
	}

	if rs.SenderAnalysis != nil {
		s.SenderAnalysis = rs.SenderAnalysis
	}
	switch {
	case rs.HighImpactItems != nil:
		s.HighImpactItems = rs.HighImpactItems
	case rs.HighPriorityItems != nil:
		s.HighImpactItems = rs.HighPriorityItems
	}
	if rs.AIInsights != nil {
		s.AIInsights = rs.AIInsights
	}
	return s
}

// normalizeQuickViews accepts the views at the document top level or nested
// in the summary; each missing list defaults to empty.
func normalizeQuickViews(top, nested *rawQuickViews) model.QuickViews {
	qv := model.EmptyQuickViews()
	src := top
	if src == nil {
		src = nested
	}
	if src == nil {
		return qv
	}
	if src.FiresToPutOut != nil {
		qv.FiresToPutOut = src.FiresToPutOut
	}
	if src.QuickWins != nil {
		qv.QuickWins = src.QuickWins
	}
	if src.RetentionRisks != nil {
		qv.RetentionRisks = src.RetentionRisks
	}
	if src.PositiveTestimonials != nil {
		qv.PositiveTestimonials = src.PositiveTestimonials
	}
	if src.NeedsResponseToday != nil {
		qv.NeedsResponseToday = src.NeedsResponseToday
	}
	if src.VIPCommunications != nil {
		qv.VIPCommunications = src.VIPCommunications
	}
	return qv
}
