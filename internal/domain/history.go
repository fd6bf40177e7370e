package domain

import "time"

type EntryID string

// MoodHistoryEntry is created once per successful analysis and never mutated.
type MoodHistoryEntry struct {
	ID        EntryID
	Timestamp time.Time
	Text      string
	Judgment  AffectJudgment
}

// ISOTimestamp formats the entry time as ISO-8601.
func (e MoodHistoryEntry) ISOTimestamp() string {
	return e.Timestamp.Format(time.RFC3339Nano)
}

type HistorySummary struct {
	TotalEntries int
	// MostRecentEmotion is nil when the history is empty.
	MostRecentEmotion       *string
	MeanSentimentConfidence float64
}

// SummarizeHistory derives summary statistics. An empty history yields a
// zero mean rather than an error.
func SummarizeHistory(entries []MoodHistoryEntry) HistorySummary {
	if len(entries) == 0 {
		return HistorySummary{}
	}

	var total float64
	for _, entry := range entries {
		total += entry.Judgment.Sentiment.Confidence
	}

	mostRecent := entries[len(entries)-1].Judgment.Emotion.Label

	return HistorySummary{
		TotalEntries:            len(entries),
		MostRecentEmotion:       &mostRecent,
		MeanSentimentConfidence: total / float64(len(entries)),
	}
}
