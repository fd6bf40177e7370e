package httpapi

import (
	"time"

	"github.com/bnema/moodline/internal/application"
	"github.com/bnema/moodline/internal/domain"
)

type analyzeTextRequest struct {
	Text *string `json:"text"`
}

type scoreDTO struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type analysisDTO struct {
	EntryID       string   `json:"entry_id"`
	Timestamp     string   `json:"timestamp"`
	Text          string   `json:"text"`
	Sentiment     scoreDTO `json:"sentiment"`
	Emotion       scoreDTO `json:"emotion"`
	RiskLevel     string   `json:"risk_level"`
	CrisisKeyword string   `json:"crisis_keyword,omitempty"`
	Response      string   `json:"response"`
	Resources     []string `json:"resources"`
}

type summaryDTO struct {
	TotalEntries            int     `json:"total_entries"`
	MostRecentEmotion       *string `json:"most_recent_emotion"`
	MeanSentimentConfidence float64 `json:"mean_sentiment_confidence"`
}

type historyEntryDTO struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	Text      string   `json:"text"`
	Sentiment scoreDTO `json:"sentiment"`
	Emotion   scoreDTO `json:"emotion"`
}

type errorDTO struct {
	Error errorBodyDTO `json:"error"`
}

type errorBodyDTO struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func toAnalysisDTO(result application.AnalysisResult) analysisDTO {
	resources := result.Resources
	if resources == nil {
		resources = []string{}
	}

	return analysisDTO{
		EntryID:       string(result.EntryID),
		Timestamp:     result.Timestamp.Format(time.RFC3339Nano),
		Text:          result.Text,
		Sentiment:     scoreDTO{Label: result.Judgment.Sentiment.Label, Score: result.Judgment.Sentiment.Confidence},
		Emotion:       scoreDTO{Label: result.Judgment.Emotion.Label, Score: result.Judgment.Emotion.Confidence},
		RiskLevel:     string(result.RiskLevel),
		CrisisKeyword: result.CrisisKeyword,
		Response:      result.Response,
		Resources:     resources,
	}
}

func toSummaryDTO(summary domain.HistorySummary) summaryDTO {
	return summaryDTO{
		TotalEntries:            summary.TotalEntries,
		MostRecentEmotion:       summary.MostRecentEmotion,
		MeanSentimentConfidence: summary.MeanSentimentConfidence,
	}
}

func toHistoryDTO(entries []domain.MoodHistoryEntry) []historyEntryDTO {
	out := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, historyEntryDTO{
			ID:        string(entry.ID),
			Timestamp: entry.ISOTimestamp(),
			Text:      entry.Text,
			Sentiment: scoreDTO{Label: entry.Judgment.Sentiment.Label, Score: entry.Judgment.Sentiment.Confidence},
			Emotion:   scoreDTO{Label: entry.Judgment.Emotion.Label, Score: entry.Judgment.Emotion.Confidence},
		})
	}
	return out
}
