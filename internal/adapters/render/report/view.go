package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/moodline/internal/application"
	"github.com/bnema/moodline/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const confidenceBarWidth = 20

func renderView(results []application.AnalysisResult, summary domain.HistorySummary, s styles) string {
	lines := []string{
		s.title.Render("Mood Check-in"),
		s.header.Render(fmt.Sprintf("analyzed: %d", len(results))),
	}

	if len(results) == 0 {
		lines = append(lines, s.empty.Render("Nothing analyzed."))
	}

	for _, result := range results {
		lines = append(lines, s.section.Render(renderResult(result, s)))
	}

	lines = append(lines, s.section.Render(renderSummary(summary, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderResult(result application.AnalysisResult, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			riskBadge(result.RiskLevel, s),
			" ",
			s.title.Render(result.Judgment.Emotion.Label),
			" ",
			renderConfidenceBar(result.Judgment.Emotion.Confidence, s),
			" ",
			s.header.Render(fmt.Sprintf("%s %s", result.Judgment.Sentiment.Label, formatPercent(result.Judgment.Sentiment.Confidence))),
		),
		s.text.Render(quote(result.Text)),
		s.response.Render(result.Response),
	}

	if result.CrisisKeyword != "" {
		parts = append(parts, s.detail.Render(s.warning.Render(fmt.Sprintf("crisis keyword: %q", result.CrisisKeyword))))
	}

	if len(result.Resources) > 0 {
		parts = append(parts, s.detail.Render("resources:"))
		for _, resource := range result.Resources {
			parts = append(parts, s.resource.Render("- "+resource))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSummary(summary domain.HistorySummary, s styles) string {
	mostRecent := "n/a"
	if summary.MostRecentEmotion != nil {
		mostRecent = *summary.MostRecentEmotion
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.title.Render("History"),
		s.detail.Render(fmt.Sprintf("entries: %d", summary.TotalEntries)),
		s.detail.Render(fmt.Sprintf("most recent emotion: %s", mostRecent)),
		s.detail.Render(fmt.Sprintf("mean sentiment confidence: %.2f", summary.MeanSentimentConfidence)),
	)
}

func riskBadge(level domain.RiskLevel, s styles) string {
	label := fmt.Sprintf("[%s]", level)
	switch level {
	case domain.RiskHigh:
		return s.riskHigh.Render(label)
	case domain.RiskMedium:
		return s.riskMedium.Render(label)
	default:
		return s.riskLow.Render(label)
	}
}

func renderConfidenceBar(confidence float64, s styles) string {
	filled := int(math.Round(float64(confidenceBarWidth) * clampUnit(confidence)))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", confidenceBarWidth-filled)),
		s.barBracket.Render("]"),
		" ",
		formatPercent(confidence),
	)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.0f%%", clampUnit(v)*100)
}

func quote(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return `""`
	}
	return `"` + trimmed + `"`
}
