package lexicon

import (
	"context"
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/bnema/moodline/internal/domain"
	"github.com/bnema/moodline/internal/ports"
)

// EmotionNeutral is reported when no emotion keyword matches.
const EmotionNeutral = "neutral"

const maxConfidence = 0.99

var ErrEmptyInput = errors.New("empty input rejected")

type weightedTerm struct {
	pattern *regexp.Regexp
	weight  float64
}

// Classifier is an offline, deterministic affect classifier driven by
// weighted keyword lists. It stands in for a hosted model when none is configured.
type Classifier struct {
	emotions     map[string][]weightedTerm
	positive     []*regexp.Regexp
	negative     []*regexp.Regexp
	intensifiers []*regexp.Regexp
}

var _ ports.AffectClassifier = (*Classifier)(nil)

func NewClassifier() *Classifier {
	emotions := make(map[string][]weightedTerm, len(emotionTerms))
	for emotion, terms := range emotionTerms {
		compiled := make([]weightedTerm, 0, len(terms))
		for term, weight := range terms {
			compiled = append(compiled, weightedTerm{pattern: wordPattern(term), weight: weight})
		}
		emotions[emotion] = compiled
	}

	return &Classifier{
		emotions:     emotions,
		positive:     wordPatterns(positiveTerms),
		negative:     wordPatterns(negativeTerms),
		intensifiers: wordPatterns(intensifierTerms),
	}
}

func (c *Classifier) Classify(ctx context.Context, text string) (domain.AffectJudgment, error) {
	if err := ctx.Err(); err != nil {
		return domain.AffectJudgment{}, err
	}

	normalized := normalize(text)
	if normalized == "" {
		return domain.AffectJudgment{}, ErrEmptyInput
	}

	boost := 1 + 0.2*float64(countMatches(c.intensifiers, normalized))
	emotion := c.classifyEmotion(normalized, boost)

	return domain.AffectJudgment{
		Sentiment: c.classifySentiment(normalized, emotion.Label),
		Emotion:   emotion,
	}, nil
}

func (c *Classifier) classifyEmotion(text string, boost float64) domain.Emotion {
	scores := make(map[string]float64, len(c.emotions))
	var total float64
	for emotion, terms := range c.emotions {
		var score float64
		for _, term := range terms {
			if term.pattern.MatchString(text) {
				score += term.weight
			}
		}
		if score > 0 {
			scores[emotion] = score * boost
			total += score * boost
		}
	}

	if len(scores) == 0 {
		return domain.Emotion{Label: EmotionNeutral, Confidence: 0.5}
	}

	labels := make([]string, 0, len(scores))
	for label := range scores {
		labels = append(labels, label)
	}
	// Stable tie-break on label name.
	sort.Slice(labels, func(i, j int) bool {
		if scores[labels[i]] == scores[labels[j]] {
			return labels[i] < labels[j]
		}
		return scores[labels[i]] > scores[labels[j]]
	})

	best := scores[labels[0]]
	dominance := best / total
	confidence := (best / (best + 0.5)) * dominance

	return domain.Emotion{Label: labels[0], Confidence: round(math.Min(confidence, maxConfidence))}
}

func (c *Classifier) classifySentiment(text string, emotion string) domain.Sentiment {
	positive := countMatches(c.positive, text)
	negative := countMatches(c.negative, text)

	switch emotion {
	case domain.EmotionJoy, domain.EmotionLove:
		positive++
	case domain.EmotionSadness, domain.EmotionAnger, domain.EmotionFear:
		negative++
	}

	if positive == negative {
		return domain.Sentiment{Label: domain.SentimentPositive, Confidence: 0.5}
	}

	label := domain.SentimentPositive
	if negative > positive {
		label = domain.SentimentNegative
	}

	margin := math.Abs(float64(positive-negative)) / float64(positive+negative)
	return domain.Sentiment{Label: label, Confidence: round(math.Min(0.5+margin/2, maxConfidence))}
}

var whitespace = regexp.MustCompile(`\s+`)

func normalize(text string) string {
	lowered := strings.ToLower(strings.NewReplacer("’", "'", "‘", "'").Replace(text))
	return strings.TrimSpace(whitespace.ReplaceAllString(lowered, " "))
}

func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
}

func wordPatterns(terms []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, wordPattern(term))
	}
	return patterns
}

func countMatches(patterns []*regexp.Regexp, text string) int {
	count := 0
	for _, pattern := range patterns {
		count += len(pattern.FindAllStringIndex(text, -1))
	}
	return count
}

func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
