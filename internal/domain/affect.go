package domain

import (
	"fmt"
	"strings"
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"

	EmotionSadness  = "sadness"
	EmotionAnger    = "anger"
	EmotionFear     = "fear"
	EmotionJoy      = "joy"
	EmotionLove     = "love"
	EmotionSurprise = "surprise"
)

type Sentiment struct {
	Label      string
	Confidence float64
}

type Emotion struct {
	Label      string
	Confidence float64
}

// AffectJudgment is the classifier output for one unit of text. Labels are
// matched case-sensitively by the risk policy and the catalog tables.
type AffectJudgment struct {
	Sentiment Sentiment
	Emotion   Emotion
}

func (j AffectJudgment) Validate() error {
	if strings.TrimSpace(j.Sentiment.Label) == "" {
		return fmt.Errorf("sentiment label is required")
	}
	if strings.TrimSpace(j.Emotion.Label) == "" {
		return fmt.Errorf("emotion label is required")
	}
	if !validConfidence(j.Sentiment.Confidence) {
		return fmt.Errorf("sentiment confidence %v outside [0,1]", j.Sentiment.Confidence)
	}
	if !validConfidence(j.Emotion.Confidence) {
		return fmt.Errorf("emotion confidence %v outside [0,1]", j.Emotion.Confidence)
	}

	return nil
}

func validConfidence(c float64) bool {
	return c >= 0 && c <= 1
}
