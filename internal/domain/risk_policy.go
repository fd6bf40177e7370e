package domain

import (
	"fmt"
	"strings"
)

const (
	DefaultMediumAbove = 0.85
	DefaultHighAbove   = 0.95
)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'")

// DefaultCrisisKeywords are matched as lower-case substrings of the input.
var DefaultCrisisKeywords = []string{
	"suicide",
	"kill myself",
	"end it all",
	"can't go on",
	"don't want to live",
}

// RiskPolicy escalates on emotion confidence alone, independent of the
// emotion label, so a confident "joy" escalates exactly like "sadness".
// A crisis keyword forces RiskHigh.
type RiskPolicy struct {
	MediumAbove    float64
	HighAbove      float64
	CrisisKeywords []string
}

func DefaultRiskPolicy() RiskPolicy {
	keywords := make([]string, len(DefaultCrisisKeywords))
	copy(keywords, DefaultCrisisKeywords)

	return RiskPolicy{
		MediumAbove:    DefaultMediumAbove,
		HighAbove:      DefaultHighAbove,
		CrisisKeywords: keywords,
	}
}

// IsZero reports whether p was left unset.
func (p RiskPolicy) IsZero() bool {
	return p.MediumAbove == 0 && p.HighAbove == 0 && p.CrisisKeywords == nil
}

func (p RiskPolicy) Validate() error {
	if !validConfidence(p.MediumAbove) {
		return fmt.Errorf("medium threshold %v outside [0,1]", p.MediumAbove)
	}
	if !validConfidence(p.HighAbove) {
		return fmt.Errorf("high threshold %v outside [0,1]", p.HighAbove)
	}
	if p.HighAbove < p.MediumAbove {
		return fmt.Errorf("high threshold %v below medium threshold %v", p.HighAbove, p.MediumAbove)
	}
	for _, keyword := range p.CrisisKeywords {
		if strings.TrimSpace(keyword) == "" {
			return fmt.Errorf("crisis keyword is empty")
		}
	}

	return nil
}

func (p RiskPolicy) Assess(text string, judgment AffectJudgment) RiskLevel {
	level := RiskLow

	// Thresholds are strict: a confidence equal to the threshold does not escalate.
	if judgment.Emotion.Confidence > p.MediumAbove {
		level = RiskMedium
	}
	if judgment.Emotion.Confidence > p.HighAbove {
		level = RiskHigh
	}

	if _, ok := p.MatchCrisisKeyword(text); ok {
		level = MaxRiskLevel(level, RiskHigh)
	}

	return level
}

// MatchCrisisKeyword returns the first configured keyword found in text.
func (p RiskPolicy) MatchCrisisKeyword(text string) (string, bool) {
	lowered := apostrophes.Replace(strings.ToLower(text))
	for _, keyword := range p.CrisisKeywords {
		needle := apostrophes.Replace(strings.ToLower(strings.TrimSpace(keyword)))
		if needle == "" {
			continue
		}
		if strings.Contains(lowered, needle) {
			return keyword, true
		}
	}

	return "", false
}
