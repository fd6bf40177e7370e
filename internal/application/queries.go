package application

import (
	"time"

	"github.com/bnema/moodline/internal/domain"
)

type AnalysisResult struct {
	EntryID       domain.EntryID
	Timestamp     time.Time
	Text          string
	Judgment      domain.AffectJudgment
	RiskLevel     domain.RiskLevel
	CrisisKeyword string
	Response      string
	Resources     []string
}
