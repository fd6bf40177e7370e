package ports

import (
	"context"

	"github.com/bnema/moodline/internal/domain"
)

type AffectClassifier interface {
	Classify(ctx context.Context, text string) (domain.AffectJudgment, error)
}
