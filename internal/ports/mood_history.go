package ports

import (
	"context"

	"github.com/bnema/moodline/internal/domain"
)

type MoodHistory interface {
	// Record timestamps entry with clock inside the serialized append and
	// returns the entry as stored.
	Record(ctx context.Context, entry domain.MoodHistoryEntry, clock Clock) (domain.MoodHistoryEntry, error)
	// Entries returns a snapshot in insertion order; callers may not mutate the log through it.
	Entries(ctx context.Context) ([]domain.MoodHistoryEntry, error)
	Summarize(ctx context.Context) (domain.HistorySummary, error)
}
