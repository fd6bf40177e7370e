package memory

import (
	"context"
	"sync"

	"github.com/bnema/moodline/internal/domain"
	"github.com/bnema/moodline/internal/ports"
)

// History is a process-local, append-only mood log. It grows without bound;
// callers needing a cap must impose one themselves.
type History struct {
	mu      sync.RWMutex
	entries []domain.MoodHistoryEntry
}

var _ ports.MoodHistory = (*History)(nil)

func NewHistory() *History {
	return &History{}
}

// Record stamps entry from clock and appends it under the same lock, so the
// log is ordered by timestamp. A nil clock keeps the caller's timestamp.
// It does not fail: a caller whose context ends after the analysis finished
// still gets its entry logged.
func (h *History) Record(_ context.Context, entry domain.MoodHistoryEntry, clock ports.Clock) (domain.MoodHistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clock != nil {
		entry.Timestamp = clock.Now()
	}
	h.entries = append(h.entries, entry)
	return entry, nil
}

func (h *History) Entries(ctx context.Context) ([]domain.MoodHistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	entries := make([]domain.MoodHistoryEntry, len(h.entries))
	copy(entries, h.entries)
	return entries, nil
}

func (h *History) Summarize(ctx context.Context) (domain.HistorySummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.HistorySummary{}, err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	return domain.SummarizeHistory(h.entries), nil
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}
