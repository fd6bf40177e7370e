package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bnema/moodline/internal/domain"
	"github.com/bnema/moodline/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, emotion string, sentimentConfidence float64) domain.MoodHistoryEntry {
	return domain.MoodHistoryEntry{
		ID:        domain.EntryID(id),
		Timestamp: time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC),
		Text:      "text " + id,
		Judgment: domain.AffectJudgment{
			Sentiment: domain.Sentiment{Label: domain.SentimentNegative, Confidence: sentimentConfidence},
			Emotion:   domain.Emotion{Label: emotion, Confidence: 0.5},
		},
	}
}

func record(t *testing.T, h *History, e domain.MoodHistoryEntry) {
	t.Helper()

	_, err := h.Record(context.Background(), e, nil)
	require.NoError(t, err)
}

// stallingClock reads the time, signals, then holds the caller for stall.
type stallingClock struct {
	stamped chan struct{}
	stall   time.Duration
}

func (c stallingClock) Now() time.Time {
	now := time.Now()
	close(c.stamped)
	time.Sleep(c.stall)
	return now
}

func TestHistorySummarizeEmpty(t *testing.T) {
	t.Parallel()

	h := NewHistory()
	summary, err := h.Summarize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HistorySummary{}, summary)
}

func TestHistoryRecordThenSummarize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := NewHistory()
	record(t, h, entry("1", domain.EmotionJoy, 0.9))
	record(t, h, entry("2", domain.EmotionFear, 0.7))
	record(t, h, entry("3", domain.EmotionSadness, 0.8))

	summary, err := h.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalEntries)
	require.NotNil(t, summary.MostRecentEmotion)
	assert.Equal(t, domain.EmotionSadness, *summary.MostRecentEmotion)
	assert.InDelta(t, 0.8, summary.MeanSentimentConfidence, 1e-9)

	entries, err := h.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, domain.EntryID("1"), entries[0].ID)
	assert.Equal(t, domain.EntryID("3"), entries[2].ID)
}

func TestHistoryEntriesIsSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := NewHistory()
	record(t, h, entry("1", domain.EmotionJoy, 0.9))

	entries, err := h.Entries(ctx)
	require.NoError(t, err)
	entries[0].Text = "mutated"

	record(t, h, entry("2", domain.EmotionJoy, 0.9))
	assert.Len(t, entries, 1)

	fresh, err := h.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, "text 1", fresh[0].Text)
}

func TestHistoryConcurrentRecord(t *testing.T) {
	t.Parallel()

	const callers = 64
	ctx := context.Background()
	h := NewHistory()

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := h.Record(ctx, entry(fmt.Sprintf("e-%d", i), domain.EmotionJoy, 0.5), nil)
			assert.NoError(t, err)
			_, err = h.Summarize(ctx)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	entries, err := h.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, callers)

	seen := make(map[domain.EntryID]struct{}, callers)
	for _, e := range entries {
		_, dup := seen[e.ID]
		require.False(t, dup, "duplicate entry %s", e.ID)
		seen[e.ID] = struct{}{}
		assert.Equal(t, "text "+string(e.ID), e.Text)
	}
	assert.Equal(t, callers, h.Len())
}

func TestHistoryRecordIgnoresCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewHistory()
	_, err := h.Record(ctx, entry("1", domain.EmotionJoy, 0.5), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Len())

	_, err = h.Summarize(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHistoryRecordStampsWithClock(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	clock := &fixedClock{now: at}
	h := NewHistory()

	stored, err := h.Record(context.Background(), entry("1", domain.EmotionJoy, 0.5), clock)
	require.NoError(t, err)
	assert.Equal(t, at, stored.Timestamp)

	entries, err := h.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, at, entries[0].Timestamp)
}

func TestHistoryOrderMatchesTimestampsUnderContention(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := NewHistory()
	slow := stallingClock{stamped: make(chan struct{}), stall: 100 * time.Millisecond}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := h.Record(ctx, entry("first", domain.EmotionJoy, 0.5), slow)
		assert.NoError(t, err)
	}()

	<-slow.stamped
	_, err := h.Record(ctx, entry("second", domain.EmotionFear, 0.5), ports.SystemClock{})
	require.NoError(t, err)
	<-done

	entries, err := h.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.EntryID("first"), entries[0].ID)
	assert.Equal(t, domain.EntryID("second"), entries[1].ID)
	assert.False(t, entries[1].Timestamp.Before(entries[0].Timestamp), "history order is not chronological")
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}
