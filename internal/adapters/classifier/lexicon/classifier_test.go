package lexicon

import (
	"context"
	"testing"

	"github.com/bnema/moodline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifierClassify(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier()

	tests := []struct {
		name string
		text string
		want domain.AffectJudgment
	}{
		{
			name: "intensified sadness",
			text: "I am so sad and lonely",
			want: domain.AffectJudgment{
				Sentiment: domain.Sentiment{Label: domain.SentimentNegative, Confidence: 0.99},
				Emotion:   domain.Emotion{Label: domain.EmotionSadness, Confidence: 0.828},
			},
		},
		{
			name: "single joy keyword",
			text: "I am HAPPY",
			want: domain.AffectJudgment{
				Sentiment: domain.Sentiment{Label: domain.SentimentPositive, Confidence: 0.99},
				Emotion:   domain.Emotion{Label: domain.EmotionJoy, Confidence: 0.667},
			},
		},
		{
			name: "no keywords is neutral",
			text: "The meeting is at noon",
			want: domain.AffectJudgment{
				Sentiment: domain.Sentiment{Label: domain.SentimentPositive, Confidence: 0.5},
				Emotion:   domain.Emotion{Label: EmotionNeutral, Confidence: 0.5},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := classifier.Classify(context.Background(), tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifierPicksDominantEmotion(t *testing.T) {
	t.Parallel()

	got, err := NewClassifier().Classify(context.Background(), "I'm scared and anxious, honestly terrified, but a little annoyed")
	require.NoError(t, err)
	assert.Equal(t, domain.EmotionFear, got.Emotion.Label)
	assert.Equal(t, domain.SentimentNegative, got.Sentiment.Label)
	require.NoError(t, got.Validate())
}

func TestClassifierIsDeterministic(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier()
	text := "wow, I'm shocked but also really happy and grateful"
	first, err := classifier.Classify(context.Background(), text)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		again, err := classifier.Classify(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestClassifierRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := NewClassifier().Classify(context.Background(), text)
		require.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestClassifierHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClassifier().Classify(ctx, "hello")
	require.ErrorIs(t, err, context.Canceled)
}
