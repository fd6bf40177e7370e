package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/moodline/internal/domain"
	"github.com/bnema/moodline/internal/ports"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var ErrTranscriberUnavailable = errors.New("no transcriber configured")

type Service struct {
	classifier  ports.AffectClassifier
	transcriber ports.Transcriber
	history     ports.MoodHistory
	clock       ports.Clock
	policy      Policy
	newID       func() domain.EntryID

	rngMu sync.Mutex
	rng   ports.RandomSource
}

type ServiceOption func(*Service)

func WithTranscriber(transcriber ports.Transcriber) ServiceOption {
	return func(s *Service) {
		s.transcriber = transcriber
	}
}

func WithIDGenerator(newID func() domain.EntryID) ServiceOption {
	return func(s *Service) {
		s.newID = newID
	}
}

func NewService(classifier ports.AffectClassifier, history ports.MoodHistory, clock ports.Clock, rng ports.RandomSource, policy Policy, opts ...ServiceOption) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if rng == nil {
		rng = ports.NewRandom()
	}
	if policy.Risk.IsZero() {
		policy.Risk = domain.DefaultRiskPolicy()
	}
	if policy.Responses.IsZero() {
		policy.Responses = domain.DefaultResponseTable()
	}
	if policy.Resources.IsZero() {
		policy.Resources = domain.DefaultResourceTable()
	}

	s := &Service{
		classifier: classifier,
		history:    history,
		clock:      clock,
		policy:     policy,
		rng:        rng,
		newID: func() domain.EntryID {
			return domain.EntryID(uuid.NewString())
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (AnalysisResult, error) {
	judgment, err := s.classifier.Classify(ctx, cmd.Text)
	if err != nil {
		return AnalysisResult{}, domain.NewClassificationError(err)
	}
	if err := judgment.Validate(); err != nil {
		return AnalysisResult{}, domain.NewClassificationError(fmt.Errorf("classifier returned invalid judgment: %w", err))
	}

	entry, err := s.history.Record(ctx, domain.MoodHistoryEntry{
		ID:       s.newID(),
		Text:     cmd.Text,
		Judgment: judgment,
	}, s.clock)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("record mood history: %w", err)
	}

	level := s.policy.Risk.Assess(cmd.Text, judgment)
	keyword, _ := s.policy.Risk.MatchCrisisKeyword(cmd.Text)

	return AnalysisResult{
		EntryID:       entry.ID,
		Timestamp:     entry.Timestamp,
		Text:          cmd.Text,
		Judgment:      judgment,
		RiskLevel:     level,
		CrisisKeyword: keyword,
		Response:      s.selectResponse(judgment.Emotion.Label, level),
		Resources:     s.policy.Resources.Recommend(judgment.Emotion.Label),
	}, nil
}

// AnalyzeAudio transcribes the recording and analyzes the transcript.
func (s *Service) AnalyzeAudio(ctx context.Context, cmd AnalyzeAudioCommand) (AnalysisResult, error) {
	if cmd.Audio == nil {
		return AnalysisResult{}, domain.NewInputValidationError("no audio file provided")
	}
	if s.transcriber == nil {
		return AnalysisResult{}, domain.NewTranscriptionError(ErrTranscriberUnavailable)
	}

	text, err := s.transcriber.Transcribe(ctx, cmd.Filename, cmd.Audio)
	if err != nil {
		return AnalysisResult{}, domain.NewTranscriptionError(err)
	}

	return s.Analyze(ctx, AnalyzeCommand{Text: text})
}

// AnalyzeBatch analyzes texts concurrently. Results keep input order; the
// order of the corresponding history entries is unspecified.
func (s *Service) AnalyzeBatch(ctx context.Context, cmd AnalyzeBatchCommand) ([]AnalysisResult, error) {
	if len(cmd.Texts) == 0 {
		return nil, domain.NewInputValidationError("no text provided")
	}

	results := make([]AnalysisResult, len(cmd.Texts))
	g, gctx := errgroup.WithContext(ctx)
	if cmd.Concurrency > 0 {
		g.SetLimit(cmd.Concurrency)
	}

	for i, text := range cmd.Texts {
		g.Go(func() error {
			result, err := s.Analyze(gctx, AnalyzeCommand{Text: text})
			if err != nil {
				return fmt.Errorf("analyze entry %d: %w", i+1, err)
			}
			results[i] = result
			if cmd.Progress != nil {
				cmd.Progress()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *Service) HistorySummary(ctx context.Context) (domain.HistorySummary, error) {
	summary, err := s.history.Summarize(ctx)
	if err != nil {
		return domain.HistorySummary{}, fmt.Errorf("summarize mood history: %w", err)
	}

	return summary, nil
}

func (s *Service) History(ctx context.Context) ([]domain.MoodHistoryEntry, error) {
	entries, err := s.history.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mood history: %w", err)
	}

	return entries, nil
}

func (s *Service) Policy() Policy {
	return s.policy
}

func (s *Service) selectResponse(emotion string, level domain.RiskLevel) string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	return s.policy.Responses.Select(emotion, level, s.rng)
}
