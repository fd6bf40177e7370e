package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bnema/moodline/internal/application"
	"github.com/bnema/moodline/internal/domain"
)

const (
	maxTextBodyBytes  = 1 << 20
	maxAudioBodyBytes = 25 << 20
	shutdownTimeout   = 5 * time.Second
)

// Pipeline is the subset of the application service the API exposes.
type Pipeline interface {
	Analyze(ctx context.Context, cmd application.AnalyzeCommand) (application.AnalysisResult, error)
	AnalyzeAudio(ctx context.Context, cmd application.AnalyzeAudioCommand) (application.AnalysisResult, error)
	HistorySummary(ctx context.Context) (domain.HistorySummary, error)
	History(ctx context.Context) ([]domain.MoodHistoryEntry, error)
}

type Server struct {
	pipeline Pipeline
	logger   *slog.Logger

	maxAudioBytes int64
}

type ServerOption func(*Server)

// WithMaxAudioBytes caps the multipart body accepted by /analyze_audio.
func WithMaxAudioBytes(n int64) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.maxAudioBytes = n
		}
	}
}

func NewServer(pipeline Pipeline, logger *slog.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{pipeline: pipeline, logger: logger, maxAudioBytes: maxAudioBodyBytes}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("POST /analyze_text", s.handleAnalyzeText)
	mux.HandleFunc("POST /analyze_audio", s.handleAnalyzeAudio)
	mux.HandleFunc("GET /history/summary", s.handleHistorySummary)
	mux.HandleFunc("GET /history", s.handleHistory)

	return s.logRequests(mux)
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTextBodyBytes)

	var req analyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, domain.NewInputValidationError("request body must be JSON with a \"text\" field"))
		return
	}
	if req.Text == nil {
		s.writeError(w, r, domain.NewInputValidationError("text is required"))
		return
	}

	result, err := s.pipeline.Analyze(r.Context(), application.AnalyzeCommand{Text: *req.Text})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalysisDTO(result))
}

func (s *Server) handleAnalyzeAudio(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxAudioBytes)

	file, header, err := r.FormFile("audio")
	if err != nil {
		s.writeError(w, r, audioFormError(err))
		return
	}
	defer file.Close()

	result, err := s.pipeline.AnalyzeAudio(r.Context(), application.AnalyzeAudioCommand{
		Filename: header.Filename,
		Audio:    file,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalysisDTO(result))
}

func audioFormError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return domain.NewInputValidationError(fmt.Sprintf("audio upload exceeds the %d byte limit", tooLarge.Limit))
	case errors.Is(err, http.ErrMissingFile):
		return domain.NewInputValidationError("no audio file provided")
	default:
		return domain.NewInputValidationError(fmt.Sprintf("invalid multipart form: %v", err))
	}
}

func (s *Server) handleHistorySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.pipeline.HistorySummary(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.pipeline.History(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryDTO(entries))
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	status := statusForKind(kind)

	message := err.Error()
	var pipelineErr *domain.PipelineError
	if errors.As(err, &pipelineErr) {
		message = pipelineErr.Message
		if pipelineErr.Err != nil {
			message = fmt.Sprintf("%s: %v", pipelineErr.Message, pipelineErr.Err)
		}
	}
	if kind == domain.ErrorKindInternal {
		message = "internal error"
	}

	s.logger.Warn("request failed", "method", r.Method, "path", r.URL.Path, "kind", kind, "error", err)
	writeJSON(w, status, errorDTO{Error: errorBodyDTO{Kind: string(kind), Message: message}})
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrorKindInputValidation:
		return http.StatusBadRequest
	case domain.ErrorKindTranscription:
		return http.StatusUnprocessableEntity
	case domain.ErrorKindClassification:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(start))
	})
}
