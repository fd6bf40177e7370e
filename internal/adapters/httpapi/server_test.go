package httpapi

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bnema/moodline/internal/adapters/classifier/lexicon"
	"github.com/bnema/moodline/internal/adapters/history/memory"
	"github.com/bnema/moodline/internal/application"
	"github.com/bnema/moodline/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, opts ...ServerOption) http.Handler {
	t.Helper()

	service := application.NewService(
		lexicon.NewClassifier(),
		memory.NewHistory(),
		ports.SystemClock{},
		ports.NewSeededRandom(7),
		application.DefaultPolicy(),
	)
	return NewServer(service, nil, opts...).Handler()
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, newTestHandler(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAnalyzeText(t *testing.T) {
	rec := doJSON(t, newTestHandler(t), http.MethodPost, "/analyze_text", `{"text":"I am so sad and lonely"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	got := decode[analysisDTO](t, rec)
	assert.Equal(t, "negative", got.Sentiment.Label)
	assert.Equal(t, "sadness", got.Emotion.Label)
	assert.InDelta(t, 0.828, got.Emotion.Score, 1e-9)
	assert.Equal(t, "low", got.RiskLevel)
	assert.NotEmpty(t, got.Response)
	assert.NotEmpty(t, got.Resources)
	assert.NotEmpty(t, got.EntryID)
	assert.NotEmpty(t, got.Timestamp)
}

func TestAnalyzeTextCrisisKeyword(t *testing.T) {
	rec := doJSON(t, newTestHandler(t), http.MethodPost, "/analyze_text", `{"text":"I can't go on"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[analysisDTO](t, rec)
	assert.Equal(t, "high", got.RiskLevel)
	assert.Equal(t, "can't go on", got.CrisisKeyword)
}

func TestAnalyzeTextErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		kind   string
	}{
		{name: "missing text field", body: `{}`, status: http.StatusBadRequest, kind: "input_validation_error"},
		{name: "not json", body: `text=hello`, status: http.StatusBadRequest, kind: "input_validation_error"},
		{name: "empty text", body: `{"text":""}`, status: http.StatusBadGateway, kind: "classification_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, newTestHandler(t), http.MethodPost, "/analyze_text", tt.body)
			assert.Equal(t, tt.status, rec.Code)

			got := decode[errorDTO](t, rec)
			assert.Equal(t, tt.kind, got.Error.Kind)
			assert.NotEmpty(t, got.Error.Message)
		})
	}
}

func TestAnalyzeAudioWithoutFile(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("note", "nothing here"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze_audio", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode[errorDTO](t, rec)
	assert.Equal(t, "input_validation_error", got.Error.Kind)
	assert.Equal(t, "no audio file provided", got.Error.Message)
}

func TestAnalyzeAudioRejectsOversizedUpload(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("audio", "long.wav")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0x52}, 8<<10))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze_audio", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	newTestHandler(t, WithMaxAudioBytes(1024)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode[errorDTO](t, rec)
	assert.Equal(t, "input_validation_error", got.Error.Kind)
	assert.Equal(t, "audio upload exceeds the 1024 byte limit", got.Error.Message)
}

func TestAnalyzeAudioWithoutTranscriber(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("audio", "clip.wav")
	require.NoError(t, err)
	_, err = part.Write([]byte("RIFF"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze_audio", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	got := decode[errorDTO](t, rec)
	assert.Equal(t, "transcription_error", got.Error.Kind)
	assert.Contains(t, got.Error.Message, "no transcriber configured")
}

func TestHistorySummary(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodGet, "/history/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_entries":0,"most_recent_emotion":null,"mean_sentiment_confidence":0}`, rec.Body.String())

	require.Equal(t, http.StatusOK, doJSON(t, handler, http.MethodPost, "/analyze_text", `{"text":"I am HAPPY"}`).Code)
	require.Equal(t, http.StatusOK, doJSON(t, handler, http.MethodPost, "/analyze_text", `{"text":"I am so sad and lonely"}`).Code)

	rec = doJSON(t, handler, http.MethodGet, "/history/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[summaryDTO](t, rec)
	assert.Equal(t, 2, summary.TotalEntries)
	require.NotNil(t, summary.MostRecentEmotion)
	assert.Equal(t, "sadness", *summary.MostRecentEmotion)
	assert.InDelta(t, 0.99, summary.MeanSentimentConfidence, 1e-9)

	rec = doJSON(t, handler, http.MethodGet, "/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode[[]historyEntryDTO](t, rec)
	require.Len(t, entries, 2)
	assert.Equal(t, "I am HAPPY", entries[0].Text)
	assert.Equal(t, "joy", entries[0].Emotion.Label)
}

func TestStatusForKind(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusForKind("input_validation_error"))
	assert.Equal(t, http.StatusUnprocessableEntity, statusForKind("transcription_error"))
	assert.Equal(t, http.StatusBadGateway, statusForKind("classification_error"))
	assert.Equal(t, http.StatusInternalServerError, statusForKind("internal_error"))
}
