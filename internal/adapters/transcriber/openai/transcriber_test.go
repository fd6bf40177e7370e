package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transcriptionServer(t *testing.T, text string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/audio/transcriptions"), r.URL.Path)

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		body, _ := io.ReadAll(file)
		assert.Equal(t, "RIFFdata", string(body))
		assert.Equal(t, "note.wav", header.Filename)
		assert.Equal(t, DefaultModel, r.FormValue("model"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"text": text})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestTranscriberTranscribe(t *testing.T) {
	srv := transcriptionServer(t, "  I feel much better today  ")

	transcriber, err := NewTranscriber(Config{APIKey: "sk-test", BaseURL: srv.URL})
	require.NoError(t, err)

	text, err := transcriber.Transcribe(context.Background(), "note.wav", strings.NewReader("RIFFdata"))
	require.NoError(t, err)
	assert.Equal(t, "I feel much better today", text)
}

func TestTranscriberEmptyTranscriptIsError(t *testing.T) {
	srv := transcriptionServer(t, "")

	transcriber, err := NewTranscriber(Config{APIKey: "sk-test", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = transcriber.Transcribe(context.Background(), "note.wav", strings.NewReader("RIFFdata"))
	require.ErrorIs(t, err, ErrNoSpeech)
}

func TestNewTranscriberRequiresAPIKey(t *testing.T) {
	_, err := NewTranscriber(Config{APIKey: " "})
	require.Error(t, err)
}
