package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"agribot/config"
	"agribot/pkg/logger"
)

// TranscriptionError reports a speech-to-text collaborator failure, opaque to
// the chat core.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string { return fmt.Sprintf("transcribe: %v", e.Err) }

func (e *TranscriptionError) Unwrap() error { return e.Err }

// Transcriber converts spoken audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// HFTranscriber posts raw audio to a HuggingFace inference endpoint hosting a
// whisper model.
type HFTranscriber struct {
	url    string
	token  string
	client *http.Client
}

func NewHFTranscriber() *HFTranscriber {
	return &HFTranscriber{
		url:    config.Cfg.Speech.SttURL,
		token:  config.Cfg.Speech.SttToken,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewHFTranscriberWithEndpoint is used by tests to point at a stub server.
func NewHFTranscriberWithEndpoint(url, token string, client *http.Client) *HFTranscriber {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HFTranscriber{url: url, token: token, client: client}
}

func (t *HFTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(audio))
	if err != nil {
		return "", &TranscriptionError{Err: err}
	}
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		logger.Error(err, "%v: stt request failed", config.ModuleSpeech)
		return "", &TranscriptionError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("endpoint returned status %d", resp.StatusCode)
		logger.Error(err, "%v: stt request failed", config.ModuleSpeech)
		return "", &TranscriptionError{Err: err}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TranscriptionError{Err: err}
	}
	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &TranscriptionError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return out.Text, nil
}
