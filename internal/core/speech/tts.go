package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"agribot/config"
	"agribot/pkg/logger"
)

// Synthesizer converts text into spoken audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// TTS fetches mp3 audio from the public translate text-to-speech endpoint.
type TTS struct {
	endpoint string
	client   *http.Client
}

func NewTTS() *TTS {
	return &TTS{
		endpoint: config.Cfg.Speech.TtsEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// NewTTSWithEndpoint is used by tests to point at a stub server.
func NewTTSWithEndpoint(endpoint string, client *http.Client) *TTS {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &TTS{endpoint: endpoint, client: client}
}

func (t *TTS) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", lang)
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := t.client.Do(req)
	if err != nil {
		logger.Error(err, "%v: tts request failed", config.ModuleSpeech)
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("endpoint returned status %d", resp.StatusCode)
		logger.Error(err, "%v: tts request failed", config.ModuleSpeech)
		return nil, err
	}
	return io.ReadAll(resp.Body)
}
