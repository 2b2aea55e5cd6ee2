package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agribot/config"
)

// GoogleProvider translates through the public web translate endpoint. The
// response is the endpoint's nested-array shape; only the translated segments
// in the first element are consumed.
type GoogleProvider struct {
	endpoint string
	client   *http.Client
}

func NewGoogleProvider() *GoogleProvider {
	return &GoogleProvider{
		endpoint: config.Cfg.Translate.Endpoint,
		client: &http.Client{
			Timeout: time.Duration(config.Cfg.Translate.TimeoutMs) * time.Millisecond,
		},
	}
}

// NewGoogleProviderWithEndpoint is used by tests to point at a stub server.
func NewGoogleProviderWithEndpoint(endpoint string, client *http.Client) *GoogleProvider {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &GoogleProvider{endpoint: endpoint, client: client}
}

func (g *GoogleProvider) Translate(ctx context.Context, text, from, to string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", from)
	params.Set("tl", to)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return parseSegments(body)
}

// parseSegments extracts and joins the translated segment strings from the
// endpoint payload: [[["segment","source",...],...],...].
func parseSegments(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty payload")
	}
	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("decode segments: %w", err)
	}
	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		b.WriteString(part)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no translated segments")
	}
	return b.String(), nil
}
