package generate

import (
	"context"
	"fmt"
	"strings"

	"agribot/config"
	"agribot/pkg/logger"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Error reports a generation failure. Surfaced to the caller as a pipeline
// failure; the core never retries and never fabricates an answer.
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("generate: %v", e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Client invokes a language model with a composed prompt. Implementations
// may return different text for the same prompt; one call is one exchange.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}
type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

// OpenAI generates completions through the OpenAI chat API.
type OpenAI struct{}

func NewOpenAI() *OpenAI { return &OpenAI{} }

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(option.WithAPIKey(config.Cfg.OpenAI.Key))
	req := chatRequest{
		Model:       config.Cfg.OpenAI.Model,
		Temperature: config.Cfg.OpenAI.Temperature,
		MaxTokens:   config.Cfg.OpenAI.MaxTokens,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}
	var out chatResponse
	if err := client.Post(ctx, "/chat/completions", req, &out); err != nil {
		logger.Error(err, "%v: chat completion failed", config.ModuleOpenAI)
		return "", &Error{Err: err}
	}
	if len(out.Choices) == 0 {
		err := fmt.Errorf("no choices returned")
		logger.Error(err, "%v: chat completion empty", config.ModuleOpenAI)
		return "", &Error{Err: err}
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
