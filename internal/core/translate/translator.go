package translate

import (
	"context"
	"fmt"

	"agribot/config"
	"agribot/pkg/logger"
)

// Error reports a translation provider failure. The pipeline treats it as
// fatal for the current request: a bad translation corrupts both retrieval
// and the user-facing answer.
type Error struct {
	From string
	To   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("translate %s->%s: %v", e.From, e.To, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Provider is the external translation capability.
type Provider interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// Adapter wraps a provider and enforces the identity contract: when source
// and target language are equal the text passes through untouched, without
// consulting the provider.
type Adapter struct {
	provider Provider
}

func NewAdapter(p Provider) *Adapter {
	return &Adapter{provider: p}
}

func (a *Adapter) Translate(ctx context.Context, text, from, to string) (string, error) {
	if from == to {
		return text, nil
	}
	out, err := a.provider.Translate(ctx, text, from, to)
	if err != nil {
		logger.Error(err, "%v: provider failed %s->%s", config.ModuleTranslate, from, to)
		return "", &Error{From: from, To: to, Err: err}
	}
	return out, nil
}
