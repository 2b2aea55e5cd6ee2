package chat

import (
	"context"
	"fmt"

	"agribot/config"
	"agribot/internal/core/generate"
	"agribot/internal/core/history"
	"agribot/internal/core/prompt"
	"agribot/internal/core/retriever"
	"agribot/internal/core/translate"
	"agribot/pkg/logger"
)

// State names the pipeline stages a request walks through.
type State string

const (
	StateReceived      State = "received"
	StateTranslatedIn  State = "translated_in"
	StateRetrieved     State = "retrieved"
	StateComposed      State = "composed"
	StateGenerated     State = "generated"
	StateTranslatedOut State = "translated_out"
	StateDone          State = "done"
	StateFailed        State = "failed"
)

// Result carries both answers back to the caller: raw for diagnostics,
// translated for the end user.
type Result struct {
	RawAnswer string
	Answer    string
	State     State
}

// Pipeline sequences translate-in, retrieve, compose, generate and
// translate-out for one request. Knowledge snapshots are shared read-only;
// each run owns exactly one session.
type Pipeline struct {
	catalog    *retriever.Catalog
	translator *translate.Adapter
	generator  generate.Client
}

func NewPipeline(catalog *retriever.Catalog, translator *translate.Adapter, generator generate.Client) *Pipeline {
	return &Pipeline{
		catalog:    catalog,
		translator: translator,
		generator:  generator,
	}
}

// Run executes the pipeline for one query. Any stage failure, including
// context cancellation checked at each stage boundary, aborts the request
// and rolls the session history back to its pre-request snapshot, so no
// partial turns are ever visible to subsequent runs.
func (p *Pipeline) Run(ctx context.Context, sess *Session, query string) (Result, error) {
	mark := sess.History.Snapshot()
	state := StateReceived

	fail := func(err error) (Result, error) {
		sess.History.Rollback(mark)
		logger.Error(err, "%v: pipeline failed at %s", config.ModuleChat, state)
		return Result{State: StateFailed}, fmt.Errorf("chat pipeline at %s: %w", state, err)
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	pivotQuery, err := p.translator.Translate(ctx, query, sess.SourceLang, sess.PivotLang)
	if err != nil {
		return fail(err)
	}
	state = StateTranslatedIn

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	snap, err := p.catalog.Snapshot(sess.PivotLang)
	if err != nil {
		return fail(err)
	}
	match, err := retriever.Retrieve(snap.Index, snap.Corpus, pivotQuery)
	if err != nil {
		return fail(err)
	}
	state = StateRetrieved
	logger.WithFields(map[string]interface{}{
		"topic":      match.Passage.Key,
		"similarity": match.Similarity,
		"lang":       sess.PivotLang,
	}).Debug("passage retrieved")

	composed := prompt.Compose(sess.Persona, match, sess.History).Render()
	state = StateComposed

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	raw, err := p.generator.Generate(ctx, composed)
	if err != nil {
		return fail(err)
	}
	if err := sess.History.Append(history.Turn{Role: history.RoleUser, Content: pivotQuery}); err != nil {
		return fail(err)
	}
	if err := sess.History.Append(history.Turn{Role: history.RoleAssistant, Content: raw}); err != nil {
		return fail(err)
	}
	state = StateGenerated

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	answer, err := p.translator.Translate(ctx, raw, sess.PivotLang, sess.SourceLang)
	if err != nil {
		return fail(err)
	}
	state = StateTranslatedOut

	return Result{RawAnswer: raw, Answer: answer, State: StateDone}, nil
}
