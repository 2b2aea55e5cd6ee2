package prompt

import (
	"strings"

	"agribot/internal/core/history"
	"agribot/internal/core/retriever"
)

// ContinuationMarker tells the generator it is the assistant's turn.
const ContinuationMarker = "Bot:"

// Prompt is the tagged structure a generation request is assembled from.
// Persona instructions come first so they dominate the recalled passage;
// a zero-similarity retrieval omits the passage block entirely.
type Prompt struct {
	Persona    string
	Passage    string
	HasPassage bool
	History    string
	Marker     string
}

// Compose merges persona instructions, the retrieved match and the rendered
// conversation history into a prompt. Pure assembly, no side effects.
func Compose(persona string, match retriever.Match, h *history.History) Prompt {
	p := Prompt{
		Persona: strings.TrimSpace(persona),
		Marker:  ContinuationMarker,
	}
	if match.Similarity > 0 {
		p.Passage = strings.TrimSpace(match.Passage.Text)
		p.HasPassage = true
	}
	if h != nil {
		p.History = h.Render()
	}
	return p
}

// Render flattens the prompt in its fixed order: persona, passage block,
// history, continuation marker.
func (p Prompt) Render() string {
	var b strings.Builder
	if p.Persona != "" {
		b.WriteString(p.Persona)
		b.WriteString("\n")
	}
	if p.HasPassage {
		b.WriteString(p.Passage)
		b.WriteString("\n")
	}
	if p.History != "" {
		b.WriteString(p.History)
	}
	b.WriteString(p.Marker)
	return b.String()
}
