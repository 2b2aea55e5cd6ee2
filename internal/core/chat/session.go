package chat

import (
	"agribot/config"
	"agribot/internal/core/history"
)

// Session binds one conversation to its language pair. It is created per
// transport request and discarded with it; the pipeline owns its History
// exclusively for the duration of one run.
type Session struct {
	SourceLang string
	PivotLang  string
	Persona    string
	History    *history.History
}

// NewSession builds a session for a configured language. A nil history
// starts the conversation fresh.
func NewSession(lang config.LanguageConfig, h *history.History) *Session {
	if h == nil {
		h = history.New()
	}
	return &Session{
		SourceLang: lang.Code,
		PivotLang:  lang.Pivot,
		Persona:    lang.Persona,
		History:    h,
	}
}
