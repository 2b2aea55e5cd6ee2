package history

import (
	"fmt"
	"strings"
)

// Role tags who produced a turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in a conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// OrderingError reports a violation of the turn alternation contract. It is a
// programming/contract error, never retried.
type OrderingError struct {
	Got    Role
	Reason string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("history: cannot append %q turn: %s", e.Got, e.Reason)
}

// History is an append-only sequence of turns. Excluding an optional leading
// system turn, turns must alternate user/assistant starting with user.
type History struct {
	turns []Turn
}

func New() *History {
	return &History{}
}

// FromTurns rebuilds a history from transport-supplied turns, revalidating
// the alternation invariant turn by turn.
func FromTurns(turns []Turn) (*History, error) {
	h := New()
	for _, t := range turns {
		if err := h.Append(t); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Append adds a turn, enforcing the alternation invariant at append time.
func (h *History) Append(t Turn) error {
	switch t.Role {
	case RoleSystem:
		if len(h.turns) != 0 {
			return &OrderingError{Got: t.Role, Reason: "system turn only allowed first"}
		}
	case RoleUser:
		last, ok := h.lastNonSystem()
		if ok && last != RoleAssistant {
			return &OrderingError{Got: t.Role, Reason: "previous turn is not assistant"}
		}
	case RoleAssistant:
		last, ok := h.lastNonSystem()
		if !ok || last != RoleUser {
			return &OrderingError{Got: t.Role, Reason: "previous turn is not user"}
		}
	default:
		return &OrderingError{Got: t.Role, Reason: "unknown role"}
	}
	h.turns = append(h.turns, t)
	return nil
}

// Len reports the number of turns.
func (h *History) Len() int { return len(h.turns) }

// Turns returns a copy of the turn sequence.
func (h *History) Turns() []Turn {
	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

// Snapshot marks the current committed length for a later Rollback.
func (h *History) Snapshot() int { return len(h.turns) }

// Rollback discards turns appended after the snapshot mark.
func (h *History) Rollback(mark int) {
	if mark >= 0 && mark <= len(h.turns) {
		h.turns = h.turns[:mark]
	}
}

// Render concatenates the turns into one linear prompt fragment, preserving
// order. User and assistant turns carry explicit speaker markers so the
// generator can distinguish them; system turns pass through verbatim.
func (h *History) Render() string {
	var b strings.Builder
	for _, t := range h.turns {
		switch t.Role {
		case RoleUser:
			b.WriteString("Human: ")
		case RoleAssistant:
			b.WriteString("Bot: ")
		}
		b.WriteString(t.Content)
		b.WriteString("\n")
	}
	return b.String()
}

func (h *History) lastNonSystem() (Role, bool) {
	for i := len(h.turns) - 1; i >= 0; i-- {
		if h.turns[i].Role != RoleSystem {
			return h.turns[i].Role, true
		}
	}
	return "", false
}
