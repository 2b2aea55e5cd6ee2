package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_Alternation(t *testing.T) {
	h := New()
	require.NoError(t, h.Append(Turn{Role: RoleUser, Content: "q1"}))
	require.NoError(t, h.Append(Turn{Role: RoleAssistant, Content: "a1"}))
	require.NoError(t, h.Append(Turn{Role: RoleUser, Content: "q2"}))
	assert.Equal(t, 3, h.Len())
}

func TestAppend_DoubleUserFails(t *testing.T) {
	h := New()
	require.NoError(t, h.Append(Turn{Role: RoleUser, Content: "q1"}))

	err := h.Append(Turn{Role: RoleUser, Content: "q2"})
	var ordErr *OrderingError
	require.True(t, errors.As(err, &ordErr))
	assert.Equal(t, RoleUser, ordErr.Got)
	assert.Equal(t, 1, h.Len(), "failed append must not mutate history")
}

func TestAppend_AssistantFirstFails(t *testing.T) {
	h := New()
	err := h.Append(Turn{Role: RoleAssistant, Content: "a1"})
	var ordErr *OrderingError
	assert.True(t, errors.As(err, &ordErr))
}

func TestAppend_LeadingSystemTurn(t *testing.T) {
	h := New()
	require.NoError(t, h.Append(Turn{Role: RoleSystem, Content: "persona"}))
	require.NoError(t, h.Append(Turn{Role: RoleUser, Content: "q1"}))
	require.NoError(t, h.Append(Turn{Role: RoleAssistant, Content: "a1"}))

	// System turns are only valid at the very start.
	err := h.Append(Turn{Role: RoleSystem, Content: "late"})
	var ordErr *OrderingError
	assert.True(t, errors.As(err, &ordErr))
}

func TestAppend_UnknownRole(t *testing.T) {
	h := New()
	err := h.Append(Turn{Role: "moderator", Content: "x"})
	var ordErr *OrderingError
	assert.True(t, errors.As(err, &ordErr))
}

func TestFromTurns_Revalidates(t *testing.T) {
	_, err := FromTurns([]Turn{
		{Role: RoleUser, Content: "q1"},
		{Role: RoleUser, Content: "q2"},
	})
	var ordErr *OrderingError
	assert.True(t, errors.As(err, &ordErr))

	h, err := FromTurns([]Turn{
		{Role: RoleUser, Content: "q1"},
		{Role: RoleAssistant, Content: "a1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, h.Len())
}

func TestRender_RoleMarkers(t *testing.T) {
	h, err := FromTurns([]Turn{
		{Role: RoleUser, Content: "How much water does bajra need?"},
		{Role: RoleAssistant, Content: "Four to five waterings."},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"Human: How much water does bajra need?\nBot: Four to five waterings.\n",
		h.Render())
}

func TestRender_SystemTurnVerbatim(t *testing.T) {
	h := New()
	require.NoError(t, h.Append(Turn{Role: RoleSystem, Content: "You are a farming assistant."}))
	require.NoError(t, h.Append(Turn{Role: RoleUser, Content: "hello"}))

	assert.Equal(t, "You are a farming assistant.\nHuman: hello\n", h.Render())
}

func TestSnapshotRollback(t *testing.T) {
	h, err := FromTurns([]Turn{
		{Role: RoleUser, Content: "q1"},
		{Role: RoleAssistant, Content: "a1"},
	})
	require.NoError(t, err)

	mark := h.Snapshot()
	require.NoError(t, h.Append(Turn{Role: RoleUser, Content: "q2"}))
	require.NoError(t, h.Append(Turn{Role: RoleAssistant, Content: "a2"}))
	require.Equal(t, 4, h.Len())

	h.Rollback(mark)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, "a1", h.Turns()[1].Content)

	// History remains appendable after rollback.
	assert.NoError(t, h.Append(Turn{Role: RoleUser, Content: "q2 again"}))
}

func TestTurns_ReturnsCopy(t *testing.T) {
	h, err := FromTurns([]Turn{{Role: RoleUser, Content: "q1"}})
	require.NoError(t, err)

	turns := h.Turns()
	turns[0].Content = "mutated"
	assert.Equal(t, "q1", h.Turns()[0].Content)
}
