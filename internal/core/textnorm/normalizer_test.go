package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercaseAndPunctuation(t *testing.T) {
	n := New("en")
	tokens := n.Normalize("How much Water, does Bajra need?")
	assert.Equal(t, []string{"much", "water", "bajra", "need"}, tokens)
}

func TestNormalize_DropsStopwords(t *testing.T) {
	n := New("en")
	tokens := n.Normalize("the and of in")
	assert.Empty(t, tokens)
}

func TestNormalize_EmptyInput(t *testing.T) {
	n := New("en")
	assert.Empty(t, n.Normalize(""))
	assert.Empty(t, n.Normalize("   \t\n"))
}

func TestNormalize_PunctuationOnlyToken(t *testing.T) {
	n := New("en")
	tokens := n.Normalize("wheat --- !!! yield")
	assert.Equal(t, []string{"wheat", "yield"}, tokens)
}

func TestNormalize_Deterministic(t *testing.T) {
	n := New("ur")
	first := n.Normalize("bajra mein pani ki zaroorat kitni hai")
	second := n.Normalize("bajra mein pani ki zaroorat kitni hai")
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"bajra", "pani", "zaroorat"}, first)
}

func TestNormalize_UnknownLanguageKeepsEverything(t *testing.T) {
	n := New("xx")
	tokens := n.Normalize("the bajra crop")
	assert.Equal(t, []string{"the", "bajra", "crop"}, tokens)
}
