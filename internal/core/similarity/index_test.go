package similarity

import (
	"testing"

	"agribot/internal/core/knowledge"
	"agribot/internal/core/textnorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCorpus(t *testing.T, raw string) *knowledge.Corpus {
	t.Helper()
	corpus, err := knowledge.Parse([]byte(raw))
	require.NoError(t, err)
	return corpus
}

func TestBuild_EmptyCorpus(t *testing.T) {
	corpus := mustCorpus(t, `[]`)
	_, err := Build(corpus, textnorm.New("en"))
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestScore_SelfMatchIsMaximal(t *testing.T) {
	corpus := mustCorpus(t, `[
		"bajra: Irrigation needs four five waterings during summer",
		"wheat: Sow certified seed during October weeks",
		"onions: Transplant seedlings weekly watering bulbs"
	]`)
	ix, err := Build(corpus, textnorm.New("en"))
	require.NoError(t, err)

	passage, _ := corpus.Get("bajra")
	scores := ix.Score(passage.Text)

	var self, bestOther float64
	for _, s := range scores {
		if s.Key == "bajra" {
			self = s.Similarity
		} else if s.Similarity > bestOther {
			bestOther = s.Similarity
		}
	}
	assert.Greater(t, self, 0.0)
	assert.GreaterOrEqual(t, self, bestOther)
}

func TestScore_ZeroOverlapIsExactlyZero(t *testing.T) {
	corpus := mustCorpus(t, `[
		"bajra: irrigation waterings",
		"wheat: certified seed october"
	]`)
	ix, err := Build(corpus, textnorm.New("en"))
	require.NoError(t, err)

	scores := ix.Score("submarine telescope quantum")
	require.Len(t, scores, 2)
	for _, s := range scores {
		assert.Zero(t, s.Similarity)
	}
}

func TestScore_ResultsInCorpusOrder(t *testing.T) {
	corpus := mustCorpus(t, `["b: beta text", "a: alpha text", "c: gamma text"]`)
	ix, err := Build(corpus, textnorm.New("en"))
	require.NoError(t, err)

	scores := ix.Score("alpha")
	keys := []string{scores[0].Key, scores[1].Key, scores[2].Key}
	assert.Equal(t, []string{"b", "a", "c"}, keys)
}

func TestScore_DeterministicGivenCorpus(t *testing.T) {
	corpus := mustCorpus(t, `["bajra: irrigation waterings summer", "wheat: seed october"]`)
	first, err := Build(corpus, textnorm.New("en"))
	require.NoError(t, err)
	second, err := Build(corpus, textnorm.New("en"))
	require.NoError(t, err)

	assert.Equal(t, first.Score("irrigation october"), second.Score("irrigation october"))
}

func TestRebuild_GrowsWithCorpus(t *testing.T) {
	small := mustCorpus(t, `[
		"bajra: irrigation waterings",
		"wheat: certified seed",
		"onions: transplant seedlings"
	]`)
	ix, err := Build(small, textnorm.New("en"))
	require.NoError(t, err)
	require.Len(t, ix.Score("irrigation"), 3)

	grown := mustCorpus(t, `[
		"bajra: irrigation waterings",
		"wheat: certified seed",
		"onions: transplant seedlings",
		"cotton: bollworm scouting"
	]`)
	rebuilt, err := Build(grown, textnorm.New("en"))
	require.NoError(t, err)

	scores := rebuilt.Score("irrigation")
	require.Len(t, scores, 4)
	keys := make([]string, len(scores))
	for i, s := range scores {
		keys[i] = s.Key
	}
	assert.Contains(t, keys, "cotton")
}

func TestScore_SimilarityWithinUnitRange(t *testing.T) {
	corpus := mustCorpus(t, `["bajra: irrigation waterings summer heat", "wheat: seed october"]`)
	ix, err := Build(corpus, textnorm.New("en"))
	require.NoError(t, err)

	for _, s := range ix.Score("irrigation summer") {
		assert.GreaterOrEqual(t, s.Similarity, 0.0)
		assert.LessOrEqual(t, s.Similarity, 1.0+1e-9)
	}
}
