package retriever

import (
	"errors"

	"agribot/internal/core/knowledge"
	"agribot/internal/core/similarity"
)

// Match is the single best-scoring passage for a query. Similarity is kept
// for observability and prompt assembly; it is never shown to end users.
type Match struct {
	Passage    knowledge.Passage
	Similarity float64
}

// Retrieve selects the highest-scoring passage for the query. Ties, including
// the all-zero case of a query with no vocabulary overlap, resolve to the
// earliest passage in corpus order, so the result is always deterministic.
func Retrieve(ix *similarity.Index, corpus *knowledge.Corpus, query string) (Match, error) {
	scores := ix.Score(query)
	if len(scores) == 0 {
		return Match{}, errors.New("retriever: index has no passages")
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Similarity > scores[best].Similarity {
			best = i
		}
	}
	passage, ok := corpus.Get(scores[best].Key)
	if !ok {
		return Match{}, errors.New("retriever: index key missing from corpus")
	}
	return Match{Passage: passage, Similarity: scores[best].Similarity}, nil
}
