package similarity

import (
	"errors"
	"math"
	"sort"

	"agribot/internal/core/knowledge"
	"agribot/internal/core/textnorm"
)

// ErrEmptyCorpus is returned when an index is built over zero passages.
var ErrEmptyCorpus = errors.New("similarity: corpus has no passages")

// Score pairs a topic key with its cosine similarity against a query.
type Score struct {
	Key        string
	Similarity float64
}

// Index is a fitted TF-IDF vector space over one corpus snapshot. Row order
// matches corpus key order exactly; any corpus change requires a rebuild.
type Index struct {
	keys  []string
	vocab map[string]int
	idf   []float64
	rows  [][]float64
	norm  *textnorm.Normalizer
}

// Build fits the vector space: vocabulary is the sorted union of normalized
// tokens across all passages, IDF is smoothed log((1+N)/(1+df))+1, and each
// passage row is its L2-normalized tf-idf vector.
func Build(corpus *knowledge.Corpus, norm *textnorm.Normalizer) (*Index, error) {
	if corpus.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	keys := corpus.Keys()
	docTokens := make([][]string, len(keys))
	df := make(map[string]int)
	for i := range keys {
		// The topic key is part of the document: queries naming a topic
		// directly must land on its passage even when the body paraphrases.
		passage := corpus.At(i)
		tokens := norm.Normalize(passage.Key + " " + passage.Text)
		docTokens[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	ix := &Index{
		keys:  keys,
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
		norm:  norm,
	}
	n := float64(len(keys))
	for i, term := range terms {
		ix.vocab[term] = i
		ix.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}

	ix.rows = make([][]float64, len(keys))
	for i, tokens := range docTokens {
		ix.rows[i] = ix.vectorize(tokens)
	}
	return ix, nil
}

// Score normalizes the query with the corpus pipeline, projects it into the
// corpus vocabulary (out-of-vocabulary terms weigh zero) and returns the
// cosine similarity against every passage, in corpus order.
func (ix *Index) Score(query string) []Score {
	qvec := ix.vectorize(ix.norm.Normalize(query))
	scores := make([]Score, len(ix.keys))
	for i, key := range ix.keys {
		scores[i] = Score{Key: key, Similarity: dot(qvec, ix.rows[i])}
	}
	return scores
}

// Len reports the number of indexed passages.
func (ix *Index) Len() int { return len(ix.keys) }

// vectorize builds the L2-normalized tf-idf vector for a token sequence.
// A sequence with no in-vocabulary terms maps to the zero vector.
func (ix *Index) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(ix.idf))
	tf := make(map[int]int)
	total := 0
	for _, tok := range tokens {
		if idx, ok := ix.vocab[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * ix.idf[idx]
	}
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// dot is the cosine similarity of two L2-normalized vectors.
func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
