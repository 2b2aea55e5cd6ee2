package retriever

import (
	"context"
	"fmt"
	"sync/atomic"

	"agribot/internal/core/knowledge"
	"agribot/internal/core/similarity"
	"agribot/internal/core/textnorm"
)

// Snapshot is an immutable corpus-plus-index pair. Concurrent retrievals each
// hold the snapshot active when they started; a reload never mutates one.
type Snapshot struct {
	Corpus *knowledge.Corpus
	Index  *similarity.Index
}

// BuildSnapshot loads a corpus from its locator and fits a fresh index over it.
func BuildSnapshot(ctx context.Context, locator string, norm *textnorm.Normalizer) (*Snapshot, error) {
	corpus, err := knowledge.Load(ctx, locator)
	if err != nil {
		return nil, err
	}
	ix, err := similarity.Build(corpus, norm)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Corpus: corpus, Index: ix}, nil
}

// Catalog holds the live snapshot per pivot language. The language set is
// fixed at construction; snapshots are replaced by atomic swap so readers see
// either the old or the new index entirely, never a partial rebuild.
type Catalog struct {
	snapshots map[string]*atomic.Pointer[Snapshot]
}

// NewCatalog allocates slots for the given pivot language codes.
func NewCatalog(langs []string) *Catalog {
	c := &Catalog{snapshots: make(map[string]*atomic.Pointer[Snapshot], len(langs))}
	for _, lang := range langs {
		if _, ok := c.snapshots[lang]; !ok {
			c.snapshots[lang] = &atomic.Pointer[Snapshot]{}
		}
	}
	return c
}

// Swap installs a new snapshot for a language.
func (c *Catalog) Swap(lang string, snap *Snapshot) error {
	slot, ok := c.snapshots[lang]
	if !ok {
		return fmt.Errorf("retriever: language %q not in catalog", lang)
	}
	slot.Store(snap)
	return nil
}

// Snapshot returns the live snapshot for a language.
func (c *Catalog) Snapshot(lang string) (*Snapshot, error) {
	slot, ok := c.snapshots[lang]
	if !ok {
		return nil, fmt.Errorf("retriever: language %q not in catalog", lang)
	}
	snap := slot.Load()
	if snap == nil {
		return nil, fmt.Errorf("retriever: no corpus loaded for language %q", lang)
	}
	return snap, nil
}

// Languages lists the catalog's language codes.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.snapshots))
	for lang := range c.snapshots {
		out = append(out, lang)
	}
	return out
}
