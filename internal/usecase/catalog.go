package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/soundscout/backend/internal/domain"
)

// Base model mode accepted by CatalogConfig. "auto" keeps the historic
// source-dependent behavior: parenthesis rule for CSV corpora, comma
// rule for the built-in sample.
const (
	BaseModelModeAuto  = "auto"
	BaseModelModeParen = string(BaseModelRuleParen)
	BaseModelModeComma = string(BaseModelRuleComma)
)

// Snapshot is the immutable result of one load: the annotated product
// table, the feature matrix, and the similarity index. Row order is
// shared by all three; the ranker depends on that contract.
type Snapshot struct {
	Products   []domain.Product
	Features   *mat.Dense
	Similarity *SimilarityIndex
	Source     string
	Generation uint64

	byName map[string]int
}

// IndexOf resolves a product name to its table row. With duplicate
// names the first occurrence wins.
func (s *Snapshot) IndexOf(name string) (int, bool) {
	idx, ok := s.byName[name]
	return idx, ok
}

// CatalogConfig holds configuration for the catalog.
type CatalogConfig struct {
	BaseModelMode string
}

// Catalog owns the load-and-derive pipeline (load corpus, annotate,
// build features, compute similarity) and memoizes its result. The
// pipeline runs at most once per process unless Reload invalidates it.
type Catalog struct {
	loader        domain.CorpusLoader
	builder       *FeatureBuilder
	baseModelMode string

	mu         sync.RWMutex
	snap       *Snapshot
	generation uint64
}

// NewCatalog creates a catalog around the given corpus loader.
func NewCatalog(loader domain.CorpusLoader, config CatalogConfig) *Catalog {
	mode := config.BaseModelMode
	switch mode {
	case BaseModelModeParen, BaseModelModeComma:
	default:
		mode = BaseModelModeAuto
	}

	return &Catalog{
		loader:        loader,
		builder:       NewFeatureBuilder(),
		baseModelMode: mode,
	}
}

// Snapshot returns the cached corpus state, building it on first use.
func (c *Catalog) Snapshot(ctx context.Context) (*Snapshot, error) {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap != nil {
		return c.snap, nil
	}

	snap, err := c.build(ctx)
	if err != nil {
		return nil, err
	}
	c.snap = snap
	return snap, nil
}

// Reload discards the cached state and recomputes the full pipeline.
func (c *Catalog) Reload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := c.build(ctx)
	if err != nil {
		return err
	}
	c.snap = snap
	return nil
}

// build runs the pipeline once: load, annotate, vectorize, index.
func (c *Catalog) build(ctx context.Context) (*Snapshot, error) {
	products, source, err := c.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorpusUnavailable, err)
	}
	if len(products) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	rule := c.resolveBaseModelRule(source)
	log.Printf("[CATALOG] base model rule %q in force for source %s", rule, source)
	extractor := NewExtractor(rule)
	if source == domain.CorpusSourceSample {
		// The sample ships with its categorical attributes fixed
		extractor.AnnotateBaseModel(products)
	} else {
		extractor.Annotate(products)
	}

	features, err := c.builder.Build(products)
	if err != nil {
		return nil, err
	}

	similarity := NewSimilarityIndex(features)

	byName := make(map[string]int, len(products))
	for i := range products {
		if _, dup := byName[products[i].Name]; dup {
			log.Printf("[CATALOG] duplicate product name %q at row %d; keeping first occurrence", products[i].Name, i)
			continue
		}
		byName[products[i].Name] = i
	}

	c.generation++
	log.Printf("[CATALOG] built snapshot gen=%d source=%s products=%d vocab+numeric cols=%d",
		c.generation, source, len(products), colCount(features))

	return &Snapshot{
		Products:   products,
		Features:   features,
		Similarity: similarity,
		Source:     source,
		Generation: c.generation,
		byName:     byName,
	}, nil
}

// resolveBaseModelRule picks the base model rule for the active source.
func (c *Catalog) resolveBaseModelRule(source string) BaseModelRule {
	switch c.baseModelMode {
	case BaseModelModeParen:
		return BaseModelRuleParen
	case BaseModelModeComma:
		return BaseModelRuleComma
	}
	if source == domain.CorpusSourceSample {
		return BaseModelRuleComma
	}
	return BaseModelRuleParen
}

func colCount(m *mat.Dense) int {
	_, cols := m.Dims()
	return cols
}
