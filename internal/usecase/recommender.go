package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/soundscout/backend/internal/domain"
)

// Ranker defaults
const (
	defaultTopN      = 5
	defaultMaxTopN   = 6
	defaultCacheSize = 256
)

// RecommenderConfig holds configuration for the recommendation service.
type RecommenderConfig struct {
	DefaultTopN int
	MaxTopN     int
	CacheSize   int
}

// RecommendationService answers recommendation and search queries
// against the catalog's cached snapshot. Query results are held in a
// bounded LRU keyed by the snapshot generation, so a reload implicitly
// invalidates them.
type RecommendationService struct {
	catalog     *Catalog
	defaultTopN int
	maxTopN     int
	cache       *lru.Cache[string, []domain.Recommendation]
}

// NewRecommendationService creates a recommendation service backed by
// the given catalog.
func NewRecommendationService(catalog *Catalog, config RecommenderConfig) *RecommendationService {
	topN := config.DefaultTopN
	if topN <= 0 {
		topN = defaultTopN
	}

	maxTopN := config.MaxTopN
	if maxTopN <= 0 {
		maxTopN = defaultMaxTopN
	}

	cacheSize := config.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, []domain.Recommendation](cacheSize)
	if err != nil {
		// lru.New only fails for non-positive sizes, which the guard above rules out
		panic(fmt.Sprintf("recommendation cache: %v", err))
	}

	return &RecommendationService{
		catalog:     catalog,
		defaultTopN: topN,
		maxTopN:     maxTopN,
		cache:       cache,
	}
}

// Recommend returns up to TopN products most similar to the query
// product, similarity-descending, after filtering and base-model
// de-duplication. An unknown product name yields an empty list, not an
// error; internal failures yield an empty list plus a diagnostic error.
func (s *RecommendationService) Recommend(ctx context.Context, req *domain.RecommendRequest) ([]domain.Recommendation, error) {
	if req == nil || req.ProductName == "" {
		return nil, domain.ErrInvalidRequest
	}

	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return []domain.Recommendation{}, err
	}

	topN := req.TopN
	if topN <= 0 {
		topN = s.defaultTopN
	}
	if topN > s.maxTopN {
		topN = s.maxTopN
	}

	key := cacheKey(snap.Generation, req, topN)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	recommendations, err := rank(snap, req, topN)
	if err != nil {
		return []domain.Recommendation{}, err
	}

	s.cache.Add(key, recommendations)
	return recommendations, nil
}

// rank walks the query product's similarity row in descending score
// order, applying filters and base-model de-duplication.
func rank(snap *Snapshot, req *domain.RecommendRequest, topN int) ([]domain.Recommendation, error) {
	queryIndex, ok := snap.IndexOf(req.ProductName)
	if !ok {
		log.Printf("[RANK] unknown product %q; returning no recommendations", req.ProductName)
		return []domain.Recommendation{}, nil
	}

	scores, err := snap.Similarity.Row(queryIndex)
	if err != nil {
		return nil, err
	}

	// Stable sort: equal scores keep table order, so results are
	// deterministic and reproducible.
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].Score > scores[b].Score
	})

	// Seeding with the query's own base model excludes variants of the
	// queried product from the results.
	seenModels := map[string]bool{snap.Products[queryIndex].BaseModel: true}

	recommendations := make([]domain.Recommendation, 0, topN)
	for _, scored := range scores {
		if scored.Index == queryIndex {
			continue
		}
		if scored.Index < 0 || scored.Index >= len(snap.Products) {
			return nil, fmt.Errorf("%w: scored index %d outside product table", domain.ErrIndexCorrupt, scored.Index)
		}

		candidate := &snap.Products[scored.Index]
		if seenModels[candidate.BaseModel] {
			continue
		}
		if !passesFilters(candidate, req) {
			continue
		}

		recommendations = append(recommendations, domain.Recommendation{
			Product:    *candidate,
			Similarity: scored.Score,
		})
		seenModels[candidate.BaseModel] = true

		if len(recommendations) >= topN {
			break
		}
	}

	return recommendations, nil
}

// passesFilters applies the optional query filters; omitted filters
// pass everything.
func passesFilters(p *domain.Product, req *domain.RecommendRequest) bool {
	if req.PriceRange != nil && (p.Price < req.PriceRange.Min || p.Price > req.PriceRange.Max) {
		return false
	}
	if p.Rating < req.MinRating {
		return false
	}
	if req.Connectivity != "" && p.Connectivity != req.Connectivity {
		return false
	}
	if req.FormFactor != "" && p.FormFactor != req.FormFactor {
		return false
	}
	if req.Brand != "" && p.Brand != req.Brand {
		return false
	}
	return true
}

// cacheKey canonicalizes a query for the result cache. The generation
// prefix ties entries to one snapshot.
func cacheKey(generation uint64, req *domain.RecommendRequest, topN int) string {
	priceKey := "-"
	if req.PriceRange != nil {
		priceKey = fmt.Sprintf("%g:%g", req.PriceRange.Min, req.PriceRange.Max)
	}
	return fmt.Sprintf("%d|%s|%d|%s|%g|%s|%s|%s",
		generation, req.ProductName, topN, priceKey, req.MinRating,
		req.Connectivity, req.FormFactor, req.Brand)
}

// Search returns all products whose name, brand, or description
// contains the query case-insensitively. An empty query returns the
// whole table.
func (s *RecommendationService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if query == "" {
		return append([]domain.Product(nil), snap.Products...), nil
	}

	q := strings.ToLower(query)
	matches := []domain.Product{}
	for i := range snap.Products {
		p := &snap.Products[i]
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matches = append(matches, *p)
		}
	}
	return matches, nil
}

// Products returns the full product table in row order.
func (s *RecommendationService) Products(ctx context.Context) ([]domain.Product, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return append([]domain.Product(nil), snap.Products...), nil
}

// Reload forces a full recompute of the corpus pipeline and drops all
// cached query results.
func (s *RecommendationService) Reload(ctx context.Context) error {
	if err := s.catalog.Reload(ctx); err != nil {
		return err
	}
	s.cache.Purge()
	return nil
}
