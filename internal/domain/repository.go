package domain

import "context"

// Corpus source labels reported by CorpusLoader implementations
const (
	CorpusSourceCSV    = "csv"
	CorpusSourceSample = "sample"
)

// CorpusLoader defines the interface for loading the raw product corpus.
// Implementations must recover from missing or malformed sources by
// returning a built-in sample rather than failing.
type CorpusLoader interface {
	// Load returns the raw product rows and a label describing the source
	// they came from (e.g. "csv" or "sample").
	Load(ctx context.Context) ([]Product, string, error)
}

// Recommender defines the query interface consumed by the delivery layer.
type Recommender interface {
	Recommend(ctx context.Context, req *RecommendRequest) ([]Recommendation, error)
	Search(ctx context.Context, query string) ([]Product, error)
	Products(ctx context.Context) ([]Product, error)
	Reload(ctx context.Context) error
}
