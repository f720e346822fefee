package usecase

import (
	"fmt"
	"math"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"

	"github.com/soundscout/backend/internal/domain"
)

// ScoredProduct pairs a product row index with a similarity score.
type ScoredProduct struct {
	Index int
	Score float64
}

// SimilarityIndex holds the full pairwise cosine similarity matrix over
// the feature matrix. It is computed once per load and read-only
// afterwards, so concurrent readers need no locking.
type SimilarityIndex struct {
	sim *mat.Dense
	n   int
}

// NewSimilarityIndex computes the pairwise cosine similarity of every
// feature row against every other. The cosine similarity of a zero
// vector is defined as 0 rather than NaN; every nonzero row has
// similarity 1 with itself.
func NewSimilarityIndex(features *mat.Dense) *SimilarityIndex {
	n, _ := features.Dims()

	norms := make([]float64, n)
	for i := 0; i < n; i++ {
		row := features.RawRowView(i)
		norms[i] = math.Sqrt(vek.Dot(row, row))
	}

	sim := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		if norms[i] == 0 {
			continue
		}
		sim.Set(i, i, 1)
		rowI := features.RawRowView(i)
		for j := i + 1; j < n; j++ {
			if norms[j] == 0 {
				continue
			}
			score := vek.Dot(rowI, features.RawRowView(j)) / (norms[i] * norms[j])
			sim.Set(i, j, score)
			sim.Set(j, i, score)
		}
	}

	return &SimilarityIndex{sim: sim, n: n}
}

// Len returns the number of products the index covers.
func (idx *SimilarityIndex) Len() int {
	return idx.n
}

// Score returns the cosine similarity of products i and j.
func (idx *SimilarityIndex) Score(i, j int) float64 {
	return idx.sim.At(i, j)
}

// Row returns the similarity scores of the given product against every
// product in the table, in table order.
func (idx *SimilarityIndex) Row(productIndex int) ([]ScoredProduct, error) {
	if productIndex < 0 || productIndex >= idx.n {
		return nil, fmt.Errorf("%w: row %d out of range [0,%d)", domain.ErrIndexCorrupt, productIndex, idx.n)
	}

	scores := make([]ScoredProduct, idx.n)
	for j := 0; j < idx.n; j++ {
		scores[j] = ScoredProduct{Index: j, Score: idx.sim.At(productIndex, j)}
	}
	return scores, nil
}
