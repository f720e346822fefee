package usecase

import (
	"math"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/soundscout/backend/internal/domain"
)

// Number of normalized numeric columns appended after the text weights
const numericFeatureCount = 3

// textTokenRegex extracts lowercase alphanumeric runs; tokens shorter
// than two characters are dropped by the tokenizer.
var textTokenRegex = regexp.MustCompile(`[a-z0-9]+`)

// englishStopWords is the standard English stop-word list excluded from
// the text vocabulary.
var englishStopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "am": true, "an": true, "and": true,
	"any": true, "are": true, "as": true, "at": true, "be": true,
	"because": true, "been": true, "before": true, "being": true, "below": true,
	"between": true, "both": true, "but": true, "by": true, "can": true,
	"cannot": true, "could": true, "did": true, "do": true, "does": true,
	"doing": true, "down": true, "during": true, "each": true, "few": true,
	"for": true, "from": true, "further": true, "had": true, "has": true,
	"have": true, "having": true, "he": true, "her": true, "here": true,
	"hers": true, "herself": true, "him": true, "himself": true, "his": true,
	"how": true, "i": true, "if": true, "in": true, "into": true,
	"is": true, "it": true, "its": true, "itself": true, "just": true,
	"me": true, "more": true, "most": true, "my": true, "myself": true,
	"no": true, "nor": true, "not": true, "now": true, "of": true,
	"off": true, "on": true, "once": true, "only": true, "or": true,
	"other": true, "our": true, "ours": true, "ourselves": true, "out": true,
	"over": true, "own": true, "same": true, "she": true, "should": true,
	"so": true, "some": true, "such": true, "than": true, "that": true,
	"the": true, "their": true, "theirs": true, "them": true, "themselves": true,
	"then": true, "there": true, "these": true, "they": true, "this": true,
	"those": true, "through": true, "to": true, "too": true, "under": true,
	"until": true, "up": true, "very": true, "was": true,
	"we": true, "were": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "who": true, "whom": true, "why": true,
	"will": true, "with": true, "would": true, "you": true, "your": true,
	"yours": true, "yourself": true, "yourselves": true,
}

// tokenizeText lowercases, splits on non-alphanumerics, and drops stop
// words and single-character tokens.
func tokenizeText(s string) []string {
	var tokens []string
	for _, tok := range textTokenRegex.FindAllString(strings.ToLower(s), -1) {
		if len(tok) < 2 {
			continue
		}
		if englishStopWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// tfidfVectorizer learns a vocabulary and inverse document frequencies
// from a corpus and turns documents into term-weight vectors.
type tfidfVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

func newTFIDFVectorizer() *tfidfVectorizer {
	return &tfidfVectorizer{vocabulary: make(map[string]int)}
}

// vocabSize returns the width of the learned term-weight vectors.
func (v *tfidfVectorizer) vocabSize() int {
	return len(v.vocabulary)
}

// fit builds the vocabulary and IDF statistics from the corpus. The
// vocabulary is learned from this corpus only.
func (v *tfidfVectorizer) fit(docs []string) {
	docCount := float64(len(docs))
	docFreq := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range tokenizeText(doc) {
			if !seen[tok] {
				docFreq[tok]++
				seen[tok] = true
			}
			if _, ok := v.vocabulary[tok]; !ok {
				v.vocabulary[tok] = len(v.vocabulary)
			}
		}
	}

	v.idf = make([]float64, len(v.vocabulary))
	for term, idx := range v.vocabulary {
		// idf = ln(N / (df + 1)) + 1
		v.idf[idx] = math.Log(docCount/(float64(docFreq[term])+1)) + 1
	}
}

// transformInto writes the document's term weights into dst, which must
// have length vocabSize. Terms outside the learned vocabulary are ignored.
func (v *tfidfVectorizer) transformInto(doc string, dst []float64) {
	tokens := tokenizeText(doc)
	if len(tokens) == 0 {
		return
	}

	counts := make(map[string]float64)
	for _, tok := range tokens {
		counts[tok]++
	}

	total := float64(len(tokens))
	for tok, count := range counts {
		if idx, ok := v.vocabulary[tok]; ok {
			dst[idx] = (count / total) * v.idf[idx]
		}
	}
}

// FeatureBuilder turns an annotated product table into the joint
// numeric+text feature matrix the similarity index is computed from.
type FeatureBuilder struct{}

// NewFeatureBuilder creates a feature builder.
func NewFeatureBuilder() *FeatureBuilder {
	return &FeatureBuilder{}
}

// Build fills the normalized numeric fields and combined text of every
// product, then returns the feature matrix with one row per product in
// table order: [term weights | price | rating | reviews]. A corpus whose
// text fields are entirely empty yields a numeric-only matrix.
func (b *FeatureBuilder) Build(products []domain.Product) (*mat.Dense, error) {
	if len(products) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	minMaxNormalize(products, func(p *domain.Product) float64 { return p.Price },
		func(p *domain.Product, v float64) { p.PriceNorm = v })
	minMaxNormalize(products, func(p *domain.Product) float64 { return p.Rating },
		func(p *domain.Product, v float64) { p.RatingNorm = v })
	minMaxNormalize(products, func(p *domain.Product) float64 { return float64(p.Reviews) },
		func(p *domain.Product, v float64) { p.ReviewsNorm = v })

	docs := make([]string, len(products))
	for i := range products {
		p := &products[i]
		p.CombinedText = p.Name + " " + p.Brand + " " + p.Description + " " + p.Category
		docs[i] = p.CombinedText
	}

	vectorizer := newTFIDFVectorizer()
	vectorizer.fit(docs)

	cols := vectorizer.vocabSize() + numericFeatureCount
	features := mat.NewDense(len(products), cols, nil)
	for i := range products {
		row := features.RawRowView(i)
		vectorizer.transformInto(docs[i], row[:vectorizer.vocabSize()])
		row[cols-3] = products[i].PriceNorm
		row[cols-2] = products[i].RatingNorm
		row[cols-1] = products[i].ReviewsNorm
	}

	return features, nil
}

// minMaxNormalize rescales one numeric column to [0,1] using the
// corpus's own min and max. A degenerate column (max == min) normalizes
// to 0 for every row.
func minMaxNormalize(products []domain.Product, get func(*domain.Product) float64, set func(*domain.Product, float64)) {
	lo := get(&products[0])
	hi := lo
	for i := range products {
		v := get(&products[i])
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	span := hi - lo
	for i := range products {
		if span == 0 {
			set(&products[i], 0)
			continue
		}
		set(&products[i], (get(&products[i])-lo)/span)
	}
}
