package domain

import "errors"

var (
	// ErrProductNotFound is returned when a query product is not in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCorpusUnavailable is returned when the corpus cannot be loaded at all
	ErrCorpusUnavailable = errors.New("product corpus unavailable")

	// ErrCorpusMalformed is returned when the corpus file fails to parse
	ErrCorpusMalformed = errors.New("product corpus malformed")

	// ErrEmptyCorpus is returned when a corpus source yields zero products
	ErrEmptyCorpus = errors.New("product corpus is empty")

	// ErrIndexCorrupt is returned when the cached feature or similarity
	// matrices disagree with the product table; a reload resolves it
	ErrIndexCorrupt = errors.New("similarity index corrupt")
)
