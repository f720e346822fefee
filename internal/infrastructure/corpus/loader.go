package corpus

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/soundscout/backend/internal/domain"
)

// requiredColumns are the header names a corpus file must carry.
// Header whitespace is trimmed before matching.
var requiredColumns = []string{
	"name", "brand", "price", "rating", "reviews",
	"category", "image_url", "description", "availability", "loyaltypoints",
}

// Loader reads the product corpus from a CSV file and substitutes the
// built-in sample on any failure, so the rest of the system always has
// a corpus to work with.
type Loader struct {
	csvPath string
}

// NewLoader creates a corpus loader for the given CSV path.
func NewLoader(csvPath string) *Loader {
	return &Loader{csvPath: csvPath}
}

// Load returns the raw product rows and their source label. A missing
// file, parse error, or schema mismatch is recovered locally by
// returning the sample corpus; Load itself never fails.
func (l *Loader) Load(ctx context.Context) ([]domain.Product, string, error) {
	products, err := l.loadCSV()
	if err != nil {
		log.Printf("[CORPUS] loading %q failed (%v); using built-in sample corpus", l.csvPath, err)
		return Sample(), domain.CorpusSourceSample, nil
	}

	log.Printf("[CORPUS] loaded %d products from %q", len(products), l.csvPath)
	return products, domain.CorpusSourceCSV, nil
}

// loadCSV parses the corpus file into raw product rows.
func (l *Loader) loadCSV() ([]domain.Product, error) {
	file, err := os.Open(l.csvPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorpusUnavailable, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorpusMalformed, err)
	}
	if len(records) < 2 {
		return nil, domain.ErrEmptyCorpus
	}

	columns, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(records)-1)
	for rowNum, record := range records[1:] {
		product, err := parseRow(record, columns)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrCorpusMalformed, rowNum+2, err)
		}
		products = append(products, product)
	}

	return products, nil
}

// mapColumns trims header whitespace and resolves each required column
// to its position.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", domain.ErrCorpusMalformed, required)
		}
	}
	return columns, nil
}

// parseRow converts one CSV record into a raw product.
func parseRow(record []string, columns map[string]int) (domain.Product, error) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	price, err := parseFloat(field("price"))
	if err != nil {
		return domain.Product{}, fmt.Errorf("price: %v", err)
	}
	rating, err := parseFloat(field("rating"))
	if err != nil {
		return domain.Product{}, fmt.Errorf("rating: %v", err)
	}
	reviews, err := parseFloat(field("reviews"))
	if err != nil {
		return domain.Product{}, fmt.Errorf("reviews: %v", err)
	}
	availability, err := parseFloat(field("availability"))
	if err != nil {
		return domain.Product{}, fmt.Errorf("availability: %v", err)
	}
	loyaltyPoints, err := parseFloat(field("loyaltypoints"))
	if err != nil {
		return domain.Product{}, fmt.Errorf("loyaltypoints: %v", err)
	}

	return domain.Product{
		Name:          strings.TrimSpace(field("name")),
		Brand:         strings.TrimSpace(field("brand")),
		Price:         price,
		Rating:        rating,
		Reviews:       int(reviews),
		Category:      strings.TrimSpace(field("category")),
		ImageURL:      strings.TrimSpace(field("image_url")),
		Description:   strings.TrimSpace(field("description")),
		Availability:  availability,
		LoyaltyPoints: loyaltyPoints,
	}, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
