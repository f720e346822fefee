package domain

import (
	"regexp"
	"strings"
)

// Form factor labels derived from product text
const (
	FormFactorOverEar = "Over-Ear"
	FormFactorOnEar   = "On-Ear"
	FormFactorInEar   = "In-Ear"
	FormFactorOther   = "Other"
)

// Connectivity labels derived from product text
const (
	ConnectivityWireless = "Wireless"
	ConnectivityWired    = "Wired"
)

// Product represents one catalog item: the raw attributes read from the
// corpus plus the attributes derived once at load time.
type Product struct {
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Price         float64 `json:"price"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"image_url"`
	Description   string  `json:"description"`
	Availability  float64 `json:"availability"`
	LoyaltyPoints float64 `json:"loyaltypoints"`

	// Derived once at load, immutable afterwards
	FormFactor       string `json:"type"`
	Connectivity     string `json:"connectivity"`
	BatteryLifeHours int    `json:"battery_life"`
	BaseModel        string `json:"base_model"`
	CombinedText     string `json:"-"`

	// Min-max normalized numeric features in [0,1]
	PriceNorm   float64 `json:"-"`
	RatingNorm  float64 `json:"-"`
	ReviewsNorm float64 `json:"-"`
}

// Recommendation is a per-query record: a product plus its cosine
// similarity to the query product.
type Recommendation struct {
	Product
	Similarity float64 `json:"similarity"`
}

// PriceRange is an inclusive price filter.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RecommendRequest carries a recommendation query. All filters are
// optional; zero values pass everything.
type RecommendRequest struct {
	ProductName  string      `json:"productName" binding:"required"`
	TopN         int         `json:"topN,omitempty"`
	PriceRange   *PriceRange `json:"priceRange,omitempty"`
	MinRating    float64     `json:"minRating,omitempty"`
	Connectivity string      `json:"connectivity,omitempty"`
	FormFactor   string      `json:"type,omitempty"`
	Brand        string      `json:"brand,omitempty"`
}

// AvailabilityStatus maps the 0-100 availability score to the stock label
// shown by the UI.
func (p *Product) AvailabilityStatus() string {
	switch {
	case p.Availability >= 70:
		return "High"
	case p.Availability >= 40:
		return "Medium"
	default:
		return "Low"
	}
}

var highlightSplitRegex = regexp.MustCompile(`[,.]`)

// Highlights splits the description on commas and periods into trimmed,
// non-empty feature snippets for product detail views.
func (p *Product) Highlights() []string {
	parts := highlightSplitRegex.Split(p.Description, -1)
	highlights := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			highlights = append(highlights, trimmed)
		}
	}
	return highlights
}
