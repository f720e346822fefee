package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundscout/backend/internal/domain"
)

// detailRecommendationCount is how many related products a detail view shows
const detailRecommendationCount = 3

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommender domain.Recommender
}

// NewHandler creates a new HTTP handler
func NewHandler(recommender domain.Recommender) *Handler {
	return &Handler{recommender: recommender}
}

// productResponse augments a product with the presentation fields the
// UI derives from it.
type productResponse struct {
	domain.Product
	AvailabilityStatus string `json:"availability_status"`
}

// recommendationResponse augments a recommendation the same way.
type recommendationResponse struct {
	domain.Recommendation
	AvailabilityStatus string `json:"availability_status"`
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i := range products {
		out[i] = productResponse{
			Product:            products[i],
			AvailabilityStatus: products[i].AvailabilityStatus(),
		}
	}
	return out
}

func toRecommendationResponses(recs []domain.Recommendation) []recommendationResponse {
	out := make([]recommendationResponse, len(recs))
	for i := range recs {
		out[i] = recommendationResponse{
			Recommendation:     recs[i],
			AvailabilityStatus: recs[i].AvailabilityStatus(),
		}
	}
	return out
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "soundscout-backend",
		"version": "1.0.0",
	})
}

// ListProducts returns the full product table in row order
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.recommender.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": toProductResponses(products),
		"count":    len(products),
	})
}

// SearchProducts returns products whose name, brand, or description
// contains the q parameter; an empty q returns everything
func (h *Handler) SearchProducts(c *gin.Context) {
	results, err := h.recommender.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": toProductResponses(results),
		"count":    len(results),
	})
}

// ProductDetail returns one product with description highlights and its
// closest matches
func (h *Handler) ProductDetail(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name parameter is required"})
		return
	}

	products, err := h.recommender.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	var product *domain.Product
	for i := range products {
		if products[i].Name == name {
			product = &products[i]
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrProductNotFound.Error()})
		return
	}

	related, err := h.recommender.Recommend(c.Request.Context(), &domain.RecommendRequest{
		ProductName: name,
		TopN:        detailRecommendationCount,
	})
	if err != nil {
		related = []domain.Recommendation{}
	}

	c.JSON(http.StatusOK, gin.H{
		"product": productResponse{
			Product:            *product,
			AvailabilityStatus: product.AvailabilityStatus(),
		},
		"highlights": product.Highlights(),
		"related":    toRecommendationResponses(related),
	})
}

// Recommend handles recommendation queries
func (h *Handler) Recommend(c *gin.Context) {
	var req domain.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error()})
		return
	}

	recommendations, err := h.recommender.Recommend(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Internal failures degrade to an empty list with a diagnostic;
		// the process keeps serving queries
		c.JSON(http.StatusOK, gin.H{
			"recommendations": []recommendationResponse{},
			"count":           0,
			"diagnostic":      err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": toRecommendationResponses(recommendations),
		"count":           len(recommendations),
	})
}

// ReloadCorpus discards the cached corpus state and rebuilds it
func (h *Handler) ReloadCorpus(c *gin.Context) {
	if err := h.recommender.Reload(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}
