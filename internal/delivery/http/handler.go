package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/renvare/backend/internal/domain"
	"github.com/renvare/backend/internal/usecase"
)

// Version is the service version reported by /version.
const Version = "1.0.0"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	classifier        *usecase.ClassifierService
	shopping          *usecase.ShoppingService
	maxIngredientsLen int
}

// NewHandler creates a new HTTP handler
func NewHandler(classifier *usecase.ClassifierService, shopping *usecase.ShoppingService, maxIngredientsLen int) *Handler {
	if maxIngredientsLen <= 0 {
		maxIngredientsLen = 5000
	}
	return &Handler{
		classifier:        classifier,
		shopping:          shopping,
		maxIngredientsLen: maxIngredientsLen,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "renvare-backend",
		"version": Version,
	})
}

// GetVersion returns the service version
func (h *Handler) GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": Version})
}

// Classify handles POST /api/v1/classify. Shape errors are rejected with 400;
// content never errors -- the classifier is total over validated input.
func (h *Handler) Classify(c *gin.Context) {
	if h.classifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "classifier not configured"})
		return
	}

	var input domain.ClassifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := h.validateClassifyInput(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.classifier.Classify(input))
}

// ClassifyBatch handles POST /api/v1/classify-batch. Results come back in
// input order, each item independently computed.
func (h *Handler) ClassifyBatch(c *gin.Context) {
	if h.classifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "classifier not configured"})
		return
	}

	var inputs []domain.ClassifyInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if len(inputs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "batch must contain at least one item"})
		return
	}
	if len(inputs) > h.classifier.MaxBatchSize() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("batch size %d exceeds limit of %d", len(inputs), h.classifier.MaxBatchSize()),
		})
		return
	}

	for i, input := range inputs {
		if err := h.validateClassifyInput(input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("item %d: %s", i, err.Error())})
			return
		}
	}

	results, err := h.classifier.ClassifyBatch(inputs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, results)
}

// SearchProductsRequest is the body of POST /api/v1/products/search.
type SearchProductsRequest struct {
	Query   string                        `json:"query" binding:"required"`
	Profile *domain.UserPreferenceProfile `json:"profile,omitempty"`
}

// SearchProducts handles POST /api/v1/products/search: product search ranked
// against the caller-supplied preference profile.
func (h *Handler) SearchProducts(c *gin.Context) {
	if h.shopping == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "product search not configured"})
		return
	}

	var req SearchProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	ranked, err := h.shopping.SearchRanked(c.Request.Context(), req.Query, req.Profile)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"query": req.Query, "products": ranked})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must not be empty"})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no matching products found"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "product search failed"})
	}
}

// validateClassifyInput checks request shape: ingredients text length bounds
// and a known category enum. Content is never validated here.
func (h *Handler) validateClassifyInput(input domain.ClassifyInput) error {
	text := strings.TrimSpace(input.IngredientsText)
	if text == "" {
		return fmt.Errorf("ingredients_text is required")
	}
	// Length bound counts characters, not bytes: æ/ø/å must not shrink the
	// allowed text.
	if utf8.RuneCountInString(input.IngredientsText) > h.maxIngredientsLen {
		return fmt.Errorf("ingredients_text exceeds %d characters", h.maxIngredientsLen)
	}
	if input.ProductCategory != "" && !domain.KnownCategories[input.ProductCategory] {
		return fmt.Errorf("unknown product_category: %s", input.ProductCategory)
	}
	return nil
}
