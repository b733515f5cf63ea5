package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/pricepulse/backend/internal/domain"
	"github.com/pricepulse/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers. The repository may be nil
// when persistence is disabled; processing still works, results are just
// not stored.
type Handler struct {
	loader     domain.BatchLoader
	batch      *usecase.BatchService
	repo       domain.ProductRepository
	comparison *usecase.ComparisonService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	loader domain.BatchLoader,
	batch *usecase.BatchService,
	repo domain.ProductRepository,
	comparison *usecase.ComparisonService,
) *Handler {
	return &Handler{
		loader:     loader,
		batch:      batch,
		repo:       repo,
		comparison: comparison,
	}
}

// ProcessResponse is the JSON summary returned for a batch run.
type ProcessResponse struct {
	Status        string                    `json:"status"`
	TotalProducts int                       `json:"total_products"`
	Processed     int                       `json:"processed"`
	Failed        int                       `json:"failed"`
	Stored        int                       `json:"stored"`
	Results       []domain.AnnotatedProduct `json:"results"`
	Errors        []usecase.BatchItemError  `json:"errors"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pricepulse-backend",
		"version": "1.0.0",
	})
}

// ProcessProducts loads today's batch file, runs the extraction and
// classification pipeline over it, stores the results, and returns the
// batch summary. Item failures are reported in the summary, never as an
// HTTP error.
func (h *Handler) ProcessProducts(c *gin.Context) {
	now := time.Now()

	records, err := h.loader.LoadDaily(now)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBatchFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrInvalidBatchFile):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	result := h.batch.ProcessBatch(c.Request.Context(), now.Format("2006-01-02"), records)

	stored := 0
	if h.repo != nil && len(result.Products) > 0 {
		stored, err = h.repo.InsertBatch(c.Request.Context(), result.Products)
		if err != nil {
			// The batch itself succeeded; report the storage failure
			// alongside the summary instead of dropping the work.
			log.Errorf("[HTTP] failed to store batch: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   err.Error(),
				"summary": toProcessResponse(result, 0),
			})
			return
		}
	}

	c.JSON(http.StatusOK, toProcessResponse(result, stored))
}

// GetProducts returns the stored products for one supplier on one date.
func (h *Handler) GetProducts(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence is disabled"})
		return
	}

	source := c.Query("source")
	if source == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source query parameter is required"})
		return
	}
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	products, err := h.repo.FindByDateSource(c.Request.Context(), date, source)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     date,
		"source":   source,
		"count":    len(products),
		"products": products,
	})
}

// GetProductComparison returns the cross-supplier price comparison for a
// product over a period.
func (h *Handler) GetProductComparison(c *gin.Context) {
	if h.comparison == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence is disabled"})
		return
	}

	productName := c.Query("product_name")
	if productName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_name query parameter is required"})
		return
	}

	period, err := usecase.ParseComparisonPeriod(c.DefaultQuery("period", "today"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comparison, err := h.comparison.GetProductComparison(c.Request.Context(), productName, period)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product '" + productName + "' not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, comparison)
}

func toProcessResponse(result *usecase.BatchResult, stored int) ProcessResponse {
	return ProcessResponse{
		Status:        result.Status,
		TotalProducts: result.TotalProducts,
		Processed:     result.Processed,
		Failed:        result.Failed,
		Stored:        stored,
		Results:       result.Products,
		Errors:        result.Errors,
	}
}
