package usecase

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pricepulse/backend/internal/domain"
)

// defaultBatchWorkers bounds concurrent item processing; the real limit is
// the LLM provider's rate limit, not local compute.
const defaultBatchWorkers = 8

// BatchConfig holds configuration for batch processing.
type BatchConfig struct {
	Workers  int
	Currency string
}

// BatchItemError records one item's failure without aborting the batch.
type BatchItemError struct {
	Index       int    `json:"product_index"`
	ProductName string `json:"product_name"`
	Error       string `json:"error"`
}

// BatchResult summarizes one batch run. Products keeps input order
// regardless of worker completion order.
type BatchResult struct {
	Status        string                    `json:"status"`
	TotalProducts int                       `json:"total_products"`
	Processed     int                       `json:"processed"`
	Failed        int                       `json:"failed"`
	Products      []domain.AnnotatedProduct `json:"results"`
	Errors        []BatchItemError          `json:"errors"`
}

// BatchService runs extraction and classification over a day's records
// with a bounded worker pool. Item failures are isolated and collected;
// the batch always completes.
type BatchService struct {
	extraction     *ExtractionService
	classification *ClassificationService
	workers        int
	currency       string
}

// NewBatchService creates a batch service with the given pipeline stages.
func NewBatchService(
	extraction *ExtractionService,
	classification *ClassificationService,
	config BatchConfig,
) *BatchService {
	workers := config.Workers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}
	currency := config.Currency
	if currency == "" {
		currency = "SAR"
	}
	return &BatchService{
		extraction:     extraction,
		classification: classification,
		workers:        workers,
		currency:       currency,
	}
}

// ProcessBatch processes every record for the given date. Results land in
// their input slot, so completion order never matters. A cancelled context
// does not abort items: their adapter calls fail and the deterministic
// fallback paths still produce a result.
func (s *BatchService) ProcessBatch(ctx context.Context, date string, records []domain.RawProductRecord) *BatchResult {
	products := make([]*domain.AnnotatedProduct, len(records))
	itemErrors := make([]*BatchItemError, len(records))

	g := new(errgroup.Group)
	g.SetLimit(s.workers)

	for i, record := range records {
		i, record := i, record
		g.Go(func() error {
			product, err := s.processItem(ctx, date, record)
			if err != nil {
				itemErrors[i] = &BatchItemError{
					Index:       i + 1,
					ProductName: displayName(record.Name),
					Error:       err.Error(),
				}
				return nil
			}
			products[i] = product
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes
	_ = g.Wait()

	result := &BatchResult{
		Status:        "completed",
		TotalProducts: len(records),
		Products:      make([]domain.AnnotatedProduct, 0, len(records)),
		Errors:        make([]BatchItemError, 0),
	}
	for i := range records {
		if itemErrors[i] != nil {
			result.Errors = append(result.Errors, *itemErrors[i])
			continue
		}
		result.Products = append(result.Products, *products[i])
	}
	result.Processed = len(result.Products)
	result.Failed = len(result.Errors)

	log.Infof("[BATCH] processed %d/%d products, %d failed",
		result.Processed, result.TotalProducts, result.Failed)

	return result
}

// processItem runs one record through extraction and classification. The
// pipeline's fallback design means the only real failures are malformed
// records; anything unexpected beyond that is caught so one item cannot
// take the batch down.
func (s *BatchService) processItem(ctx context.Context, date string, record domain.RawProductRecord) (product *domain.AnnotatedProduct, err error) {
	defer func() {
		if r := recover(); r != nil {
			product = nil
			err = fmt.Errorf("item processing panicked: %v", r)
		}
	}()

	if strings.TrimSpace(record.Name) == "" {
		return nil, fmt.Errorf("%w: empty product name", domain.ErrInvalidRecord)
	}

	fields := s.extraction.ExtractProductData(ctx, record)
	classification := s.classification.ClassifyProduct(ctx, fields.ProductName)

	return &domain.AnnotatedProduct{
		Date:                 date,
		Name:                 fields.ProductName,
		Origin:               fields.Origin,
		Brand:                fields.Brand,
		Unit:                 fields.Unit,
		Price:                fields.Price,
		Currency:             s.currency,
		Source:               record.Source,
		Category:             classification.Category,
		Confidence:           classification.Confidence,
		ClassificationMethod: classification.Method,
		ExtractionMethod:     fields.ExtractionMethod,
		OriginalName:         record.Name,
	}, nil
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Unknown"
	}
	return name
}
