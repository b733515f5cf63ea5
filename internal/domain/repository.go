package domain

import (
	"context"
	"time"
)

// ExtractionAdapter is the capability boundary to the model-assisted
// extraction tier. Implementations must return a typed failure
// (ErrLLMUnavailable, ErrLLMTimeout, ErrMalformedResponse) instead of
// panicking; the arbiter decides what to do with it.
type ExtractionAdapter interface {
	TryExtract(ctx context.Context, name string) (*ExtractedFields, error)
}

// ClassificationAdapter is the capability boundary to the model-assisted
// classification tier. Same failure taxonomy as ExtractionAdapter. An
// out-of-set category counts as a malformed response.
type ClassificationAdapter interface {
	TryClassify(ctx context.Context, name string) (*ClassificationResult, error)
}

// ProductRepository defines the interface for annotated product persistence.
// Records are keyed by (date, name) with secondary lookup by (date, source).
type ProductRepository interface {
	InsertBatch(ctx context.Context, products []AnnotatedProduct) (int, error)
	FindByDateSource(ctx context.Context, date, source string) ([]AnnotatedProduct, error)
	FindByProductSince(ctx context.Context, productName, sinceDate string) ([]AnnotatedProduct, error)
}

// BatchLoader loads the raw records for one day's batch.
type BatchLoader interface {
	LoadDaily(date time.Time) ([]RawProductRecord, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
