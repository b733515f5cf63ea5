package domain

import "errors"

var (
	// ErrLLMUnavailable is returned when no LLM credentials are configured
	ErrLLMUnavailable = errors.New("llm adapter unavailable")

	// ErrLLMTimeout is returned when an LLM request exceeds its deadline
	ErrLLMTimeout = errors.New("llm request timed out")

	// ErrMalformedResponse is returned when the LLM reply cannot be parsed
	// into the expected schema
	ErrMalformedResponse = errors.New("malformed llm response")

	// ErrInvalidRecord is returned when a raw batch record is unusable
	ErrInvalidRecord = errors.New("invalid raw product record")

	// ErrBatchFileNotFound is returned when the daily data file is missing
	ErrBatchFileNotFound = errors.New("batch data file not found")

	// ErrInvalidBatchFile is returned when the daily data file cannot be parsed
	ErrInvalidBatchFile = errors.New("invalid batch data file")

	// ErrProductNotFound is returned when a comparison query matches nothing
	ErrProductNotFound = errors.New("product not found")

	// ErrStorageFailure is returned when the product store rejects a write
	ErrStorageFailure = errors.New("product storage failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
