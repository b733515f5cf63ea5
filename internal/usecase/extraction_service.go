package usecase

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/pricepulse/backend/internal/domain"
)

// ExtractionService routes each raw record between the pattern engine and
// the LLM extraction adapter. Simple names never touch the adapter; complex
// names try it and fall back to patterns on any failure, so extraction
// never surfaces an error to the caller.
type ExtractionService struct {
	router   *ComplexityRouter
	patterns *PatternExtractor
	llm      domain.ExtractionAdapter
}

// NewExtractionService creates an extraction service. The adapter is a
// constructor-supplied collaborator so failing tiers can be substituted in
// tests.
func NewExtractionService(
	router *ComplexityRouter,
	patterns *PatternExtractor,
	llm domain.ExtractionAdapter,
) *ExtractionService {
	return &ExtractionService{
		router:   router,
		patterns: patterns,
		llm:      llm,
	}
}

// ExtractProductData extracts structured fields from a raw record. Worst
// case the result carries the raw name and a zero price, tagged regex; the
// method tag records which tier actually produced the fields.
func (s *ExtractionService) ExtractProductData(ctx context.Context, raw domain.RawProductRecord) domain.ExtractedFields {
	verdict := s.router.Classify(raw.Name)

	if !verdict.Complex {
		log.Debugf("[EXTRACT] pattern path for %q", raw.Name)
		return s.extractWithPatterns(raw, domain.ExtractionRegex)
	}

	log.Debugf("[EXTRACT] llm path for %q (reasons: %v)", raw.Name, verdict.Reasons)

	fields, err := s.llm.TryExtract(ctx, raw.Name)
	if err != nil {
		log.Warnf("[EXTRACT] llm extraction failed for %q, falling back to patterns: %v", raw.Name, err)
		return s.extractWithPatterns(raw, domain.ExtractionLLMFallbackRegex)
	}

	fields.ExtractionMethod = domain.ExtractionLLM
	if fields.Price == 0 {
		fields.Price = ParsePrice(raw.Price)
	}
	if fields.Unit == "" {
		fields.Unit = defaultUnit
	}
	return *fields
}

func (s *ExtractionService) extractWithPatterns(raw domain.RawProductRecord, method domain.ExtractionMethod) domain.ExtractedFields {
	fields := s.patterns.Extract(raw.Name)
	fields.Price = ParsePrice(raw.Price)
	fields.ExtractionMethod = method
	return fields
}
