package usecase

import (
	"strings"

	"github.com/pricepulse/backend/internal/domain"
)

// ComplexityConfig holds the thresholds for routing a name to the LLM
// extraction tier. Zero values fall back to defaults.
type ComplexityConfig struct {
	WordCountThreshold int
	LengthThreshold    int
	SpecialChars       string
	Keywords           []string
}

// DefaultComplexityConfig returns the thresholds used when none are
// configured.
func DefaultComplexityConfig() ComplexityConfig {
	return ComplexityConfig{
		WordCountThreshold: 5,
		LengthThreshold:    50,
		SpecialChars:       "-/&()",
		Keywords: []string{
			"organic", "premium", "fresh", "natural", "sustainable",
			"fair-trade", "quality", "grade", "type", "variety", "brand",
		},
	}
}

// ComplexityRouter decides whether a product name is simple enough for the
// pattern engine or noisy enough to warrant the LLM tier. It is a pure
// predicate: no state, no side effects.
type ComplexityRouter struct {
	wordCountThreshold int
	lengthThreshold    int
	specialChars       string
	keywords           []string
}

// NewComplexityRouter creates a router with the given thresholds, filling
// zero values from DefaultComplexityConfig.
func NewComplexityRouter(config ComplexityConfig) *ComplexityRouter {
	defaults := DefaultComplexityConfig()

	if config.WordCountThreshold <= 0 {
		config.WordCountThreshold = defaults.WordCountThreshold
	}
	if config.LengthThreshold <= 0 {
		config.LengthThreshold = defaults.LengthThreshold
	}
	if config.SpecialChars == "" {
		config.SpecialChars = defaults.SpecialChars
	}
	if len(config.Keywords) == 0 {
		config.Keywords = defaults.Keywords
	}

	keywords := make([]string, len(config.Keywords))
	for i, kw := range config.Keywords {
		keywords[i] = strings.ToLower(kw)
	}

	return &ComplexityRouter{
		wordCountThreshold: config.WordCountThreshold,
		lengthThreshold:    config.LengthThreshold,
		specialChars:       config.SpecialChars,
		keywords:           keywords,
	}
}

// Classify returns the complexity verdict for a product name. The verdict
// is the logical OR of four checks; every triggered check is recorded so
// routing decisions stay explainable in logs.
func (r *ComplexityRouter) Classify(name string) domain.ComplexityVerdict {
	var reasons []domain.ComplexityReason

	if len(strings.Fields(name)) > r.wordCountThreshold {
		reasons = append(reasons, domain.ReasonWordCount)
	}
	if len(name) > r.lengthThreshold {
		reasons = append(reasons, domain.ReasonLength)
	}
	if strings.ContainsAny(name, r.specialChars) {
		reasons = append(reasons, domain.ReasonSpecialChar)
	}

	nameLower := strings.ToLower(name)
	for _, kw := range r.keywords {
		if strings.Contains(nameLower, kw) {
			reasons = append(reasons, domain.ReasonKeyword)
			break
		}
	}

	return domain.ComplexityVerdict{
		Complex: len(reasons) > 0,
		Reasons: reasons,
	}
}
