package usecase

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/pricepulse/backend/internal/domain"
)

// defaultConfidenceThreshold is the rule-based confidence above which the
// LLM tier is never consulted.
const defaultConfidenceThreshold = 0.85

// ClassificationService routes between the rule-based classifier and the
// LLM classification adapter. The rule result is always computed first and
// held as the guaranteed answer; the adapter is consulted only when the
// scorer is unsure, and its failure falls back silently.
type ClassificationService struct {
	rules     *RuleBasedClassifier
	llm       domain.ClassificationAdapter
	threshold float64
}

// NewClassificationService creates a classification service. A threshold
// outside (0,1] falls back to the default.
func NewClassificationService(
	rules *RuleBasedClassifier,
	llm domain.ClassificationAdapter,
	threshold float64,
) *ClassificationService {
	if threshold <= 0 || threshold > 1 {
		threshold = defaultConfidenceThreshold
	}
	return &ClassificationService{
		rules:     rules,
		llm:       llm,
		threshold: threshold,
	}
}

// ClassifyProduct classifies a product name, never failing: the worst case
// is the rule-based result tagged rule_based_fallback.
func (s *ClassificationService) ClassifyProduct(ctx context.Context, name string) domain.ClassificationResult {
	ruleResult := s.rules.Score(name)

	if ruleResult.Confidence > s.threshold {
		ruleResult.Method = domain.ClassificationRuleBased
		return ruleResult
	}

	llmResult, err := s.llm.TryClassify(ctx, name)
	if err != nil {
		log.Debugf("[CLASSIFY] llm classification failed for %q, using rule result: %v", name, err)
		ruleResult.Method = domain.ClassificationRuleBasedFallback
		return ruleResult
	}

	llmResult.Method = domain.ClassificationLLM
	return *llmResult
}
