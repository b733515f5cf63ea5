package usecase

import (
	"context"
	"testing"

	"github.com/pricepulse/backend/internal/domain"
)

// stubClassificationAdapter counts calls and returns a canned result or a
// canned error.
type stubClassificationAdapter struct {
	calls  int
	result domain.ClassificationResult
	err    error
}

func (s *stubClassificationAdapter) TryClassify(ctx context.Context, name string) (*domain.ClassificationResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	result := s.result
	return &result, nil
}

func TestClassifyProduct(t *testing.T) {
	ctx := context.Background()
	rules := NewRuleBasedClassifier(DefaultKeywordIndex())

	t.Run("confident rule result never consults the adapter", func(t *testing.T) {
		adapter := &stubClassificationAdapter{}
		svc := NewClassificationService(rules, adapter, 0.85)

		result := svc.ClassifyProduct(ctx, "tomato")

		if adapter.calls != 0 {
			t.Errorf("adapter calls = %d, want 0", adapter.calls)
		}
		if result.Category != domain.CategoryVegetables {
			t.Errorf("Category = %v, want Vegetables", result.Category)
		}
		if result.Method != domain.ClassificationRuleBased {
			t.Errorf("Method = %v, want rule_based", result.Method)
		}
	})

	t.Run("threshold confidence still escalates", func(t *testing.T) {
		// "milk" scores exactly at the 0.85 tier; escalation requires
		// strictly greater confidence
		adapter := &stubClassificationAdapter{
			result: domain.ClassificationResult{
				Category:   domain.CategoryDairy,
				Confidence: 0.9,
			},
		}
		svc := NewClassificationService(rules, adapter, 0.85)

		result := svc.ClassifyProduct(ctx, "milk")

		if adapter.calls != 1 {
			t.Errorf("adapter calls = %d, want 1", adapter.calls)
		}
		if result.Method != domain.ClassificationLLM {
			t.Errorf("Method = %v, want llm", result.Method)
		}
		if result.Category != domain.CategoryDairy {
			t.Errorf("Category = %v, want Dairy", result.Category)
		}
	})

	t.Run("adapter failure falls back to the rule result", func(t *testing.T) {
		adapter := &stubClassificationAdapter{err: domain.ErrLLMUnavailable}
		svc := NewClassificationService(rules, adapter, 0.85)

		result := svc.ClassifyProduct(ctx, "milk")

		if adapter.calls != 1 {
			t.Errorf("adapter calls = %d, want 1", adapter.calls)
		}
		if result.Method != domain.ClassificationRuleBasedFallback {
			t.Errorf("Method = %v, want rule_based_fallback", result.Method)
		}
		if result.Category != domain.CategoryDairy {
			t.Errorf("Category = %v, want Dairy", result.Category)
		}
	})

	t.Run("unmatched name with failing adapter still resolves", func(t *testing.T) {
		adapter := &stubClassificationAdapter{err: domain.ErrLLMTimeout}
		svc := NewClassificationService(rules, adapter, 0.85)

		result := svc.ClassifyProduct(ctx, "xyzzy")

		if result.Category != domain.CategoryOther {
			t.Errorf("Category = %v, want Other", result.Category)
		}
		if result.Method != domain.ClassificationRuleBasedFallback {
			t.Errorf("Method = %v, want rule_based_fallback", result.Method)
		}
	})

	t.Run("invalid threshold falls back to the default", func(t *testing.T) {
		adapter := &stubClassificationAdapter{}
		svc := NewClassificationService(rules, adapter, 0)

		// With the 0.85 default in place, a 0.95 rule result stays local
		result := svc.ClassifyProduct(ctx, "tomato")
		if adapter.calls != 0 {
			t.Errorf("adapter calls = %d, want 0 with default threshold", adapter.calls)
		}
		if result.Method != domain.ClassificationRuleBased {
			t.Errorf("Method = %v, want rule_based", result.Method)
		}
	})

	t.Run("threshold above one falls back to the default", func(t *testing.T) {
		svc := NewClassificationService(rules, &stubClassificationAdapter{}, 1.5)
		if svc.threshold != defaultConfidenceThreshold {
			t.Errorf("threshold = %v, want %v", svc.threshold, defaultConfidenceThreshold)
		}
	})
}
