package usecase

import (
	"testing"

	"github.com/pricepulse/backend/internal/domain"
)

func TestNewComplexityRouter(t *testing.T) {
	t.Run("fills zero values with defaults", func(t *testing.T) {
		router := NewComplexityRouter(ComplexityConfig{})
		if router.wordCountThreshold != 5 {
			t.Errorf("wordCountThreshold = %d, want 5", router.wordCountThreshold)
		}
		if router.lengthThreshold != 50 {
			t.Errorf("lengthThreshold = %d, want 50", router.lengthThreshold)
		}
		if router.specialChars != "-/&()" {
			t.Errorf("specialChars = %q, want %q", router.specialChars, "-/&()")
		}
		if len(router.keywords) == 0 {
			t.Error("keywords should not be empty")
		}
	})

	t.Run("keeps custom thresholds", func(t *testing.T) {
		router := NewComplexityRouter(ComplexityConfig{
			WordCountThreshold: 2,
			LengthThreshold:    20,
		})
		if router.wordCountThreshold != 2 {
			t.Errorf("wordCountThreshold = %d, want 2", router.wordCountThreshold)
		}
		if router.lengthThreshold != 20 {
			t.Errorf("lengthThreshold = %d, want 20", router.lengthThreshold)
		}
	})

	t.Run("case-folds keywords", func(t *testing.T) {
		router := NewComplexityRouter(ComplexityConfig{Keywords: []string{"ORGANIC"}})
		verdict := router.Classify("organic apple")
		if !verdict.Complex {
			t.Error("expected keyword match to be case-insensitive")
		}
	})
}

func TestClassifyComplexity(t *testing.T) {
	router := NewComplexityRouter(ComplexityConfig{})

	tests := []struct {
		name        string
		productName string
		wantComplex bool
		wantReasons []domain.ComplexityReason
	}{
		{
			name:        "short plain name is simple",
			productName: "Apple",
			wantComplex: false,
		},
		{
			name:        "five words is still simple",
			productName: "one two three four five",
			wantComplex: false,
		},
		{
			name:        "more than five words",
			productName: "one two three four five six",
			wantComplex: true,
			wantReasons: []domain.ComplexityReason{domain.ReasonWordCount},
		},
		{
			name:        "special character",
			productName: "Apple-Red",
			wantComplex: true,
			wantReasons: []domain.ComplexityReason{domain.ReasonSpecialChar},
		},
		{
			name:        "complexity keyword",
			productName: "Organic Apple",
			wantComplex: true,
			wantReasons: []domain.ComplexityReason{domain.ReasonKeyword},
		},
		{
			name:        "keyword matches inside a word",
			productName: "Upgraded Widget",
			wantComplex: true,
			wantReasons: []domain.ComplexityReason{domain.ReasonKeyword},
		},
		{
			name:        "empty name is simple",
			productName: "",
			wantComplex: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := router.Classify(tt.productName)
			if verdict.Complex != tt.wantComplex {
				t.Errorf("Complex = %v, want %v", verdict.Complex, tt.wantComplex)
			}
			if len(tt.wantReasons) > 0 {
				if len(verdict.Reasons) != len(tt.wantReasons) {
					t.Fatalf("Reasons = %v, want %v", verdict.Reasons, tt.wantReasons)
				}
				for i, r := range tt.wantReasons {
					if verdict.Reasons[i] != r {
						t.Errorf("Reasons[%d] = %v, want %v", i, verdict.Reasons[i], r)
					}
				}
			}
		})
	}

	t.Run("records every triggered reason", func(t *testing.T) {
		verdict := router.Classify("Organic Premium Fresh Natural Sustainable Quality Apples")
		if !verdict.Complex {
			t.Fatal("expected complex verdict")
		}
		want := map[domain.ComplexityReason]bool{
			domain.ReasonWordCount: true,
			domain.ReasonLength:    true,
			domain.ReasonKeyword:   true,
		}
		got := make(map[domain.ComplexityReason]bool)
		for _, r := range verdict.Reasons {
			got[r] = true
		}
		for reason := range want {
			if !got[reason] {
				t.Errorf("missing reason %v in %v", reason, verdict.Reasons)
			}
		}
		if got[domain.ReasonSpecialChar] {
			t.Errorf("unexpected special_character reason in %v", verdict.Reasons)
		}
	})

	t.Run("keyword reason recorded once", func(t *testing.T) {
		verdict := router.Classify("organic fresh milk")
		count := 0
		for _, r := range verdict.Reasons {
			if r == domain.ReasonKeyword {
				count++
			}
		}
		if count != 1 {
			t.Errorf("keyword reason recorded %d times, want 1", count)
		}
	})

	t.Run("custom word count threshold", func(t *testing.T) {
		tight := NewComplexityRouter(ComplexityConfig{WordCountThreshold: 2})
		if !tight.Classify("red apple juice").Complex {
			t.Error("three words should exceed a threshold of 2")
		}
		if tight.Classify("red apple").Complex {
			t.Error("two words should not exceed a threshold of 2")
		}
	})
}
