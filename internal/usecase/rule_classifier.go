package usecase

import (
	"strings"

	"github.com/pricepulse/backend/internal/domain"
)

// Scoring factors for keyword matches
const (
	lengthWeightFactor = 2.0 // Raw weight scales with keyword length
	wholeWordBonus     = 2.0 // Keyword matches a whole word, not a fragment
	leadingPosFactor   = 1.5 // Keyword opens the product name
	positionDecay      = 0.5 // Later matches decay toward this fraction
)

// Confidence tiers mapping the raw accumulated score to [0,1]. The mapping
// is monotonic and bounded; thresholds reflect how strong a keyword hit has
// to be before the scorer can be trusted without model arbitration.
const (
	strongMatchScore = 30.0
	goodMatchScore   = 20.0
	decentMatchScore = 10.0
	weakMatchScore   = 5.0

	strongMatchConfidence = 0.95
	goodMatchConfidence   = 0.85
	decentMatchConfidence = 0.70
	weakMatchConfidence   = 0.50
	faintMatchConfidence  = 0.30
)

// RuleBasedClassifier scores a product name against the category keyword
// index. It never fails: a name matching nothing classifies as Other with
// confidence 0. Scoring is deterministic and read-only over the index, so
// one classifier is safe for concurrent use.
type RuleBasedClassifier struct {
	index *CategoryKeywordIndex
}

// NewRuleBasedClassifier creates a classifier over the given keyword index.
func NewRuleBasedClassifier(index *CategoryKeywordIndex) *RuleBasedClassifier {
	if index == nil {
		index = DefaultKeywordIndex()
	}
	return &RuleBasedClassifier{index: index}
}

// Score classifies a product name by accumulated keyword weight. Each
// matched keyword contributes weight x length x position, rewarding longer,
// more specific terms ("olive oil" over "oil") and matches near the start
// of the name. Ties break toward the earlier-declared category.
func (c *RuleBasedClassifier) Score(name string) domain.ClassificationResult {
	nameLower := strings.ToLower(strings.TrimSpace(name))
	if nameLower == "" {
		return domain.ClassificationResult{
			Category:   domain.CategoryOther,
			Confidence: 0,
			Method:     domain.ClassificationRuleBased,
		}
	}

	padded := " " + nameLower + " "

	bestCategory := domain.CategoryOther
	bestScore := 0.0

	for _, category := range c.index.Categories() {
		score := 0.0
		for _, kw := range c.index.Keywords(category) {
			pos := strings.Index(nameLower, kw.Term)
			if pos < 0 {
				continue
			}

			weight := kw.Weight * float64(len(kw.Term)) * lengthWeightFactor
			// Word boundaries are spaces only; a punctuation-adjacent
			// match ("tomato,") does not earn the bonus. Inherited
			// scoring behavior, kept so existing confidence values
			// stay stable.
			if strings.Contains(padded, " "+kw.Term+" ") {
				weight *= wholeWordBonus
			}
			weight *= positionFactor(pos, len(nameLower), nameLower, kw.Term)

			score += weight
		}

		// Strictly greater keeps the earlier-declared category on ties
		if score > bestScore {
			bestScore = score
			bestCategory = category
		}
	}

	if bestScore == 0 {
		return domain.ClassificationResult{
			Category:   domain.CategoryOther,
			Confidence: 0,
			Method:     domain.ClassificationRuleBased,
		}
	}

	return domain.ClassificationResult{
		Category:   bestCategory,
		Confidence: scoreToConfidence(bestScore),
		Method:     domain.ClassificationRuleBased,
	}
}

// positionFactor rewards matches near the start of the name. A keyword
// opening the name gets a flat bonus; later matches decay linearly down to
// half weight at the very end.
func positionFactor(pos, nameLen int, nameLower, term string) float64 {
	if pos == 0 && (nameLower == term || strings.HasPrefix(nameLower, term+" ")) {
		return leadingPosFactor
	}
	return 1.0 - positionDecay*float64(pos)/float64(nameLen)
}

// scoreToConfidence maps the raw accumulated score onto [0,1] via monotonic
// tiers calibrated so that only unambiguous keyword hits clear the
// escalation threshold.
func scoreToConfidence(score float64) float64 {
	switch {
	case score >= strongMatchScore:
		return strongMatchConfidence
	case score >= goodMatchScore:
		return goodMatchConfidence
	case score >= decentMatchScore:
		return decentMatchConfidence
	case score >= weakMatchScore:
		return weakMatchConfidence
	default:
		return faintMatchConfidence
	}
}
