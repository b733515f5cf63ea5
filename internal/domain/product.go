package domain

// Category is one of the closed set of product categories the classifier
// can produce. Unmatched products resolve to CategoryOther, never to an
// empty value.
type Category string

const (
	CategoryFruits     Category = "Fruits"
	CategoryVegetables Category = "Vegetables"
	CategoryHerbs      Category = "Herbs"
	CategoryGrains     Category = "Grains"
	CategoryLegumes    Category = "Legumes"
	CategoryNuts       Category = "Nuts"
	CategorySpices     Category = "Spices"
	CategoryDairy      Category = "Dairy"
	CategoryMeat       Category = "Meat"
	CategorySeafood    Category = "Seafood"
	CategoryBeverages  Category = "Beverages"
	CategorySnacks     Category = "Snacks"
	CategoryBakery     Category = "Bakery"
	CategoryFrozen     Category = "Frozen"
	CategoryCanned     Category = "Canned"
	CategoryOther      Category = "Other"
)

// Categories returns every category in declared priority order. Ties in
// keyword scoring are broken by this order, earlier entry wins.
func Categories() []Category {
	return []Category{
		CategoryFruits, CategoryVegetables, CategoryHerbs, CategoryGrains,
		CategoryLegumes, CategoryNuts, CategorySpices, CategoryDairy,
		CategoryMeat, CategorySeafood, CategoryBeverages, CategorySnacks,
		CategoryBakery, CategoryFrozen, CategoryCanned, CategoryOther,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ExtractionMethod records which tier produced the extracted fields.
type ExtractionMethod string

const (
	ExtractionRegex            ExtractionMethod = "regex"
	ExtractionLLM              ExtractionMethod = "llm"
	ExtractionLLMFallbackRegex ExtractionMethod = "llm_fallback_regex"
)

// ClassificationMethod records which tier produced the classification.
type ClassificationMethod string

const (
	ClassificationRuleBased         ClassificationMethod = "rule_based"
	ClassificationLLM               ClassificationMethod = "llm"
	ClassificationRuleBasedFallback ClassificationMethod = "rule_based_fallback"
)

// RawProductRecord is a single item from a supplier's daily batch file.
// Price arrives as a string or a number depending on the supplier, so it is
// kept untyped until extraction parses it. The record is never mutated.
type RawProductRecord struct {
	Name   string `json:"name"`
	Price  any    `json:"price"`
	Source string `json:"source"`
}

// ComplexityReason identifies which check flagged a name as complex.
type ComplexityReason string

const (
	ReasonWordCount   ComplexityReason = "word_count"
	ReasonLength      ComplexityReason = "length"
	ReasonSpecialChar ComplexityReason = "special_character"
	ReasonKeyword     ComplexityReason = "keyword"
)

// ComplexityVerdict is the routing decision for a product name. Reasons
// lists every check that fired and is kept for debugging only.
type ComplexityVerdict struct {
	Complex bool
	Reasons []ComplexityReason
}

// ExtractedFields holds the structured fields pulled out of a raw product
// name. Fields are independently optional: a missing Origin never
// invalidates a present Unit.
type ExtractedFields struct {
	ProductName      string           `json:"product_name"`
	Origin           *string          `json:"origin"`
	Brand            *string          `json:"brand"`
	Unit             string           `json:"unit"`
	Price            float64          `json:"price"`
	ExtractionMethod ExtractionMethod `json:"extraction_method"`
}

// ClassificationResult is the category decision for a product name.
// Category is always a member of the closed set and Confidence is in [0,1].
type ClassificationResult struct {
	Category   Category             `json:"category"`
	Confidence float64              `json:"confidence"`
	Method     ClassificationMethod `json:"method"`
}

// AnnotatedProduct is the fully processed unit handed to persistence:
// extracted fields, classification, and pass-through batch metadata.
type AnnotatedProduct struct {
	Date                 string               `json:"date" bson:"date"`
	Name                 string               `json:"name" bson:"name"`
	Origin               *string              `json:"origin" bson:"origin"`
	Brand                *string              `json:"brand" bson:"brand"`
	Unit                 string               `json:"unit" bson:"unit"`
	Price                float64              `json:"price" bson:"price"`
	Currency             string               `json:"currency" bson:"currency"`
	Source               string               `json:"source" bson:"source"`
	Category             Category             `json:"category" bson:"category"`
	Confidence           float64              `json:"confidence" bson:"confidence"`
	ClassificationMethod ClassificationMethod `json:"classification_method" bson:"classification_method"`
	ExtractionMethod     ExtractionMethod     `json:"extraction_method" bson:"extraction_method"`
	OriginalName         string               `json:"original_name" bson:"original_name"`
}
