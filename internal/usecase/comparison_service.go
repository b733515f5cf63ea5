package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pricepulse/backend/internal/domain"
)

// ComparisonPeriod selects how far back price history is considered.
type ComparisonPeriod string

const (
	PeriodToday   ComparisonPeriod = "today"
	PeriodWeek    ComparisonPeriod = "week"
	PeriodMonth   ComparisonPeriod = "month"
	PeriodQuarter ComparisonPeriod = "quarter"
	PeriodYear    ComparisonPeriod = "year"
	PeriodAll     ComparisonPeriod = "all"
)

// ParseComparisonPeriod validates a period string from the API surface.
func ParseComparisonPeriod(s string) (ComparisonPeriod, error) {
	switch p := ComparisonPeriod(strings.ToLower(s)); p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear, PeriodAll:
		return p, nil
	default:
		return "", fmt.Errorf("invalid comparison period: %q", s)
	}
}

// sinceDate returns the inclusive lower date bound for the period, or ""
// for unbounded.
func (p ComparisonPeriod) sinceDate(now time.Time) string {
	switch p {
	case PeriodToday:
		return now.Format("2006-01-02")
	case PeriodWeek:
		return now.AddDate(0, 0, -7).Format("2006-01-02")
	case PeriodMonth:
		return now.AddDate(0, -1, 0).Format("2006-01-02")
	case PeriodQuarter:
		return now.AddDate(0, -3, 0).Format("2006-01-02")
	case PeriodYear:
		return now.AddDate(-1, 0, 0).Format("2006-01-02")
	default:
		return ""
	}
}

// SupplierPrice is one supplier's most recent price for a product.
type SupplierPrice struct {
	Supplier string  `json:"supplier"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
}

// PriceStatistics summarizes prices across suppliers.
type PriceStatistics struct {
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
	AvgPrice      float64 `json:"avg_price"`
	MedianPrice   float64 `json:"median_price"`
	VariancePct   float64 `json:"variance_pct"`
	StdDeviation  float64 `json:"std_deviation"`
	SupplierCount int     `json:"supplier_count"`
}

// ProductComparison is the full cross-supplier view of one product.
type ProductComparison struct {
	ProductName            string          `json:"product_name"`
	NormalizedName         string          `json:"normalized_name"`
	Unit                   string          `json:"unit"`
	Category               domain.Category `json:"category"`
	SupplierPrices         []SupplierPrice `json:"supplier_prices"`
	Statistics             PriceStatistics `json:"statistics"`
	BestPriceSupplier      string          `json:"best_price_supplier"`
	WorstPriceSupplier     string          `json:"worst_price_supplier"`
	PotentialSavingsPct    float64         `json:"potential_savings_pct"`
	PotentialSavingsAmount float64         `json:"potential_savings_amount"`
}

// comparisonCacheTTL keeps comparison responses briefly; supplier data only
// changes when a new batch lands.
const comparisonCacheTTL = 5 * time.Minute

// ComparisonService compares a product's prices across suppliers using
// stored annotated products.
type ComparisonService struct {
	repo  domain.ProductRepository
	cache domain.CacheRepository
	now   func() time.Time
}

// NewComparisonService creates a comparison service. The cache is optional.
func NewComparisonService(repo domain.ProductRepository, cache domain.CacheRepository) *ComparisonService {
	return &ComparisonService{
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
}

// NormalizeProductName builds the cross-supplier matching key from a
// product name and its unit: lowercased, noise prefixes stripped, unit
// collapsed.
func NormalizeProductName(name, unit string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, prefix := range []string{"fresh ", "organic ", "premium ", "local ", "imported "} {
		normalized = strings.ReplaceAll(normalized, prefix, "")
	}
	unitKey := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(unit)), " ", "")
	return normalized + "_" + unitKey
}

// GetProductComparison compares the latest price per supplier for a product
// over the given period.
func (s *ComparisonService) GetProductComparison(ctx context.Context, productName string, period ComparisonPeriod) (*ProductComparison, error) {
	cacheKey := fmt.Sprintf("comparison:%s:%s", strings.ToLower(productName), period)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			if comparison, ok := cached.(*ProductComparison); ok {
				return comparison, nil
			}
		}
	}

	since := period.sinceDate(s.now())
	docs, err := s.repo.FindByProductSince(ctx, productName, since)
	if err != nil {
		return nil, fmt.Errorf("comparison lookup failed: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrProductNotFound
	}

	// Keep the most recent record per supplier
	latest := make(map[string]domain.AnnotatedProduct)
	for _, doc := range docs {
		existing, ok := latest[doc.Source]
		if !ok || doc.Date > existing.Date {
			latest[doc.Source] = doc
		}
	}

	prices := make([]SupplierPrice, 0, len(latest))
	for supplier, doc := range latest {
		prices = append(prices, SupplierPrice{
			Supplier: supplier,
			Price:    doc.Price,
			Currency: doc.Currency,
			Date:     doc.Date,
		})
	}
	sort.Slice(prices, func(i, j int) bool { return prices[i].Price < prices[j].Price })

	stats := computeStatistics(prices)
	best := prices[0]
	worst := prices[len(prices)-1]

	savingsAmount := worst.Price - best.Price
	savingsPct := 0.0
	if worst.Price > 0 {
		savingsPct = savingsAmount / worst.Price * 100
	}

	sample := latest[best.Supplier]
	comparison := &ProductComparison{
		ProductName:            sample.Name,
		NormalizedName:         NormalizeProductName(sample.Name, sample.Unit),
		Unit:                   sample.Unit,
		Category:               sample.Category,
		SupplierPrices:         prices,
		Statistics:             stats,
		BestPriceSupplier:      best.Supplier,
		WorstPriceSupplier:     worst.Supplier,
		PotentialSavingsPct:    savingsPct,
		PotentialSavingsAmount: savingsAmount,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, comparison, comparisonCacheTTL); err != nil {
			log.Warnf("[COMPARE] failed to cache comparison for %q: %v", productName, err)
		}
	}

	return comparison, nil
}

// computeStatistics expects prices sorted ascending.
func computeStatistics(prices []SupplierPrice) PriceStatistics {
	n := len(prices)
	values := make([]float64, n)
	sum := 0.0
	for i, p := range prices {
		values[i] = p.Price
		sum += p.Price
	}

	avg := sum / float64(n)

	median := values[n/2]
	if n%2 == 0 {
		median = (values[n/2-1] + values[n/2]) / 2
	}

	variance := 0.0
	for _, v := range values {
		variance += (v - avg) * (v - avg)
	}
	stdDev := math.Sqrt(variance / float64(n))

	spreadPct := 0.0
	if values[0] > 0 {
		spreadPct = (values[n-1] - values[0]) / values[0] * 100
	}

	return PriceStatistics{
		MinPrice:      values[0],
		MaxPrice:      values[n-1],
		AvgPrice:      avg,
		MedianPrice:   median,
		VariancePct:   spreadPct,
		StdDeviation:  stdDev,
		SupplierCount: n,
	}
}
