package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pricepulse/backend/internal/domain"
)

// countries recognized as origin labels in supplier product names.
var countries = []string{
	"local", "philippines", "egypt", "saudi", "saudi arabia", "china",
	"tunisia", "south africa", "spain", "tanzania", "italy", "usa",
	"united states", "brazil", "india", "turkey", "lebanon", "jordan",
	"morocco", "france", "germany", "netherlands", "holland", "uk", "uae",
	"qatar", "bahrain", "kuwait", "oman", "yemen", "pakistan", "bangladesh",
	"thailand", "vietnam", "malaysia", "indonesia", "australia",
}

// originAliases maps matched origin spellings to their canonical form.
// Suppliers label domestic produce "Local"; transliterated and historical
// spellings are folded into the modern country name.
var originAliases = map[string]string{
	"local":         "Saudi",
	"saudi arabia":  "Saudi",
	"united states": "USA",
	"usa":           "USA",
	"uk":            "UK",
	"uae":           "UAE",
	"holland":       "Netherlands",
}

// unitKeywords are the measurement and packaging words recognized after a
// quantity (e.g. "500 g", "2 bunches").
var unitKeywords = []string{
	"kg", "g", "gram", "grams", "kilogram", "kilograms",
	"lb", "pound", "pounds", "lbs", "oz", "ounce", "ounces",
	"liter", "l", "litre", "liters", "litres", "ml",
	"pkt", "packet", "packets", "bunch", "bunches",
	"box", "boxes", "bag", "bags", "piece", "pieces", "pcs",
	"dozen", "dozens", "bundle", "bundles", "head", "heads",
	"bottle", "bottles", "can", "cans", "tin", "tins",
	"jar", "jars", "tube", "tubes", "roll", "rolls",
	"sheet", "sheets", "slice", "slices", "pack", "packs",
	"tray", "unit", "units",
}

// descriptiveWords are marketing and quality terms stripped from the
// product name after the other fields have been captured.
var descriptiveWords = []string{
	// Quality descriptors
	"farm", "fresh", "organic", "premium", "natural", "sustainable",
	"quality", "grade", "type", "variety", "deluxe", "luxury", "gourmet",
	"artisanal", "handcrafted", "homemade", "traditional", "authentic",
	"genuine", "pure",
	// Size descriptors
	"small", "medium", "large", "extra", "super", "mega", "jumbo",
	"mini", "baby", "big", "thermo",
	// State descriptors
	"ripe", "raw", "cooked", "frozen", "dried", "freshly", "locally",
	"grown", "harvested", "picked", "selected",
	// Color descriptors
	"red", "green", "yellow", "orange", "purple", "blue", "white",
	"black", "brown", "pink", "golden",
	// Common variety words
	"royal", "gala", "fuji", "granny", "smith", "honeycrisp",
	"delicious", "lady", "braeburn",
}

// knownBrands maps lowercase brand spellings seen in supplier feeds to
// their canonical display form.
var knownBrands = map[string]string{
	"almarai":    "Almarai",
	"al marai":   "Almarai",
	"nadec":      "NADEC",
	"al safi":    "Al Safi",
	"alsafi":     "Al Safi",
	"nada":       "Nada",
	"sadia":      "Sadia",
	"americana":  "Americana",
	"sunbulah":   "Sunbulah",
	"al watania": "Al Watania",
	"lurpak":     "Lurpak",
	"puck":       "Puck",
	"kiri":       "Kiri",
	"rainbow":    "Rainbow",
	"goody":      "Goody",
	"halwani":    "Halwani",
}

// alternation builds a regex alternation from keywords, longest first so
// "saudi arabia" wins over "saudi" and "grams" over "g".
func alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	escaped := make([]string, len(sorted))
	for i, w := range sorted {
		escaped[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(escaped, "|")
}

func brandKeys() []string {
	keys := make([]string, 0, len(knownBrands))
	for k := range knownBrands {
		keys = append(keys, k)
	}
	return keys
}

// Package-level compiled regex patterns for performance
var (
	countryRegex = regexp.MustCompile(`(?i)\b(` + alternation(countries) + `)\b`)
	unitRegex    = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:` + alternation(unitKeywords) + `)\b`)
	brandRegex   = regexp.MustCompile(`(?i)\b(` + alternation(brandKeys()) + `)\b`)

	// Compound packaging units are matched before the numeric unit rule.
	compoundUnitRegex = regexp.MustCompile(
		`(?i)\b(small box|medium box|large box|small bag|medium bag|large bag|` +
			`big bag|thermo box|tray pack|family pack)\b`)

	descriptiveRegex = regexp.MustCompile(`(?i)\b(` + alternation(descriptiveWords) + `)\b`)

	priceStripRegex = regexp.MustCompile(`[^\d.,]`)
	multiSpaceRegex = regexp.MustCompile(`\s+`)
	edgePunctRegex  = regexp.MustCompile(`^[\s,.;:\-]+|[\s,.;:\-]+$`)
	nonWordRegex    = regexp.MustCompile(`[^\w]`)
)

// defaultUnit is assumed when a name carries no unit information.
const defaultUnit = "1 piece"

// PatternExtractor pulls structured fields out of a raw product name using
// ordered per-field rules. It never fails: unmatched fields stay nil and
// the product name falls back to the cleaned raw name. Identical input
// always yields identical output.
type PatternExtractor struct{}

// NewPatternExtractor creates a pattern extractor. Patterns are compiled
// once at package load.
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

// Extract runs every field rule against the name. ProductName is derived
// last, after all captured substrings are known.
func (e *PatternExtractor) Extract(name string) domain.ExtractedFields {
	origin, originMatch := e.extractOrigin(name)
	brand, brandMatch := e.extractBrand(name)
	unit := e.extractUnit(name)
	productName := e.cleanProductName(name, originMatch, brandMatch, unit)

	return domain.ExtractedFields{
		ProductName: productName,
		Origin:      origin,
		Brand:       brand,
		Unit:        unit,
	}
}

// extractOrigin returns the canonical origin and the raw matched substring
// (needed later for product-name cleanup).
func (e *PatternExtractor) extractOrigin(name string) (*string, string) {
	match := countryRegex.FindString(name)
	if match == "" {
		return nil, ""
	}

	canonical := titleWords(match)
	if alias, ok := originAliases[strings.ToLower(match)]; ok {
		canonical = alias
	}
	return &canonical, match
}

// extractBrand returns the canonical brand and the raw matched substring.
func (e *PatternExtractor) extractBrand(name string) (*string, string) {
	match := brandRegex.FindString(name)
	if match == "" {
		return nil, ""
	}
	canonical := knownBrands[strings.ToLower(match)]
	return &canonical, match
}

// extractUnit tries compound packaging units first, then quantity+unit
// pairs. Names without unit information default to "1 piece".
func (e *PatternExtractor) extractUnit(name string) string {
	if match := compoundUnitRegex.FindString(name); match != "" {
		return strings.ToLower(strings.TrimSpace(match))
	}
	if match := unitRegex.FindString(name); match != "" {
		return strings.ToLower(strings.TrimSpace(match))
	}
	return defaultUnit
}

// cleanProductName removes every captured substring plus descriptive noise
// from the raw name, leaving the core product name.
func (e *PatternExtractor) cleanProductName(name, originMatch, brandMatch, unit string) string {
	cleaned := name

	if originMatch != "" {
		cleaned = removeSubstring(cleaned, originMatch)
	}
	if brandMatch != "" {
		cleaned = removeSubstring(cleaned, brandMatch)
	}
	if unit != "" && unit != defaultUnit {
		cleaned = removeSubstring(cleaned, unit)
	}

	cleaned = descriptiveRegex.ReplaceAllString(cleaned, "")
	cleaned = multiSpaceRegex.ReplaceAllString(cleaned, " ")
	cleaned = edgePunctRegex.ReplaceAllString(cleaned, "")

	// Cleaning can eat the whole name ("Fresh Local Premium" style inputs);
	// fall back to the most product-like word of the original.
	if len(cleaned) < 2 {
		cleaned = coreProductWord(name)
	}

	return cleaned
}

// removeSubstring deletes a captured substring case-insensitively.
func removeSubstring(s, sub string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(sub))
	return re.ReplaceAllString(s, "")
}

// coreProductWord scans the name backwards for the first word that is not
// a unit, descriptor, country, or brand. Falls back to the trimmed name.
func coreProductWord(name string) string {
	exclude := make(map[string]bool)
	for _, w := range unitKeywords {
		exclude[w] = true
	}
	for _, w := range descriptiveWords {
		exclude[w] = true
	}
	for _, w := range countries {
		exclude[w] = true
	}
	for w := range knownBrands {
		exclude[w] = true
	}

	words := strings.Fields(name)
	for i := len(words) - 1; i >= 0; i-- {
		cleaned := nonWordRegex.ReplaceAllString(strings.ToLower(words[i]), "")
		if len(cleaned) > 2 && !exclude[cleaned] {
			return words[i]
		}
	}
	return strings.TrimSpace(name)
}

// titleWords capitalizes each space-separated word.
func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ParsePrice parses a raw price value that may arrive as a number or as a
// noisy string ("12,50 SAR"). Unparseable prices resolve to 0.
func ParsePrice(raw any) float64 {
	switch p := raw.(type) {
	case nil:
		return 0
	case float64:
		return p
	case int:
		return float64(p)
	}

	s := priceStripRegex.ReplaceAllString(fmt.Sprintf("%v", raw), "")
	s = strings.ReplaceAll(s, ",", ".")
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return price
}
