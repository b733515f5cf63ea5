package usecase

import (
	"strings"

	"github.com/pricepulse/backend/internal/domain"
)

// WeightedKeyword is a recognizable term and its scoring weight within a
// category. Weights bias scoring toward distinctive terms; the length and
// position factors applied by the scorer handle the rest.
type WeightedKeyword struct {
	Term   string
	Weight float64
}

// CategoryKeywordIndex maps each category to its weighted keyword set.
// Built once at startup and read-only afterwards, so it is safe to share
// across concurrent workers without locking.
type CategoryKeywordIndex struct {
	order    []domain.Category
	keywords map[domain.Category][]WeightedKeyword
}

// NewCategoryKeywordIndex builds an immutable index from the given table.
// Categories keep the declared priority order; terms are case-folded once
// here so scoring never has to.
func NewCategoryKeywordIndex(table map[domain.Category][]WeightedKeyword) *CategoryKeywordIndex {
	idx := &CategoryKeywordIndex{
		keywords: make(map[domain.Category][]WeightedKeyword, len(table)),
	}

	for _, cat := range domain.Categories() {
		entries, ok := table[cat]
		if !ok {
			continue
		}
		idx.order = append(idx.order, cat)

		folded := make([]WeightedKeyword, 0, len(entries))
		for _, kw := range entries {
			weight := kw.Weight
			if weight <= 0 {
				weight = 1.0
			}
			folded = append(folded, WeightedKeyword{
				Term:   strings.ToLower(strings.TrimSpace(kw.Term)),
				Weight: weight,
			})
		}
		idx.keywords[cat] = folded
	}

	return idx
}

// Categories returns the indexed categories in priority order.
func (idx *CategoryKeywordIndex) Categories() []domain.Category {
	return idx.order
}

// Keywords returns the weighted keyword set for a category.
func (idx *CategoryKeywordIndex) Keywords(cat domain.Category) []WeightedKeyword {
	return idx.keywords[cat]
}

// terms is a helper for the default table: every term gets weight 1.0.
func terms(words ...string) []WeightedKeyword {
	entries := make([]WeightedKeyword, len(words))
	for i, w := range words {
		entries[i] = WeightedKeyword{Term: w, Weight: 1.0}
	}
	return entries
}

// DefaultKeywordIndex returns the built-in category keyword table. Terms
// include transliterated spellings seen in supplier feeds alongside the
// English names.
func DefaultKeywordIndex() *CategoryKeywordIndex {
	return NewCategoryKeywordIndex(map[domain.Category][]WeightedKeyword{
		domain.CategoryFruits: terms(
			"apple", "banana", "orange", "grape", "strawberry", "blueberry",
			"raspberry", "cherry", "peach", "pear", "plum", "mango",
			"pineapple", "watermelon", "lemon", "lime", "grapefruit",
			"pomegranate", "kiwi", "papaya", "avocado", "fig", "date",
			"coconut", "passion fruit", "dragon fruit", "lychee",
			"tamarind", "jujube", "loquat", "quince", "medlar",
			"gala", "fuji", "granny smith", "honeycrisp", "red delicious",
			"golden delicious", "pink lady", "braeburn", "jonagold",
			"valencia", "navel", "blood orange", "mandarin", "clementine",
			"tangerine",
		),
		domain.CategoryVegetables: terms(
			"tomato", "potato", "carrot", "onion", "garlic", "pepper",
			"cucumber", "lettuce", "spinach", "kale", "cabbage", "broccoli",
			"cauliflower", "asparagus", "celery", "radish", "beet", "turnip",
			"leek", "scallion", "ginger", "turmeric", "squash", "pumpkin",
			"eggplant", "corn", "green bean", "snap bean", "peas",
			"artichoke", "okra", "jicama", "brussels sprouts", "kohlrabi",
			"daikon", "horseradish", "wasabi", "bamboo shoots",
			"water chestnut", "zucchini", "molokhia",
		),
		domain.CategoryHerbs: terms(
			"basil", "oregano", "thyme", "rosemary", "sage", "parsley",
			"cilantro", "dill", "mint", "chives", "tarragon", "marjoram",
			"bay leaves", "curry leaves", "lemongrass", "lavender",
			"chamomile", "fennel seeds", "caraway", "anise", "chervil",
			"borage", "sorrel", "watercress", "arugula", "mizuna", "shiso",
		),
		domain.CategoryGrains: terms(
			"rice", "wheat", "barley", "oats", "quinoa", "buckwheat",
			"millet", "rye", "sorghum", "amaranth", "teff", "bulgur",
			"couscous", "farro", "spelt", "kamut", "freekeh", "wild rice",
			"brown rice", "white rice", "jasmine rice", "basmati rice",
			"arborio rice",
		),
		domain.CategoryLegumes: terms(
			"beans", "lentils", "chickpeas", "soybeans", "black beans",
			"kidney beans", "pinto beans", "navy beans", "lima beans",
			"fava beans", "split peas", "black-eyed peas", "adzuki beans",
			"mung beans", "cannellini beans", "garbanzo beans",
			"red lentils", "green lentils", "brown lentils",
			"yellow lentils", "black lentils", "beluga lentils", "foul",
		),
		domain.CategoryNuts: terms(
			"almonds", "walnuts", "pecans", "cashews", "pistachios",
			"hazelnuts", "macadamia", "brazil nuts", "pine nuts",
			"pumpkin seeds", "sunflower seeds", "sesame seeds",
			"chia seeds", "flax seeds", "hemp seeds", "peanuts",
			"chestnuts", "pili nuts", "candlenuts",
		),
		domain.CategorySpices: terms(
			"salt", "cinnamon", "nutmeg", "cloves", "cardamom", "vanilla",
			"cumin", "coriander", "paprika", "cayenne", "chili powder",
			"garlic powder", "onion powder", "allspice", "juniper berries",
			"saffron", "sumac", "zaatar", "harissa", "berbere",
			"ras el hanout", "garam masala", "curry powder", "black pepper",
		),
		domain.CategoryDairy: terms(
			"milk", "cheese", "yogurt", "butter", "cream", "sour cream",
			"buttermilk", "kefir", "laban", "labneh", "cottage cheese",
			"ricotta", "mozzarella", "cheddar", "swiss", "parmesan", "feta",
			"goat cheese", "cream cheese", "mascarpone", "gouda", "brie",
			"camembert", "blue cheese", "halloumi",
		),
		domain.CategoryMeat: terms(
			"beef", "pork", "lamb", "chicken", "turkey", "duck", "veal",
			"bacon", "ham", "sausage", "chorizo", "salami", "pepperoni",
			"prosciutto", "pancetta", "liver", "kidney", "tongue", "oxtail",
			"ribs", "chops", "steak", "roast", "mince", "kofta", "shawarma",
		),
		domain.CategorySeafood: terms(
			"fish", "salmon", "tuna", "cod", "halibut", "bass", "trout",
			"mackerel", "sardines", "anchovies", "shrimp", "prawns",
			"lobster", "crab", "scallops", "mussels", "clams", "oysters",
			"squid", "octopus", "cuttlefish", "eel", "caviar", "roe",
			"seaweed", "hamour", "najil",
		),
		domain.CategoryBeverages: terms(
			"juice", "soda", "water", "tea", "coffee", "smoothie", "shake",
			"lemonade", "iced tea", "energy drink", "sports drink",
			"coconut water", "kombucha", "karak", "qahwa",
		),
		domain.CategorySnacks: terms(
			"chips", "crackers", "popcorn", "pretzels", "trail mix",
			"granola", "candy", "chocolate", "gummies", "jerky",
			"dried fruit", "maamoul",
		),
		domain.CategoryBakery: terms(
			"bread", "rolls", "bagels", "croissants", "muffins", "scones",
			"cakes", "pies", "tarts", "pastries", "donuts", "cookies",
			"biscuits", "khubz", "samoon", "manakish",
		),
		domain.CategoryFrozen: terms(
			"frozen vegetables", "frozen fruits", "frozen meals",
			"ice cream", "frozen yogurt", "frozen pizza", "frozen burritos",
			"frozen waffles", "frozen berries",
		),
		domain.CategoryCanned: terms(
			"canned vegetables", "canned fruits", "canned beans",
			"canned tomatoes", "canned soup", "canned fish", "canned meat",
			"preserves", "jams", "jellies",
		),
	})
}
