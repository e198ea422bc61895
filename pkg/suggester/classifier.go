package suggester

import (
	"strings"

	"grocery-ai-be/internal/entity"
)

// Defaults applied when no keyword rule matches.
const (
	DefaultUnit     = "pcs"
	DefaultCategory = entity.CategoryOther
)

type keywordRule struct {
	keywords []string
	category entity.ItemCategory
}

// Ordered containment rules, first match wins.
var categoryRules = []keywordRule{
	{
		keywords: []string{"apple", "banana", "orange", "lettuce", "tomato", "onion", "garlic", "potato", "carrot", "broccoli", "spinach", "pepper", "cucumber", "avocado", "lemon", "lime", "berry", "berries", "grape", "mushroom", "herb", "cilantro", "parsley"},
		category: entity.CategoryProduce,
	},
	{
		keywords: []string{"milk", "cheese", "yogurt", "butter", "cream", "egg"},
		category: entity.CategoryDairy,
	},
	{
		keywords: []string{"chicken", "beef", "pork", "turkey", "fish", "salmon", "tuna", "shrimp", "bacon", "sausage", "ham", "steak"},
		category: entity.CategoryMeat,
	},
	{
		keywords: []string{"juice", "coffee", "tea", "soda", "water", "wine", "beer", "kombucha"},
		category: entity.CategoryBeverages,
	},
	{
		keywords: []string{"chips", "cookie", "cracker", "chocolate", "candy", "popcorn", "pretzel", "granola bar", "nuts"},
		category: entity.CategorySnacks,
	},
	{
		keywords: []string{"rice", "pasta", "flour", "sugar", "salt", "oil", "vinegar", "sauce", "bread", "cereal", "beans", "lentil", "spice", "honey", "oats", "noodle", "stock", "broth", "can"},
		category: entity.CategoryPantry,
	},
}

type unitRule struct {
	keywords []string
	unit     string
}

var unitRules = []unitRule{
	{keywords: []string{"milk", "juice", "water", "oil", "vinegar", "wine", "beer", "soda", "broth", "stock"}, unit: "l"},
	{keywords: []string{"rice", "flour", "sugar", "pasta", "potato", "onion", "beans", "oats", "chicken", "beef", "pork", "fish", "salmon"}, unit: "kg"},
	{keywords: []string{"cheese", "butter", "bacon", "ham", "coffee", "tea", "spice", "herb", "nuts"}, unit: "g"},
	{keywords: []string{"egg", "apple", "banana", "orange", "lemon", "lime", "avocado"}, unit: "pcs"},
	{keywords: []string{"bread", "cereal", "chips", "cracker", "yogurt", "cookie"}, unit: "pack"},
}

// GuessCategory maps an item name to a category by keyword containment.
func GuessCategory(name string) entity.ItemCategory {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return DefaultCategory
}

// GuessUnit maps an item name to a unit of measure by keyword containment.
func GuessUnit(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range unitRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.unit
			}
		}
	}
	return DefaultUnit
}
