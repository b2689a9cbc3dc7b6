package product

import (
	"Go-Pantry-Tracker/domain"
	"strings"
)

type categoryRule struct {
	category string
	keywords []string
}

// Rules are checked in order; meat and dairy come before the broad produce
// words so "chicken soup" does not land in Vegetables.
var categoryRules = []categoryRule{
	{domain.CategoryMeat, []string{"meat", "chicken", "beef", "pork", "poultr", "sausage", "ham", "turkey", "fish", "seafood", "salmon", "tuna"}},
	{domain.CategoryDairy, []string{"dairy", "dairies", "milk", "cheese", "yogurt", "yoghurt", "butter", "cream", "egg"}},
	{domain.CategoryBakery, []string{"bread", "bakery", "pastr", "cake", "biscuit", "croissant", "bagel"}},
	{domain.CategoryOils, []string{"oil", "fats"}},
	{domain.CategorySpices, []string{"spice", "herb", "pepper", "cinnamon", "paprika", "salt"}},
	{domain.CategoryCondiments, []string{"condiment", "sauce", "ketchup", "mustard", "mayonnaise", "dressing", "vinegar", "jam"}},
	{domain.CategoryFruits, []string{"fruit", "apple", "banana", "berr", "orange", "grape", "citrus"}},
	{domain.CategoryVegetables, []string{"vegetable", "salad", "spinach", "tomato", "carrot", "lettuce", "onion", "potato"}},
	{domain.CategoryPantry, []string{"cereal", "pasta", "rice", "flour", "legume", "bean", "canned", "snack", "sugar", "grain", "noodle"}},
}

var shelfLifeDays = map[string]int{
	domain.CategoryVegetables: 7,
	domain.CategoryFruits:     7,
	domain.CategoryMeat:       3,
	domain.CategoryDairy:      10,
	domain.CategoryBakery:     5,
	domain.CategoryPantry:     180,
	domain.CategoryCondiments: 90,
	domain.CategorySpices:     365,
	domain.CategoryOils:       365,
	domain.CategoryOther:      30,
}

// GuessCategory maps product metadata onto an inventory category. Category
// tags are preferred over the product name.
func GuessCategory(name, categories string, tags []string) string {
	sources := []string{strings.Join(tags, " "), categories, name}
	for _, source := range sources {
		source = strings.ToLower(source)
		if source == "" {
			continue
		}
		for _, rule := range categoryRules {
			for _, keyword := range rule.keywords {
				if strings.Contains(source, keyword) {
					return rule.category
				}
			}
		}
	}
	return domain.CategoryOther
}

func ShelfLifeDays(category string) int {
	if days, ok := shelfLifeDays[category]; ok {
		return days
	}
	return shelfLifeDays[domain.CategoryOther]
}

// DefaultLocation puts perishable categories in the fridge.
func DefaultLocation(category string) string {
	switch category {
	case domain.CategoryVegetables, domain.CategoryFruits, domain.CategoryMeat, domain.CategoryDairy:
		return domain.LocationFresh
	default:
		return domain.LocationPantry
	}
}
