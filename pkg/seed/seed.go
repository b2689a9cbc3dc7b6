// Package seed provides the sample dataset used on first run, after a wipe,
// and whenever stored state cannot be read.
package seed

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/pkg/freshness"
	"time"
)

const dateLayout = "2006-01-02"

// Bundle returns a fresh copy of the sample state anchored at now. Instants
// are truncated to milliseconds in UTC so the bundle survives a storage round trip.
func Bundle(now time.Time) domain.StateBundle {
	now = now.UTC().Truncate(time.Millisecond)
	recipes := Recipes()

	return domain.StateBundle{
		FoodItems:    FoodItems(now),
		Recipes:      recipes,
		MealPlans:    MealPlans(now, recipes),
		UserProfile:  UserProfile(now),
		ShoppingList: ShoppingList(now),
	}
}

func FoodItems(now time.Time) []entities.FoodItem {
	item := func(id, name string, qty float64, unit, category, location string, days int, calories float64) entities.FoodItem {
		exp := now.AddDate(0, 0, days)
		cal := calories
		return entities.FoodItem{
			ID:               id,
			Name:             name,
			Quantity:         qty,
			OriginalQuantity: qty,
			Unit:             unit,
			Category:         category,
			Calories:         &cal,
			ExpirationDate:   exp,
			AddedDate:        now.AddDate(0, 0, -2),
			Status:           string(freshness.Classify(exp, now)),
			Location:         location,
		}
	}

	return []entities.FoodItem{
		item("seed-food-1", "Milk", 1000, "ml", domain.CategoryDairy, domain.LocationFresh, 1, 42),
		item("seed-food-2", "Spinach", 200, "g", domain.CategoryVegetables, domain.LocationFresh, 3, 23),
		item("seed-food-3", "Eggs", 12, "pieces", domain.CategoryDairy, domain.LocationFresh, 14, 155),
		item("seed-food-4", "Chicken Breast", 500, "g", domain.CategoryMeat, domain.LocationFresh, 2, 165),
		item("seed-food-5", "Bananas", 6, "pieces", domain.CategoryFruits, domain.LocationPantry, 5, 89),
		item("seed-food-6", "Sourdough Bread", 1, "pieces", domain.CategoryBakery, domain.LocationPantry, 4, 289),
		item("seed-food-7", "Basmati Rice", 2, "kg", domain.CategoryPantry, domain.LocationPantry, 365, 130),
		item("seed-food-8", "Olive Oil", 1, "bottles", domain.CategoryOils, domain.LocationPantry, 540, 884),
		item("seed-food-9", "Greek Yogurt", 4, "cups", domain.CategoryDairy, domain.LocationFresh, -1, 59),
	}
}

func Recipes() []entities.Recipe {
	return []entities.Recipe{
		{
			ID:      "seed-recipe-1",
			Name:    "Spinach and Feta Omelette",
			Cuisine: "Mediterranean",
			Time:    "15 mins",
			Ingredients: []entities.RecipeIngredient{
				{Name: "Eggs", Amount: 3, Unit: "pieces"},
				{Name: "Spinach", Amount: 50, Unit: "g"},
				{Name: "Feta", Amount: 30, Unit: "g", Optional: true},
				{Name: "Olive Oil", Amount: 1, Unit: "tbsp"},
			},
			Instructions: []string{
				"Whisk the eggs with a pinch of salt.",
				"Wilt the spinach in olive oil over medium heat.",
				"Pour in the eggs, scatter the feta and fold once set.",
			},
			Difficulty: domain.DifficultyEasy,
			Servings:   1,
			Calories:   320,
			Tags:       []string{"Mediterranean", "breakfast", "vegetarian", "gluten free"},
		},
		{
			ID:      "seed-recipe-2",
			Name:    "Chicken Fried Rice",
			Cuisine: "Chinese",
			Time:    "35 mins",
			Ingredients: []entities.RecipeIngredient{
				{Name: "Basmati Rice", Amount: 300, Unit: "g"},
				{Name: "Chicken Breast", Amount: 250, Unit: "g"},
				{Name: "Eggs", Amount: 2, Unit: "pieces"},
				{Name: "Soy Sauce", Amount: 2, Unit: "tbsp"},
			},
			Instructions: []string{
				"Cook the rice and let it cool.",
				"Stir-fry diced chicken until golden.",
				"Add rice, scrambled eggs and soy sauce and toss over high heat.",
			},
			Difficulty: domain.DifficultyMedium,
			Servings:   3,
			Calories:   540,
			Tags:       []string{"Chinese", "main course", "dairy free"},
		},
		{
			ID:      "seed-recipe-3",
			Name:    "Banana Milk Smoothie",
			Cuisine: "American",
			Time:    "5 mins",
			Ingredients: []entities.RecipeIngredient{
				{Name: "Bananas", Amount: 2, Unit: "pieces"},
				{Name: "Milk", Amount: 250, Unit: "ml"},
				{Name: "Greek Yogurt", Amount: 0.5, Unit: "cups", Optional: true},
			},
			Instructions: []string{
				"Blend everything until smooth.",
			},
			Difficulty: domain.DifficultyEasy,
			Servings:   2,
			Calories:   210,
			Tags:       []string{"American", "beverage", "vegetarian"},
		},
		{
			ID:      "seed-recipe-4",
			Name:    "Slow Roasted Chicken with Bread Salad",
			Cuisine: "Italian",
			Time:    "90 mins",
			Ingredients: []entities.RecipeIngredient{
				{Name: "Chicken Breast", Amount: 500, Unit: "g"},
				{Name: "Sourdough Bread", Amount: 1, Unit: "pieces"},
				{Name: "Olive Oil", Amount: 3, Unit: "tbsp"},
			},
			Instructions: []string{
				"Season and roast the chicken at 160C for an hour.",
				"Toast torn bread in the pan juices.",
				"Slice the chicken and serve over the bread.",
			},
			Difficulty: domain.DifficultyHard,
			Servings:   4,
			Calories:   610,
			Tags:       []string{"Italian", "main course", "dinner"},
		},
	}
}

func MealPlans(now time.Time, recipes []entities.Recipe) []entities.MealPlan {
	pick := func(i int) *entities.Recipe {
		if i >= len(recipes) {
			return nil
		}
		r := recipes[i]
		return &r
	}

	return []entities.MealPlan{
		{
			ID:   "seed-plan-1",
			Date: now.Format(dateLayout),
			Meals: entities.Meals{
				Breakfast: pick(0),
				Dinner:    pick(1),
				Snacks:    []entities.Recipe{},
			},
			Notes: "Use up the spinach",
		},
		{
			ID:   "seed-plan-2",
			Date: now.AddDate(0, 0, 1).Format(dateLayout),
			Meals: entities.Meals{
				Lunch:  pick(3),
				Snacks: []entities.Recipe{*pick(2)},
			},
		},
	}
}

func UserProfile(now time.Time) entities.UserProfile {
	return entities.UserProfile{
		ID:              "seed-user",
		Name:            "Pantry Demo",
		Email:           "demo@pantry.local",
		DietPreferences: []string{},
		FavoriteCuisine: "Mediterranean",
		Allergies:       []string{},
		CalorieGoal:     2000,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func ShoppingList(now time.Time) []entities.ShoppingItem {
	return []entities.ShoppingItem{
		{ID: "seed-shopping-1", Name: "Feta", Quantity: 200, Unit: "g", Category: domain.CategoryDairy, AddedDate: now},
		{ID: "seed-shopping-2", Name: "Soy Sauce", Quantity: 1, Unit: "bottles", Category: domain.CategoryCondiments, AddedDate: now},
		{ID: "seed-shopping-3", Name: "Tomatoes", Quantity: 4, Unit: "pieces", Category: domain.CategoryVegetables, Completed: true, AddedDate: now},
	}
}
