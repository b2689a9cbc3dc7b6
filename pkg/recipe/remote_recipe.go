package recipe

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"fmt"
	"strconv"
	"strings"
)

type (
	remoteRecipe struct {
		ID                   int                   `json:"id"`
		Title                string                `json:"title"`
		Image                string                `json:"image"`
		ReadyInMinutes       int                   `json:"readyInMinutes"`
		Servings             int                   `json:"servings"`
		Cuisines             []string              `json:"cuisines"`
		DishTypes            []string              `json:"dishTypes"`
		Diets                []string              `json:"diets"`
		Instructions         string                `json:"instructions"`
		AnalyzedInstructions []remoteInstruction   `json:"analyzedInstructions"`
		ExtendedIngredients  []remoteIngredient    `json:"extendedIngredients"`
		UsedIngredients      []remoteIngredient    `json:"usedIngredients"`
		MissedIngredients    []remoteIngredient    `json:"missedIngredients"`
		Nutrition            *remoteNutritionBlock `json:"nutrition"`
	}

	remoteInstruction struct {
		Steps []struct {
			Number int    `json:"number"`
			Step   string `json:"step"`
		} `json:"steps"`
	}

	remoteIngredient struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	}

	remoteNutritionBlock struct {
		Nutrients []struct {
			Name   string  `json:"name"`
			Amount float64 `json:"amount"`
		} `json:"nutrients"`
	}
)

// Difficulty buckets a preparation time in minutes.
func Difficulty(readyInMinutes int) string {
	switch {
	case readyInMinutes <= 30:
		return domain.DifficultyEasy
	case readyInMinutes <= 60:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyHard
	}
}

func (r remoteRecipe) toRecipe() entities.Recipe {
	cuisine := defaultCuisine
	if len(r.Cuisines) > 0 {
		cuisine = r.Cuisines[0]
	}

	return entities.Recipe{
		ID:           strconv.Itoa(r.ID),
		Name:         r.Title,
		Cuisine:      cuisine,
		Time:         fmt.Sprintf("%d mins", r.ReadyInMinutes),
		Ingredients:  r.ingredients(),
		Instructions: r.steps(),
		Difficulty:   Difficulty(r.ReadyInMinutes),
		Servings:     r.Servings,
		Calories:     r.calories(),
		Tags:         union(r.Cuisines, r.DishTypes, r.Diets),
		ImageURL:     r.Image,
	}
}

func (r remoteRecipe) ingredients() []entities.RecipeIngredient {
	source := r.ExtendedIngredients
	if len(source) == 0 {
		source = make([]remoteIngredient, 0, len(r.UsedIngredients)+len(r.MissedIngredients))
		source = append(source, r.UsedIngredients...)
		source = append(source, r.MissedIngredients...)
	}

	ingredients := make([]entities.RecipeIngredient, 0, len(source))
	for _, ing := range source {
		ingredients = append(ingredients, entities.RecipeIngredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}
	return ingredients
}

func (r remoteRecipe) steps() []string {
	steps := []string{}
	for _, block := range r.AnalyzedInstructions {
		for _, s := range block.Steps {
			if text := strings.TrimSpace(s.Step); text != "" {
				steps = append(steps, text)
			}
		}
	}
	if len(steps) == 0 && strings.TrimSpace(r.Instructions) != "" {
		steps = append(steps, strings.TrimSpace(r.Instructions))
	}
	return steps
}

func (r remoteRecipe) calories() float64 {
	if r.Nutrition == nil {
		return 0
	}
	for _, n := range r.Nutrition.Nutrients {
		if strings.EqualFold(n.Name, "Calories") {
			return n.Amount
		}
	}
	return 0
}

// union concatenates lists keeping the first occurrence of each tag.
func union(lists ...[]string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, list := range lists {
		for _, tag := range list {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}
