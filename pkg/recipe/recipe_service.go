package recipe

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"
)

const (
	maxSuggestionIngredients = 5
	fallbackQuery            = "healthy"
	fallbackMaxTimeMinutes   = 45
	fallbackCount            = 5
	detailConcurrency        = 4
)

type (
	// RecipeService turns remote catalogue results into domain recipes. Every
	// method returns a non-nil slice; on failure the slice is empty and the
	// error says why.
	RecipeService interface {
		SearchByText(ctx context.Context, query string, filters domain.RecipeSearchFilters) ([]entities.Recipe, error)
		SearchByIngredients(ctx context.Context, names []string, ranking domain.IngredientRanking, ignorePantry bool, count int) ([]entities.Recipe, error)
		PersonalizedSuggestions(ctx context.Context, inventory []entities.FoodItem, profile entities.UserProfile) ([]entities.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
	}
}

func (s *recipeService) SearchByText(ctx context.Context, query string, filters domain.RecipeSearchFilters) ([]entities.Recipe, error) {
	recipes, err := s.recipeRepository.ComplexSearch(ctx, query, filters)
	if err != nil {
		log.Errorf("recipe: search %q: %v", query, err)
		return []entities.Recipe{}, err
	}
	return recipes, nil
}

// SearchByIngredients finds matches for names and then fetches the full
// recipe for each one. A failed detail call fails the whole search.
func (s *recipeService) SearchByIngredients(ctx context.Context, names []string, ranking domain.IngredientRanking, ignorePantry bool, count int) ([]entities.Recipe, error) {
	matches, err := s.recipeRepository.FindByIngredients(ctx, names, ranking, ignorePantry, count)
	if err != nil {
		log.Errorf("recipe: find by ingredients %v: %v", names, err)
		return []entities.Recipe{}, err
	}

	recipes := make([]entities.Recipe, len(matches))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(detailConcurrency)
	for i, match := range matches {
		i, match := i, match
		eg.Go(func() error {
			detail, err := s.recipeRepository.GetDetail(egCtx, match.ID)
			if err != nil {
				return err
			}
			if detail.ImageURL == "" {
				detail.ImageURL = match.Image
			}
			recipes[i] = detail
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Errorf("recipe: fetch details for %v: %v", names, err)
		return []entities.Recipe{}, err
	}

	return recipes, nil
}

// PersonalizedSuggestions searches by the names of items that need using up
// first, falling back to the whole inventory and then to a cuisine search.
// Results are filtered by the profile's diet preferences and allergies.
func (s *recipeService) PersonalizedSuggestions(ctx context.Context, inventory []entities.FoodItem, profile entities.UserProfile) ([]entities.Recipe, error) {
	names := SuggestionIngredients(inventory)

	var (
		recipes []entities.Recipe
		err     error
	)
	if len(names) == 0 {
		query := profile.FavoriteCuisine
		if query == "" {
			query = fallbackQuery
		}
		recipes, err = s.SearchByText(ctx, query, domain.RecipeSearchFilters{
			MaxTimeMinutes: fallbackMaxTimeMinutes,
			Count:          fallbackCount,
		})
	} else {
		if len(names) > maxSuggestionIngredients {
			names = names[:maxSuggestionIngredients]
		}
		recipes, err = s.SearchByIngredients(ctx, names, domain.RankMinimizeMissing, true, DefaultCount)
	}
	if err != nil {
		return []entities.Recipe{}, err
	}

	recipes = FilterByDiet(recipes, profile.DietPreferences)
	recipes = ExcludeAllergens(recipes, profile.Allergies)
	return recipes, nil
}

// SuggestionIngredients returns the names of expiring and watch items, or
// every item name when none qualify. The stored status is used as is.
func SuggestionIngredients(inventory []entities.FoodItem) []string {
	urgent := []string{}
	all := []string{}
	for _, item := range inventory {
		if item.Name == "" {
			continue
		}
		all = append(all, item.Name)
		if item.Status == string(domain.StatusExpiring) || item.Status == string(domain.StatusWatch) {
			urgent = append(urgent, item.Name)
		}
	}
	if len(urgent) > 0 {
		return urgent
	}
	return all
}

// FilterByDiet keeps recipes with a tag containing any preference. An empty
// preference list keeps everything.
func FilterByDiet(recipes []entities.Recipe, preferences []string) []entities.Recipe {
	prefs := lowerNonEmpty(preferences)
	if len(prefs) == 0 {
		return recipes
	}

	kept := []entities.Recipe{}
	for _, recipe := range recipes {
		if anyContains(recipe.Tags, prefs) {
			kept = append(kept, recipe)
		}
	}
	return kept
}

// ExcludeAllergens drops recipes with an ingredient name containing any allergy term.
func ExcludeAllergens(recipes []entities.Recipe, allergies []string) []entities.Recipe {
	terms := lowerNonEmpty(allergies)
	if len(terms) == 0 {
		return recipes
	}

	kept := []entities.Recipe{}
	for _, recipe := range recipes {
		names := make([]string, 0, len(recipe.Ingredients))
		for _, ing := range recipe.Ingredients {
			names = append(names, ing.Name)
		}
		if !anyContains(names, terms) {
			kept = append(kept, recipe)
		}
	}
	return kept
}

func anyContains(values, terms []string) bool {
	for _, value := range values {
		value = strings.ToLower(value)
		for _, term := range terms {
			if strings.Contains(value, term) {
				return true
			}
		}
	}
	return false
}

func lowerNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
