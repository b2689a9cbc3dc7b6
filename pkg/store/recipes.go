package store

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/internal/utils"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

func (s *Store) Recipes() []entities.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nonNil(slices.Clone(s.bundle.Recipes))
}

// RecipesByCuisine matches the cuisine case-insensitively.
func (s *Store) RecipesByCuisine(cuisine string) []entities.Recipe {
	return s.filterRecipes(func(r entities.Recipe) bool {
		return strings.EqualFold(r.Cuisine, cuisine)
	})
}

// RecipesByIngredients returns recipes with an ingredient whose name contains
// any of names, ignoring case.
func (s *Store) RecipesByIngredients(names []string) []entities.Recipe {
	terms := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			terms = append(terms, name)
		}
	}
	if len(terms) == 0 {
		return []entities.Recipe{}
	}

	return s.filterRecipes(func(r entities.Recipe) bool {
		for _, ing := range r.Ingredients {
			ingName := strings.ToLower(ing.Name)
			for _, term := range terms {
				if strings.Contains(ingName, term) {
					return true
				}
			}
		}
		return false
	})
}

func (s *Store) filterRecipes(keep func(entities.Recipe) bool) []entities.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []entities.Recipe{}
	for _, r := range s.bundle.Recipes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) AddRecipe(draft domain.RecipeDraft) (entities.Recipe, error) {
	if err := utils.ValidateStruct(draft); err != nil {
		log.Warnf("store: rejected recipe %q: %v", draft.Name, err)
		return entities.Recipe{}, fmt.Errorf("%w: %v", domain.ErrInvalidRecipe, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return entities.Recipe{}, err
	}

	r := entities.Recipe{
		ID:           s.newID(),
		Name:         draft.Name,
		Cuisine:      draft.Cuisine,
		Time:         draft.Time,
		Ingredients:  toIngredients(draft.Ingredients),
		Instructions: nonNil(slices.Clone(draft.Instructions)),
		Difficulty:   draft.Difficulty,
		Servings:     draft.Servings,
		Calories:     draft.Calories,
		Tags:         nonNil(slices.Clone(draft.Tags)),
		ImageURL:     draft.ImageURL,
	}

	s.bundle.Recipes = append(slices.Clip(s.bundle.Recipes), r)
	s.markDirty(domain.PartitionRecipes)
	return r, nil
}

func (s *Store) UpdateRecipe(id string, patch domain.RecipePatch) (entities.Recipe, error) {
	if err := utils.ValidateStruct(patch); err != nil {
		log.Warnf("store: rejected patch for recipe %s: %v", id, err)
		return entities.Recipe{}, fmt.Errorf("%w: %v", domain.ErrInvalidRecipePatch, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return entities.Recipe{}, err
	}

	i := indexOf(s.bundle.Recipes, id, recipeID)
	if i < 0 {
		return entities.Recipe{}, domain.ErrRecipeNotFound
	}

	r := s.bundle.Recipes[i]
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Cuisine != nil {
		r.Cuisine = *patch.Cuisine
	}
	if patch.Time != nil {
		r.Time = *patch.Time
	}
	if patch.Ingredients != nil {
		r.Ingredients = toIngredients(*patch.Ingredients)
	}
	if patch.Instructions != nil {
		r.Instructions = nonNil(slices.Clone(*patch.Instructions))
	}
	if patch.Difficulty != nil {
		r.Difficulty = *patch.Difficulty
	}
	if patch.Servings != nil {
		r.Servings = *patch.Servings
	}
	if patch.Calories != nil {
		r.Calories = *patch.Calories
	}
	if patch.Tags != nil {
		r.Tags = nonNil(slices.Clone(*patch.Tags))
	}
	if patch.ImageURL != nil {
		r.ImageURL = *patch.ImageURL
	}

	recipes := slices.Clone(s.bundle.Recipes)
	recipes[i] = r
	s.bundle.Recipes = recipes
	s.markDirty(domain.PartitionRecipes)
	return r, nil
}

func (s *Store) DeleteRecipe(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}

	i := indexOf(s.bundle.Recipes, id, recipeID)
	if i < 0 {
		return domain.ErrRecipeNotFound
	}
	s.bundle.Recipes = removeAt(s.bundle.Recipes, i)
	s.markDirty(domain.PartitionRecipes)
	return nil
}

// FetchPersonalizedRecipes appends suggestions for the current inventory and
// profile to the recipe collection and returns only the new ones. Concurrent
// fetches are not serialized; their results land in completion order.
func (s *Store) FetchPersonalizedRecipes(ctx context.Context) []entities.Recipe {
	inventory, profile, ok := s.beginFetch(false)
	if !ok {
		return []entities.Recipe{}
	}

	fetched, err := s.recipes.PersonalizedSuggestions(ctx, inventory, profile)
	if err != nil {
		log.Errorf("store: personalized recipes: %v", err)
	}
	return s.endFetch(fetched, false)
}

// SearchRecipes appends the matches for query to the recipe collection and
// returns them.
func (s *Store) SearchRecipes(ctx context.Context, query string, filters domain.RecipeSearchFilters) []entities.Recipe {
	if _, _, ok := s.beginFetch(false); !ok {
		return []entities.Recipe{}
	}

	found, err := s.recipes.SearchByText(ctx, query, filters)
	if err != nil {
		log.Errorf("store: search recipes %q: %v", query, err)
	}
	return s.endFetch(found, false)
}

// ForceReloadRecipes empties the collection and its partition, then replaces
// the collection with a fresh personalized fetch.
func (s *Store) ForceReloadRecipes(ctx context.Context) []entities.Recipe {
	inventory, profile, ok := s.beginFetch(true)
	if !ok {
		return []entities.Recipe{}
	}

	fetched, err := s.recipes.PersonalizedSuggestions(ctx, inventory, profile)
	if err != nil {
		log.Errorf("store: reload recipes: %v", err)
	}
	return s.endFetch(fetched, true)
}

// ClearRecipes empties the recipe collection and removes its partition.
func (s *Store) ClearRecipes() {
	s.dropRecipes("clear")
}

// ResetRecipes is ClearRecipes without a follow-up fetch, used when the stored
// recipes are suspected to be stale.
func (s *Store) ResetRecipes() {
	s.dropRecipes("reset")
}

func (s *Store) dropRecipes(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutable() != nil {
		return
	}

	s.bundle.Recipes = []entities.Recipe{}
	s.persister.remove(domain.PartitionRecipes)
	log.Infof("store: recipes %s", reason)
}

// beginFetch raises the loading flag and captures the fetch inputs. With
// reset set it also empties the recipes first.
func (s *Store) beginFetch(reset bool) ([]entities.FoodItem, entities.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutable() != nil {
		log.Warnf("store: recipe fetch before initialization")
		return nil, entities.UserProfile{}, false
	}

	if reset {
		s.bundle.Recipes = []entities.Recipe{}
		s.persister.remove(domain.PartitionRecipes)
	}
	s.recipeFetches++
	return slices.Clone(s.bundle.FoodItems), s.bundle.UserProfile, true
}

func (s *Store) endFetch(fetched []entities.Recipe, replace bool) []entities.Recipe {
	fetched = nonNil(fetched)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipeFetches--

	if replace {
		s.bundle.Recipes = slices.Clone(fetched)
	} else {
		s.bundle.Recipes = append(slices.Clip(s.bundle.Recipes), fetched...)
	}
	s.markDirty(domain.PartitionRecipes)
	return fetched
}

func toIngredients(drafts []domain.IngredientDraft) []entities.RecipeIngredient {
	out := make([]entities.RecipeIngredient, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, entities.RecipeIngredient{
			Name:     d.Name,
			Amount:   d.Amount,
			Unit:     d.Unit,
			Optional: d.Optional,
		})
	}
	return out
}
