package domain

import (
	"errors"

	"Go-Pantry-Tracker/entities"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// IngredientRanking mirrors the remote findByIngredients ranking switch.
type IngredientRanking int

const (
	RankMaximizeUsed    IngredientRanking = 1
	RankMinimizeMissing IngredientRanking = 2
)

var (
	MessageSuccessGetRecipes    = "success get recipes"
	MessageSuccessSaveRecipe    = "recipe saved successfully"
	MessageSuccessUpdateRecipe  = "recipe updated successfully"
	MessageSuccessDeleteRecipe  = "recipe deleted successfully"
	MessageSuccessFetchRecipes  = "personalized recipes fetched"
	MessageSuccessSearchRecipes = "recipe search completed"
	MessageSuccessClearRecipes  = "recipes cleared"
	MessageSuccessReloadRecipes = "recipes reloaded"
	MessageSuccessResetRecipes  = "recipes reset"

	MessageFailedGetRecipes    = "failed to get recipes"
	MessageFailedSaveRecipe    = "failed to save recipe"
	MessageFailedUpdateRecipe  = "failed to update recipe"
	MessageFailedDeleteRecipe  = "failed to delete recipe"
	MessageFailedSearchRecipes = "failed to search recipes"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrInvalidRecipePatch  = errors.New("invalid recipe patch")
	ErrInvalidRecipe       = errors.New("invalid recipe")
	ErrRemoteTimeout       = errors.New("remote api timed out")
	ErrRemoteRateLimited   = errors.New("remote api rate limit reached")
	ErrRemoteNotFound      = errors.New("remote api resource not found")
	ErrRemoteMalformed     = errors.New("remote api returned a malformed response")
	ErrRemoteUnavailable   = errors.New("remote api unavailable")
	ErrRemoteNotConfigured = errors.New("remote api key missing or rejected")
)

type (
	RecipeDraft struct {
		Name         string            `json:"name" validate:"required"`
		Cuisine      string            `json:"cuisine"`
		Time         string            `json:"time"`
		Ingredients  []IngredientDraft `json:"ingredients" validate:"dive"`
		Instructions []string          `json:"instructions"`
		Difficulty   string            `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Servings     int               `json:"servings" validate:"gte=0"`
		Calories     float64           `json:"calories" validate:"gte=0"`
		Tags         []string          `json:"tags"`
		ImageURL     string            `json:"image_url,omitempty" validate:"omitempty,url"`
	}

	IngredientDraft struct {
		Name     string  `json:"name" validate:"required"`
		Amount   float64 `json:"amount" validate:"gte=0"`
		Unit     string  `json:"unit"`
		Optional bool    `json:"optional,omitempty"`
	}

	RecipePatch struct {
		Name         *string            `json:"name,omitempty" validate:"omitempty,min=1"`
		Cuisine      *string            `json:"cuisine,omitempty"`
		Time         *string            `json:"time,omitempty"`
		Ingredients  *[]IngredientDraft `json:"ingredients,omitempty" validate:"omitempty,dive"`
		Instructions *[]string          `json:"instructions,omitempty"`
		Difficulty   *string            `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
		Servings     *int               `json:"servings,omitempty" validate:"omitempty,gte=0"`
		Calories     *float64           `json:"calories,omitempty" validate:"omitempty,gte=0"`
		Tags         *[]string          `json:"tags,omitempty"`
		ImageURL     *string            `json:"image_url,omitempty"`
	}

	// RecipeSearchFilters narrows a free-text search. Zero values are not sent.
	RecipeSearchFilters struct {
		Cuisine        string `json:"cuisine,omitempty" query:"cuisine"`
		Diet           string `json:"diet,omitempty" query:"diet"`
		Intolerances   string `json:"intolerances,omitempty" query:"intolerances"`
		MaxTimeMinutes int    `json:"max_time_minutes,omitempty" query:"max_time" validate:"gte=0"`
		Count          int    `json:"count,omitempty" query:"count" validate:"gte=0,lte=100"`
	}

	SearchRecipesRequest struct {
		Query   string              `json:"query"`
		Filters RecipeSearchFilters `json:"filters"`
	}

	RecipesByIngredientsRequest struct {
		Ingredients []string `json:"ingredients" validate:"required,min=1"`
	}

	RecipeListResponse struct {
		Recipes []entities.Recipe `json:"recipes"`
		Total   int               `json:"total"`
	}
)
