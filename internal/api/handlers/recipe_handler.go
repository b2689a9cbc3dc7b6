package handlers

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/internal/api/presenters"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeStore interface {
		Recipes() []entities.Recipe
		RecipesByCuisine(cuisine string) []entities.Recipe
		RecipesByIngredients(names []string) []entities.Recipe
		RecipesLoading() bool
		AddRecipe(draft domain.RecipeDraft) (entities.Recipe, error)
		UpdateRecipe(id string, patch domain.RecipePatch) (entities.Recipe, error)
		DeleteRecipe(id string) error
		FetchPersonalizedRecipes(ctx context.Context) []entities.Recipe
		SearchRecipes(ctx context.Context, query string, filters domain.RecipeSearchFilters) []entities.Recipe
		ForceReloadRecipes(ctx context.Context) []entities.Recipe
		ClearRecipes()
		ResetRecipes()
	}

	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipesByIngredients(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		FetchPersonalized(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
		ForceReload(c *fiber.Ctx) error
		ClearRecipes(c *fiber.Ctx) error
		ResetRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		store     RecipeStore
		validator *validator.Validate
	}
)

func NewRecipeHandler(store RecipeStore, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		store:     store,
		validator: validator,
	}
}

func recipeList(recipes []entities.Recipe) domain.RecipeListResponse {
	return domain.RecipeListResponse{
		Recipes: recipes,
		Total:   len(recipes),
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	recipes := h.store.Recipes()
	if cuisine := c.Query("cuisine"); cuisine != "" {
		recipes = h.store.RecipesByCuisine(cuisine)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"total":   len(recipes),
		"loading": h.store.RecipesLoading(),
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipesByIngredients(c *fiber.Ctx) error {
	req := new(domain.RecipesByIngredientsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, recipeList(h.store.RecipesByIngredients(req.Ingredients)), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) AddRecipe(c *fiber.Ctx) error {
	req := new(domain.RecipeDraft)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveRecipe, err)
	}

	recipe, err := h.store.AddRecipe(*req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSaveRecipe, err)
	}

	return presenters.SuccessResponse(c, recipe, fiber.StatusCreated, domain.MessageSuccessSaveRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	req := new(domain.RecipePatch)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	recipe, err := h.store.UpdateRecipe(c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, recipe, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	if err := h.store.DeleteRecipe(c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

// FetchPersonalized appends suggestions for the current inventory and
// returns only the new recipes. Remote failures yield an empty list.
func (h *recipeHandler) FetchPersonalized(c *fiber.Ctx) error {
	fetched := h.store.FetchPersonalizedRecipes(c.UserContext())

	return presenters.SuccessResponse(c, recipeList(fetched), fiber.StatusOK, domain.MessageSuccessFetchRecipes)
}

func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	req := new(domain.SearchRecipesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	found := h.store.SearchRecipes(c.UserContext(), req.Query, req.Filters)

	return presenters.SuccessResponse(c, recipeList(found), fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *recipeHandler) ForceReload(c *fiber.Ctx) error {
	recipes := h.store.ForceReloadRecipes(c.UserContext())

	return presenters.SuccessResponse(c, recipeList(recipes), fiber.StatusOK, domain.MessageSuccessReloadRecipes)
}

func (h *recipeHandler) ClearRecipes(c *fiber.Ctx) error {
	h.store.ClearRecipes()

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearRecipes)
}

func (h *recipeHandler) ResetRecipes(c *fiber.Ctx) error {
	h.store.ResetRecipes()

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResetRecipes)
}
