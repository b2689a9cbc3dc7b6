package handlers

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/internal/api/presenters"
	"Go-Pantry-Tracker/internal/utils"
	"Go-Pantry-Tracker/pkg/persistence"
	"Go-Pantry-Tracker/pkg/recipe"
	"Go-Pantry-Tracker/pkg/storage"
	"Go-Pantry-Tracker/pkg/store"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	utils.InitValidator()

	recipes := recipe.NewRecipeService(recipe.NewRecipeRepository("http://127.0.0.1:0", "", nil))
	pantry := store.NewStore(
		persistence.NewGateway(storage.NewMemoryStorage()),
		recipes,
		store.WithClock(func() time.Time { return now }),
	)
	t.Cleanup(pantry.Close)
	require.NoError(t, pantry.Initialize(context.Background()))

	app := fiber.New()
	food := NewFoodHandler(pantry, utils.Validate)
	plans := NewMealPlanHandler(pantry, utils.Validate)
	shopping := NewShoppingHandler(pantry, utils.Validate)
	recipeRoutes := NewRecipeHandler(pantry, utils.Validate)
	state := NewStateHandler(pantry)

	app.Get("/food-items", food.GetFoodItems)
	app.Post("/food-items", food.AddFoodItem)
	app.Get("/food-items/:id", food.GetFoodItemDetails)
	app.Patch("/food-items/:id", food.UpdateFoodItem)
	app.Post("/food-items/:id/consume", food.ConsumeFoodItem)
	app.Post("/meal-plans", plans.AddMealPlan)
	app.Post("/shopping-list/:id/toggle", shopping.ToggleShoppingItem)
	app.Post("/recipes/personalized", recipeRoutes.FetchPersonalized)
	app.Post("/state/clear", state.ClearAllData)
	return app, pantry
}

type envelope struct {
	presenters.Response
	Data json.RawMessage `json:"data"`
}

func call(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	res, err := app.Test(req)
	require.NoError(t, err)

	var out envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res.StatusCode, out
}

func TestFoodItemEndpoints(t *testing.T) {
	app, pantry := newTestApp(t)

	status, res := call(t, app, fiber.MethodGet, "/food-items?location=pantry", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, res.Status)

	status, res = call(t, app, fiber.MethodPost, "/food-items", domain.FoodItemDraft{
		Name:           "Carrots",
		Quantity:       6,
		Unit:           "pieces",
		Category:       domain.CategoryVegetables,
		ExpirationDate: now.AddDate(0, 0, 10),
		Location:       domain.LocationFresh,
	})
	require.Equal(t, fiber.StatusCreated, status)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &created))
	assert.Equal(t, string(domain.StatusFresh), created.Status)

	_, ok := pantry.FoodItem(created.ID)
	assert.True(t, ok)

	status, _ = call(t, app, fiber.MethodPost, "/food-items", map[string]any{"name": "No unit"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = call(t, app, fiber.MethodGet, "/food-items/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = call(t, app, fiber.MethodPatch, "/food-items/missing", map[string]any{"name": "x"})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestConsumeEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	status, res := call(t, app, fiber.MethodPost, "/food-items/seed-food-1/consume", nil)
	require.Equal(t, fiber.StatusOK, status)

	var consumed domain.ConsumeResult
	require.NoError(t, json.Unmarshal(res.Data, &consumed))
	assert.False(t, consumed.Deleted)
	assert.InDelta(t, 900, consumed.Quantity, 1e-9)
	assert.Equal(t, "900", consumed.Display)
}

func TestMealPlanConflict(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := call(t, app, fiber.MethodPost, "/meal-plans", domain.MealPlanDraft{Date: "2024-04-01"})
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = call(t, app, fiber.MethodPost, "/meal-plans", domain.MealPlanDraft{Date: "2024-04-09"})
	assert.Equal(t, fiber.StatusCreated, status)

	status, _ = call(t, app, fiber.MethodPost, "/meal-plans", domain.MealPlanDraft{Date: "April 9th"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestToggleAndClearAll(t *testing.T) {
	app, pantry := newTestApp(t)

	status, _ := call(t, app, fiber.MethodPost, "/shopping-list/seed-shopping-1/toggle", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, pantry.CompletedShoppingItems(), 2)

	status, _ = call(t, app, fiber.MethodPost, "/state/clear", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, pantry.CompletedShoppingItems(), 1)
}

func TestFetchPersonalizedWithoutRemoteKey(t *testing.T) {
	app, pantry := newTestApp(t)
	before := len(pantry.Recipes())

	status, res := call(t, app, fiber.MethodPost, "/recipes/personalized", nil)
	require.Equal(t, fiber.StatusOK, status)

	var list domain.RecipeListResponse
	require.NoError(t, json.Unmarshal(res.Data, &list))
	assert.Empty(t, list.Recipes)
	assert.Len(t, pantry.Recipes(), before)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, statusFor(domain.ErrRecipeNotFound))
	assert.Equal(t, fiber.StatusConflict, statusFor(domain.ErrEmailAlreadyRegistered))
	assert.Equal(t, fiber.StatusTooManyRequests, statusFor(domain.ErrRemoteRateLimited))
	assert.Equal(t, fiber.StatusGatewayTimeout, statusFor(domain.ErrRemoteTimeout))
	assert.Equal(t, fiber.StatusServiceUnavailable, statusFor(domain.ErrStoreNotReady))
	assert.Equal(t, fiber.StatusBadRequest, statusFor(domain.ErrInvalidBarcode))
}
