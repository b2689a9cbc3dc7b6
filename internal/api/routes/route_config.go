package routes

import (
	"Go-Pantry-Tracker/internal/api/handlers"
	"Go-Pantry-Tracker/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	AuthHandler     handlers.AuthHandler
	FoodHandler     handlers.FoodHandler
	ProductHandler  handlers.ProductHandler
	RecipeHandler   handlers.RecipeHandler
	MealPlanHandler handlers.MealPlanHandler
	ProfileHandler  handlers.ProfileHandler
	ShoppingHandler handlers.ShoppingHandler
	StateHandler    handlers.StateHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.FoodItems()
	c.Products()
	c.Recipes()
	c.MealPlans()
	c.Profile()
	c.ShoppingList()
	c.State()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/sign-up", c.AuthHandler.SignUp)
		auth.Post("/sign-in", c.AuthHandler.SignIn)
		auth.Post("/reset-password", c.AuthHandler.ResetPassword)
		auth.Post("/new-password", c.AuthHandler.NewPassword)
		auth.Post("/sign-out", c.Middleware.AuthMiddleware(), c.AuthHandler.SignOut)
		auth.Get("/me", c.Middleware.AuthMiddleware(), c.AuthHandler.Me)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware())
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)
	foodItems.Post("/refresh-status", c.FoodHandler.RefreshStatuses)
	foodItems.Post("/barcode/:code", c.ProductHandler.AddScannedProduct)

	// Basic CRUD operations
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Patch("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.DeleteFoodItem)
	foodItems.Post("/:id/consume", c.FoodHandler.ConsumeFoodItem)
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware())
	products.Get("", c.ProductHandler.SearchProducts)
	products.Get("/barcode/:code", c.ProductHandler.LookupBarcode)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware())
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", c.RecipeHandler.AddRecipe)
	recipes.Delete("", c.RecipeHandler.ClearRecipes)
	recipes.Post("/by-ingredients", c.RecipeHandler.GetRecipesByIngredients)
	recipes.Post("/personalized", c.RecipeHandler.FetchPersonalized)
	recipes.Post("/search", c.RecipeHandler.SearchRecipes)
	recipes.Post("/reload", c.RecipeHandler.ForceReload)
	recipes.Post("/reset", c.RecipeHandler.ResetRecipes)
	recipes.Patch("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) MealPlans() {
	mealPlans := c.App.Group("/api/v1/meal-plans", c.Middleware.AuthMiddleware())
	mealPlans.Get("", c.MealPlanHandler.GetMealPlans)
	mealPlans.Post("", c.MealPlanHandler.AddMealPlan)
	mealPlans.Get("/date/:date", c.MealPlanHandler.GetMealPlanByDate)
	mealPlans.Patch("/:id", c.MealPlanHandler.UpdateMealPlan)
	mealPlans.Delete("/:id", c.MealPlanHandler.DeleteMealPlan)
}

func (c *Config) Profile() {
	profile := c.App.Group("/api/v1/profile", c.Middleware.AuthMiddleware())
	profile.Get("", c.ProfileHandler.GetProfile)
	profile.Patch("", c.ProfileHandler.UpdateProfile)
}

func (c *Config) ShoppingList() {
	shopping := c.App.Group("/api/v1/shopping-list", c.Middleware.AuthMiddleware())
	shopping.Get("", c.ShoppingHandler.GetShoppingList)
	shopping.Post("", c.ShoppingHandler.AddShoppingItem)
	shopping.Post("/generate", c.ShoppingHandler.GenerateShoppingList)
	shopping.Patch("/:id", c.ShoppingHandler.UpdateShoppingItem)
	shopping.Post("/:id/toggle", c.ShoppingHandler.ToggleShoppingItem)
	shopping.Delete("/:id", c.ShoppingHandler.DeleteShoppingItem)
}

func (c *Config) State() {
	state := c.App.Group("/api/v1/state", c.Middleware.AuthMiddleware())
	state.Get("", c.StateHandler.GetState)
	state.Get("/export", c.StateHandler.ExportState)
	state.Post("/flush", c.StateHandler.Flush)
	state.Post("/clear", c.StateHandler.ClearAllData)
}
