package config

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/internal/api/handlers"
	"Go-Pantry-Tracker/internal/api/routes"
	"Go-Pantry-Tracker/internal/middleware"
	"Go-Pantry-Tracker/internal/utils"
	"Go-Pantry-Tracker/internal/utils/mailing"
	"Go-Pantry-Tracker/pkg/auth"
	"Go-Pantry-Tracker/pkg/jwt"
	"Go-Pantry-Tracker/pkg/persistence"
	"Go-Pantry-Tracker/pkg/product"
	"Go-Pantry-Tracker/pkg/recipe"
	"Go-Pantry-Tracker/pkg/remote"
	"Go-Pantry-Tracker/pkg/storage"
	"Go-Pantry-Tracker/pkg/store"
	"context"
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// NewApp wires the HTTP surface around a single store. db may be nil unless
// STORAGE_DRIVER is postgres. The caller owns the returned store and must
// Close it on shutdown.
func NewApp(ctx context.Context, db *gorm.DB) (*fiber.App, *store.Store, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	kv, err := NewStorage(ctx, utils.GetConfig("STORAGE_DRIVER"), db)
	if err != nil {
		return nil, nil, err
	}
	httpClient := remote.NewHTTPClient()
	mailer := mailing.NewMailer(mailing.LoadMailConfig())

	// Repository
	userRepository := auth.NewMemoryUserRepository()
	if db != nil {
		userRepository = auth.NewUserRepository(db)
	}
	recipeRepository := recipe.NewRecipeRepository(utils.GetConfig("RECIPE_API_URL"), utils.GetConfig("RECIPE_API_KEY"), httpClient)
	productRepository := product.NewProductRepository(utils.GetConfig("PRODUCT_API_URL"), httpClient)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	authService := auth.NewAuthService(userRepository, jwtService, mailer, utils.GetConfig("APP_URL"))
	recipeService := recipe.NewRecipeService(recipeRepository)
	productService := product.NewProductService(productRepository)
	pantry := store.NewStore(persistence.NewGateway(kv), recipeService)

	authService.OnAuthStateChange(func(event domain.AuthEvent) {
		if event.Type != domain.AuthEventSignedIn {
			return
		}
		go func() {
			if err := pantry.Initialize(context.Background()); err != nil {
				log.Errorf("config: initialize store after sign-in: %v", err)
			}
		}()
	})

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator)
	foodHandler := handlers.NewFoodHandler(pantry, validator)
	productHandler := handlers.NewProductHandler(productService, pantry, validator)
	recipeHandler := handlers.NewRecipeHandler(pantry, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(pantry, validator)
	profileHandler := handlers.NewProfileHandler(pantry, validator)
	shoppingHandler := handlers.NewShoppingHandler(pantry, validator)
	stateHandler := handlers.NewStateHandler(pantry)

	// routes
	routesConfig := routes.Config{
		App:             app,
		AuthHandler:     authHandler,
		FoodHandler:     foodHandler,
		ProductHandler:  productHandler,
		RecipeHandler:   recipeHandler,
		MealPlanHandler: mealPlanHandler,
		ProfileHandler:  profileHandler,
		ShoppingHandler: shoppingHandler,
		StateHandler:    stateHandler,
		Middleware:      middleware.NewMiddleware(authService, pantry),
	}
	routesConfig.Setup()
	return app, pantry, nil
}

// NewStorage selects the key-value backend named by driver.
func NewStorage(ctx context.Context, driver string, db *gorm.DB) (storage.KeyValueStorage, error) {
	switch driver {
	case storage.DriverMemory:
		log.Warn("config: using in-memory storage, state is lost on restart")
		return storage.NewMemoryStorage(), nil
	case storage.DriverPostgres:
		if db == nil {
			return nil, errors.New("postgres storage requires a database connection")
		}
		return storage.NewGormStorage(db), nil
	case storage.DriverS3:
		cfg := storage.S3Config{
			Bucket:    utils.GetConfig("AWS_S3_BUCKET"),
			Region:    utils.GetConfig("AWS_S3_REGION"),
			Prefix:    utils.GetConfig("AWS_S3_PREFIX"),
			AccessKey: utils.GetConfig("AWS_ACCESS_KEY"),
			SecretKey: utils.GetConfig("AWS_SECRET_KEY"),
		}
		client, err := storage.NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewS3Storage(client, cfg.Bucket, cfg.Prefix), nil
	default:
		return nil, storage.ErrUnknownDriver{Driver: driver}
	}
}
