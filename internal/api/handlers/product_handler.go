package handlers

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/internal/api/presenters"
	"Go-Pantry-Tracker/pkg/product"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		LookupBarcode(c *fiber.Ctx) error
		SearchProducts(c *fiber.Ctx) error
		AddScannedProduct(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		store          FoodStore
		validator      *validator.Validate
		now            func() time.Time
	}
)

func NewProductHandler(productService product.ProductService, store FoodStore, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		store:          store,
		validator:      validator,
		now:            time.Now,
	}
}

func (h *productHandler) LookupBarcode(c *fiber.Ctx) error {
	p, err := h.productService.LookupByBarcode(c.UserContext(), c.Params("code"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedLookupProduct, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"product": p,
		"draft":   product.DraftFromProduct(p, h.now()),
	}, fiber.StatusOK, domain.MessageSuccessLookupProduct)
}

func (h *productHandler) SearchProducts(c *fiber.Ctx) error {
	req := new(domain.ProductSearchRequest)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLookupProduct, err)
	}

	products, err := h.productService.LookupByName(c.UserContext(), req.Query)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedLookupProduct, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"products": products,
		"total":    len(products),
	}, fiber.StatusOK, domain.MessageSuccessLookupProduct)
}

// AddScannedProduct looks the barcode up and adds the pre-filled draft to the
// inventory in one step.
func (h *productHandler) AddScannedProduct(c *fiber.Ctx) error {
	p, err := h.productService.LookupByBarcode(c.UserContext(), c.Params("code"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedLookupProduct, err)
	}

	item, err := h.store.AddFoodItem(product.DraftFromProduct(p, h.now()))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}
