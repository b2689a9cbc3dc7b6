package handlers

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/internal/api/presenters"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingStore interface {
		ShoppingList() []entities.ShoppingItem
		CompletedShoppingItems() []entities.ShoppingItem
		PendingShoppingItems() []entities.ShoppingItem
		AddShoppingItem(draft domain.ShoppingItemDraft) (entities.ShoppingItem, error)
		UpdateShoppingItem(id string, patch domain.ShoppingItemPatch) (entities.ShoppingItem, error)
		ToggleShoppingItem(id string) (entities.ShoppingItem, error)
		DeleteShoppingItem(id string) error
		GenerateShoppingList() []entities.ShoppingItem
	}

	ShoppingHandler interface {
		GetShoppingList(c *fiber.Ctx) error
		AddShoppingItem(c *fiber.Ctx) error
		UpdateShoppingItem(c *fiber.Ctx) error
		ToggleShoppingItem(c *fiber.Ctx) error
		DeleteShoppingItem(c *fiber.Ctx) error
		GenerateShoppingList(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		store     ShoppingStore
		validator *validator.Validate
	}
)

func NewShoppingHandler(store ShoppingStore, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		store:     store,
		validator: validator,
	}
}

// GetShoppingList accepts ?status=pending|completed.
func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	var items []entities.ShoppingItem
	switch c.Query("status", "all") {
	case "pending":
		items = h.store.PendingShoppingItems()
	case "completed":
		items = h.store.CompletedShoppingItems()
	default:
		items = h.store.ShoppingList()
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"total": len(items),
	}, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) AddShoppingItem(c *fiber.Ctx) error {
	req := new(domain.ShoppingItemDraft)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	item, err := h.store.AddShoppingItem(*req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddShoppingItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusCreated, domain.MessageSuccessAddShoppingItem)
}

func (h *shoppingHandler) UpdateShoppingItem(c *fiber.Ctx) error {
	req := new(domain.ShoppingItemPatch)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingItem, err)
	}

	item, err := h.store.UpdateShoppingItem(c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateShoppingItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessUpdateShoppingItem)
}

func (h *shoppingHandler) ToggleShoppingItem(c *fiber.Ctx) error {
	item, err := h.store.ToggleShoppingItem(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateShoppingItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessToggleShoppingItem)
}

func (h *shoppingHandler) DeleteShoppingItem(c *fiber.Ctx) error {
	if err := h.store.DeleteShoppingItem(c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteShoppingItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingItem)
}

// GenerateShoppingList adds suggestions for expiring food and returns the
// items it created.
func (h *shoppingHandler) GenerateShoppingList(c *fiber.Ctx) error {
	added := h.store.GenerateShoppingList()

	return presenters.SuccessResponse(c, fiber.Map{
		"items": added,
		"total": len(added),
	}, fiber.StatusOK, domain.MessageSuccessGenerateShopping)
}
