package handlers

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/internal/api/presenters"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodStore interface {
		FoodItems() []entities.FoodItem
		FoodItem(id string) (entities.FoodItem, bool)
		FoodItemsByLocation(location string) []entities.FoodItem
		ExpiringFoodItems() []entities.FoodItem
		InventoryStats() domain.InventoryStats
		AddFoodItem(draft domain.FoodItemDraft) (entities.FoodItem, error)
		UpdateFoodItem(id string, patch domain.FoodItemPatch) (entities.FoodItem, error)
		DeleteFoodItem(id string) error
		ConsumeFoodItem(id string) (domain.ConsumeResult, error)
		RefreshFoodItemStatuses() int
	}

	FoodHandler interface {
		GetFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		AddFoodItem(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		ConsumeFoodItem(c *fiber.Ctx) error
		RefreshStatuses(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
	}

	foodHandler struct {
		store     FoodStore
		validator *validator.Validate
	}
)

func NewFoodHandler(store FoodStore, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		store:     store,
		validator: validator,
	}
}

// GetFoodItems lists the inventory, optionally narrowed with ?location= or
// ?expiring=true.
func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	var items []entities.FoodItem
	switch {
	case c.QueryBool("expiring", false):
		items = h.store.ExpiringFoodItems()
	case c.Query("location") != "":
		items = h.store.FoodItemsByLocation(c.Query("location"))
	default:
		items = h.store.FoodItems()
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"total": len(items),
	}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	item, ok := h.store.FoodItem(c.Params("id"))
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoodItems, domain.ErrFoodItemNotFound)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.FoodItemDraft)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	item, err := h.store.AddFoodItem(*req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) UpdateFoodItem(c *fiber.Ctx) error {
	req := new(domain.FoodItemPatch)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	item, err := h.store.UpdateFoodItem(c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateFoodItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessUpdateFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	if err := h.store.DeleteFoodItem(c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) ConsumeFoodItem(c *fiber.Ctx) error {
	res, err := h.store.ConsumeFoodItem(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedConsumeFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessConsumeFoodItem)
}

func (h *foodHandler) RefreshStatuses(c *fiber.Ctx) error {
	changed := h.store.RefreshFoodItemStatuses()

	return presenters.SuccessResponse(c, fiber.Map{"changed": changed}, fiber.StatusOK, domain.MessageSuccessRefreshStatuses)
}

func (h *foodHandler) GetDashboardStats(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.store.InventoryStats(), fiber.StatusOK, domain.MessageSuccessGetInventoryStats)
}
