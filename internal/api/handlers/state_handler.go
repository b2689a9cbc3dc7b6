package handlers

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/internal/api/presenters"
	"context"

	"github.com/gofiber/fiber/v2"
)

type (
	StateStore interface {
		State() domain.LifecycleState
		RecipesLoading() bool
		Snapshot() domain.StateBundle
		ClearAllData()
		Flush(ctx context.Context) error
	}

	StateHandler interface {
		GetState(c *fiber.Ctx) error
		ExportState(c *fiber.Ctx) error
		ClearAllData(c *fiber.Ctx) error
		Flush(c *fiber.Ctx) error
	}

	stateHandler struct {
		store StateStore
	}
)

func NewStateHandler(store StateStore) StateHandler {
	return &stateHandler{
		store: store,
	}
}

func (h *stateHandler) GetState(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"state":           h.store.State(),
		"recipes_loading": h.store.RecipesLoading(),
	}, fiber.StatusOK, domain.MessageSuccessGetState)
}

func (h *stateHandler) ExportState(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.store.Snapshot(), fiber.StatusOK, domain.MessageSuccessGetState)
}

// ClearAllData wipes storage and restores the sample data set.
func (h *stateHandler) ClearAllData(c *fiber.Ctx) error {
	h.store.ClearAllData()

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearAllData)
}

func (h *stateHandler) Flush(c *fiber.Ctx) error {
	if err := h.store.Flush(c.UserContext()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedFlush, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessFlush)
}
