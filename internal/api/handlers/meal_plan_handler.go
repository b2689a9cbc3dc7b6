package handlers

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/internal/api/presenters"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanStore interface {
		MealPlans() []entities.MealPlan
		MealPlanByDate(date string) (entities.MealPlan, bool)
		MealPlansInRange(start, end string) []entities.MealPlan
		AddMealPlan(draft domain.MealPlanDraft) (entities.MealPlan, error)
		UpdateMealPlan(id string, patch domain.MealPlanPatch) (entities.MealPlan, error)
		DeleteMealPlan(id string) error
	}

	MealPlanHandler interface {
		GetMealPlans(c *fiber.Ctx) error
		GetMealPlanByDate(c *fiber.Ctx) error
		AddMealPlan(c *fiber.Ctx) error
		UpdateMealPlan(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		store     MealPlanStore
		validator *validator.Validate
	}
)

func NewMealPlanHandler(store MealPlanStore, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		store:     store,
		validator: validator,
	}
}

// GetMealPlans lists every plan, or the inclusive ?start=&end= range.
func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	plans := h.store.MealPlans()
	start, end := c.Query("start"), c.Query("end")
	if start != "" || end != "" {
		if start == "" {
			start = "0000-01-01"
		}
		if end == "" {
			end = "9999-12-31"
		}
		plans = h.store.MealPlansInRange(start, end)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"meal_plans": plans,
		"total":      len(plans),
	}, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) GetMealPlanByDate(c *fiber.Ctx) error {
	plan, ok := h.store.MealPlanByDate(c.Params("date"))
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMealPlans, domain.ErrMealPlanNotFound)
	}

	return presenters.SuccessResponse(c, plan, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) AddMealPlan(c *fiber.Ctx) error {
	req := new(domain.MealPlanDraft)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealPlan, err)
	}

	plan, err := h.store.AddMealPlan(*req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddMealPlan, err)
	}

	return presenters.SuccessResponse(c, plan, fiber.StatusCreated, domain.MessageSuccessAddMealPlan)
}

func (h *mealPlanHandler) UpdateMealPlan(c *fiber.Ctx) error {
	req := new(domain.MealPlanPatch)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, err)
	}

	plan, err := h.store.UpdateMealPlan(c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateMealPlan, err)
	}

	return presenters.SuccessResponse(c, plan, fiber.StatusOK, domain.MessageSuccessUpdateMealPlan)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	if err := h.store.DeleteMealPlan(c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealPlan)
}
