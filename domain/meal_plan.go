package domain

import (
	"errors"

	"Go-Pantry-Tracker/entities"
)

var (
	MessageSuccessGetMealPlans   = "meal plans retrieved successfully"
	MessageSuccessAddMealPlan    = "meal plan added successfully"
	MessageSuccessUpdateMealPlan = "meal plan updated successfully"
	MessageSuccessDeleteMealPlan = "meal plan deleted successfully"

	MessageFailedGetMealPlans   = "failed to retrieve meal plans"
	MessageFailedAddMealPlan    = "failed to add meal plan"
	MessageFailedUpdateMealPlan = "failed to update meal plan"
	MessageFailedDeleteMealPlan = "failed to delete meal plan"

	ErrMealPlanNotFound     = errors.New("meal plan not found")
	ErrInvalidMealPlanDate  = errors.New("meal plan date must be YYYY-MM-DD")
	ErrInvalidMealPlanPatch = errors.New("invalid meal plan patch")
	ErrMealPlanExists       = errors.New("a meal plan already exists for this date")
)

type (
	MealPlanDraft struct {
		Date  string         `json:"date" validate:"required,datetime=2006-01-02"`
		Meals entities.Meals `json:"meals"`
		Notes string         `json:"notes,omitempty"`
	}

	MealPlanPatch struct {
		Date  *string         `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
		Meals *entities.Meals `json:"meals,omitempty"`
		Notes *string         `json:"notes,omitempty"`
	}
)
