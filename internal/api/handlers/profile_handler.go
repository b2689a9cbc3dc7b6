package handlers

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/internal/api/presenters"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProfileStore interface {
		UserProfile() entities.UserProfile
		UpdateUserProfile(patch domain.UserProfilePatch) (entities.UserProfile, error)
	}

	ProfileHandler interface {
		GetProfile(c *fiber.Ctx) error
		UpdateProfile(c *fiber.Ctx) error
	}

	profileHandler struct {
		store     ProfileStore
		validator *validator.Validate
	}
)

func NewProfileHandler(store ProfileStore, validator *validator.Validate) ProfileHandler {
	return &profileHandler{
		store:     store,
		validator: validator,
	}
}

func (h *profileHandler) GetProfile(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.store.UserProfile(), fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *profileHandler) UpdateProfile(c *fiber.Ctx) error {
	req := new(domain.UserProfilePatch)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProfile, err)
	}

	profile, err := h.store.UpdateUserProfile(*req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateProfile, err)
	}

	return presenters.SuccessResponse(c, profile, fiber.StatusOK, domain.MessageSuccessUpdateProfile)
}
