package handlers

import (
	"Go-Pantry-Tracker/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodItemNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrMealPlanNotFound),
		errors.Is(err, domain.ErrShoppingItemNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrRemoteNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrMealPlanExists),
		errors.Is(err, domain.ErrEmailAlreadyRegistered):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrNotSignedIn),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrStoreNotReady):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrRemoteRateLimited):
		return fiber.StatusTooManyRequests
	case errors.Is(err, domain.ErrRemoteTimeout):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, domain.ErrRemoteUnavailable),
		errors.Is(err, domain.ErrRemoteMalformed),
		errors.Is(err, domain.ErrRemoteNotConfigured):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusBadRequest
	}
}
