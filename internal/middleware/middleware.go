package middleware

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/internal/api/presenters"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	// Authenticator resolves a bearer token to the signed-in user.
	Authenticator interface {
		CurrentUser(ctx context.Context, token string) (domain.AuthUser, error)
	}

	// Initializer is satisfied by the store; Initialize must be idempotent.
	Initializer interface {
		Initialize(ctx context.Context) error
	}

	Middleware interface {
		AuthMiddleware() fiber.Handler
		CORSMiddleware() fiber.Handler
	}

	middleware struct {
		auth  Authenticator
		store Initializer
	}
)

func NewMiddleware(auth Authenticator, store Initializer) Middleware {
	return &middleware{
		auth:  auth,
		store: store,
	}
}

// AuthMiddleware rejects requests without a valid session and makes sure the
// store has loaded before any handler reads it.
func (m *middleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
		}

		user, err := m.auth.CurrentUser(c.UserContext(), token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		if err := m.store.Initialize(context.WithoutCancel(c.UserContext())); err != nil {
			log.Errorf("middleware: initialize store: %v", err)
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedProcessRequest, err)
		}

		c.Locals("user_id", user.ID)
		c.Locals("email", user.Email)
		c.Locals("token", token)
		return c.Next()
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", domain.ErrTokenNotFound
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", domain.ErrTokenInvalid
	}
	return strings.TrimSpace(token), nil
}
