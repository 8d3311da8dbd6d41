package middleware

import (
	"context"
	"strings"

	"jobboard-bff/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	LocalUserID = "userID"
	LocalEmail  = "email"
)

// AuthMiddleware attaches the caller's identity when a valid bearer token is
// present. It never rejects: each route decides how to answer anonymous callers.
func AuthMiddleware(verifier *auth.TokenVerifier, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(fiber.HeaderAuthorization)
		if token == "" {
			return c.Next()
		}
		token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))

		claims, err := verifier.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid token", zap.Error(err), zap.String("path", c.Path()))
			return c.Next()
		}
		userID, err := claims.UserID()
		if err != nil {
			logger.Warn("Invalid token subject", zap.Error(err))
			return c.Next()
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, claims.Email)

		return c.Next()
	}
}

// UserID returns the authenticated caller, if any.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(LocalUserID).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

type RoleLookup interface {
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
}

// RequireAdmin lets the request through only for callers whose profile role is admin.
func RequireAdmin(roles RoleLookup, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := UserID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		role, err := roles.GetRole(c.UserContext(), userID)
		if err != nil {
			logger.Warn("Profile lookup failed", zap.String("user_id", userID.String()), zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Profile not found",
			})
		}

		if role != "admin" {
			logger.Warn("Non-admin access to admin route",
				zap.String("user_id", userID.String()),
				zap.String("role", role),
				zap.String("path", c.Path()),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		return c.Next()
	}
}
