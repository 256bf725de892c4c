package middleware

import (
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/gofiber/fiber/v2"
	"taskly.com/internal/auth"
)

// JWTAuth verifies the bearer token (signature, issuer, audience, expiry),
// stores the claims in request locals and enforces the casbin policy with the
// role claim as subject.
func JWTAuth(tokens *auth.TokenManager, enforcer *casbin.Enforcer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing Authorization header"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		role := claims.Role
		if role == "" {
			role = "user"
		}

		c.Locals("userId", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("email", claims.Email)
		c.Locals("role", role)

		obj := c.Path()
		act := c.Method()

		permit, err := enforcer.Enforce(role, obj, act)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Permission check failed"})
		}
		if !permit {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":  "Permission denied",
				"detail": fmt.Sprintf("Role %s is not allowed to %s %s", role, act, obj),
			})
		}

		return c.Next()
	}
}
