package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/medisage/medisage_backend/pkg/token"
)

// LocalClaims is the fiber locals key holding the verified *token.Claims.
const LocalClaims = "auth_claims"

// RequireKind validates the PASETO token in the Authorization header and
// rejects tokens issued for the other account kind. The header carries the
// raw token; an optional "Bearer " prefix is tolerated.
func RequireKind(mgr *token.Manager, kind token.Kind) fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get("Authorization"))
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}
		if len(raw) > 7 && strings.EqualFold(raw[:7], "Bearer ") {
			raw = strings.TrimSpace(raw[7:])
		}

		claims, err := mgr.Verify(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}
		if claims.Kind != kind {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "wrong account type"})
		}

		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// ClaimsFromFiber retrieves the verified claims stored by RequireKind.
func ClaimsFromFiber(c fiber.Ctx) (*token.Claims, bool) {
	claims, ok := c.Locals(LocalClaims).(*token.Claims)
	return claims, ok && claims != nil
}
