package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	localsActor   = "auth_actor"
	localsTokenID = "auth_token_id"
)

// Middleware authenticates requests and enforces role checks.
type Middleware struct {
	tokens   *TokenService
	sessions SessionStore
}

func NewMiddleware(tokens *TokenService, sessions SessionStore) *Middleware {
	return &Middleware{tokens: tokens, sessions: sessions}
}

// Authenticate validates the bearer token and checks the session is still
// live, then stores the actor in request locals.
func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := m.tokens.Validate(parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		live, err := m.sessions.Exists(c.Context(), claims.TokenID)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Session check failed")
		}
		if !live {
			return fiber.NewError(fiber.StatusUnauthorized, "Session revoked")
		}

		c.Locals(localsActor, Actor{
			UserID: claims.UserID,
			Role:   claims.Role,
			Email:  claims.Email,
		})
		c.Locals(localsTokenID, claims.TokenID)

		return c.Next()
	}
}

// RequireRoles rejects actors whose role is not in the allowed set. It must
// run after Authenticate.
func (m *Middleware) RequireRoles(roles ...Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := GetActor(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}
		for _, r := range roles {
			if actor.Role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
	}
}

// GetActor extracts the authenticated actor from request locals.
func GetActor(c *fiber.Ctx) (Actor, bool) {
	actor, ok := c.Locals(localsActor).(Actor)
	return actor, ok
}

// GetTokenID extracts the current token ID, used by logout.
func GetTokenID(c *fiber.Ctx) (string, bool) {
	tokenID, ok := c.Locals(localsTokenID).(string)
	return tokenID, ok
}
