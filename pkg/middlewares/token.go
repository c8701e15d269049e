package middlewares

import (
	t_token "gamerflow_service/pkg/token"

	"github.com/gofiber/fiber/v2"
)

const (
	//QueryToken token in query name
	QueryToken = "auth"

	//CookieToken token in cookie name
	CookieToken = "auth_token"

	//TokenProfileID get profile form token, set c.locals name
	TokenProfileID = "ProfileID"
	//TokenRole get role form token, set c.locals name
	TokenRole = "role"

	//DefaultProfileID 沒有 token 時使用的本機 profile
	DefaultProfileID = "local"
)

// ProfileMiddleware 解析 token 取得 profile, 沒有 token 時使用 DefaultProfileID
func ProfileMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Query(QueryToken)
		if tokenStr == "" {
			tokenStr = c.Cookies(CookieToken)
		}

		if tokenStr == "" {
			c.Locals(TokenProfileID, DefaultProfileID)
			c.Locals(TokenRole, string(t_token.RoleGuest))
			return c.Next()
		}

		claims, err := t_token.ParseJWTWrapper(tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals(TokenProfileID, claims.ProfileID)
		c.Locals(TokenRole, claims.Role)
		return c.Next()
	}
}

// ProfileID read profile id set by ProfileMiddleware
func ProfileID(c *fiber.Ctx) string {
	if id, ok := c.Locals(TokenProfileID).(string); ok && id != "" {
		return id
	}
	return DefaultProfileID
}
