package handlers

import (
	"strings"

	"gamerflow_service/pkg/logger"
	"gamerflow_service/pkg/middlewares"
	"gamerflow_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// IssueToken 簽發 profile token
// @Summary Issue profile token
// @Description Issues a JWT for a profile id and sets the auth cookie
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body object true "{\"profile_id\": \"...\"}"
// @Success 200 {object} map[string]string "token"
// @Failure 400 {object} string "Bad Request"
// @Router /profile/token [post]
func IssueToken(c *fiber.Ctx) error {
	type request struct {
		ProfileID string `json:"profile_id"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}
	req.ProfileID = strings.TrimSpace(req.ProfileID)
	if req.ProfileID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "profile_id is required"})
	}

	tk, err := token.GenerateJWTWrapper(req.ProfileID, string(token.RoleUser))
	if err != nil {
		return sendError(c, err)
	}

	c.Cookie(&fiber.Cookie{Name: middlewares.CookieToken, Value: tk, HTTPOnly: true})
	logger.Log.Info("profile token issued", zap.String("profile", req.ProfileID))
	return c.JSON(fiber.Map{"token": tk, "profile_id": req.ProfileID})
}
