package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	assistant "gamerflow_service/internal/assistant/domain"
	catalog "gamerflow_service/internal/catalog/domain"
	livechat "gamerflow_service/internal/livechat/domain"
	playback "gamerflow_service/internal/playback/domain"
	ui "gamerflow_service/internal/ui/domain"
	"gamerflow_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConnectCheck check api connect start
// @Summary Check API status
// @Description Returns a simple confirmation message
// @Tags Shared
// @Success 200 {string} string "gamerflow start!"
// @Router / [get]
func ConnectCheck(c *fiber.Ctx) error {
	return c.SendString("gamerflow start!")
}

// DebugLogFlag toggle debug log flag
// @Summary Toggle Debug Log Flag
// @Description Enable or disable debug logging for a service
// @Tags Shared
// @Param service query string true "Service name"
// @Param status query bool true "Debug status"
// @Success 200 {string} string "Service debug mode updated"
// @Failure 400 {string} string "Invalid status value"
// @Router /debug [post]
func DebugLogFlag(c *fiber.Ctx) error {
	query, err := url.ParseQuery(string(c.Context().QueryArgs().QueryString()))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	service := query.Get("service")
	statusStr := query.Get("status")
	logger.Log.Info("debug", zap.String("service", service), zap.String("status", statusStr))
	status, err := strconv.ParseBool(statusStr)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	switch service {
	default:
		logger.Log.SetDebugMode(status)
	}
	return c.SendString(fmt.Sprintf("service[%s]: debug mode is : %t", service, status))
}

// errorStatus sentinel error 對應 http status
func errorStatus(err error) int {
	switch {
	case errors.Is(err, catalog.ErrVideoNotFound),
		errors.Is(err, playback.ErrSessionNotFound),
		errors.Is(err, assistant.ErrImageNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, playback.ErrNotScrubbable),
		errors.Is(err, livechat.ErrNotLive),
		errors.Is(err, ui.ErrNothingSelected):
		return fiber.StatusConflict
	case errors.Is(err, playback.ErrEmptyNote),
		errors.Is(err, assistant.ErrEmptyPrompt),
		errors.Is(err, assistant.ErrInvalidTool),
		errors.Is(err, assistant.ErrEmptyImage),
		errors.Is(err, ui.ErrUnknownAction),
		errors.Is(err, ui.ErrInvalidView):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.Log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": "internal error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
}
