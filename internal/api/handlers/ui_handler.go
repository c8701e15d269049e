package handlers

import (
	"gamerflow_service/internal/ui/app"
	"gamerflow_service/internal/ui/domain"
	"gamerflow_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// UIHandler app state reducer endpoints
type UIHandler struct {
	uiUC app.UIUseCase
}

// NewUIHandler create ui handler
func NewUIHandler(uiUC app.UIUseCase) *UIHandler {
	return &UIHandler{uiUC: uiUC}
}

type uiStateResponse struct {
	State   domain.AppState `json:"state"`
	Visible interface{}     `json:"visible"`
}

func (h *UIHandler) respond(c *fiber.Ctx, state domain.AppState) error {
	return c.JSON(uiStateResponse{
		State:   state,
		Visible: h.uiUC.Visible(c.UserContext(), middlewares.ProfileID(c)),
	})
}

// State godoc
// @Summary Current app state and visible videos
// @Tags UI
// @Produce json
// @Success 200 {object} uiStateResponse
// @Router /ui/state [get]
func (h *UIHandler) State(c *fiber.Ctx) error {
	return h.respond(c, h.uiUC.State(c.UserContext(), middlewares.ProfileID(c)))
}

// Dispatch godoc
// @Summary Dispatch a UI action
// @Description type: set_view, set_search, set_live_category, toggle_save, toggle_like, select_video, close_video, open_pip, close_pip, expand_pip
// @Tags UI
// @Accept json
// @Produce json
// @Param request body domain.Action true "{\"type\": \"select_video\", \"value\": \"v1\"}"
// @Success 200 {object} uiStateResponse
// @Failure 400 {object} string "Unknown action"
// @Failure 404 {object} string "Not Found"
// @Router /ui/actions [post]
func (h *UIHandler) Dispatch(c *fiber.Ctx) error {
	var action domain.Action
	if err := c.BodyParser(&action); err != nil {
		return badRequest(c)
	}
	// insight_loaded 只由 server 產生
	if action.Type == domain.InsightLoaded {
		return sendError(c, domain.ErrUnknownAction)
	}

	state, err := h.uiUC.Dispatch(c.UserContext(), middlewares.ProfileID(c), action)
	if err != nil {
		return sendError(c, err)
	}
	return h.respond(c, state)
}

// DeepAnalyze godoc
// @Summary Deep analysis of the selected video
// @Tags UI
// @Produce json
// @Success 200 {object} uiStateResponse
// @Failure 409 {object} string "No video selected"
// @Router /ui/deep-analyze [post]
func (h *UIHandler) DeepAnalyze(c *fiber.Ctx) error {
	state, err := h.uiUC.DeepAnalyze(c.UserContext(), middlewares.ProfileID(c))
	if err != nil {
		return sendError(c, err)
	}
	return h.respond(c, state)
}
