package handlers

import (
	"context"

	"gamerflow_service/internal/livechat/app"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// LiveHandler live chat websocket
type LiveHandler struct {
	ws *app.LiveWebsocketHandler
}

// NewLiveHandler create live handler
func NewLiveHandler(ws *app.LiveWebsocketHandler) *LiveHandler {
	return &LiveHandler{ws: ws}
}

// Connect godoc
// @Summary Live chat websocket
// @Description Actions: send_message, analyze, history. Server pushes notify_message frames.
// @Tags Live
// @Param videoId path string true "Live video ID"
// @Router /live/{videoId}/ws [get]
func (h *LiveHandler) Connect() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		h.ws.HandleConnection(context.Background(), conn)
	})
}
