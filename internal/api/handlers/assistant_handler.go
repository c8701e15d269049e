package handlers

import (
	"io"
	"net/http"

	"gamerflow_service/internal/assistant/app"
	"gamerflow_service/internal/assistant/domain"
	catalogapp "gamerflow_service/internal/catalog/app"
	"gamerflow_service/pkg/logger"
	"gamerflow_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// MaxImageSize image forge 上傳上限
const MaxImageSize = 8 << 20

// AssistantHandler AI assistant endpoints
type AssistantHandler struct {
	catalogUC      catalogapp.CatalogUseCase
	assistantUC    app.AssistantUseCase
	conversationUC app.ConversationUseCase
	forgeUC        app.ImageForgeUseCase
}

// NewAssistantHandler create assistant handler
func NewAssistantHandler(
	catalogUC catalogapp.CatalogUseCase,
	assistantUC app.AssistantUseCase,
	conversationUC app.ConversationUseCase,
	forgeUC app.ImageForgeUseCase,
) *AssistantHandler {
	return &AssistantHandler{
		catalogUC:      catalogUC,
		assistantUC:    assistantUC,
		conversationUC: conversationUC,
		forgeUC:        forgeUC,
	}
}

// Insight godoc
// @Summary Game insight
// @Description Always 200; failed=true means the payload is the static fallback
// @Tags Assistant
// @Produce json
// @Param topic query string false "Game title (default Gaming)"
// @Success 200 {object} domain.Outcome[domain.Insight]
// @Router /assistant/insight [get]
func (h *AssistantHandler) Insight(c *fiber.Ctx) error {
	topic := c.Query("topic", catalogapp.FallbackTopic)
	return c.JSON(h.assistantUC.Insight(c.UserContext(), topic))
}

// Analyze godoc
// @Summary Deep analysis of a video
// @Tags Assistant
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} domain.Outcome[domain.Insight]
// @Failure 404 {object} string "Not Found"
// @Router /assistant/analyze/{videoId} [post]
func (h *AssistantHandler) Analyze(c *fiber.Ctx) error {
	ctx := c.UserContext()
	v, err := h.catalogUC.Video(ctx, c.Params("videoId"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(h.assistantUC.DeepAnalyze(ctx, v.Title, v.Summary))
}

// SendMessage godoc
// @Summary Send a message to the chat or search tool
// @Tags Assistant
// @Accept json
// @Produce json
// @Param tool path string true "chat | search"
// @Param request body object true "{\"prompt\": \"...\"}"
// @Success 200 {object} domain.ChatMessage
// @Failure 400 {object} string "Empty prompt or invalid tool"
// @Router /assistant/{tool}/messages [post]
func (h *AssistantHandler) SendMessage(c *fiber.Ctx) error {
	type request struct {
		Prompt string `json:"prompt"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	msg, err := h.conversationUC.Send(c.UserContext(), middlewares.ProfileID(c), domain.Tool(c.Params("tool")), req.Prompt)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(msg)
}

// History godoc
// @Summary Conversation history of a tool
// @Tags Assistant
// @Produce json
// @Param tool path string true "chat | search | image"
// @Success 200 {array} domain.ChatMessage
// @Router /assistant/{tool}/messages [get]
func (h *AssistantHandler) History(c *fiber.Ctx) error {
	msgs, err := h.conversationUC.History(c.UserContext(), middlewares.ProfileID(c), domain.Tool(c.Params("tool")))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(msgs)
}

// Clear godoc
// @Summary Clear conversation of a tool
// @Tags Assistant
// @Param tool path string true "chat | search | image"
// @Success 204
// @Router /assistant/{tool}/messages [delete]
func (h *AssistantHandler) Clear(c *fiber.Ctx) error {
	if err := h.conversationUC.Clear(c.UserContext(), middlewares.ProfileID(c), domain.Tool(c.Params("tool"))); err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SwitchTool godoc
// @Summary Switch active tool (clears all conversations)
// @Tags Assistant
// @Param tool path string true "chat | search | image"
// @Success 204
// @Router /assistant/{tool}/switch [post]
func (h *AssistantHandler) SwitchTool(c *fiber.Ctx) error {
	if err := h.conversationUC.SwitchTool(c.UserContext(), middlewares.ProfileID(c), domain.Tool(c.Params("tool"))); err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// EditImage godoc
// @Summary Edit a game image
// @Tags Assistant
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image"
// @Param instruction formData string true "Edit instruction"
// @Success 200 {object} domain.Outcome[domain.ImageEdit]
// @Failure 400 {object} string "Bad Request"
// @Router /assistant/image [post]
func (h *AssistantHandler) EditImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing image"})
	}
	if fileHeader.Size > MaxImageSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": "Image too large"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Log.Errorf("Open file failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Log.Errorf("File read failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error reading file"})
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}

	out, err := h.forgeUC.Edit(c.UserContext(), middlewares.ProfileID(c), domain.Image{Data: data, MIMEType: mimeType}, c.FormValue("instruction"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(out)
}

// Image godoc
// @Summary Download a stored forge image
// @Tags Assistant
// @Produce image/png
// @Param editId path string true "Edit ID"
// @Param kind path string true "original | edited"
// @Success 200 {file} binary
// @Failure 404 {object} string "Not Found"
// @Router /assistant/image/{editId}/{kind} [get]
func (h *AssistantHandler) Image(c *fiber.Ctx) error {
	data, err := h.forgeUC.Fetch(c.UserContext(), middlewares.ProfileID(c), c.Params("editId"), c.Params("kind"))
	if err != nil {
		return sendError(c, err)
	}
	c.Set(fiber.HeaderContentType, http.DetectContentType(data))
	return c.Send(data)
}
