package handlers

import (
	"gamerflow_service/internal/playback/app"
	"gamerflow_service/internal/playback/domain"
	"gamerflow_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// PlaybackHandler playback session 與 chapter engine
type PlaybackHandler struct {
	sessionUC app.SessionUseCase
}

// NewPlaybackHandler create playback handler
func NewPlaybackHandler(sessionUC app.SessionUseCase) *PlaybackHandler {
	return &PlaybackHandler{sessionUC: sessionUC}
}

// OpenSession godoc
// @Summary Open playback session
// @Tags Playback
// @Accept json
// @Produce json
// @Param request body object true "{\"video_id\": \"v1\"}"
// @Success 201 {object} domain.SessionView
// @Failure 404 {object} string "Not Found"
// @Router /playback/sessions [post]
func (h *PlaybackHandler) OpenSession(c *fiber.Ctx) error {
	type request struct {
		VideoID string `json:"video_id"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil || req.VideoID == "" {
		return badRequest(c)
	}

	view, err := h.sessionUC.Open(c.UserContext(), middlewares.ProfileID(c), req.VideoID)
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetSession godoc
// @Summary Get playback session
// @Tags Playback
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SessionView
// @Failure 404 {object} string "Not Found"
// @Router /playback/sessions/{id} [get]
func (h *PlaybackHandler) GetSession(c *fiber.Ctx) error {
	view, err := h.sessionUC.Get(c.UserContext(), middlewares.ProfileID(c), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(view)
}

// Scrub godoc
// @Summary Set playback progress
// @Description progress is clamped to [0,100]; live sessions return 409
// @Tags Playback
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body object true "{\"progress\": 42.5}"
// @Success 200 {object} domain.SessionView
// @Failure 409 {object} string "Not scrubbable"
// @Router /playback/sessions/{id}/progress [put]
func (h *PlaybackHandler) Scrub(c *fiber.Ctx) error {
	type request struct {
		Progress *float64 `json:"progress"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil || req.Progress == nil {
		return badRequest(c)
	}

	view, err := h.sessionUC.Scrub(c.UserContext(), middlewares.ProfileID(c), c.Params("id"), *req.Progress)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(view)
}

// Jump godoc
// @Summary Jump to chapter timestamp
// @Tags Playback
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body object true "{\"timestamp\": \"02:15\"}"
// @Success 200 {object} domain.SessionView
// @Failure 409 {object} string "Not scrubbable"
// @Router /playback/sessions/{id}/jump [post]
func (h *PlaybackHandler) Jump(c *fiber.Ctx) error {
	type request struct {
		Timestamp string `json:"timestamp"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	view, err := h.sessionUC.Jump(c.UserContext(), middlewares.ProfileID(c), c.Params("id"), req.Timestamp)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(view)
}

// AddNote godoc
// @Summary Append a timestamped note to the session summary
// @Tags Playback
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body object true "{\"note\": \"nice smoke\"}"
// @Success 200 {object} domain.SessionView
// @Failure 400 {object} string "Empty note"
// @Router /playback/sessions/{id}/notes [post]
func (h *PlaybackHandler) AddNote(c *fiber.Ctx) error {
	type request struct {
		Note string `json:"note"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	view, err := h.sessionUC.AddNote(c.UserContext(), middlewares.ProfileID(c), c.Params("id"), req.Note)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(view)
}

// CloseSession godoc
// @Summary Close playback session
// @Tags Playback
// @Param id path string true "Session ID"
// @Success 204
// @Router /playback/sessions/{id} [delete]
func (h *PlaybackHandler) CloseSession(c *fiber.Ctx) error {
	if err := h.sessionUC.Close(c.UserContext(), middlewares.ProfileID(c), c.Params("id")); err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type chapterResult struct {
	Chapters       []domain.Chapter `json:"chapters"`
	ActiveChapter  *domain.Chapter  `json:"active_chapter,omitempty"`
	CurrentSeconds int              `json:"current_seconds"`
	CurrentTime    string           `json:"current_time"`
}

// ExtractChapters godoc
// @Summary Extract chapters from free text
// @Tags Chapters
// @Produce json
// @Param text query string true "Summary text"
// @Success 200 {array} domain.Chapter
// @Router /chapters [get]
func (h *PlaybackHandler) ExtractChapters(c *fiber.Ctx) error {
	return c.JSON(app.ExtractChapters(c.Query("text")))
}

// ResolveChapters godoc
// @Summary Extract chapters and resolve the active one
// @Tags Chapters
// @Accept json
// @Produce json
// @Param request body object true "{\"text\": \"...\", \"progress\": 40, \"total_seconds\": 342}"
// @Success 200 {object} chapterResult
// @Router /chapters [post]
func (h *PlaybackHandler) ResolveChapters(c *fiber.Ctx) error {
	type request struct {
		Text         string  `json:"text"`
		Progress     float64 `json:"progress"`
		TotalSeconds int     `json:"total_seconds"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil || req.TotalSeconds < 0 {
		return badRequest(c)
	}

	progress := app.ClampProgress(req.Progress)
	res := chapterResult{
		Chapters:       app.ExtractChapters(req.Text),
		CurrentSeconds: app.WholeSeconds(progress, req.TotalSeconds),
	}
	res.CurrentTime = app.ToTimestamp(res.CurrentSeconds)
	if ch, ok := app.ActiveChapter(res.Chapters, progress, req.TotalSeconds); ok {
		res.ActiveChapter = &ch
	}
	return c.JSON(res)
}
