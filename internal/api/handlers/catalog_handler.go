package handlers

import (
	catalogapp "gamerflow_service/internal/catalog/app"
	"gamerflow_service/internal/catalog/domain"
	userstate "gamerflow_service/internal/userstate/app"
	"gamerflow_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler catalog 與 saved / liked 狀態
type CatalogHandler struct {
	catalogUC   catalogapp.CatalogUseCase
	userStateUC userstate.UserStateUseCase
}

// NewCatalogHandler create catalog handler
func NewCatalogHandler(catalogUC catalogapp.CatalogUseCase, userStateUC userstate.UserStateUseCase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, userStateUC: userStateUC}
}

// Games godoc
// @Summary List games
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Game
// @Router /catalog/games [get]
func (h *CatalogHandler) Games(c *fiber.Ctx) error {
	return c.JSON(h.catalogUC.Games(c.UserContext()))
}

// LiveCategories godoc
// @Summary List live categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} string
// @Router /catalog/live-categories [get]
func (h *CatalogHandler) LiveCategories(c *fiber.Ctx) error {
	return c.JSON(h.catalogUC.LiveCategories(c.UserContext()))
}

// Videos godoc
// @Summary Browse videos
// @Description Filters the catalog by view, live category, saved ids and search text
// @Tags Catalog
// @Produce json
// @Param view query string false "home | live | discover | saved | profile | neural"
// @Param q query string false "Search text"
// @Param category query string false "Live category"
// @Success 200 {array} domain.Video
// @Router /catalog/videos [get]
func (h *CatalogHandler) Videos(c *fiber.Ctx) error {
	ctx := c.UserContext()
	q := domain.BrowseQuery{
		View:         domain.View(c.Query("view", string(domain.ViewHome))),
		LiveCategory: c.Query("category", domain.LiveCategoryAll),
		Search:       c.Query("q"),
	}
	if q.View == domain.ViewSaved {
		q.SavedIDs = h.userStateUC.Load(ctx, middlewares.ProfileID(c)).Saved
	}
	return c.JSON(h.catalogUC.Browse(ctx, q))
}

// VideoDetail godoc
// @Summary Video detail
// @Description Returns the video with its game, related videos and related games
// @Tags Catalog
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} domain.VideoDetail
// @Failure 404 {object} string "Not Found"
// @Router /catalog/videos/{id} [get]
func (h *CatalogHandler) VideoDetail(c *fiber.Ctx) error {
	detail, err := h.catalogUC.VideoDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(detail)
}

// State godoc
// @Summary Saved and liked videos
// @Tags Me
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /me/state [get]
func (h *CatalogHandler) State(c *fiber.Ctx) error {
	return c.JSON(h.userStateUC.Load(c.UserContext(), middlewares.ProfileID(c)))
}

// ToggleSaved godoc
// @Summary Toggle saved video
// @Tags Me
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} map[string][]string
// @Failure 404 {object} string "Not Found"
// @Router /me/saved/{id} [post]
func (h *CatalogHandler) ToggleSaved(c *fiber.Ctx) error {
	ctx := c.UserContext()
	v, err := h.catalogUC.Video(ctx, c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(h.userStateUC.ToggleSave(ctx, middlewares.ProfileID(c), v.ID))
}

// ToggleLiked godoc
// @Summary Toggle liked video
// @Tags Me
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} map[string][]string
// @Failure 404 {object} string "Not Found"
// @Router /me/liked/{id} [post]
func (h *CatalogHandler) ToggleLiked(c *fiber.Ctx) error {
	ctx := c.UserContext()
	v, err := h.catalogUC.Video(ctx, c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(h.userStateUC.ToggleLike(ctx, middlewares.ProfileID(c), v.ID))
}
