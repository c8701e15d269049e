package router

import (
	"gamerflow_service/internal/api/handlers"
	"gamerflow_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Handlers 所有 http handler
type Handlers struct {
	Catalog   *handlers.CatalogHandler
	Playback  *handlers.PlaybackHandler
	UI        *handlers.UIHandler
	Assistant *handlers.AssistantHandler
	Live      *handlers.LiveHandler
}

// RegisterRoutes 註冊所有路由
// @title GamerFlow Service API
// @version 1.0
// @description API documentation for GamerFlow gaming content browser
// @host localhost:8080
// @BasePath /
func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)
	app.Post("/profile/token", handlers.IssueToken)

	api := app.Group("", middlewares.ProfileMiddleware())

	catalogRoutes := api.Group("/catalog")
	catalogRoutes.Get("/games", h.Catalog.Games)
	catalogRoutes.Get("/live-categories", h.Catalog.LiveCategories)
	catalogRoutes.Get("/videos", h.Catalog.Videos)
	catalogRoutes.Get("/videos/:id", h.Catalog.VideoDetail)

	meRoutes := api.Group("/me")
	meRoutes.Get("/state", h.Catalog.State)
	meRoutes.Post("/saved/:id", h.Catalog.ToggleSaved)
	meRoutes.Post("/liked/:id", h.Catalog.ToggleLiked)

	playbackRoutes := api.Group("/playback/sessions")
	playbackRoutes.Post("/", h.Playback.OpenSession)
	playbackRoutes.Get("/:id", h.Playback.GetSession)
	playbackRoutes.Put("/:id/progress", h.Playback.Scrub)
	playbackRoutes.Post("/:id/jump", h.Playback.Jump)
	playbackRoutes.Post("/:id/notes", h.Playback.AddNote)
	playbackRoutes.Delete("/:id", h.Playback.CloseSession)

	api.Get("/chapters", h.Playback.ExtractChapters)
	api.Post("/chapters", h.Playback.ResolveChapters)

	uiRoutes := api.Group("/ui")
	uiRoutes.Get("/state", h.UI.State)
	uiRoutes.Post("/actions", h.UI.Dispatch)
	uiRoutes.Post("/deep-analyze", h.UI.DeepAnalyze)

	assistantRoutes := api.Group("/assistant")
	assistantRoutes.Get("/insight", h.Assistant.Insight)
	assistantRoutes.Post("/analyze/:videoId", h.Assistant.Analyze)
	assistantRoutes.Post("/image", h.Assistant.EditImage)
	assistantRoutes.Get("/image/:editId/:kind", h.Assistant.Image)
	assistantRoutes.Post("/:tool/messages", h.Assistant.SendMessage)
	assistantRoutes.Get("/:tool/messages", h.Assistant.History)
	assistantRoutes.Delete("/:tool/messages", h.Assistant.Clear)
	assistantRoutes.Post("/:tool/switch", h.Assistant.SwitchTool)

	liveRoutes := api.Group("/live")
	liveRoutes.Get("/:videoId/ws", h.Live.Connect())
}
