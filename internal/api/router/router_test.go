package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamerflow_service/internal/api/handlers"
	assistantapp "gamerflow_service/internal/assistant/app"
	assistant "gamerflow_service/internal/assistant/domain"
	assistantrepo "gamerflow_service/internal/assistant/repository"
	catalogapp "gamerflow_service/internal/catalog/app"
	catalog "gamerflow_service/internal/catalog/domain"
	catalogrepo "gamerflow_service/internal/catalog/repository"
	liveapp "gamerflow_service/internal/livechat/app"
	liverepo "gamerflow_service/internal/livechat/repository"
	playbackapp "gamerflow_service/internal/playback/app"
	playback "gamerflow_service/internal/playback/domain"
	playbackrepo "gamerflow_service/internal/playback/repository"
	uiapp "gamerflow_service/internal/ui/app"
	userstateapp "gamerflow_service/internal/userstate/app"
	userstaterepo "gamerflow_service/internal/userstate/repository"
	"gamerflow_service/pkg/database"
	"gamerflow_service/pkg/logger"
	"gamerflow_service/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBackend AI backend
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) GetInsight(ctx context.Context, topic string) (assistant.Insight, error) {
	args := m.Called(ctx, topic)
	return args.Get(0).(assistant.Insight), args.Error(1)
}

func (m *MockBackend) DeepAnalyze(ctx context.Context, title, summary string) (string, error) {
	args := m.Called(ctx, title, summary)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) Chat(ctx context.Context, prompt string, history []assistant.ChatMessage) (assistant.ChatReply, error) {
	args := m.Called(ctx, prompt, history)
	return args.Get(0).(assistant.ChatReply), args.Error(1)
}

func (m *MockBackend) GroundedSearch(ctx context.Context, query string) (assistant.SearchReply, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(assistant.SearchReply), args.Error(1)
}

func (m *MockBackend) EditImage(ctx context.Context, img assistant.Image, instruction string) (assistant.Image, bool, error) {
	args := m.Called(ctx, img, instruction)
	return args.Get(0).(assistant.Image), args.Bool(1), args.Error(2)
}

func (m *MockBackend) AnalyzeLiveChat(ctx context.Context, messages []string) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

func newTestApp(t *testing.T, backend *MockBackend) *fiber.App {
	t.Helper()
	logger.SetNewNop()
	ctx := context.Background()

	catalogUC, err := catalogapp.NewCatalogUseCase(ctx, catalogrepo.NewStaticCatalogRepository())
	require.NoError(t, err)

	userStateUC := userstateapp.NewUserStateUseCase(
		userstaterepo.NewStateRepository(database.NewMemoryRepository[[]string]()),
		userstaterepo.NewNoopEventPublisher(), 0, 0)
	sessionUC := playbackapp.NewSessionUseCase(catalogUC,
		playbackrepo.NewSessionRepository(database.NewMemoryRepository[playback.Session]()), 0)
	assistantUC := assistantapp.NewAssistantUseCase(backend)
	conversationUC := assistantapp.NewConversationUseCase(assistantUC, assistantrepo.NewMemoryConversationRepository())
	forgeUC := assistantapp.NewImageForgeUseCase(assistantUC, nil, 0)
	uiUC := uiapp.NewUIUseCase(catalogUC, assistantUC, userStateUC, 0)
	liveUC := liveapp.NewLiveChatUseCase(catalogUC, liverepo.NewMemoryPubSub(), assistantUC)

	app := fiber.New()
	RegisterRoutes(app, Handlers{
		Catalog:   handlers.NewCatalogHandler(catalogUC, userStateUC),
		Playback:  handlers.NewPlaybackHandler(sessionUC),
		UI:        handlers.NewUIHandler(uiUC),
		Assistant: handlers.NewAssistantHandler(catalogUC, assistantUC, conversationUC, forgeUC),
		Live:      handlers.NewLiveHandler(liveapp.NewLiveWebsocketHandler(liveUC)),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestConnectCheck(t *testing.T) {
	app := newTestApp(t, new(MockBackend))

	resp := doJSON(t, app, http.MethodGet, "/", nil)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "gamerflow start!", string(body))
}

func TestCatalogRoutes(t *testing.T) {
	app := newTestApp(t, new(MockBackend))

	games := decode[[]catalog.Game](t, doJSON(t, app, http.MethodGet, "/catalog/games", nil))
	assert.Len(t, games, 4)

	live := decode[[]catalog.Video](t, doJSON(t, app, http.MethodGet, "/catalog/videos?view=live", nil))
	require.Len(t, live, 2)
	for _, v := range live {
		assert.Equal(t, catalog.VideoLive, v.Type)
	}

	found := decode[[]catalog.Video](t, doJSON(t, app, http.MethodGet, "/catalog/videos?q=jett", nil))
	require.Len(t, found, 1)
	assert.Equal(t, "v1", found[0].ID)

	resp := doJSON(t, app, http.MethodGet, "/catalog/videos/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestToggleSavedThenBrowseSaved(t *testing.T) {
	app := newTestApp(t, new(MockBackend))

	resp := doJSON(t, app, http.MethodPost, "/me/saved/v3", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	saved := decode[[]catalog.Video](t, doJSON(t, app, http.MethodGet, "/catalog/videos?view=saved", nil))
	require.Len(t, saved, 1)
	assert.Equal(t, "v3", saved[0].ID)

	resp = doJSON(t, app, http.MethodPost, "/me/liked/ghost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlaybackSessionFlow(t *testing.T) {
	app := newTestApp(t, new(MockBackend))

	resp := doJSON(t, app, http.MethodPost, "/playback/sessions", fiber.Map{"video_id": "v1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	view := decode[playback.SessionView](t, resp)
	assert.Equal(t, 342, view.TotalSeconds)
	assert.Len(t, view.Chapters, 3)

	resp = doJSON(t, app, http.MethodPut, "/playback/sessions/"+view.ID+"/progress", fiber.Map{"progress": 50})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	view = decode[playback.SessionView](t, resp)
	assert.Equal(t, 171, view.CurrentSeconds)
	require.NotNil(t, view.ActiveChapter)
	assert.Equal(t, "02:15", view.ActiveChapter.Timestamp)

	resp = doJSON(t, app, http.MethodPost, "/playback/sessions/"+view.ID+"/notes", fiber.Map{"note": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/playback/sessions/"+view.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/playback/sessions/"+view.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlaybackLiveNotScrubbable(t *testing.T) {
	app := newTestApp(t, new(MockBackend))

	view := decode[playback.SessionView](t, doJSON(t, app, http.MethodPost, "/playback/sessions", fiber.Map{"video_id": "v2"}))
	assert.False(t, view.Scrubbable)

	resp := doJSON(t, app, http.MethodPut, "/playback/sessions/"+view.ID+"/progress", fiber.Map{"progress": 10})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestResolveChapters(t *testing.T) {
	app := newTestApp(t, new(MockBackend))

	resp := doJSON(t, app, http.MethodPost, "/chapters", fiber.Map{
		"text": "00:45 Intro. 02:15 Smokes.", "progress": 40, "total_seconds": 342,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	type result struct {
		Chapters      []playback.Chapter `json:"chapters"`
		ActiveChapter *playback.Chapter  `json:"active_chapter"`
		CurrentTime   string             `json:"current_time"`
	}
	out := decode[result](t, resp)
	assert.Len(t, out.Chapters, 2)
	require.NotNil(t, out.ActiveChapter)
	assert.Equal(t, "02:15", out.ActiveChapter.Timestamp)
	assert.Equal(t, "02:16", out.CurrentTime)
}

type uiResponse struct {
	State struct {
		View     catalog.View       `json:"view"`
		Selected *catalog.Video     `json:"selected"`
		Insight  *assistant.Insight `json:"insight"`
		Saved    []string           `json:"saved"`
	} `json:"state"`
	Visible []catalog.Video `json:"visible"`
}

func TestUISelectVideoLoadsInsight(t *testing.T) {
	backend := new(MockBackend)
	backend.On("GetInsight", mock.Anything, "Valorant").
		Return(assistant.Insight{Tip: "Use smokes", WhyTrending: "New agent", Difficulty: assistant.Hard}, nil)
	app := newTestApp(t, backend)

	resp := doJSON(t, app, http.MethodPost, "/ui/actions", fiber.Map{"type": "select_video", "value": "v1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[uiResponse](t, resp)
	require.NotNil(t, out.State.Selected)
	assert.Equal(t, "v1", out.State.Selected.ID)
	require.NotNil(t, out.State.Insight)
	assert.Equal(t, "Use smokes", out.State.Insight.Tip)
	backend.AssertExpectations(t)
}

func TestUIDispatchErrors(t *testing.T) {
	app := newTestApp(t, new(MockBackend))

	cases := []struct {
		name   string
		body   fiber.Map
		status int
	}{
		{"unknown action", fiber.Map{"type": "launch_rocket"}, http.StatusBadRequest},
		{"insight_loaded is server only", fiber.Map{"type": "insight_loaded", "value": "v1"}, http.StatusBadRequest},
		{"invalid view", fiber.Map{"type": "set_view", "value": "arcade"}, http.StatusBadRequest},
		{"unknown video", fiber.Map{"type": "select_video", "value": "ghost"}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/ui/actions", tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}

	resp := doJSON(t, app, http.MethodPost, "/ui/deep-analyze", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestUISetViewFiltersVisible(t *testing.T) {
	app := newTestApp(t, new(MockBackend))

	out := decode[uiResponse](t, doJSON(t, app, http.MethodPost, "/ui/actions", fiber.Map{"type": "set_view", "value": "live"}))
	assert.Equal(t, catalog.ViewLive, out.State.View)
	assert.Len(t, out.Visible, 2)
}

func TestAssistantInsightFallback(t *testing.T) {
	backend := new(MockBackend)
	backend.On("GetInsight", mock.Anything, catalogapp.FallbackTopic).Return(assistant.Insight{}, errors.New("quota"))
	app := newTestApp(t, backend)

	resp := doJSON(t, app, http.MethodGet, "/assistant/insight", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[assistant.Outcome[assistant.Insight]](t, resp)
	assert.True(t, out.Failed)
	assert.Equal(t, assistant.FallbackInsight(), out.Payload)
}

func TestAssistantConversation(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Chat", mock.Anything, "best jett lineup?", mock.Anything).
		Return(assistant.ChatReply{Text: "Try the A site dash", Thinking: "map knowledge"}, nil)
	app := newTestApp(t, backend)

	resp := doJSON(t, app, http.MethodPost, "/assistant/chat/messages", fiber.Map{"prompt": "best jett lineup?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	reply := decode[assistant.ChatMessage](t, resp)
	assert.Equal(t, assistant.RoleModel, reply.Role)
	assert.Equal(t, "Try the A site dash", reply.Text)

	history := decode[[]assistant.ChatMessage](t, doJSON(t, app, http.MethodGet, "/assistant/chat/messages", nil))
	assert.Len(t, history, 2)

	resp = doJSON(t, app, http.MethodPost, "/assistant/image/messages", fiber.Map{"prompt": "hi"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/assistant/chat/messages", fiber.Map{"prompt": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/assistant/search/switch", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	history = decode[[]assistant.ChatMessage](t, doJSON(t, app, http.MethodGet, "/assistant/chat/messages", nil))
	assert.Empty(t, history)
}

func TestAssistantEditImage(t *testing.T) {
	backend := new(MockBackend)
	backend.On("EditImage", mock.Anything, mock.Anything, "add neon").
		Return(assistant.Image{Data: []byte("edited"), MIMEType: "image/png"}, true, nil)
	app := newTestApp(t, backend)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", "shot.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\nraw"))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("instruction", "add neon"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/assistant/image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[assistant.Outcome[assistant.ImageEdit]](t, resp)
	assert.False(t, out.Failed)
	assert.True(t, out.Payload.Edited)
	assert.Equal(t, []byte("edited"), out.Payload.Data)
	assert.NotEmpty(t, out.Payload.ID)

	// 未設定 minio 時無法讀回
	resp = doJSON(t, app, http.MethodGet, "/assistant/image/"+out.Payload.ID+"/edited", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAssistantEditImageMissingFile(t *testing.T) {
	app := newTestApp(t, new(MockBackend))

	resp := doJSON(t, app, http.MethodPost, "/assistant/image", fiber.Map{"instruction": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfileTokenSelectsProfile(t *testing.T) {
	app := newTestApp(t, new(MockBackend))

	resp := doJSON(t, app, http.MethodPost, "/profile/token", fiber.Map{"profile_id": "ana"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tk := decode[map[string]string](t, resp)["token"]
	require.NotEmpty(t, tk)

	// ana 收藏 v5, 預設 profile 不受影響
	resp = doJSON(t, app, http.MethodPost, "/me/saved/v5?"+middlewares.QueryToken+"="+tk, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	state := decode[map[string][]string](t, doJSON(t, app, http.MethodGet, "/me/state", nil))
	assert.Empty(t, state["saved"])

	state = decode[map[string][]string](t, doJSON(t, app, http.MethodGet, "/me/state?"+middlewares.QueryToken+"="+tk, nil))
	assert.Equal(t, []string{"v5"}, state["saved"])

	resp = doJSON(t, app, http.MethodGet, "/me/state?"+middlewares.QueryToken+"=garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/profile/token", fiber.Map{"profile_id": " "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlaybackSessionScopedToProfile(t *testing.T) {
	app := newTestApp(t, new(MockBackend))

	resp := doJSON(t, app, http.MethodPost, "/profile/token", fiber.Map{"profile_id": "ana"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	auth := "?" + middlewares.QueryToken + "=" + decode[map[string]string](t, resp)["token"]

	resp = doJSON(t, app, http.MethodPost, "/playback/sessions"+auth, fiber.Map{"video_id": "v1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	view := decode[playback.SessionView](t, resp)

	// 預設 profile 看不到 ana 的 session
	resp = doJSON(t, app, http.MethodGet, "/playback/sessions/"+view.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPut, "/playback/sessions/"+view.ID+"/progress", fiber.Map{"progress": 50})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = doJSON(t, app, http.MethodDelete, "/playback/sessions/"+view.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/playback/sessions/"+view.ID+auth, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
