package app

import (
	"context"
	"sync"

	assistant "gamerflow_service/internal/assistant/domain"
	catalog "gamerflow_service/internal/catalog/domain"
	"gamerflow_service/internal/ui/domain"
	userstate "gamerflow_service/internal/userstate/domain"
	"gamerflow_service/pkg/logger"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// DefaultMaxProfiles 記憶體中保留的 AppState 上限, 淘汰後回到初始畫面
const DefaultMaxProfiles = 10000

// CatalogReader catalog 查詢
type CatalogReader interface {
	Games(ctx context.Context) []catalog.Game
	Videos(ctx context.Context) []catalog.Video
	Video(ctx context.Context, videoID string) (*catalog.Video, error)
	GameTitle(ctx context.Context, gameID string) string
}

// InsightProvider AI insight
type InsightProvider interface {
	Insight(ctx context.Context, topic string) assistant.Outcome[assistant.Insight]
	DeepAnalyze(ctx context.Context, title, summary string) assistant.Outcome[assistant.Insight]
}

// EngagementStore saved / liked 持久化
type EngagementStore interface {
	Load(ctx context.Context, profileID string) userstate.UserState
	ToggleSave(ctx context.Context, profileID, videoID string) userstate.UserState
	ToggleLike(ctx context.Context, profileID, videoID string) userstate.UserState
}

// UIUseCase 每個 profile 一份 AppState
type UIUseCase interface {
	State(ctx context.Context, profileID string) domain.AppState
	Dispatch(ctx context.Context, profileID string, action domain.Action) (domain.AppState, error)
	Visible(ctx context.Context, profileID string) []catalog.Video
	DeepAnalyze(ctx context.Context, profileID string) (domain.AppState, error)
}

type uiUseCase struct {
	catalog  CatalogReader
	insights InsightProvider
	store    EngagementStore

	mu     sync.Mutex
	states *lru.Cache
}

// NewUIUseCase create UIUseCase, maxProfiles <= 0 使用 DefaultMaxProfiles
func NewUIUseCase(catalog CatalogReader, insights InsightProvider, store EngagementStore, maxProfiles int) UIUseCase {
	if maxProfiles <= 0 {
		maxProfiles = DefaultMaxProfiles
	}
	states, _ := lru.New(maxProfiles)
	return &uiUseCase{
		catalog:  catalog,
		insights: insights,
		store:    store,
		states:   states,
	}
}

func (uc *uiUseCase) State(ctx context.Context, profileID string) domain.AppState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.loadLocked(ctx, profileID)
}

// loadLocked saved / liked 以 store 為準
func (uc *uiUseCase) loadLocked(ctx context.Context, profileID string) domain.AppState {
	state := domain.NewAppState()
	if v, ok := uc.states.Get(profileID); ok {
		state = v.(domain.AppState)
	}
	persisted := uc.store.Load(ctx, profileID)
	state.Saved = persisted.Saved
	state.Liked = persisted.Liked
	uc.states.Add(profileID, state)
	return state
}

func (uc *uiUseCase) apply(ctx context.Context, profileID string, action domain.Action) domain.AppState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	next := Reduce(uc.loadLocked(ctx, profileID), action)
	uc.states.Add(profileID, next)
	return next
}

func (uc *uiUseCase) Dispatch(ctx context.Context, profileID string, action domain.Action) (domain.AppState, error) {
	switch action.Type {
	case domain.SetView:
		if !validView(catalog.View(action.Value)) {
			return domain.AppState{}, domain.ErrInvalidView
		}
	case domain.SetSearch, domain.SetLiveCategory, domain.CloseVideo, domain.ClosePiP:
	case domain.ToggleSave:
		if _, err := uc.catalog.Video(ctx, action.Value); err != nil {
			return domain.AppState{}, err
		}
		uc.store.ToggleSave(ctx, profileID, action.Value)
		return uc.State(ctx, profileID), nil
	case domain.ToggleLike:
		if _, err := uc.catalog.Video(ctx, action.Value); err != nil {
			return domain.AppState{}, err
		}
		uc.store.ToggleLike(ctx, profileID, action.Value)
		return uc.State(ctx, profileID), nil
	case domain.SelectVideo, domain.OpenPiP:
		v, err := uc.catalog.Video(ctx, action.Value)
		if err != nil {
			return domain.AppState{}, err
		}
		action.Video = v
	case domain.ExpandPiP:
		if action.Value != "" {
			v, err := uc.catalog.Video(ctx, action.Value)
			if err != nil {
				return domain.AppState{}, err
			}
			action.Video = v
		}
	default:
		return domain.AppState{}, domain.ErrUnknownAction
	}

	state := uc.apply(ctx, profileID, action)
	logger.Log.Debug("ui action", zap.String("profile", profileID), zap.String("type", string(action.Type)), zap.String("value", action.Value))

	if (action.Type == domain.SelectVideo || action.Type == domain.ExpandPiP) && state.Selected != nil {
		state = uc.loadInsight(ctx, profileID, *state.Selected)
	}
	return state, nil
}

// loadInsight AI 呼叫不持有鎖
func (uc *uiUseCase) loadInsight(ctx context.Context, profileID string, video catalog.Video) domain.AppState {
	topic := uc.catalog.GameTitle(ctx, video.GameID)
	out := uc.insights.Insight(ctx, topic)
	insight := out.Payload
	return uc.apply(ctx, profileID, domain.Action{Type: domain.InsightLoaded, Value: video.ID, Insight: &insight})
}

func (uc *uiUseCase) DeepAnalyze(ctx context.Context, profileID string) (domain.AppState, error) {
	state := uc.State(ctx, profileID)
	if state.Selected == nil {
		return domain.AppState{}, domain.ErrNothingSelected
	}
	video := *state.Selected

	uc.mu.Lock()
	loading := uc.loadLocked(ctx, profileID)
	loading.InsightLoading = true
	uc.states.Add(profileID, loading)
	uc.mu.Unlock()

	out := uc.insights.DeepAnalyze(ctx, video.Title, video.Summary)
	insight := out.Payload
	return uc.apply(ctx, profileID, domain.Action{Type: domain.InsightLoaded, Value: video.ID, Insight: &insight}), nil
}

func (uc *uiUseCase) Visible(ctx context.Context, profileID string) []catalog.Video {
	state := uc.State(ctx, profileID)
	return Visible(state, uc.catalog.Videos(ctx), uc.catalog.Games(ctx))
}

func validView(v catalog.View) bool {
	switch v {
	case catalog.ViewHome, catalog.ViewLive, catalog.ViewDiscover, catalog.ViewSaved, catalog.ViewProfile, catalog.ViewNeural:
		return true
	}
	return false
}
