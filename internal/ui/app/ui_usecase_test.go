package app

import (
	"context"
	"errors"
	"testing"
	"time"

	assistant "gamerflow_service/internal/assistant/domain"
	catalogapp "gamerflow_service/internal/catalog/app"
	catalog "gamerflow_service/internal/catalog/domain"
	catalogrepo "gamerflow_service/internal/catalog/repository"
	"gamerflow_service/internal/ui/domain"
	userstateapp "gamerflow_service/internal/userstate/app"
	userstaterepo "gamerflow_service/internal/userstate/repository"
	"gamerflow_service/pkg/database"
	"gamerflow_service/pkg/logger"

	lru "github.com/hashicorp/golang-lru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInsightProvider Mock InsightProvider
type MockInsightProvider struct {
	mock.Mock
}

// Insight mock
func (m *MockInsightProvider) Insight(ctx context.Context, topic string) assistant.Outcome[assistant.Insight] {
	return m.Called(ctx, topic).Get(0).(assistant.Outcome[assistant.Insight])
}

// DeepAnalyze mock
func (m *MockInsightProvider) DeepAnalyze(ctx context.Context, title, summary string) assistant.Outcome[assistant.Insight] {
	return m.Called(ctx, title, summary).Get(0).(assistant.Outcome[assistant.Insight])
}

func newTestUI(t *testing.T, insights InsightProvider) UIUseCase {
	logger.SetNewNop()
	cat, err := catalogapp.NewCatalogUseCase(context.Background(), catalogrepo.NewStaticCatalogRepository())
	require.NoError(t, err)
	store := userstateapp.NewUserStateUseCase(
		userstaterepo.NewStateRepository(database.NewMemoryRepository[[]string]()),
		userstaterepo.NewNoopEventPublisher(),
		time.Hour,
		0,
	)
	return NewUIUseCase(cat, insights, store, 0)
}

func TestUIUseCase_SelectFetchesInsight(t *testing.T) {
	ctx := context.Background()
	insights := new(MockInsightProvider)
	tip := assistant.Insight{Tip: "Use smokes", WhyTrending: "Champions", Difficulty: assistant.Hard}
	insights.On("Insight", mock.Anything, "Valorant").Return(assistant.Succeed(tip)).Once()

	uc := newTestUI(t, insights)
	state, err := uc.Dispatch(ctx, "p1", domain.Action{Type: domain.SelectVideo, Value: "v1"})

	assert.NoError(t, err)
	assert.Equal(t, "v1", state.Selected.ID)
	assert.False(t, state.InsightLoading)
	assert.Equal(t, &tip, state.Insight)
	insights.AssertExpectations(t)
}

func TestUIUseCase_ExpandPiPUsesFallbackOnFailure(t *testing.T) {
	ctx := context.Background()
	insights := new(MockInsightProvider)
	insights.On("Insight", mock.Anything, "Elden Ring").
		Return(assistant.Fail(assistant.FallbackInsight(), errors.New("quota"))).Once()

	uc := newTestUI(t, insights)
	state, err := uc.Dispatch(ctx, "p1", domain.Action{Type: domain.OpenPiP, Value: "v2"})
	assert.NoError(t, err)
	assert.Equal(t, "v2", state.PiP.ID)

	state, err = uc.Dispatch(ctx, "p1", domain.Action{Type: domain.ExpandPiP})
	assert.NoError(t, err)
	assert.Nil(t, state.PiP)
	assert.Equal(t, "v2", state.Selected.ID)
	assert.Equal(t, assistant.FallbackTip, state.Insight.Tip)
}

func TestUIUseCase_TogglePersistsAndFilters(t *testing.T) {
	ctx := context.Background()
	uc := newTestUI(t, new(MockInsightProvider))

	_, err := uc.Dispatch(ctx, "p1", domain.Action{Type: domain.ToggleSave, Value: "v3"})
	assert.NoError(t, err)
	state, err := uc.Dispatch(ctx, "p1", domain.Action{Type: domain.SetView, Value: "saved"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"v3"}, state.Saved)

	visible := uc.Visible(ctx, "p1")
	assert.Len(t, visible, 1)
	assert.Equal(t, "v3", visible[0].ID)

	// 其他 profile 不受影響
	assert.Empty(t, uc.State(ctx, "p2").Saved)
	assert.Equal(t, catalog.ViewHome, uc.State(ctx, "p2").View)
}

func TestUIUseCase_Errors(t *testing.T) {
	ctx := context.Background()
	uc := newTestUI(t, new(MockInsightProvider))

	_, err := uc.Dispatch(ctx, "p1", domain.Action{Type: domain.SetView, Value: "arcade"})
	assert.ErrorIs(t, err, domain.ErrInvalidView)

	_, err = uc.Dispatch(ctx, "p1", domain.Action{Type: "jump"})
	assert.ErrorIs(t, err, domain.ErrUnknownAction)

	_, err = uc.Dispatch(ctx, "p1", domain.Action{Type: domain.SelectVideo, Value: "nope"})
	assert.ErrorIs(t, err, catalog.ErrVideoNotFound)

	_, err = uc.DeepAnalyze(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrNothingSelected)
}

func TestUIUseCase_DeepAnalyze(t *testing.T) {
	ctx := context.Background()
	insights := new(MockInsightProvider)
	insights.On("Insight", mock.Anything, "Cyberpunk 2077").Return(assistant.Succeed(assistant.FallbackInsight())).Once()
	deep := assistant.Insight{Tip: "Analysis failed.", WhyTrending: assistant.DeepAnalysisHeadline, Difficulty: assistant.Hard}
	insights.On("DeepAnalyze", mock.Anything, "Cyberpunk Phantom Liberty: El final secreto", mock.Anything).
		Return(assistant.Fail(deep, errors.New("503"))).Once()

	uc := newTestUI(t, insights)
	_, err := uc.Dispatch(ctx, "p1", domain.Action{Type: domain.SelectVideo, Value: "v3"})
	require.NoError(t, err)

	state, err := uc.DeepAnalyze(ctx, "p1")
	assert.NoError(t, err)
	assert.False(t, state.InsightLoading)
	assert.Equal(t, &deep, state.Insight)
	insights.AssertExpectations(t)
}

func TestUIUseCase_CloseWhileInsightPending(t *testing.T) {
	ctx := context.Background()
	insights := new(MockInsightProvider)
	uc := newTestUI(t, insights)

	closeVideo := func(mock.Arguments) {
		_, err := uc.Dispatch(ctx, "p1", domain.Action{Type: domain.CloseVideo})
		require.NoError(t, err)
	}
	insights.On("Insight", mock.Anything, "Valorant").
		Run(closeVideo).Return(assistant.Succeed(assistant.FallbackInsight())).Once()

	state, err := uc.Dispatch(ctx, "p1", domain.Action{Type: domain.SelectVideo, Value: "v1"})
	assert.NoError(t, err)
	assert.Nil(t, state.Selected)
	assert.False(t, state.InsightLoading)
	assert.Nil(t, state.Insight)

	insights.On("Insight", mock.Anything, "Valorant").Return(assistant.Succeed(assistant.FallbackInsight())).Once()
	insights.On("DeepAnalyze", mock.Anything, mock.Anything, mock.Anything).
		Run(closeVideo).Return(assistant.Succeed(assistant.FallbackInsight())).Once()

	_, err = uc.Dispatch(ctx, "p1", domain.Action{Type: domain.SelectVideo, Value: "v1"})
	require.NoError(t, err)
	state, err = uc.DeepAnalyze(ctx, "p1")
	assert.NoError(t, err)
	assert.Nil(t, state.Selected)
	assert.False(t, state.InsightLoading)
	assert.False(t, uc.State(ctx, "p1").InsightLoading)
	insights.AssertExpectations(t)
}

func TestUIUseCase_EvictsIdleProfiles(t *testing.T) {
	ctx := context.Background()
	uc := newTestUI(t, new(MockInsightProvider))
	uc.(*uiUseCase).states, _ = lru.New(2)

	for _, id := range []string{"a", "b", "c"} {
		_, err := uc.Dispatch(ctx, id, domain.Action{Type: domain.SetSearch, Value: "q-" + id})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, uc.(*uiUseCase).states.Len())

	// 被淘汰的 profile 回到初始狀態
	assert.Equal(t, "", uc.State(ctx, "a").Search)
	assert.Equal(t, "q-c", uc.State(ctx, "c").Search)
}
