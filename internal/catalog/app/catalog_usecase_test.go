package app

import (
	"context"
	"errors"
	"testing"

	"gamerflow_service/internal/catalog/domain"
	"gamerflow_service/internal/catalog/repository"
	"gamerflow_service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository Mock CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

// Games mock games
func (m *MockCatalogRepository) Games(ctx context.Context) ([]domain.Game, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Game), args.Error(1)
	}
	return nil, args.Error(1)
}

// Videos mock videos
func (m *MockCatalogRepository) Videos(ctx context.Context) ([]domain.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestNewCatalogUseCase_LoadsOnce(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()

	repo := new(MockCatalogRepository)
	repo.On("Games", ctx).Return(repository.SeedGames(), nil).Once()
	repo.On("Videos", ctx).Return(repository.SeedVideos(), nil).Once()

	uc, err := NewCatalogUseCase(ctx, repo)
	assert.NoError(t, err)

	assert.Len(t, uc.Browse(ctx, domain.BrowseQuery{View: domain.ViewHome}), 5)
	assert.Len(t, uc.Browse(ctx, domain.BrowseQuery{View: domain.ViewDiscover}), 2)
	assert.Len(t, uc.Games(ctx), 4)
	repo.AssertExpectations(t)
}

func TestNewCatalogUseCase_RepoError(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()

	repo := new(MockCatalogRepository)
	repo.On("Games", ctx).Return(nil, errors.New("db down"))

	uc, err := NewCatalogUseCase(ctx, repo)
	assert.Error(t, err)
	assert.Nil(t, uc)
	repo.AssertNotCalled(t, "Videos", ctx)
}

func TestCatalogUseCase_VideoDetail(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()
	uc, err := NewCatalogUseCase(ctx, repository.NewStaticCatalogRepository())
	assert.NoError(t, err)

	detail, err := uc.VideoDetail(ctx, "v1")
	assert.NoError(t, err)
	assert.Equal(t, "Valorant", detail.Game.Title)
	assert.Equal(t, []string{"v4"}, ids(detail.RelatedVideos))
	assert.Empty(t, detail.RelatedGames)

	_, err = uc.VideoDetail(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrVideoNotFound)
}

func TestCatalogUseCase_GameTitle(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()
	uc, err := NewCatalogUseCase(ctx, repository.NewStaticCatalogRepository())
	assert.NoError(t, err)

	assert.Equal(t, "Elden Ring", uc.GameTitle(ctx, "3"))
	assert.Equal(t, FallbackTopic, uc.GameTitle(ctx, "404"))
	assert.Equal(t, domain.LiveCategories, uc.LiveCategories(ctx))
}
