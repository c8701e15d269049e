package app

import (
	"context"

	"gamerflow_service/internal/catalog/domain"
	"gamerflow_service/internal/catalog/repository"
	errprocess "gamerflow_service/pkg/err"
	"gamerflow_service/pkg/logger"

	"go.uber.org/zap"
)

// FallbackTopic 找不到遊戲時給 AI 的主題
const FallbackTopic = "Gaming"

// CatalogUseCase 封裝 catalog 查詢
type CatalogUseCase interface {
	Games(ctx context.Context) []domain.Game
	Videos(ctx context.Context) []domain.Video
	LiveCategories(ctx context.Context) []string
	Browse(ctx context.Context, q domain.BrowseQuery) []domain.Video
	Video(ctx context.Context, videoID string) (*domain.Video, error)
	VideoDetail(ctx context.Context, videoID string) (*domain.VideoDetail, error)
	GameTitle(ctx context.Context, gameID string) string
}

type catalogUseCase struct {
	games  []domain.Game
	videos []domain.Video
	byID   map[string]domain.Game
}

// NewCatalogUseCase 啟動時讀取一次 catalog, 之後不再變動
func NewCatalogUseCase(ctx context.Context, repo repository.CatalogRepository) (CatalogUseCase, error) {
	games, err := repo.Games(ctx)
	if err != nil {
		return nil, errprocess.Wrap("load games failed", err)
	}
	videos, err := repo.Videos(ctx)
	if err != nil {
		return nil, errprocess.Wrap("load videos failed", err)
	}

	logger.Log.Info("catalog loaded", zap.Int("games", len(games)), zap.Int("videos", len(videos)))
	return &catalogUseCase{
		games:  games,
		videos: videos,
		byID:   gameIndex(games),
	}, nil
}

func (uc *catalogUseCase) Games(_ context.Context) []domain.Game {
	out := make([]domain.Game, len(uc.games))
	copy(out, uc.games)
	return out
}

func (uc *catalogUseCase) Videos(_ context.Context) []domain.Video {
	out := make([]domain.Video, len(uc.videos))
	copy(out, uc.videos)
	return out
}

func (uc *catalogUseCase) LiveCategories(_ context.Context) []string {
	out := make([]string, len(domain.LiveCategories))
	copy(out, domain.LiveCategories)
	return out
}

func (uc *catalogUseCase) Browse(_ context.Context, q domain.BrowseQuery) []domain.Video {
	return FilterCatalog(uc.videos, uc.games, q)
}

func (uc *catalogUseCase) Video(_ context.Context, videoID string) (*domain.Video, error) {
	for _, v := range uc.videos {
		if v.ID == videoID {
			found := v
			return &found, nil
		}
	}
	return nil, domain.ErrVideoNotFound
}

func (uc *catalogUseCase) VideoDetail(ctx context.Context, videoID string) (*domain.VideoDetail, error) {
	v, err := uc.Video(ctx, videoID)
	if err != nil {
		return nil, err
	}

	detail := &domain.VideoDetail{
		Video:         *v,
		RelatedVideos: RelatedVideos(uc.videos, *v),
		RelatedGames:  []domain.Game{},
	}
	if g, ok := uc.byID[v.GameID]; ok {
		detail.Game = &g
		detail.RelatedGames = RelatedGames(uc.games, g)
	}
	return detail, nil
}

func (uc *catalogUseCase) GameTitle(_ context.Context, gameID string) string {
	if g, ok := uc.byID[gameID]; ok && g.Title != "" {
		return g.Title
	}
	return FallbackTopic
}
