package repository

import (
	"context"

	"gamerflow_service/internal/catalog/domain"
)

// CatalogRepository definition catalog source, 回傳順序即 catalog 順序
type CatalogRepository interface {
	Games(ctx context.Context) ([]domain.Game, error)
	Videos(ctx context.Context) ([]domain.Video, error)
}

type staticCatalogRepository struct {
	games  []domain.Game
	videos []domain.Video
}

// NewStaticCatalogRepository 使用內建假資料
func NewStaticCatalogRepository() CatalogRepository {
	return &staticCatalogRepository{
		games:  SeedGames(),
		videos: SeedVideos(),
	}
}

func (r *staticCatalogRepository) Games(_ context.Context) ([]domain.Game, error) {
	out := make([]domain.Game, len(r.games))
	copy(out, r.games)
	return out, nil
}

func (r *staticCatalogRepository) Videos(_ context.Context) ([]domain.Video, error) {
	out := make([]domain.Video, len(r.videos))
	copy(out, r.videos)
	return out, nil
}
