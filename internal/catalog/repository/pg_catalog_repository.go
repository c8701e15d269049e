package repository

import (
	"context"

	"gamerflow_service/internal/catalog/domain"
	"gamerflow_service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GameModel games table
type GameModel struct {
	ID        string `gorm:"primaryKey"`
	Position  int    `gorm:"index"`
	Title     string
	Category  string
	Thumbnail string
	Rating    float64
	Trending  bool
}

// TableName gorm table name
func (GameModel) TableName() string { return "games" }

// VideoModel videos table
type VideoModel struct {
	ID        string `gorm:"primaryKey"`
	Position  int    `gorm:"index"`
	GameID    string `gorm:"index"`
	Title     string
	Author    string
	Views     string
	Thumbnail string
	Duration  string
	Type      string
	Summary   string
}

// TableName gorm table name
func (VideoModel) TableName() string { return "videos" }

// PGCatalogRepository catalog source backed by postgres (gorm)
type PGCatalogRepository struct {
	db *gorm.DB
}

// NewPGCatalogRepository create postgres catalog source
func NewPGCatalogRepository(db *gorm.DB) *PGCatalogRepository {
	return &PGCatalogRepository{db: db}
}

// AutoMigrate 建立 / 更新 games, videos 表結構
func (r *PGCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&GameModel{}, &VideoModel{})
}

// SeedIfEmpty 表為空時寫入預設資料
func (r *PGCatalogRepository) SeedIfEmpty(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&VideoModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, g := range SeedGames() {
			m := GameModel{ID: g.ID, Position: i, Title: g.Title, Category: g.Category, Thumbnail: g.Thumbnail, Rating: g.Rating, Trending: g.Trending}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		for i, v := range SeedVideos() {
			m := VideoModel{ID: v.ID, Position: i, GameID: v.GameID, Title: v.Title, Author: v.Author, Views: v.Views,
				Thumbnail: v.Thumbnail, Duration: v.Duration, Type: string(v.Type), Summary: v.Summary}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		logger.Log.Info("catalog seeded", zap.Int("games", len(SeedGames())), zap.Int("videos", len(SeedVideos())))
		return nil
	})
}

func (r *PGCatalogRepository) Games(ctx context.Context) ([]domain.Game, error) {
	var rows []GameModel
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(rows))
	for _, m := range rows {
		games = append(games, domain.Game{
			ID: m.ID, Title: m.Title, Category: m.Category, Thumbnail: m.Thumbnail, Rating: m.Rating, Trending: m.Trending,
		})
	}
	return games, nil
}

func (r *PGCatalogRepository) Videos(ctx context.Context) ([]domain.Video, error) {
	var rows []VideoModel
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	videos := make([]domain.Video, 0, len(rows))
	for _, m := range rows {
		videos = append(videos, domain.Video{
			ID: m.ID, GameID: m.GameID, Title: m.Title, Author: m.Author, Views: m.Views,
			Thumbnail: m.Thumbnail, Duration: m.Duration, Type: domain.VideoType(m.Type), Summary: m.Summary,
		})
	}
	return videos, nil
}
