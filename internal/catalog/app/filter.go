package app

import (
	"strings"

	"gamerflow_service/internal/catalog/domain"
	"gamerflow_service/pkg"
)

// FilterCatalog 依 view / live 分類 / 收藏 / 搜尋字串 過濾影片, 保持 catalog 順序
func FilterCatalog(videos []domain.Video, games []domain.Game, q domain.BrowseQuery) []domain.Video {
	base := make([]domain.Video, 0, len(videos))

	switch q.View {
	case domain.ViewLive:
		byID := gameIndex(games)
		allCategories := isAllCategory(q.LiveCategory)
		for _, v := range videos {
			if v.Type != domain.VideoLive {
				continue
			}
			if !allCategories {
				g, ok := byID[v.GameID]
				if !ok || !strings.EqualFold(g.Category, q.LiveCategory) {
					continue
				}
			}
			base = append(base, v)
		}
	case domain.ViewDiscover:
		for _, v := range videos {
			if v.Type == domain.VideoGuide {
				base = append(base, v)
			}
		}
	case domain.ViewSaved:
		for _, v := range videos {
			if pkg.Contains(q.SavedIDs, v.ID) {
				base = append(base, v)
			}
		}
	default:
		base = append(base, videos...)
	}

	query := strings.ToLower(strings.TrimSpace(q.Search))
	if query == "" {
		return base
	}

	matched := make([]domain.Video, 0, len(base))
	for _, v := range base {
		if strings.Contains(strings.ToLower(v.Title), query) || strings.Contains(strings.ToLower(v.Author), query) {
			matched = append(matched, v)
		}
	}
	return matched
}

// RelatedVideos 同一遊戲的其他影片
func RelatedVideos(videos []domain.Video, target domain.Video) []domain.Video {
	out := make([]domain.Video, 0)
	for _, v := range videos {
		if v.GameID == target.GameID && v.ID != target.ID {
			out = append(out, v)
		}
	}
	return out
}

// RelatedGames 同分類的其他遊戲 (分類不分大小寫)
func RelatedGames(games []domain.Game, target domain.Game) []domain.Game {
	out := make([]domain.Game, 0)
	for _, g := range games {
		if g.ID != target.ID && strings.EqualFold(g.Category, target.Category) {
			out = append(out, g)
		}
	}
	return out
}

// isAllCategory "" / "all" / sentinel 都代表不過濾
func isAllCategory(category string) bool {
	c := strings.TrimSpace(category)
	return c == "" || strings.EqualFold(c, domain.LiveCategoryAll) || strings.EqualFold(c, "all")
}

func gameIndex(games []domain.Game) map[string]domain.Game {
	idx := make(map[string]domain.Game, len(games))
	for _, g := range games {
		idx[g.ID] = g
	}
	return idx
}
