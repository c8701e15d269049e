package domain

import "errors"

// VideoType definition content type tag
type VideoType string

const (
	// VideoGuide tutorial / walkthrough
	VideoGuide VideoType = "guide"
	// VideoHighlight clip
	VideoHighlight VideoType = "highlight"
	// VideoLive live stream
	VideoLive VideoType = "live"
)

// View definition browse view selector
type View string

const (
	// ViewHome full catalog
	ViewHome View = "home"
	// ViewLive live items only
	ViewLive View = "live"
	// ViewDiscover guides only
	ViewDiscover View = "discover"
	// ViewSaved saved items only
	ViewSaved View = "saved"
	// ViewProfile profile page (full catalog)
	ViewProfile View = "profile"
	// ViewNeural assistant page (full catalog)
	ViewNeural View = "neural"
)

// DurationLive live 影片的 duration 字串
const DurationLive = "LIVE"

// LiveCategoryAll live 分類中代表全部的 sentinel
const LiveCategoryAll = "Nexus"

// LiveCategories live 頁面可選分類, 第一個為 sentinel
var LiveCategories = []string{LiveCategoryAll, "FPS", "RPG", "Action", "Survival"}

// ErrVideoNotFound video id 不存在
var ErrVideoNotFound = errors.New("video not found")

// Game category record
type Game struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Thumbnail string  `json:"thumbnail"`
	Rating    float64 `json:"rating"`
	Trending  bool    `json:"trending"`
}

// Video content item
type Video struct {
	ID        string    `json:"id"`
	GameID    string    `json:"game_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Views     string    `json:"views"`
	Thumbnail string    `json:"thumbnail"`
	Duration  string    `json:"duration"`
	Type      VideoType `json:"type"`
	Summary   string    `json:"summary,omitempty"`
}

// IsLive live 影片不可拖曳進度
func (v Video) IsLive() bool {
	return v.Type == VideoLive || v.Duration == DurationLive
}

// BrowseQuery catalog filter input
type BrowseQuery struct {
	View         View
	LiveCategory string
	SavedIDs     []string
	Search       string
}

// VideoDetail video with related items
type VideoDetail struct {
	Video         Video   `json:"video"`
	Game          *Game   `json:"game,omitempty"`
	RelatedVideos []Video `json:"related_videos"`
	RelatedGames  []Game  `json:"related_games"`
}
