package domain

import (
	"errors"

	assistant "gamerflow_service/internal/assistant/domain"
	catalog "gamerflow_service/internal/catalog/domain"
)

// AppState 單一 profile 的瀏覽狀態
type AppState struct {
	View           catalog.View       `json:"view"`
	Search         string             `json:"search"`
	LiveCategory   string             `json:"live_category"`
	Saved          []string           `json:"saved"`
	Liked          []string           `json:"liked"`
	Selected       *catalog.Video     `json:"selected,omitempty"`
	PiP            *catalog.Video     `json:"pip,omitempty"`
	InsightLoading bool               `json:"insight_loading"`
	Insight        *assistant.Insight `json:"insight,omitempty"`
}

// NewAppState 初始狀態: home, Nexus
func NewAppState() AppState {
	return AppState{
		View:         catalog.ViewHome,
		LiveCategory: catalog.LiveCategoryAll,
		Saved:        []string{},
		Liked:        []string{},
	}
}

// ActionType reducer action
type ActionType string

const (
	SetView         ActionType = "set_view"
	SetSearch       ActionType = "set_search"
	SetLiveCategory ActionType = "set_live_category"
	ToggleSave      ActionType = "toggle_save"
	ToggleLike      ActionType = "toggle_like"
	SelectVideo     ActionType = "select_video"
	CloseVideo      ActionType = "close_video"
	OpenPiP         ActionType = "open_pip"
	ClosePiP        ActionType = "close_pip"
	ExpandPiP       ActionType = "expand_pip"
	InsightLoaded   ActionType = "insight_loaded"
)

// Action reducer input
// Value 依 Type 代表 view / search / category / video id
type Action struct {
	Type    ActionType         `json:"type"`
	Value   string             `json:"value"`
	Video   *catalog.Video     `json:"-"`
	Insight *assistant.Insight `json:"-"`
}

var (
	// ErrUnknownAction action type 不存在
	ErrUnknownAction = errors.New("unknown ui action")
	// ErrInvalidView view 不存在
	ErrInvalidView = errors.New("invalid view")
	// ErrNothingSelected 沒有選取影片
	ErrNothingSelected = errors.New("no video selected")
)
