package app

import (
	catalogapp "gamerflow_service/internal/catalog/app"
	catalog "gamerflow_service/internal/catalog/domain"
	"gamerflow_service/internal/ui/domain"
	"gamerflow_service/pkg"
)

// Reduce 純函式, 不修改傳入的 state
func Reduce(state domain.AppState, action domain.Action) domain.AppState {
	next := state

	switch action.Type {
	case domain.SetView:
		next.View = catalog.View(action.Value)
	case domain.SetSearch:
		next.Search = action.Value
	case domain.SetLiveCategory:
		next.LiveCategory = action.Value
	case domain.ToggleSave:
		next.Saved = pkg.Toggle(state.Saved, action.Value)
	case domain.ToggleLike:
		next.Liked = pkg.Toggle(state.Liked, action.Value)
	case domain.SelectVideo:
		if action.Video == nil {
			return next
		}
		next = selectVideo(next, action.Video)
	case domain.CloseVideo:
		next = clearSelection(next)
	case domain.OpenPiP:
		if action.Video == nil {
			return next
		}
		if sameVideo(state.Selected, action.Video.ID) {
			next = clearSelection(next)
		}
		next.PiP = action.Video
	case domain.ClosePiP:
		next.PiP = nil
	case domain.ExpandPiP:
		video := action.Video
		if video == nil {
			video = state.PiP
		}
		next.PiP = nil
		if video != nil {
			next = selectVideo(next, video)
		}
	case domain.InsightLoaded:
		// 只接受目前選取影片的結果; 已無選取時仍結束 loading
		if action.Value != "" && !sameVideo(state.Selected, action.Value) {
			if state.Selected == nil {
				next.InsightLoading = false
			}
			return next
		}
		next.Insight = action.Insight
		next.InsightLoading = false
	}

	return next
}

func selectVideo(state domain.AppState, video *catalog.Video) domain.AppState {
	if sameVideo(state.PiP, video.ID) {
		state.PiP = nil
	}
	state.Selected = video
	state.InsightLoading = true
	state.Insight = nil
	return state
}

func clearSelection(state domain.AppState) domain.AppState {
	state.Selected = nil
	state.Insight = nil
	state.InsightLoading = false
	return state
}

func sameVideo(v *catalog.Video, id string) bool {
	return v != nil && v.ID == id
}

// Visible 依 state 過濾 catalog
func Visible(state domain.AppState, videos []catalog.Video, games []catalog.Game) []catalog.Video {
	return catalogapp.FilterCatalog(videos, games, catalog.BrowseQuery{
		View:         state.View,
		LiveCategory: state.LiveCategory,
		SavedIDs:     state.Saved,
		Search:       state.Search,
	})
}
