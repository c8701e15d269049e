package domain

import "time"

// Slot 持久化欄位名稱
type Slot string

const (
	// SlotSaved saved video ids
	SlotSaved Slot = "gamerflow_saved_videos"
	// SlotLiked liked video ids
	SlotLiked Slot = "gamerflow_liked_videos"
)

// EngagementQueue engagement 事件的 queue 名稱
const EngagementQueue = "engagement"

// UserState saved / liked id 列表, 順序即加入順序
type UserState struct {
	Saved []string `json:"saved"`
	Liked []string `json:"liked"`
}

// Clone deep copy
func (s UserState) Clone() UserState {
	return UserState{
		Saved: append([]string{}, s.Saved...),
		Liked: append([]string{}, s.Liked...),
	}
}

// EngagementAction toggle 類型
type EngagementAction string

const (
	// ActionSave 加入收藏
	ActionSave EngagementAction = "save"
	// ActionUnsave 取消收藏
	ActionUnsave EngagementAction = "unsave"
	// ActionLike 按讚
	ActionLike EngagementAction = "like"
	// ActionUnlike 取消讚
	ActionUnlike EngagementAction = "unlike"
)

// EngagementEvent toggle 後發布的事件
type EngagementEvent struct {
	ProfileID string           `json:"profile_id"`
	VideoID   string           `json:"video_id"`
	Action    EngagementAction `json:"action"`
	Timestamp int64            `json:"timestamp"`
}

// NewEngagementEvent create event with current time
func NewEngagementEvent(profileID, videoID string, action EngagementAction) EngagementEvent {
	return EngagementEvent{ProfileID: profileID, VideoID: videoID, Action: action, Timestamp: time.Now().Unix()}
}
