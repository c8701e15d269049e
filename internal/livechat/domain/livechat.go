package domain

import "errors"

// HistoryLimit 每個直播保留的訊息數
const HistoryLimit = 50

// ChannelPrefix redis channel 前綴
const ChannelPrefix = "live:"

// Channel live:<videoId>
func Channel(videoID string) string {
	return ChannelPrefix + videoID
}

// Action websocket request action
type Action string

const (
	// SendMessage websocket action send_message
	SendMessage Action = "send_message"
	// Analyze websocket action analyze
	Analyze Action = "analyze"
	// History websocket action history
	History Action = "history"
	// NotifyMessage websocket action notify_message
	NotifyMessage Action = "notify_message"
)

// LiveMessage 直播聊天室訊息
type LiveMessage struct {
	ID        string `json:"id"`
	VideoID   string `json:"video_id"`
	SenderID  string `json:"sender_id"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// WSRequest websocket Request
type WSRequest struct {
	Action  string `json:"action"`
	Content string `json:"content"`
}

// WSResponse websocket Response
type WSResponse struct {
	Action  string                 `json:"action"`
	Success bool                   `json:"success"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

var (
	// ErrNotLive 影片不是直播
	ErrNotLive = errors.New("video is not live")
	// ErrEmptyMessage 空訊息
	ErrEmptyMessage = errors.New("message is empty")
)
