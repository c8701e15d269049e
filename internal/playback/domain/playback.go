package domain

import (
	"errors"
	"time"
)

// LiveDurationSeconds live 影片沒有固定長度, 以此常數當作總長
const LiveDurationSeconds = 3600

var (
	// ErrSessionNotFound session 不存在或已過期
	ErrSessionNotFound = errors.New("playback session not found")
	// ErrNotScrubbable live 影片不可拖曳
	ErrNotScrubbable = errors.New("live content is not scrubbable")
	// ErrEmptyNote note 去除空白後為空
	ErrEmptyNote = errors.New("note is empty")
)

// Chapter 由摘要中的時間戳記推導出的章節
type Chapter struct {
	Timestamp string `json:"timestamp"`
	Label     string `json:"label"`
	Offset    int    `json:"offset"`
}

// Session 單次觀看的播放狀態, 不持久化
type Session struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profile_id"`
	VideoID   string    `json:"video_id"`
	Duration  string    `json:"duration"`
	Live      bool      `json:"live"`
	Progress  float64   `json:"progress"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionView session 加上即時計算的章節資訊
type SessionView struct {
	Session
	TotalSeconds   int       `json:"total_seconds"`
	CurrentSeconds int       `json:"current_seconds"`
	CurrentTime    string    `json:"current_time"`
	Scrubbable     bool      `json:"scrubbable"`
	Chapters       []Chapter `json:"chapters"`
	ActiveChapter  *Chapter  `json:"active_chapter,omitempty"`
}
