package app

import (
	"context"
	"strings"
	"sync"
	"time"

	assistant "gamerflow_service/internal/assistant/domain"
	catalog "gamerflow_service/internal/catalog/domain"
	"gamerflow_service/internal/livechat/domain"
	"gamerflow_service/internal/livechat/repository"
	errprocess "gamerflow_service/pkg/err"
	"gamerflow_service/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VideoFinder 取得影片資料
type VideoFinder interface {
	Video(ctx context.Context, videoID string) (*catalog.Video, error)
}

// ChatAnalyzer 聊天室氣氛分析
type ChatAnalyzer interface {
	AnalyzeLiveChat(ctx context.Context, messages []string) assistant.Outcome[string]
}

// LiveChatUseCase 直播聊天室
type LiveChatUseCase interface {
	Join(ctx context.Context, videoID string, handler func(domain.LiveMessage)) error
	Send(ctx context.Context, videoID, senderID, content string) (*domain.LiveMessage, error)
	History(videoID string) []domain.LiveMessage
	Analyze(ctx context.Context, videoID string) assistant.Outcome[string]
}

type liveChatUseCase struct {
	videos   VideoFinder
	pubsub   repository.PubSub
	analyzer ChatAnalyzer
	now      func() time.Time

	mu      sync.Mutex
	history map[string][]domain.LiveMessage
}

// NewLiveChatUseCase create LiveChatUseCase
func NewLiveChatUseCase(videos VideoFinder, pubsub repository.PubSub, analyzer ChatAnalyzer) LiveChatUseCase {
	return &liveChatUseCase{
		videos:   videos,
		pubsub:   pubsub,
		analyzer: analyzer,
		now:      time.Now,
		history:  make(map[string][]domain.LiveMessage),
	}
}

// Join 只有直播可以加入, ctx 結束時離開; 收到的訊息 (含其他 instance) 一併記入 history
func (uc *liveChatUseCase) Join(ctx context.Context, videoID string, handler func(domain.LiveMessage)) error {
	v, err := uc.videos.Video(ctx, videoID)
	if err != nil {
		return err
	}
	if !v.IsLive() {
		return domain.ErrNotLive
	}
	record := func(m domain.LiveMessage) {
		uc.record(videoID, m)
		handler(m)
	}
	if err := uc.pubsub.Subscribe(ctx, domain.Channel(videoID), record); err != nil {
		return errprocess.Wrap("subscribe live channel failed", err)
	}
	return nil
}

func (uc *liveChatUseCase) Send(ctx context.Context, videoID, senderID, content string) (*domain.LiveMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}

	msg := domain.LiveMessage{
		ID:        uuid.New().String(),
		VideoID:   videoID,
		SenderID:  senderID,
		Content:   content,
		Timestamp: uc.now().UnixMilli(),
	}

	if err := uc.pubsub.Publish(ctx, domain.Channel(videoID), msg); err != nil {
		return nil, errprocess.Wrap("publish live message failed", err)
	}
	uc.record(videoID, msg)
	return &msg, nil
}

// record 依 ID 去重, 只保留最近 HistoryLimit 筆
func (uc *liveChatUseCase) record(videoID string, msg domain.LiveMessage) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, m := range uc.history[videoID] {
		if m.ID == msg.ID {
			return
		}
	}
	h := append(uc.history[videoID], msg)
	if len(h) > domain.HistoryLimit {
		h = append([]domain.LiveMessage(nil), h[len(h)-domain.HistoryLimit:]...)
	}
	uc.history[videoID] = h
}

func (uc *liveChatUseCase) History(videoID string) []domain.LiveMessage {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]domain.LiveMessage{}, uc.history[videoID]...)
}

// Analyze 以最近的訊息內容呼叫 AI
func (uc *liveChatUseCase) Analyze(ctx context.Context, videoID string) assistant.Outcome[string] {
	history := uc.History(videoID)
	contents := make([]string, 0, len(history))
	for _, m := range history {
		contents = append(contents, m.Content)
	}
	logger.Log.Debug("live chat analyze", zap.String("video", videoID), zap.Int("messages", len(contents)))
	return uc.analyzer.AnalyzeLiveChat(ctx, contents)
}
