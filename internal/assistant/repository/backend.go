package repository

import (
	"context"

	"gamerflow_service/internal/assistant/domain"
)

// Backend generative AI 後端, 每個方法最多呼叫一次模型, 不重試
type Backend interface {
	GetInsight(ctx context.Context, topic string) (domain.Insight, error)
	DeepAnalyze(ctx context.Context, title, summary string) (string, error)
	Chat(ctx context.Context, prompt string, history []domain.ChatMessage) (domain.ChatReply, error)
	GroundedSearch(ctx context.Context, query string) (domain.SearchReply, error)
	// EditImage 模型沒有回傳圖片時 ok=false
	EditImage(ctx context.Context, img domain.Image, instruction string) (edited domain.Image, ok bool, err error)
	AnalyzeLiveChat(ctx context.Context, messages []string) (string, error)
}
