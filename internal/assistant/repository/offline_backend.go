package repository

import (
	"context"

	"gamerflow_service/internal/assistant/domain"
)

type offlineBackend struct{}

// NewOfflineBackend 沒有 api key 時使用, 每個呼叫都回傳 ErrBackendOffline
func NewOfflineBackend() Backend {
	return offlineBackend{}
}

func (offlineBackend) GetInsight(context.Context, string) (domain.Insight, error) {
	return domain.Insight{}, domain.ErrBackendOffline
}

func (offlineBackend) DeepAnalyze(context.Context, string, string) (string, error) {
	return "", domain.ErrBackendOffline
}

func (offlineBackend) Chat(context.Context, string, []domain.ChatMessage) (domain.ChatReply, error) {
	return domain.ChatReply{}, domain.ErrBackendOffline
}

func (offlineBackend) GroundedSearch(context.Context, string) (domain.SearchReply, error) {
	return domain.SearchReply{}, domain.ErrBackendOffline
}

func (offlineBackend) EditImage(context.Context, domain.Image, string) (domain.Image, bool, error) {
	return domain.Image{}, false, domain.ErrBackendOffline
}

func (offlineBackend) AnalyzeLiveChat(context.Context, []string) (string, error) {
	return "", domain.ErrBackendOffline
}
