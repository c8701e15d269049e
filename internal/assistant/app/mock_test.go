package app

import (
	"context"
	"time"

	"gamerflow_service/internal/assistant/domain"

	"github.com/stretchr/testify/mock"
)

// MockBackend Mock repository.Backend
type MockBackend struct {
	mock.Mock
}

// GetInsight mock
func (m *MockBackend) GetInsight(ctx context.Context, topic string) (domain.Insight, error) {
	args := m.Called(ctx, topic)
	return args.Get(0).(domain.Insight), args.Error(1)
}

// DeepAnalyze mock
func (m *MockBackend) DeepAnalyze(ctx context.Context, title, summary string) (string, error) {
	args := m.Called(ctx, title, summary)
	return args.String(0), args.Error(1)
}

// Chat mock
func (m *MockBackend) Chat(ctx context.Context, prompt string, history []domain.ChatMessage) (domain.ChatReply, error) {
	args := m.Called(ctx, prompt, history)
	return args.Get(0).(domain.ChatReply), args.Error(1)
}

// GroundedSearch mock
func (m *MockBackend) GroundedSearch(ctx context.Context, query string) (domain.SearchReply, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.SearchReply), args.Error(1)
}

// EditImage mock
func (m *MockBackend) EditImage(ctx context.Context, img domain.Image, instruction string) (domain.Image, bool, error) {
	args := m.Called(ctx, img, instruction)
	return args.Get(0).(domain.Image), args.Bool(1), args.Error(2)
}

// AnalyzeLiveChat mock
func (m *MockBackend) AnalyzeLiveChat(ctx context.Context, messages []string) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

// MockMinIO Mock database.MinIOClientRepo
type MockMinIO struct {
	mock.Mock
}

// PutBytes mock
func (m *MockMinIO) PutBytes(ctx context.Context, objectName string, data []byte, contentType string) error {
	return m.Called(ctx, objectName, data, contentType).Error(0)
}

// GetBytes mock
func (m *MockMinIO) GetBytes(ctx context.Context, objectName string) ([]byte, error) {
	args := m.Called(ctx, objectName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// PresignGetURL mock
func (m *MockMinIO) PresignGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.String(0), args.Error(1)
}
