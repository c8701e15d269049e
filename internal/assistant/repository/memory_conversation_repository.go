package repository

import (
	"context"
	"sync"

	"gamerflow_service/internal/assistant/domain"
)

type memoryConversationRepository struct {
	mu    sync.Mutex
	convs map[string]domain.Conversation
}

// NewMemoryConversationRepository mongo 未設定時使用
func NewMemoryConversationRepository() ConversationRepository {
	return &memoryConversationRepository{convs: make(map[string]domain.Conversation)}
}

func conversationKey(profileID string, tool domain.Tool) string {
	return profileID + ":" + string(tool)
}

func (r *memoryConversationRepository) Find(_ context.Context, profileID string, tool domain.Tool) (*domain.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.convs[conversationKey(profileID, tool)]
	if !ok {
		return &domain.Conversation{ProfileID: profileID, Tool: tool}, nil
	}
	conv.Messages = append([]domain.ChatMessage(nil), conv.Messages...)
	return &conv, nil
}

func (r *memoryConversationRepository) Save(_ context.Context, conv *domain.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *conv
	c.Messages = append([]domain.ChatMessage(nil), conv.Messages...)
	r.convs[conversationKey(conv.ProfileID, conv.Tool)] = c
	return nil
}

func (r *memoryConversationRepository) Delete(_ context.Context, profileID string, tool domain.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.convs, conversationKey(profileID, tool))
	return nil
}
