package app

import (
	"context"
	"errors"
	"testing"

	"gamerflow_service/internal/assistant/domain"
	"gamerflow_service/internal/assistant/repository"
	"gamerflow_service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConversationUseCase_Send(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()
	backend := new(MockBackend)
	backend.On("Chat", mock.Anything, "best loadout?", mock.MatchedBy(func(h []domain.ChatMessage) bool { return len(h) == 0 })).
		Return(domain.ChatReply{Text: "SMG", Thinking: "meta"}, nil).Once()
	backend.On("Chat", mock.Anything, "why?", mock.MatchedBy(func(h []domain.ChatMessage) bool {
		return len(h) == 2 && h[0].Role == domain.RoleUser && h[1].Text == "SMG"
	})).Return(domain.ChatReply{}, errors.New("net")).Once()

	uc := NewConversationUseCase(NewAssistantUseCase(backend), repository.NewMemoryConversationRepository())

	msg, err := uc.Send(ctx, "p1", domain.ToolChat, "  best loadout?  ")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleModel, msg.Role)
	assert.Equal(t, "SMG", msg.Text)
	assert.Equal(t, "meta", msg.Thinking)
	assert.NotEmpty(t, msg.ID)

	msg, err = uc.Send(ctx, "p1", domain.ToolChat, "why?")
	assert.NoError(t, err)
	assert.True(t, msg.Failed)
	assert.Equal(t, domain.FallbackChat, msg.Text)

	history, err := uc.History(ctx, "p1", domain.ToolChat)
	assert.NoError(t, err)
	assert.Len(t, history, 4)
	assert.Equal(t, "best loadout?", history[0].Text)

	backend.AssertExpectations(t)
}

func TestConversationUseCase_Validation(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()
	backend := new(MockBackend)
	uc := NewConversationUseCase(NewAssistantUseCase(backend), repository.NewMemoryConversationRepository())

	_, err := uc.Send(ctx, "p1", domain.ToolChat, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyPrompt)

	_, err = uc.Send(ctx, "p1", domain.ToolImage, "hi")
	assert.ErrorIs(t, err, domain.ErrInvalidTool)

	_, err = uc.History(ctx, "p1", "video")
	assert.ErrorIs(t, err, domain.ErrInvalidTool)

	backend.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything, mock.Anything)
}

func TestConversationUseCase_SwitchToolClears(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()
	backend := new(MockBackend)
	backend.On("GroundedSearch", mock.Anything, "news").
		Return(domain.SearchReply{Text: "ok", Sources: []domain.Source{{Title: "t", URI: "https://t"}}}, nil).Once()

	uc := NewConversationUseCase(NewAssistantUseCase(backend), repository.NewMemoryConversationRepository())

	msg, err := uc.Send(ctx, "p1", domain.ToolSearch, "news")
	assert.NoError(t, err)
	assert.Len(t, msg.Sources, 1)

	assert.NoError(t, uc.SwitchTool(ctx, "p1", domain.ToolChat))

	history, err := uc.History(ctx, "p1", domain.ToolSearch)
	assert.NoError(t, err)
	assert.Empty(t, history)
}
