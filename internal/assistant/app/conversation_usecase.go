package app

import (
	"context"
	"strings"
	"time"

	"gamerflow_service/internal/assistant/domain"
	"gamerflow_service/internal/assistant/repository"
	errprocess "gamerflow_service/pkg/err"
	"gamerflow_service/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConversationUseCase chat / search 工具的對話
type ConversationUseCase interface {
	Send(ctx context.Context, profileID string, tool domain.Tool, prompt string) (*domain.ChatMessage, error)
	History(ctx context.Context, profileID string, tool domain.Tool) ([]domain.ChatMessage, error)
	Clear(ctx context.Context, profileID string, tool domain.Tool) error
	// SwitchTool 切換工具時清除所有對話
	SwitchTool(ctx context.Context, profileID string, tool domain.Tool) error
}

type conversationUseCase struct {
	assistant AssistantUseCase
	repo      repository.ConversationRepository
	now       func() time.Time
}

// NewConversationUseCase create ConversationUseCase
func NewConversationUseCase(assistant AssistantUseCase, repo repository.ConversationRepository) ConversationUseCase {
	return &conversationUseCase{assistant: assistant, repo: repo, now: time.Now}
}

func (uc *conversationUseCase) Send(ctx context.Context, profileID string, tool domain.Tool, prompt string) (*domain.ChatMessage, error) {
	if tool != domain.ToolChat && tool != domain.ToolSearch {
		return nil, domain.ErrInvalidTool
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, domain.ErrEmptyPrompt
	}

	conv, err := uc.repo.Find(ctx, profileID, tool)
	if err != nil {
		return nil, errprocess.Wrap("load conversation failed", err)
	}
	history := conv.Messages

	conv.Messages = append(conv.Messages, uc.message(domain.RoleUser, prompt))

	reply := uc.message(domain.RoleModel, "")
	switch tool {
	case domain.ToolChat:
		out := uc.assistant.Chat(ctx, prompt, history)
		reply.Text = out.Payload.Text
		reply.Thinking = out.Payload.Thinking
		reply.Failed = out.Failed
	case domain.ToolSearch:
		out := uc.assistant.Search(ctx, prompt)
		reply.Text = out.Payload.Text
		reply.Sources = out.Payload.Sources
		reply.Failed = out.Failed
	}
	conv.Messages = append(conv.Messages, reply)
	conv.UpdatedAt = reply.Timestamp

	if err := uc.repo.Save(ctx, conv); err != nil {
		return nil, errprocess.Wrap("save conversation failed", err)
	}

	logger.Log.Debug("assistant message", zap.String("profile", profileID), zap.String("tool", string(tool)),
		zap.Int("messages", len(conv.Messages)), zap.Bool("failed", reply.Failed))
	return &reply, nil
}

func (uc *conversationUseCase) message(role domain.Role, text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Text:      text,
		Timestamp: uc.now().UnixMilli(),
	}
}

func (uc *conversationUseCase) History(ctx context.Context, profileID string, tool domain.Tool) ([]domain.ChatMessage, error) {
	if !tool.Valid() {
		return nil, domain.ErrInvalidTool
	}
	conv, err := uc.repo.Find(ctx, profileID, tool)
	if err != nil {
		return nil, errprocess.Wrap("load conversation failed", err)
	}
	if conv.Messages == nil {
		return []domain.ChatMessage{}, nil
	}
	return conv.Messages, nil
}

func (uc *conversationUseCase) Clear(ctx context.Context, profileID string, tool domain.Tool) error {
	if !tool.Valid() {
		return domain.ErrInvalidTool
	}
	if err := uc.repo.Delete(ctx, profileID, tool); err != nil {
		return errprocess.Wrap("clear conversation failed", err)
	}
	return nil
}

func (uc *conversationUseCase) SwitchTool(ctx context.Context, profileID string, tool domain.Tool) error {
	if !tool.Valid() {
		return domain.ErrInvalidTool
	}
	for _, t := range []domain.Tool{domain.ToolChat, domain.ToolSearch, domain.ToolImage} {
		if err := uc.repo.Delete(ctx, profileID, t); err != nil {
			return errprocess.Wrap("clear conversation failed", err)
		}
	}
	logger.Log.Debug("assistant tool switched", zap.String("profile", profileID), zap.String("tool", string(tool)))
	return nil
}
