package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gamerflow_service/internal/assistant/domain"
	"gamerflow_service/pkg/database"
	"gamerflow_service/pkg/logger"
	testtool "gamerflow_service/pkg/test_tool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupMongo(t *testing.T) ConversationRepository {
	t.Helper()
	testtool.RequireIntegration(t)
	logger.SetNewNop()
	ctx := context.Background()

	container, host, port, err := testtool.SetupContainer(ctx, testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": "root",
			"MONGO_INITDB_ROOT_PASSWORD": "example",
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(60 * time.Second),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	mongoDB, err := database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    fmt.Sprintf("mongodb://root:example@%s:%s", host, port),
		RetryCount:    5,
		RetryInterval: 1,
	}, "gamerflow_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongoDB.Close(ctx) })

	return NewMongoConversationRepository(mongoDB.Database)
}

func conversationRepositories() map[string]func(t *testing.T) ConversationRepository {
	return map[string]func(t *testing.T) ConversationRepository{
		"memory": func(*testing.T) ConversationRepository { return NewMemoryConversationRepository() },
		"mongo":  setupMongo,
	}
}

func TestConversationRepository(t *testing.T) {
	for name, newRepo := range conversationRepositories() {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			empty, err := repo.Find(ctx, "ana", domain.ToolChat)
			require.NoError(t, err)
			assert.Equal(t, "ana", empty.ProfileID)
			assert.Empty(t, empty.Messages)

			conv := &domain.Conversation{
				ProfileID: "ana",
				Tool:      domain.ToolChat,
				Messages: []domain.ChatMessage{
					{ID: "1", Role: domain.RoleUser, Text: "hi", Timestamp: 1},
					{ID: "2", Role: domain.RoleModel, Text: "hello", Thinking: "greet", Timestamp: 2},
				},
				UpdatedAt: 2,
			}
			require.NoError(t, repo.Save(ctx, conv))

			// upsert 覆蓋同一份
			conv.Messages = append(conv.Messages, domain.ChatMessage{ID: "3", Role: domain.RoleUser, Text: "again", Timestamp: 3})
			require.NoError(t, repo.Save(ctx, conv))

			got, err := repo.Find(ctx, "ana", domain.ToolChat)
			require.NoError(t, err)
			require.Len(t, got.Messages, 3)
			assert.Equal(t, "greet", got.Messages[1].Thinking)

			other, err := repo.Find(ctx, "ana", domain.ToolSearch)
			require.NoError(t, err)
			assert.Empty(t, other.Messages)

			require.NoError(t, repo.Delete(ctx, "ana", domain.ToolChat))
			got, err = repo.Find(ctx, "ana", domain.ToolChat)
			require.NoError(t, err)
			assert.Empty(t, got.Messages)
		})
	}
}
