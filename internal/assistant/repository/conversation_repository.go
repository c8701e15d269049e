package repository

import (
	"context"
	"errors"

	"gamerflow_service/internal/assistant/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConversationCollection mongo collection name
const ConversationCollection = "assistant_conversations"

// ConversationRepository 對話持久化 (profile + tool 一份)
type ConversationRepository interface {
	Find(ctx context.Context, profileID string, tool domain.Tool) (*domain.Conversation, error)
	Save(ctx context.Context, conv *domain.Conversation) error
	Delete(ctx context.Context, profileID string, tool domain.Tool) error
}

type mongoConversationRepository struct {
	coll *mongo.Collection
}

// NewMongoConversationRepository create conversation repository
func NewMongoConversationRepository(db *mongo.Database) ConversationRepository {
	return &mongoConversationRepository{
		coll: db.Collection(ConversationCollection),
	}
}

// Find 找不到時回傳空對話
func (r *mongoConversationRepository) Find(ctx context.Context, profileID string, tool domain.Tool) (*domain.Conversation, error) {
	filter := bson.M{"profile_id": profileID, "tool": tool}

	var conv domain.Conversation
	err := r.coll.FindOne(ctx, filter).Decode(&conv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &domain.Conversation{ProfileID: profileID, Tool: tool}, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// Save upsert by profile + tool
func (r *mongoConversationRepository) Save(ctx context.Context, conv *domain.Conversation) error {
	filter := bson.M{"profile_id": conv.ProfileID, "tool": conv.Tool}
	update := bson.M{"$set": conv}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoConversationRepository) Delete(ctx context.Context, profileID string, tool domain.Tool) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"profile_id": profileID, "tool": tool})
	return err
}
