package repository

import (
	"context"

	"gamerflow_service/internal/userstate/domain"
	"gamerflow_service/pkg/database"
)

// StateRepository 兩個具名 slot, 各存一個 id 列表
type StateRepository interface {
	LoadSlot(ctx context.Context, slot domain.Slot, profileID string) ([]string, error)
	SaveSlot(ctx context.Context, slot domain.Slot, profileID string, ids []string) error
}

type stateRepository struct {
	kv database.RedisRepository[[]string]
}

// NewStateRepository create StateRepository on top of redis KV
func NewStateRepository(kv database.RedisRepository[[]string]) StateRepository {
	return &stateRepository{kv: kv}
}

// SlotKey slot + ":" + profileID
func SlotKey(slot domain.Slot, profileID string) string {
	return string(slot) + ":" + profileID
}

func (r *stateRepository) LoadSlot(ctx context.Context, slot domain.Slot, profileID string) ([]string, error) {
	return r.kv.Get(ctx, SlotKey(slot, profileID))
}

// SaveSlot 不設 TTL
func (r *stateRepository) SaveSlot(ctx context.Context, slot domain.Slot, profileID string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return r.kv.Set(ctx, SlotKey(slot, profileID), ids, 0)
}
