package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"gamerflow_service/internal/userstate/domain"
	"gamerflow_service/internal/userstate/repository"
	"gamerflow_service/pkg"
	"gamerflow_service/pkg/database"
	"gamerflow_service/pkg/logger"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// DefaultMaxProfiles 記憶體中保留的 profile 上限, 超過時淘汰最久未用的
const DefaultMaxProfiles = 10000

// UserStateUseCase saved / liked 狀態
type UserStateUseCase interface {
	Load(ctx context.Context, profileID string) domain.UserState
	ToggleSave(ctx context.Context, profileID, videoID string) domain.UserState
	ToggleLike(ctx context.Context, profileID, videoID string) domain.UserState
	Flush(ctx context.Context) error
}

type userStateUseCase struct {
	repo      repository.StateRepository
	publisher repository.EventPublisher
	saver     *Saver

	mu     sync.Mutex
	states *lru.Cache
}

// NewUserStateUseCase create UserStateUseCase with debounced persistence, maxProfiles <= 0 使用 DefaultMaxProfiles
func NewUserStateUseCase(repo repository.StateRepository, publisher repository.EventPublisher, debounce time.Duration, maxProfiles int) UserStateUseCase {
	if publisher == nil {
		publisher = repository.NewNoopEventPublisher()
	}
	if maxProfiles <= 0 {
		maxProfiles = DefaultMaxProfiles
	}
	// size > 0 時 lru.New 不會失敗
	states, _ := lru.New(maxProfiles)
	uc := &userStateUseCase{
		repo:      repo,
		publisher: publisher,
		states:    states,
	}
	uc.saver = NewSaver(debounce, uc.persist, func(profileID string, err error) {
		logger.Log.Error("save user state failed", zap.String("profile", profileID), zap.Error(err))
	})
	return uc
}

func (uc *userStateUseCase) Load(ctx context.Context, profileID string) domain.UserState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.loadLocked(ctx, profileID).Clone()
}

func (uc *userStateUseCase) ToggleSave(ctx context.Context, profileID, videoID string) domain.UserState {
	return uc.toggle(ctx, profileID, videoID, domain.SlotSaved)
}

func (uc *userStateUseCase) ToggleLike(ctx context.Context, profileID, videoID string) domain.UserState {
	return uc.toggle(ctx, profileID, videoID, domain.SlotLiked)
}

func (uc *userStateUseCase) Flush(ctx context.Context) error {
	return uc.saver.Flush(ctx)
}

func (uc *userStateUseCase) toggle(ctx context.Context, profileID, videoID string, slot domain.Slot) domain.UserState {
	uc.mu.Lock()
	state := uc.loadLocked(ctx, profileID)

	var action domain.EngagementAction
	switch slot {
	case domain.SlotSaved:
		action = domain.ActionSave
		if pkg.Contains(state.Saved, videoID) {
			action = domain.ActionUnsave
		}
		state.Saved = pkg.Toggle(state.Saved, videoID)
	case domain.SlotLiked:
		action = domain.ActionLike
		if pkg.Contains(state.Liked, videoID) {
			action = domain.ActionUnlike
		}
		state.Liked = pkg.Toggle(state.Liked, videoID)
	}
	uc.states.Add(profileID, state)
	snapshot := state.Clone()
	uc.mu.Unlock()

	uc.saver.Notify(profileID, snapshot)

	if err := uc.publisher.Publish(domain.NewEngagementEvent(profileID, videoID, action)); err != nil {
		logger.Log.Warn("publish engagement event failed", zap.String("profile", profileID), zap.Error(err))
	}
	return snapshot
}

// loadLocked 快取未命中時才從儲存讀取 (待寫狀態優先), 讀取失敗或資料損壞視為空
func (uc *userStateUseCase) loadLocked(ctx context.Context, profileID string) domain.UserState {
	if v, ok := uc.states.Get(profileID); ok {
		return v.(domain.UserState)
	}

	s, ok := uc.saver.Latest(profileID)
	if !ok {
		s = domain.UserState{
			Saved: uc.readSlot(ctx, domain.SlotSaved, profileID),
			Liked: uc.readSlot(ctx, domain.SlotLiked, profileID),
		}
	}
	uc.states.Add(profileID, s)
	return s
}

func (uc *userStateUseCase) readSlot(ctx context.Context, slot domain.Slot, profileID string) []string {
	ids, err := uc.repo.LoadSlot(ctx, slot, profileID)
	if err != nil {
		if !errors.Is(err, database.ErrKeyNotFound) {
			logger.Log.Warn("user state slot unreadable, using empty", zap.String("slot", string(slot)), zap.String("profile", profileID), zap.Error(err))
		}
		return []string{}
	}
	if ids == nil {
		return []string{}
	}
	return ids
}

func (uc *userStateUseCase) persist(ctx context.Context, profileID string, state domain.UserState) error {
	if err := uc.repo.SaveSlot(ctx, domain.SlotSaved, profileID, state.Saved); err != nil {
		return err
	}
	return uc.repo.SaveSlot(ctx, domain.SlotLiked, profileID, state.Liked)
}
