package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// memoryRepository RedisRepository 的單機版本, storage=memory 或測試使用
// 值以 JSON 保存, 行為與 redis 一致 (損壞資料回傳 unmarshal error)
type memoryRepository[T any] struct {
	mu    sync.Mutex
	items map[string]memoryItem
	now   func() time.Time
}

type memoryItem struct {
	data     []byte
	expireAt time.Time
}

// NewMemoryRepository create in-process RedisRepository
func NewMemoryRepository[T any]() RedisRepository[T] {
	return &memoryRepository[T]{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
}

// SetRaw 直接寫入原始位元組
func SetRaw[T any](repo RedisRepository[T], key string, raw []byte) {
	if m, ok := repo.(*memoryRepository[T]); ok {
		m.mu.Lock()
		m.items[key] = memoryItem{data: raw}
		m.mu.Unlock()
	}
}

func (m *memoryRepository[T]) Set(_ context.Context, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	item := memoryItem{data: data}
	if ttl > 0 {
		item.expireAt = m.now().Add(ttl)
	}
	m.items[key] = item
	return nil
}

func (m *memoryRepository[T]) Get(_ context.Context, key string) (T, error) {
	var zeroValue T
	item, ok := m.load(key)
	if !ok {
		return zeroValue, ErrKeyNotFound
	}

	var result T
	if err := json.Unmarshal(item.data, &result); err != nil {
		return zeroValue, fmt.Errorf("failed to unmarshal key %s: %w", key, err)
	}
	return result, nil
}

func (m *memoryRepository[T]) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *memoryRepository[T]) GetTTL(_ context.Context, key string) (int, error) {
	item, ok := m.load(key)
	if !ok || item.expireAt.IsZero() {
		return 0, nil
	}
	return int(item.expireAt.Sub(m.now()).Seconds()), nil
}

func (m *memoryRepository[T]) ExtendTTL(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[key]
	if !ok {
		return nil
	}
	item.expireAt = m.now().Add(ttl)
	m.items[key] = item
	return nil
}

// load 讀取並清除過期 key
func (m *memoryRepository[T]) load(key string) (memoryItem, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[key]
	if !ok {
		return memoryItem{}, false
	}
	if !item.expireAt.IsZero() && !m.now().Before(item.expireAt) {
		delete(m.items, key)
		return memoryItem{}, false
	}
	return item, true
}
