package repository

import (
	"context"
	"encoding/json"
	"sync"

	"gamerflow_service/internal/livechat/domain"
	"gamerflow_service/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// PubSub 直播訊息廣播
type PubSub interface {
	Publish(ctx context.Context, channel string, message domain.LiveMessage) error
	// Subscribe ctx 結束時取消訂閱
	Subscribe(ctx context.Context, channel string, handler func(domain.LiveMessage)) error
}

// RedisPubSub definition redis pub/sub
type RedisPubSub struct {
	client *redis.Client
}

// NewRedisPubSub create RedisPubSub
func NewRedisPubSub(client *redis.Client) *RedisPubSub {
	return &RedisPubSub{client: client}
}

// Publish 將 message 序列化後，發布到指定 channel
func (r *RedisPubSub) Publish(ctx context.Context, channel string, message domain.LiveMessage) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, channel, data).Err()
}

// Subscribe 訂閱 channel，收到訊息後呼叫 handler 處理
func (r *RedisPubSub) Subscribe(ctx context.Context, channel string, handler func(domain.LiveMessage)) error {
	sub := r.client.Subscribe(ctx, channel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return err
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()

		for {
			select {
			case m, ok := <-ch:
				if !ok {
					return
				}

				var msg domain.LiveMessage
				if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
					logger.Log.Warn("live message decode failed", zap.String("channel", channel), zap.Error(err))
					continue
				}
				handler(msg)
			case <-ctx.Done():
				logger.Log.Debug("live channel unsubscribed", zap.String("channel", channel))
				return
			}
		}
	}()
	return nil
}

// MemoryPubSub 單機版本 (storage=memory)
type MemoryPubSub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func(domain.LiveMessage)
}

// NewMemoryPubSub create in-process pub/sub
func NewMemoryPubSub() *MemoryPubSub {
	return &MemoryPubSub{subs: make(map[string]map[int]func(domain.LiveMessage))}
}

// Publish 同步呼叫所有 handler
func (m *MemoryPubSub) Publish(_ context.Context, channel string, message domain.LiveMessage) error {
	m.mu.Lock()
	handlers := make([]func(domain.LiveMessage), 0, len(m.subs[channel]))
	for _, h := range m.subs[channel] {
		handlers = append(handlers, h)
	}
	m.mu.Unlock()

	for _, h := range handlers {
		h(message)
	}
	return nil
}

func (m *MemoryPubSub) Subscribe(ctx context.Context, channel string, handler func(domain.LiveMessage)) error {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	if m.subs[channel] == nil {
		m.subs[channel] = make(map[int]func(domain.LiveMessage))
	}
	m.subs[channel][id] = handler
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subs[channel], id)
		if len(m.subs[channel]) == 0 {
			delete(m.subs, channel)
		}
		m.mu.Unlock()
	}()
	return nil
}

// Subscribers 目前訂閱數
func (m *MemoryPubSub) Subscribers(channel string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs[channel])
}
