package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"gamerflow_service/internal/userstate/domain"
)

// DefaultSaveDebounce 連續修改合併成一次寫入的等待時間
const DefaultSaveDebounce = 300 * time.Millisecond

// SaveFunc 寫入某 profile 的完整狀態
type SaveFunc func(ctx context.Context, profileID string, state domain.UserState) error

// Saver debounced save: 每個 profile 在最後一次 Notify 後 delay 才寫入最新狀態
// 同一 profile 同時只有一個寫入, 最後一次 Notify 的狀態一定是最後寫入的
type Saver struct {
	delay time.Duration
	save  SaveFunc

	mu      sync.Mutex
	idle    *sync.Cond
	gen     uint64
	pending map[string]*pendingSave
	onError func(profileID string, err error)
}

type pendingSave struct {
	state    domain.UserState
	timer    *time.Timer
	gen      uint64
	inflight bool
}

// NewSaver create Saver, delay <= 0 使用 DefaultSaveDebounce
func NewSaver(delay time.Duration, save SaveFunc, onError func(profileID string, err error)) *Saver {
	if delay <= 0 {
		delay = DefaultSaveDebounce
	}
	if onError == nil {
		onError = func(string, error) {}
	}
	s := &Saver{
		delay:   delay,
		save:    save,
		pending: make(map[string]*pendingSave),
		onError: onError,
	}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// Notify 狀態變更通知, 重設該 profile 的計時器
func (s *Saver) Notify(profileID string, state domain.UserState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[profileID]
	if !ok {
		p = &pendingSave{}
		s.pending[profileID] = p
	} else if p.timer != nil {
		p.timer.Stop()
	}

	p.state = state.Clone()
	s.gen++
	p.gen = s.gen
	s.armLocked(profileID, p)
}

func (s *Saver) armLocked(profileID string, p *pendingSave) {
	gen := p.gen
	p.timer = time.AfterFunc(s.delay, func() { s.fire(profileID, gen) })
}

// Latest 尚未寫入的最新狀態
func (s *Saver) Latest(profileID string) (domain.UserState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[profileID]
	if !ok {
		return domain.UserState{}, false
	}
	return p.state.Clone(), true
}

// Pending 尚未寫入 (含寫入中) 的 profile 數
func (s *Saver) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Saver) fire(profileID string, gen uint64) {
	s.mu.Lock()
	p, ok := s.pending[profileID]
	if !ok || p.gen != gen {
		s.mu.Unlock()
		return
	}
	if p.inflight {
		// 前一次寫入尚未完成, 延後重試
		s.armLocked(profileID, p)
		s.mu.Unlock()
		return
	}
	state := s.beginLocked(p)
	s.mu.Unlock()

	if err := s.write(context.Background(), profileID, p, gen, state); err != nil {
		s.onError(profileID, err)
	}
}

func (s *Saver) beginLocked(p *pendingSave) domain.UserState {
	p.inflight = true
	return p.state
}

// write 寫入 state; 期間若有新的 Notify, entry 保留給下一次寫入
func (s *Saver) write(ctx context.Context, profileID string, p *pendingSave, gen uint64, state domain.UserState) error {
	err := s.save(ctx, profileID, state)

	s.mu.Lock()
	p.inflight = false
	if p.gen == gen && s.pending[profileID] == p {
		delete(s.pending, profileID)
	}
	s.idle.Broadcast()
	s.mu.Unlock()
	return err
}

// Flush 立即寫入所有待寫狀態 (shutdown 使用), 寫入中的 profile 等其完成後再寫最新狀態
func (s *Saver) Flush(ctx context.Context) error {
	var errs []error
	s.mu.Lock()
	for len(s.pending) > 0 {
		id, p := s.nextIdleLocked()
		if p == nil {
			s.idle.Wait()
			continue
		}
		if p.timer != nil {
			p.timer.Stop()
		}
		gen := p.gen
		state := s.beginLocked(p)
		s.mu.Unlock()

		if err := s.write(ctx, id, p, gen, state); err != nil {
			s.onError(id, err)
			errs = append(errs, err)
		}
		s.mu.Lock()
	}
	s.mu.Unlock()
	return errors.Join(errs...)
}

func (s *Saver) nextIdleLocked() (string, *pendingSave) {
	for id, p := range s.pending {
		if !p.inflight {
			return id, p
		}
	}
	return "", nil
}
