package app

import (
	"context"
	"errors"
	"strings"
	"time"

	catalog "gamerflow_service/internal/catalog/domain"
	"gamerflow_service/internal/playback/domain"
	"gamerflow_service/internal/playback/repository"
	errprocess "gamerflow_service/pkg/err"
	"gamerflow_service/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSessionTTL session 閒置多久後過期
const DefaultSessionTTL = 30 * time.Minute

// VideoFinder 取得影片資料 (catalog)
type VideoFinder interface {
	Video(ctx context.Context, videoID string) (*catalog.Video, error)
}

// SessionUseCase 播放 session 操作, 只有建立 session 的 profile 能存取
type SessionUseCase interface {
	Open(ctx context.Context, profileID, videoID string) (*domain.SessionView, error)
	Get(ctx context.Context, profileID, sessionID string) (*domain.SessionView, error)
	Scrub(ctx context.Context, profileID, sessionID string, progress float64) (*domain.SessionView, error)
	Jump(ctx context.Context, profileID, sessionID, timestamp string) (*domain.SessionView, error)
	AddNote(ctx context.Context, profileID, sessionID, note string) (*domain.SessionView, error)
	Close(ctx context.Context, profileID, sessionID string) error
}

type sessionUseCase struct {
	videos VideoFinder
	repo   repository.SessionRepository
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionUseCase create SessionUseCase, ttl <= 0 使用 DefaultSessionTTL
func NewSessionUseCase(videos VideoFinder, repo repository.SessionRepository, ttl time.Duration) SessionUseCase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessionUseCase{videos: videos, repo: repo, ttl: ttl, now: time.Now}
}

func (uc *sessionUseCase) Open(ctx context.Context, profileID, videoID string) (*domain.SessionView, error) {
	v, err := uc.videos.Video(ctx, videoID)
	if err != nil {
		return nil, err
	}

	s := &domain.Session{
		ID:        uuid.New().String(),
		ProfileID: profileID,
		VideoID:   v.ID,
		Duration:  v.Duration,
		Live:      v.IsLive(),
		Progress:  0,
		Summary:   v.Summary,
		CreatedAt: uc.now(),
	}
	if err := uc.repo.Save(ctx, s, uc.ttl); err != nil {
		return nil, errprocess.Wrap("save playback session failed", err)
	}

	logger.Log.Debug("playback session opened", zap.String("session", s.ID), zap.String("video", v.ID), zap.String("profile", profileID))
	return BuildView(s), nil
}

func (uc *sessionUseCase) Get(ctx context.Context, profileID, sessionID string) (*domain.SessionView, error) {
	s, err := uc.load(ctx, profileID, sessionID)
	if err != nil {
		return nil, err
	}
	return BuildView(s), nil
}

func (uc *sessionUseCase) Scrub(ctx context.Context, profileID, sessionID string, progress float64) (*domain.SessionView, error) {
	s, err := uc.load(ctx, profileID, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Live {
		return nil, domain.ErrNotScrubbable
	}

	s.Progress = ClampProgress(progress)
	return uc.store(ctx, s)
}

func (uc *sessionUseCase) Jump(ctx context.Context, profileID, sessionID, timestamp string) (*domain.SessionView, error) {
	s, err := uc.load(ctx, profileID, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Live {
		return nil, domain.ErrNotScrubbable
	}

	s.Progress = JumpTo(timestamp, DurationToSeconds(s.Duration))
	return uc.store(ctx, s)
}

func (uc *sessionUseCase) AddNote(ctx context.Context, profileID, sessionID, note string) (*domain.SessionView, error) {
	if strings.TrimSpace(note) == "" {
		return nil, domain.ErrEmptyNote
	}

	s, err := uc.load(ctx, profileID, sessionID)
	if err != nil {
		return nil, err
	}

	s.Summary = AppendTimestampedNote(s.Summary, s.Progress, DurationToSeconds(s.Duration), note)
	return uc.store(ctx, s)
}

// Close 已不存在的 session 視為成功
func (uc *sessionUseCase) Close(ctx context.Context, profileID, sessionID string) error {
	s, err := uc.repo.Find(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if s.ProfileID != profileID {
		return domain.ErrSessionNotFound
	}
	if err := uc.repo.Delete(ctx, sessionID); err != nil {
		return errprocess.Wrap("delete playback session failed", err)
	}
	return nil
}

// load 讀取並刷新 TTL, 其他 profile 的 session 視為不存在
func (uc *sessionUseCase) load(ctx context.Context, profileID, sessionID string) (*domain.Session, error) {
	s, err := uc.repo.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.ProfileID != profileID {
		logger.Log.Debug("playback session owned by another profile", zap.String("session", sessionID), zap.String("profile", profileID))
		return nil, domain.ErrSessionNotFound
	}
	if err := uc.repo.Touch(ctx, sessionID, uc.ttl); err != nil {
		logger.Log.Warn("extend playback session ttl failed", zap.String("session", sessionID), zap.Error(err))
	}
	return s, nil
}

func (uc *sessionUseCase) store(ctx context.Context, s *domain.Session) (*domain.SessionView, error) {
	if err := uc.repo.Save(ctx, s, uc.ttl); err != nil {
		return nil, errprocess.Wrap("save playback session failed", err)
	}
	return BuildView(s), nil
}

// BuildView 每次讀取都重新計算章節
func BuildView(s *domain.Session) *domain.SessionView {
	total := DurationToSeconds(s.Duration)
	current := WholeSeconds(s.Progress, total)
	chapters := ExtractChapters(s.Summary)

	view := &domain.SessionView{
		Session:        *s,
		TotalSeconds:   total,
		CurrentSeconds: current,
		CurrentTime:    ToTimestamp(current),
		Scrubbable:     !s.Live,
		Chapters:       chapters,
	}
	if c, ok := ActiveChapter(chapters, s.Progress, total); ok {
		view.ActiveChapter = &c
	}
	return view
}
