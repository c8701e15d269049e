package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gamerflow_service/internal/assistant/domain"
	"gamerflow_service/pkg/database"
	errprocess "gamerflow_service/pkg/err"
	"gamerflow_service/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPresignTTL presigned url 有效時間
const DefaultPresignTTL = 15 * time.Minute

const (
	// KindOriginal 上傳的原圖
	KindOriginal = "original"
	// KindEdited AI 編輯後的圖
	KindEdited = "edited"
)

// ImageForgeUseCase 圖片編輯
type ImageForgeUseCase interface {
	Edit(ctx context.Context, profileID string, img domain.Image, instruction string) (*domain.Outcome[domain.ImageEdit], error)
	// Fetch 讀回已保存的 original / edited 圖片
	Fetch(ctx context.Context, profileID, editID, kind string) ([]byte, error)
}

type imageForgeUseCase struct {
	assistant  AssistantUseCase
	store      database.MinIOClientRepo
	presignTTL time.Duration
}

// NewImageForgeUseCase store 為 nil 時不保存圖片, 只回傳位元組
func NewImageForgeUseCase(assistant AssistantUseCase, store database.MinIOClientRepo, presignTTL time.Duration) ImageForgeUseCase {
	if presignTTL <= 0 {
		presignTTL = DefaultPresignTTL
	}
	return &imageForgeUseCase{assistant: assistant, store: store, presignTTL: presignTTL}
}

// ObjectName forge/<profile>/<edit id>/<kind>
func ObjectName(profileID, editID, kind string) string {
	return fmt.Sprintf("forge/%s/%s/%s", profileID, editID, kind)
}

func (uc *imageForgeUseCase) Edit(ctx context.Context, profileID string, img domain.Image, instruction string) (*domain.Outcome[domain.ImageEdit], error) {
	if len(img.Data) == 0 {
		return nil, domain.ErrEmptyImage
	}
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return nil, domain.ErrEmptyPrompt
	}
	if img.MIMEType == "" {
		img.MIMEType = "image/png"
	}

	editID := uuid.New().String()
	result := domain.ImageEdit{ID: editID}

	originalURL, err := uc.put(ctx, ObjectName(profileID, editID, KindOriginal), img)
	if err != nil {
		return nil, err
	}
	result.OriginalURL = originalURL

	out, produced := uc.assistant.EditImage(ctx, img, instruction)
	if out.Failed {
		result.Message = domain.FallbackImageEdit
		o := domain.Outcome[domain.ImageEdit]{Payload: result, Failed: true, Reason: out.Reason}
		return &o, nil
	}
	if !produced {
		logger.Log.Info("image forge produced no image", zap.String("profile", profileID), zap.String("edit", editID))
		o := domain.Succeed(result)
		return &o, nil
	}

	editedURL, err := uc.put(ctx, ObjectName(profileID, editID, KindEdited), out.Payload)
	if err != nil {
		return nil, err
	}
	result.Edited = true
	result.EditedURL = editedURL
	result.Data = out.Payload.Data
	result.MIMEType = out.Payload.MIMEType

	o := domain.Succeed(result)
	return &o, nil
}

func (uc *imageForgeUseCase) Fetch(ctx context.Context, profileID, editID, kind string) ([]byte, error) {
	if uc.store == nil || (kind != KindOriginal && kind != KindEdited) {
		return nil, domain.ErrImageNotFound
	}
	if _, err := uuid.Parse(editID); err != nil {
		return nil, domain.ErrImageNotFound
	}

	data, err := uc.store.GetBytes(ctx, ObjectName(profileID, editID, kind))
	if err != nil {
		logger.Log.Warn("image forge fetch failed", zap.String("profile", profileID), zap.String("edit", editID), zap.Error(err))
		return nil, domain.ErrImageNotFound
	}
	if len(data) == 0 {
		return nil, domain.ErrImageNotFound
	}
	return data, nil
}

// put 上傳並回傳 presigned url, 無 store 時回傳空字串
func (uc *imageForgeUseCase) put(ctx context.Context, objectName string, img domain.Image) (string, error) {
	if uc.store == nil {
		return "", nil
	}
	if err := uc.store.PutBytes(ctx, objectName, img.Data, img.MIMEType); err != nil {
		return "", errprocess.Wrap("store image failed", err)
	}
	url, err := uc.store.PresignGetURL(ctx, objectName, uc.presignTTL)
	if err != nil {
		return "", errprocess.Wrap("presign image failed", err)
	}
	return url, nil
}
