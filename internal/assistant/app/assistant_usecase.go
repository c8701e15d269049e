package app

import (
	"context"
	"strings"

	"gamerflow_service/internal/assistant/domain"
	"gamerflow_service/internal/assistant/repository"
	"gamerflow_service/pkg/logger"

	"go.uber.org/zap"
)

// AssistantUseCase 包裝 Backend, 失敗時回傳 fallback Outcome
type AssistantUseCase interface {
	Insight(ctx context.Context, topic string) domain.Outcome[domain.Insight]
	DeepAnalyze(ctx context.Context, title, summary string) domain.Outcome[domain.Insight]
	Chat(ctx context.Context, prompt string, history []domain.ChatMessage) domain.Outcome[domain.ChatReply]
	Search(ctx context.Context, query string) domain.Outcome[domain.SearchReply]
	AnalyzeLiveChat(ctx context.Context, messages []string) domain.Outcome[string]
	EditImage(ctx context.Context, img domain.Image, instruction string) (domain.Outcome[domain.Image], bool)
}

type assistantUseCase struct {
	backend repository.Backend
}

// NewAssistantUseCase create AssistantUseCase
func NewAssistantUseCase(backend repository.Backend) AssistantUseCase {
	return &assistantUseCase{backend: backend}
}

func (uc *assistantUseCase) Insight(ctx context.Context, topic string) domain.Outcome[domain.Insight] {
	insight, err := uc.backend.GetInsight(ctx, topic)
	if err != nil {
		logger.Log.Warn("assistant insight failed", zap.String("topic", topic), zap.Error(err))
		return domain.Fail(domain.FallbackInsight(), err)
	}
	return domain.Succeed(normalizeInsight(insight))
}

// normalizeInsight 空欄位用 fallback, 非法 difficulty 改為 Medium
func normalizeInsight(in domain.Insight) domain.Insight {
	fb := domain.FallbackInsight()
	if strings.TrimSpace(in.Tip) == "" {
		in.Tip = fb.Tip
	}
	if strings.TrimSpace(in.WhyTrending) == "" {
		in.WhyTrending = fb.WhyTrending
	}
	if !in.Difficulty.Valid() {
		in.Difficulty = domain.Medium
	}
	return in
}

func (uc *assistantUseCase) DeepAnalyze(ctx context.Context, title, summary string) domain.Outcome[domain.Insight] {
	insight := domain.Insight{WhyTrending: domain.DeepAnalysisHeadline, Difficulty: domain.Hard}

	analysis, err := uc.backend.DeepAnalyze(ctx, title, summary)
	if err != nil {
		logger.Log.Warn("assistant deep analysis failed", zap.String("title", title), zap.Error(err))
		insight.Tip = domain.FallbackDeepAnalysis
		return domain.Fail(insight, err)
	}

	insight.Tip = analysis
	if insight.Tip == "" {
		insight.Tip = domain.FallbackDeepAnalysis
	}
	return domain.Succeed(insight)
}

func (uc *assistantUseCase) Chat(ctx context.Context, prompt string, history []domain.ChatMessage) domain.Outcome[domain.ChatReply] {
	reply, err := uc.backend.Chat(ctx, prompt, history)
	if err != nil {
		logger.Log.Warn("assistant chat failed", zap.Error(err))
		return domain.Fail(domain.ChatReply{Text: domain.FallbackChat}, err)
	}
	if reply.Text == "" {
		reply.Text = domain.FallbackEmptyChat
	}
	return domain.Succeed(reply)
}

func (uc *assistantUseCase) Search(ctx context.Context, query string) domain.Outcome[domain.SearchReply] {
	reply, err := uc.backend.GroundedSearch(ctx, query)
	if err != nil {
		logger.Log.Warn("assistant search failed", zap.Error(err))
		return domain.Fail(domain.SearchReply{Text: domain.FallbackChat}, err)
	}
	if reply.Text == "" {
		reply.Text = domain.FallbackEmptySearch
	}
	reply.Sources = cleanSources(reply.Sources)
	return domain.Succeed(reply)
}

// cleanSources 丟棄沒有 uri 的來源, 空標題補 "Source"
func cleanSources(in []domain.Source) []domain.Source {
	out := make([]domain.Source, 0, len(in))
	for _, s := range in {
		if s.URI == "" {
			continue
		}
		if s.Title == "" {
			s.Title = domain.FallbackSourceTitle
		}
		out = append(out, s)
	}
	return out
}

func (uc *assistantUseCase) AnalyzeLiveChat(ctx context.Context, messages []string) domain.Outcome[string] {
	text, err := uc.backend.AnalyzeLiveChat(ctx, messages)
	if err != nil {
		logger.Log.Warn("assistant live chat analysis failed", zap.Int("messages", len(messages)), zap.Error(err))
		return domain.Fail(domain.FallbackLiveAnalysis, err)
	}
	if text == "" {
		text = domain.FallbackEmptyLiveChat
	}
	return domain.Succeed(text)
}

// EditImage 第二個回傳值表示模型是否產生圖片
func (uc *assistantUseCase) EditImage(ctx context.Context, img domain.Image, instruction string) (domain.Outcome[domain.Image], bool) {
	edited, ok, err := uc.backend.EditImage(ctx, img, instruction)
	if err != nil {
		logger.Log.Warn("assistant image edit failed", zap.Error(err))
		return domain.Fail(domain.Image{}, err), false
	}
	return domain.Succeed(edited), ok
}
