package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gamerflow_service/internal/assistant/domain"
	"gamerflow_service/pkg/config"
	errprocess "gamerflow_service/pkg/err"
	"gamerflow_service/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// contentGenerator genai.Models 的最小介面
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiBackend struct {
	models contentGenerator
	cfg    config.GeminiConfig
}

// NewGeminiClient create genai client (Gemini API backend)
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errprocess.Set("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init genai client failed: %w", err)
	}
	return client, nil
}

// NewGeminiBackend wrap genai client
func NewGeminiBackend(client *genai.Client, cfg config.GeminiConfig) Backend {
	return newGeminiBackend(client.Models, cfg)
}

func newGeminiBackend(models contentGenerator, cfg config.GeminiConfig) *geminiBackend {
	if cfg.FastModel == "" {
		cfg.FastModel = "gemini-3-flash-preview"
	}
	if cfg.ThinkingModel == "" {
		cfg.ThinkingModel = "gemini-3-pro-preview"
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = "gemini-2.5-flash-image"
	}
	return &geminiBackend{models: models, cfg: cfg}
}

func insightSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tip":         {Type: genai.TypeString, Description: "A 100% useful pro-gamer tip."},
			"whyTrending": {Type: genai.TypeString, Description: "Short explanation of why the game is trending."},
			"difficulty": {
				Type: genai.TypeString,
				Enum: []string{string(domain.Easy), string(domain.Medium), string(domain.Hard)},
			},
		},
		Required: []string{"tip", "whyTrending", "difficulty"},
	}
}

func (g *geminiBackend) GetInsight(ctx context.Context, topic string) (domain.Insight, error) {
	prompt := fmt.Sprintf("Proporciona información útil y consejos profesionales para el juego %q. Incluye por qué es tendencia y un consejo secreto 100%% útil.", topic)

	resp, err := g.models.GenerateContent(ctx, g.cfg.FastModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   insightSchema(),
	})
	if err != nil {
		return domain.Insight{}, err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return domain.Insight{}, domain.ErrEmptyResponse
	}

	var insight domain.Insight
	if err := json.Unmarshal([]byte(text), &insight); err != nil {
		return domain.Insight{}, fmt.Errorf("decode insight: %w", err)
	}
	return insight, nil
}

func (g *geminiBackend) DeepAnalyze(ctx context.Context, title, summary string) (string, error) {
	prompt := fmt.Sprintf("Analiza en profundidad el video de gaming %q. Resumen: %s. Explica las jugadas clave, la estrategia y qué puede aprender un jugador.", title, summary)

	resp, err := g.models.GenerateContent(ctx, g.cfg.ThinkingModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

func (g *geminiBackend) Chat(ctx context.Context, prompt string, history []domain.ChatMessage) (domain.ChatReply, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		var role genai.Role = genai.RoleUser
		if m.Role == domain.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	resp, err := g.models.GenerateContent(ctx, g.cfg.ThinkingModel, contents, &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{IncludeThoughts: true},
	})
	if err != nil {
		return domain.ChatReply{}, err
	}

	reply := domain.ChatReply{}
	var thoughts, answer []string
	for _, part := range firstParts(resp) {
		if part.Text == "" {
			continue
		}
		if part.Thought {
			thoughts = append(thoughts, part.Text)
		} else {
			answer = append(answer, part.Text)
		}
	}
	reply.Text = strings.TrimSpace(strings.Join(answer, ""))
	reply.Thinking = strings.TrimSpace(strings.Join(thoughts, "\n"))
	return reply, nil
}

func (g *geminiBackend) GroundedSearch(ctx context.Context, query string) (domain.SearchReply, error) {
	resp, err := g.models.GenerateContent(ctx, g.cfg.FastModel, genai.Text(query), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return domain.SearchReply{}, err
	}

	reply := domain.SearchReply{Text: strings.TrimSpace(resp.Text())}
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return reply, nil
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		reply.Sources = append(reply.Sources, domain.Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return reply, nil
}

func (g *geminiBackend) EditImage(ctx context.Context, img domain.Image, instruction string) (domain.Image, bool, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(img.Data, img.MIMEType),
			genai.NewPartFromText(instruction),
		}, genai.RoleUser),
	}

	resp, err := g.models.GenerateContent(ctx, g.cfg.ImageModel, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		return domain.Image{}, false, err
	}

	for _, part := range firstParts(resp) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return domain.Image{Data: part.InlineData.Data, MIMEType: part.InlineData.MIMEType}, true, nil
		}
	}
	logger.Log.Debug("image model returned no image", zap.String("model", g.cfg.ImageModel))
	return domain.Image{}, false, nil
}

func (g *geminiBackend) AnalyzeLiveChat(ctx context.Context, messages []string) (string, error) {
	prompt := "Analiza estos mensajes de chat de un stream en vivo y resume el sentimiento general y los temas principales: " +
		strings.Join(messages, ", ")

	resp, err := g.models.GenerateContent(ctx, g.cfg.FastModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

func firstParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}
