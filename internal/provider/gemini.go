package provider

import (
	"context"
	"strings"
	"time"

	"github.com/nyaysetu/legalchat/internal/models"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Gemini is an AnswerSource backed by the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGemini creates the Gemini source. A missing API key is not an error:
// the source stays constructible and reports Unavailable on every call so
// the chain moves on.
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration, logger *zap.Logger) (*Gemini, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	g := &Gemini{model: model, timeout: timeout, logger: logger}
	if apiKey == "" {
		return g, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	g.client = client
	return g, nil
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Answer(ctx context.Context, question, language string, precedents []models.CaseLaw) Result {
	if g.client == nil {
		return Unavailable(g.Name(), ReasonNoCredentials)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		[]*genai.Content{
			{Parts: []*genai.Part{{Text: buildUserPrompt(question, precedents)}}, Role: "user"},
		},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemInstruction}},
			},
			Temperature: genai.Ptr[float32](0.3),
		},
	)
	if err != nil {
		g.logger.Warn("gemini call failed", zap.Error(err), zap.String("model", g.model))
		return Unavailable(g.Name(), ReasonTransport)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return Unavailable(g.Name(), ReasonEmptyAnswer)
	}
	return Ok(g.Name(), text)
}
