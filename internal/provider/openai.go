package provider

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/nyaysetu/legalchat/internal/models"
	"go.uber.org/zap"
)

// OpenAI is an AnswerSource backed by the OpenAI chat completion API.
type OpenAI struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func NewOpenAI(apiKey, model string, maxTokens int, temperature float64, logger *zap.Logger) *OpenAI {
	o := &OpenAI{
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
	if apiKey != "" {
		o.client = openai.NewClient(apiKey)
	}
	return o
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Answer(ctx context.Context, question, language string, precedents []models.CaseLaw) Result {
	if o.client == nil {
		return Unavailable(o.Name(), ReasonNoCredentials)
	}

	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemInstruction,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildUserPrompt(question, precedents),
				},
			},
			MaxTokens:   o.maxTokens,
			Temperature: float32(o.temperature),
		},
	)
	if err != nil {
		o.logger.Warn("openai call failed", zap.Error(err), zap.String("model", o.model))
		return Unavailable(o.Name(), ReasonTransport)
	}
	if len(resp.Choices) == 0 {
		return Unavailable(o.Name(), ReasonBadResponse)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return Unavailable(o.Name(), ReasonEmptyAnswer)
	}
	return Ok(o.Name(), text)
}
