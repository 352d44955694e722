// Package chat glues the pipeline together: detect language, translate
// the question to English, run the provider chain, enforce policy,
// translate the final answer back, and persist the turn.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaysetu/legalchat/internal/caselaw"
	"github.com/nyaysetu/legalchat/internal/models"
	"github.com/nyaysetu/legalchat/internal/policy"
	"github.com/nyaysetu/legalchat/internal/provider"
	"github.com/nyaysetu/legalchat/internal/storage"
	"github.com/nyaysetu/legalchat/internal/translate"
	"go.uber.org/zap"
)

// ErrEmptyQuestion is the boundary rejection for blank input.
var ErrEmptyQuestion = errors.New("question is required")

const precedentLimit = 3

// Service runs one chat turn end to end.
type Service struct {
	translator translate.Translator
	chain      *provider.Chain
	policy     *policy.Engine
	caselaw    caselaw.Searcher
	store      storage.Storage
	logger     *zap.Logger
}

func NewService(
	translator translate.Translator,
	chain *provider.Chain,
	engine *policy.Engine,
	searcher caselaw.Searcher,
	store storage.Storage,
	logger *zap.Logger,
) *Service {
	if searcher == nil {
		searcher = caselaw.Noop{}
	}
	return &Service{
		translator: translator,
		chain:      chain,
		policy:     engine,
		caselaw:    searcher,
		store:      store,
		logger:     logger,
	}
}

// Ask answers a question and persists the turn. The returned record
// always has a non-empty Answer; persistence failures are logged but do
// not fail the turn, because the user already has a valid answer.
func (s *Service) Ask(ctx context.Context, question, language string) (*models.ChatRecord, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	if language == "" {
		language = s.translator.Detect(question)
	}

	turnID := uuid.New().String()
	log := s.logger.With(zap.String("turn_id", turnID), zap.String("language", language))

	// Normalize to English for classification, providers, and policy.
	englishQuestion := question
	if language != "en" {
		translated, err := s.translator.Translate(ctx, question, language, "en")
		if err != nil {
			log.Warn("question translation failed, using original text", zap.Error(err))
		} else {
			englishQuestion = translated
		}
	}

	precedents := s.caselaw.Search(ctx, englishQuestion, precedentLimit)

	result := s.chain.Answer(ctx, englishQuestion, "en", precedents)
	if !result.OK() {
		log.Warn("all answer sources unavailable",
			zap.String("last_source", result.Source),
			zap.String("reason", string(result.Reason)))
	}

	decision := s.policy.Decide(ctx, result.Text, englishQuestion, language)

	final := decision.Text
	if language != "en" && !decision.PreLocalized {
		translated, err := s.translator.Translate(ctx, final, "en", language)
		if err != nil {
			log.Warn("answer translation failed, serving English", zap.Error(err))
		} else {
			final = translated
		}
	}

	record := &models.ChatRecord{
		Question:  question,
		Answer:    final,
		Language:  language,
		Timestamp: time.Now().UTC(),
	}
	if err := s.store.SaveChat(ctx, record); err != nil {
		log.Error("failed to persist chat", zap.Error(err))
	}

	log.Info("chat turn completed",
		zap.String("source", result.Source),
		zap.Int("precedents", len(precedents)))

	return record, nil
}

// History returns persisted chat turns matching the filter.
func (s *Service) History(ctx context.Context, filter models.ChatFilter) ([]*models.ChatRecord, error) {
	return s.store.ListChats(ctx, filter)
}
