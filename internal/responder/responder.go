// Package responder is the deterministic offline answer source. Generative
// backends fail for quota, outage, and cost reasons; legal information is
// safety-sensitive, so there must always be an auditable canned answer.
package responder

import (
	"context"

	"github.com/nyaysetu/legalchat/internal/lexicon"
	"github.com/nyaysetu/legalchat/internal/translate"
	"go.uber.org/zap"
)

// Responder selects the best canned template for a question.
type Responder struct {
	translator translate.Translator
	logger     *zap.Logger
}

func New(translator translate.Translator, logger *zap.Logger) *Responder {
	if translator == nil {
		translator = translate.Noop{}
	}
	return &Responder{translator: translator, logger: logger}
}

// Classify scores the question against every category lexicon and returns
// the winner. The highest non-zero match count wins; ties break toward
// the earlier declaration. All-zero scores select the general template.
func (r *Responder) Classify(question string) lexicon.Category {
	normalized := lexicon.Normalize(question)
	if normalized == "" {
		return lexicon.CategoryGeneral
	}

	best := lexicon.CategoryGeneral
	bestScore := 0
	for _, entry := range lexicon.Categories {
		score := lexicon.Score(normalized, entry.Terms)
		if score > bestScore {
			best = entry.Category
			bestScore = score
		}
	}
	return best
}

// Respond returns the template for the question's best-matching category,
// translated to the requested language. Translation failures degrade to
// the English template; this method never returns an empty string.
func (r *Responder) Respond(ctx context.Context, question, language string) string {
	category := r.Classify(question)
	text := templates[category]

	r.logger.Debug("offline template selected",
		zap.String("category", string(category)),
		zap.String("language", language))

	if language == "" || language == "en" {
		return text
	}

	translated, err := r.translator.Translate(ctx, text, "en", language)
	if err != nil || translated == "" {
		r.logger.Warn("template translation failed, serving English",
			zap.Error(err),
			zap.String("language", language),
			zap.String("category", string(category)))
		return text
	}
	return translated
}
