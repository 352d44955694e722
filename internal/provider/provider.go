// Package provider wraps generative answer backends behind a tagged
// result type. Failures are normalized into Result values at this
// boundary: no source ever returns an error or a sentinel string, so the
// policy layer can never misread a legitimate answer as a failure.
package provider

import (
	"context"

	"github.com/nyaysetu/legalchat/internal/models"
	"go.uber.org/zap"
)

// Status tags a Result as usable or not.
type Status int

const (
	StatusOK Status = iota
	StatusUnavailable
)

// Reason explains an unavailable result. Reasons are for logs and
// metrics, never shown to users.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonNoCredentials Reason = "no_credentials"
	ReasonTransport     Reason = "transport_error"
	ReasonBadResponse   Reason = "bad_response"
	ReasonEmptyAnswer   Reason = "empty_answer"
)

// Result is a tagged answer outcome.
type Result struct {
	Status Status
	Reason Reason
	Text   string
	Source string
}

func Ok(source, text string) Result {
	return Result{Status: StatusOK, Text: text, Source: source}
}

func Unavailable(source string, reason Reason) Result {
	return Result{Status: StatusUnavailable, Reason: reason, Source: source}
}

// OK reports whether the result carries a usable answer.
func (r Result) OK() bool {
	return r.Status == StatusOK && r.Text != ""
}

// AnswerSource produces a candidate answer for a legal question. A single
// attempt, bounded by ctx; implementations are side-effect-free beyond the
// outbound call and must catch every failure into an Unavailable result.
type AnswerSource interface {
	Name() string
	Answer(ctx context.Context, question, language string, precedents []models.CaseLaw) Result
}

// Chain tries sources in order and stops at the first OK result.
type Chain struct {
	sources []AnswerSource
	logger  *zap.Logger
}

func NewChain(logger *zap.Logger, sources ...AnswerSource) *Chain {
	return &Chain{sources: sources, logger: logger}
}

// Answer returns the first usable result. When every source is
// unavailable it returns the last unavailable result so the caller can
// see which source failed and why.
func (c *Chain) Answer(ctx context.Context, question, language string, precedents []models.CaseLaw) Result {
	last := Unavailable("none", ReasonNone)
	for _, src := range c.sources {
		res := src.Answer(ctx, question, language, precedents)
		if res.OK() {
			c.logger.Debug("answer source succeeded", zap.String("source", src.Name()))
			return res
		}
		c.logger.Warn("answer source unavailable",
			zap.String("source", src.Name()),
			zap.String("reason", string(res.Reason)))
		last = res
	}
	return last
}
