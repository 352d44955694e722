package provider

import (
	"context"

	"github.com/nyaysetu/legalchat/internal/models"
	"github.com/nyaysetu/legalchat/internal/responder"
)

// Offline wraps the deterministic template responder as the terminal
// source of a chain. It never reports Unavailable, which is what makes
// the chain total.
type Offline struct {
	responder *responder.Responder
}

func NewOffline(r *responder.Responder) *Offline {
	return &Offline{responder: r}
}

func (o *Offline) Name() string { return "offline_templates" }

func (o *Offline) Answer(ctx context.Context, question, language string, _ []models.CaseLaw) Result {
	return Ok(o.Name(), o.responder.Respond(ctx, question, language))
}
