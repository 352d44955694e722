// Package classifier decides what kind of question the user asked. All
// checks are pure string predicates over the shared lexicon tables; empty
// input is never identity, legal, or cyber.
package classifier

import (
	"strings"

	"github.com/nyaysetu/legalchat/internal/lexicon"
)

// Classifier answers intent questions about user text.
type Classifier struct{}

func New() *Classifier {
	return &Classifier{}
}

// IsIdentityQuestion reports whether the text probes the assistant's
// identity ("who are you", "are you a bot", ...).
func (c *Classifier) IsIdentityQuestion(text string) bool {
	t := lexicon.Normalize(text)
	if t == "" {
		return false
	}
	return lexicon.ContainsAny(t, lexicon.IdentityTriggers())
}

// IsLegalQuestion reports whether the text is in scope for legal answers.
// Short identity probes never count as legal questions, even when they
// happen to contain a legal-sounding word ("are you a bot, lawyer?").
func (c *Classifier) IsLegalQuestion(text string) bool {
	t := lexicon.Normalize(text)
	if t == "" {
		return false
	}
	if len(strings.Fields(t)) <= 5 && c.IsIdentityQuestion(t) {
		return false
	}
	return lexicon.ContainsAny(t, lexicon.LegalKeywords)
}

// IsCyberQuestion reports whether the text matches the narrower
// cyber-safety lexicon used for the prevention-guidance carve-out.
func (c *Classifier) IsCyberQuestion(text string) bool {
	t := lexicon.Normalize(text)
	if t == "" {
		return false
	}
	return lexicon.ContainsAny(t, lexicon.CyberSafetyKeywords)
}

// IsDefinitionQuestion reports whether the text asks for a definition or
// explanation. Definitions bypass the strict legal-keyword gate.
func (c *Classifier) IsDefinitionQuestion(text string) bool {
	t := lexicon.Normalize(text)
	if t == "" {
		return false
	}
	return strings.HasPrefix(t, "what is") || strings.Contains(t, "explain")
}
