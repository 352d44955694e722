// Package policy enforces the response contract for the legal chat
// backend: the product identity stays "a legal chat bot" regardless of
// which generative backend produced the text, off-topic questions are
// refused, cyber-hygiene questions get fixed prevention guidance, and
// every accepted legal answer carries source attribution.
//
// The engine runs on English text: questions are translated to English
// upstream and final answers are translated back downstream. Fixed
// replies carry hand-written Hindi variants so the two main deployment
// languages survive a translation outage.
package policy

import (
	"context"
	"strings"

	"github.com/nyaysetu/legalchat/internal/classifier"
	"github.com/nyaysetu/legalchat/internal/lexicon"
	"github.com/nyaysetu/legalchat/internal/responder"
	"go.uber.org/zap"
)

const (
	identitySentenceEN = "I am a legal chat bot"
	identitySentenceHI = "मैं कानूनी जानकारी में विशेषज्ञता वाला एक एआई सहायक हूं।"

	refusalSentenceEN = "My function is to provide information on legal topics. Please frame your question accordingly."
	refusalSentenceHI = "मैं केवल कानूनी जानकारी प्रदान कर सकता/सकती हूँ। कृपया एक कानूनी प्रश्न पूछें।"

	attributionBlockEN = `

**Source and Disclaimer:**
- This information is based on the Indian legal framework: Bharatiya Nyaya Sanhita (BNS), 2023, Bharatiya Nagarik Suraksha Sanhita (BNSS), 2023, and Bharatiya Sakshya Adhiniyam (BSA), 2023
- This is general information only. For specific cases, consult a qualified lawyer
- Laws are complex and may vary by case and jurisdiction`

	attributionBlockHI = `

**स्रोत और अस्वीकरण:**
- यह जानकारी भारतीय कानूनी ढांचे के आधार पर है: भारतीय न्याय संहिता (BNS), 2023, भारतीय नागरिक सुरक्षा संहिता (BNSS), 2023, और भारतीय साक्ष्य अधिनियम (BSA), 2023
- यह सामान्य जानकारी है और विशिष्ट मामलों के लिए योग्य वकील से सलाह लें
- कानून जटिल हैं और मामले के अनुसार भिन्न हो सकते हैं`
)

// Decision is the policy outcome. PreLocalized marks text already in the
// user's language (fixed replies for en/hi), which the orchestrator must
// not run through translate-back.
type Decision struct {
	Text         string
	PreLocalized bool
}

// Engine is the single-pass policy state machine. It is pure and
// stateless: lexicons and fixed sentences are read-only, and Decide
// never panics to its caller.
type Engine struct {
	classifier *classifier.Classifier
	offline    *responder.Responder
	logger     *zap.Logger
}

func NewEngine(clf *classifier.Classifier, offline *responder.Responder, logger *zap.Logger) *Engine {
	return &Engine{classifier: clf, offline: offline, logger: logger}
}

// Apply returns only the final text of Decide. The result is always
// non-empty and always one of: the identity sentence, the refusal
// sentence, the cyber prevention guidance, or the sanitized candidate
// with attribution enforced.
func (e *Engine) Apply(ctx context.Context, candidate, question, language string) string {
	return e.Decide(ctx, candidate, question, language).Text
}

// Decide takes the candidate answer text (from the provider chain or the
// offline responder) and the English question, and returns the final
// policy outcome.
func (e *Engine) Decide(ctx context.Context, candidate, question, language string) (decision Decision) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("policy decide panicked", zap.Any("panic", r))
			decision = e.fixed(refusalSentence(language), language)
		}
	}()

	// 1. Identity probes short-circuit everything, including the candidate.
	if e.classifier.IsIdentityQuestion(question) {
		return e.fixed(identitySentence(language), language)
	}

	answer := strings.TrimSpace(candidate)
	if answer == "" {
		// A provider slipped an empty string past its adapter; fall back
		// to the deterministic template so the user never sees a blank.
		answer = e.offline.Respond(ctx, question, "en")
	}
	lowerAnswer := lexicon.Normalize(answer)

	// 2. Definition requests bypass the legal-keyword gate; they only
	// need attribution.
	if e.classifier.IsDefinitionQuestion(question) {
		return Decision{Text: ensureAttribution(answer, "en")}
	}

	// 3. Scope gate with the cyber-safety carve-out.
	if !e.classifier.IsLegalQuestion(question) {
		if e.classifier.IsCyberQuestion(question) {
			return e.guidance(language)
		}
		return e.fixed(refusalSentence(language), language)
	}

	// 4. Identity leakage: an upstream self-identification discards the
	// candidate wholesale. Partial scrubbing would leave the surrounding
	// text speaking in someone else's voice.
	if lexicon.ContainsAny(lowerAnswer, lexicon.AIIdentityPatterns) {
		e.logger.Info("candidate discarded for identity leakage")
		return e.fixed(identitySentence(language), language)
	}

	// 5. Topical relevance: the backend drifted off-topic even though the
	// question was in scope.
	if !lexicon.ContainsAny(lowerAnswer, lexicon.LegalKeywords) {
		if e.classifier.IsCyberQuestion(question) {
			return e.guidance(language)
		}
		e.logger.Info("candidate discarded as off-topic")
		return e.fixed(refusalSentence(language), language)
	}

	// 6. Attribution enforcement.
	return Decision{Text: ensureAttribution(answer, "en")}
}

// fixed wraps a fixed sentence. English and Hindi variants are
// hand-written and final; anything else starts from English and is
// translated downstream.
func (e *Engine) fixed(text, language string) Decision {
	return Decision{Text: text, PreLocalized: preLocalized(language)}
}

// guidance returns the cyber prevention carve-out text with attribution.
func (e *Engine) guidance(language string) Decision {
	if preLocalized(language) {
		return Decision{
			Text:         ensureAttribution(responder.CyberPreventionGuidance(language), language),
			PreLocalized: true,
		}
	}
	return Decision{Text: ensureAttribution(responder.CyberPreventionGuidance("en"), "en")}
}

// ensureAttribution appends the disclaimer block unless the text already
// carries an attribution signal, making the append idempotent.
func ensureAttribution(text, language string) string {
	if lexicon.ContainsAny(lexicon.Normalize(text), lexicon.AttributionIndicators) {
		return text
	}
	if isHindi(language) {
		return text + attributionBlockHI
	}
	return text + attributionBlockEN
}

// IdentitySentence exposes the fixed identity reply for tests.
func IdentitySentence(language string) string { return identitySentence(language) }

// RefusalSentence exposes the fixed refusal reply.
func RefusalSentence(language string) string { return refusalSentence(language) }

func identitySentence(language string) string {
	if isHindi(language) {
		return identitySentenceHI
	}
	return identitySentenceEN
}

func refusalSentence(language string) string {
	if isHindi(language) {
		return refusalSentenceHI
	}
	return refusalSentenceEN
}

func isHindi(language string) bool {
	return strings.HasPrefix(language, "hi")
}

func preLocalized(language string) bool {
	return language == "" || language == "en" || isHindi(language)
}
