// Package translate wraps language detection and machine translation.
// Translation is best-effort everywhere in the pipeline: callers must
// treat a failure as "use the input text unchanged", never as an error
// the user can see.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Translator is the pluggable translation capability the core needs.
type Translator interface {
	// Detect returns a short language code ("en", "hi", ...) for the text.
	Detect(text string) string
	// Translate converts text between languages. Implementations return
	// the input unchanged (with a nil or non-nil error) when translation
	// is impossible or unnecessary; they never return an empty string for
	// non-empty input.
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// scriptRange maps a Unicode block to a language code. Detection looks at
// the first rune that falls inside any known block; Latin text and
// anything unrecognized default to English.
type scriptRange struct {
	lo, hi rune
	code   string
}

var scriptRanges = []scriptRange{
	{0x0900, 0x097F, "hi"}, // Devanagari
	{0x0980, 0x09FF, "bn"}, // Bengali
	{0x0A00, 0x0A7F, "pa"}, // Gurmukhi
	{0x0A80, 0x0AFF, "gu"}, // Gujarati
	{0x0B00, 0x0B7F, "or"}, // Odia
	{0x0B80, 0x0BFF, "ta"}, // Tamil
	{0x0C00, 0x0C7F, "te"}, // Telugu
	{0x0C80, 0x0CFF, "kn"}, // Kannada
	{0x0D00, 0x0D7F, "ml"}, // Malayalam
}

// DetectScript classifies text by Unicode block. Shared by every
// Translator implementation so detection works even when the translation
// backend is down.
func DetectScript(text string) string {
	for _, r := range strings.TrimSpace(text) {
		for _, sr := range scriptRanges {
			if r >= sr.lo && r <= sr.hi {
				return sr.code
			}
		}
	}
	return "en"
}

// Noop is a Translator that only detects and never translates. Used when
// no translation endpoint is configured and in tests.
type Noop struct{}

func (Noop) Detect(text string) string { return DetectScript(text) }

func (Noop) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}

// Google translates via the public web endpoint (the same one the
// original deployment used). A single GET per call, bounded timeout, no
// retries.
type Google struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

func NewGoogle(endpoint string, timeout time.Duration, logger *zap.Logger) *Google {
	if endpoint == "" {
		endpoint = "https://translate.googleapis.com/translate_a/single"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Google{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

func (g *Google) Detect(text string) string { return DetectScript(text) }

func (g *Google) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if source == "" {
		source = "auto"
	}
	if target == "" {
		target = "en"
	}
	if source == target {
		return text, nil
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return text, fmt.Errorf("build translate request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("translation request failed", zap.Error(err), zap.String("target", target))
		return text, fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("translation endpoint returned non-200", zap.Int("status", resp.StatusCode))
		return text, fmt.Errorf("translate status %d", resp.StatusCode)
	}

	// The endpoint returns nested arrays: [[[translated, original, ...], ...], ...]
	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || len(payload) == 0 {
		return text, fmt.Errorf("decode translate response: %w", err)
	}
	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return text, fmt.Errorf("decode translate segments: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var piece string
		if err := json.Unmarshal(seg[0], &piece); err != nil {
			continue
		}
		b.WriteString(piece)
	}
	out := b.String()
	if strings.TrimSpace(out) == "" {
		return text, fmt.Errorf("empty translation result")
	}
	return out, nil
}
