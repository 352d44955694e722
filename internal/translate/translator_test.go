package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestDetectScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "how do i file an FIR", "en"},
		{"empty", "", "en"},
		{"numbers and punctuation", "123 !?", "en"},
		{"hindi", "मुझे जमानत चाहिए", "hi"},
		{"bengali", "আমার জামিন দরকার", "bn"},
		{"punjabi", "ਮੈਨੂੰ ਜ਼ਮਾਨਤ ਚਾਹੀਦੀ ਹੈ", "pa"},
		{"gujarati", "મારે જામીન જોઈએ છે", "gu"},
		{"odia", "ମୋତେ ଜାମିନ ଦରକାର", "or"},
		{"tamil", "எனக்கு ஜாமீன் வேண்டும்", "ta"},
		{"telugu", "నాకు బెయిల్ కావాలి", "te"},
		{"kannada", "ನನಗೆ ಜಾಮೀನು ಬೇಕು", "kn"},
		{"malayalam", "എനിക്ക് ജാമ്യം വേണം", "ml"},
		{"latin prefix then devanagari", "FIR कैसे दर्ज करें", "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectScript(tt.text); got != tt.want {
				t.Errorf("DetectScript(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNoopTranslate(t *testing.T) {
	got, err := Noop{}.Translate(context.Background(), "hello", "en", "hi")
	if err != nil || got != "hello" {
		t.Errorf("Translate = %q, %v", got, err)
	}
	if (Noop{}).Detect("नमस्ते") != "hi" {
		t.Error("Noop.Detect should use script detection")
	}
}

func TestGoogleTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("client") != "gtx" || q.Get("sl") != "en" || q.Get("tl") != "hi" {
			t.Errorf("unexpected query %v", q)
		}
		// Nested-array wire format: [[[translated, original, ...]], ...]
		w.Write([]byte(`[[["नमस्ते","hello",null,null,10]],null,"en"]`))
	}))
	defer srv.Close()

	g := NewGoogle(srv.URL, time.Second, zap.NewNop())
	got, err := g.Translate(context.Background(), "hello", "en", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if got != "नमस्ते" {
		t.Errorf("Translate = %q, want नमस्ते", got)
	}
}

func TestGoogleTranslateJoinsSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[["पहला ","first ",null],["दूसरा","second",null]],null,"en"]`))
	}))
	defer srv.Close()

	g := NewGoogle(srv.URL, time.Second, zap.NewNop())
	got, err := g.Translate(context.Background(), "first second", "en", "hi")
	if err != nil {
		t.Fatal(err)
	}
	if got != "पहला दूसरा" {
		t.Errorf("Translate = %q", got)
	}
}

func TestGoogleTranslateFailureReturnsInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGoogle(srv.URL, time.Second, zap.NewNop())
	got, err := g.Translate(context.Background(), "hello", "en", "hi")
	if err == nil {
		t.Error("expected error on non-200 response")
	}
	if got != "hello" {
		t.Errorf("Translate = %q, want input text back", got)
	}
}

func TestGoogleTranslateShortCircuits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()
	g := NewGoogle(srv.URL, time.Second, zap.NewNop())

	// Same source and target.
	got, err := g.Translate(context.Background(), "hello", "en", "en")
	if err != nil || got != "hello" {
		t.Errorf("Translate = %q, %v", got, err)
	}
	// Blank input.
	got, err = g.Translate(context.Background(), "   ", "en", "hi")
	if err != nil || got != "" {
		t.Errorf("Translate = %q, %v", got, err)
	}
}
