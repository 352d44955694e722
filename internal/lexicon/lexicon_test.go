package lexicon

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hello World  ", "hello world"},
		{"FIR", "fir"},
		{"", ""},
		{"  \t\n ", ""},
		{"साइबर", "साइबर"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	terms := []string{"rent", "landlord", "eviction"}
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no match", "what is a contract", 0},
		{"one match", "my landlord is threatening me", 1},
		{"two matches", "my landlord raised the rent", 2},
		{"substring containment", "the rental agreement", 1}, // "rent" inside "rental"
		{"empty text", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(Normalize(tt.text), terms); got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("who are you exactly", IdentityTriggers()) {
		t.Error("expected identity trigger match")
	}
	if ContainsAny("how do i file an fir", IdentityTriggers()) {
		t.Error("unexpected identity trigger match")
	}
	if !ContainsAny("मुझे गिरफ्तार किया गया", LegalKeywords) {
		t.Error("expected Hindi legal keyword match")
	}
}

// Every category term must already be lowercase, because Score and
// ContainsAny compare against Normalize output without re-lowering terms.
func TestCategoryTermsAreLowercase(t *testing.T) {
	for _, entry := range Categories {
		for _, term := range entry.Terms {
			if term != strings.ToLower(term) {
				t.Errorf("category %s: term %q is not lowercase", entry.Category, term)
			}
			if term == "" {
				t.Errorf("category %s: empty term", entry.Category)
			}
		}
	}
}

// Cybercrime must stay ahead of the broader buckets so mixed questions
// like "online fraud complaint" resolve to the cyber template on ties.
func TestCategoryPriorityOrder(t *testing.T) {
	if len(Categories) == 0 {
		t.Fatal("no categories declared")
	}
	if Categories[0].Category != CategoryCybercrime {
		t.Errorf("first category = %s, want %s", Categories[0].Category, CategoryCybercrime)
	}
}

func TestAttributionIndicatorsCoverStatutes(t *testing.T) {
	for _, want := range []string{"bns", "bnss", "bsa", "section", "according to"} {
		if !ContainsAny(want, AttributionIndicators) {
			t.Errorf("attribution indicators missing %q", want)
		}
	}
}
