package classifier

import "testing"

func TestIsIdentityQuestion(t *testing.T) {
	c := New()
	tests := []struct {
		text string
		want bool
	}{
		{"Who are you?", true},
		{"what are you", true},
		{"Are you a bot?", true},
		{"WHAT IS YOUR NAME", true},
		{"identify yourself", true},
		{"how do i file an fir", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := c.IsIdentityQuestion(tt.text); got != tt.want {
			t.Errorf("IsIdentityQuestion(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsLegalQuestion(t *testing.T) {
	c := New()
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"fir", "how do i file an FIR", true},
		{"tenant rights", "what are my rights against my landlord", true},
		{"statute code", "explain section 318 of the BNS", true},
		{"cyber is legal", "i was a victim of phishing", true},
		{"hindi", "पुलिस ने मेरी शिकायत दर्ज नहीं की", true},
		{"off topic", "best pizza recipe in mumbai", false},
		{"empty", "", false},
		// A short identity probe stays an identity probe even when it
		// contains a legal-sounding word.
		{"short identity probe", "are you a bot, lawyer?", false},
		{"long question with identity phrase", "who are you supposed to contact when the police refuse to register a complaint", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsLegalQuestion(tt.text); got != tt.want {
				t.Errorf("IsLegalQuestion(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsCyberQuestion(t *testing.T) {
	c := New()
	tests := []struct {
		text string
		want bool
	}{
		{"how do i make a strong password", true},
		{"should i enable 2fa", true},
		{"i got an otp scam call", true},
		{"my landlord won't return the deposit", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := c.IsCyberQuestion(tt.text); got != tt.want {
			t.Errorf("IsCyberQuestion(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsDefinitionQuestion(t *testing.T) {
	c := New()
	tests := []struct {
		text string
		want bool
	}{
		{"What is the BNS?", true},
		{"explain anticipatory bail", true},
		{"please explain how bail works", true},
		{"how do i file an fir", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := c.IsDefinitionQuestion(tt.text); got != tt.want {
			t.Errorf("IsDefinitionQuestion(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
