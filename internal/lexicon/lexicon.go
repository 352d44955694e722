// Package lexicon is the single source of keyword data for the legal chat
// core. The intent classifier and the offline responder both read from the
// tables here so the two can never drift apart.
//
// Matching is case-insensitive substring containment with no word-boundary
// enforcement. That mirrors the observed behavior this backend replaces;
// switching to tokenized matching would change classification for inputs
// where a term occurs inside a longer word.
package lexicon

import "strings"

// Category identifies one answer-template bucket.
type Category string

const (
	CategoryTenant     Category = "tenant_rights"
	CategoryFIR        Category = "fir_police"
	CategoryArrest     Category = "arrest_rights"
	CategoryCybercrime Category = "cybercrime"
	CategoryFamily     Category = "family_law"
	CategoryContract   Category = "contract_employment"
	CategoryConsumer   Category = "consumer_rights"
	CategoryGeneral    Category = "general_guidance"
)

// Entry binds a category to its trigger terms. Terms must be lowercase;
// they may repeat across categories, which is why matching is scored
// rather than exclusive.
type Entry struct {
	Category Category
	Terms    []string
}

// Categories lists every lexicon in priority order. On equal match counts
// the earlier entry wins, so more specific buckets go first.
var Categories = []Entry{
	{
		Category: CategoryCybercrime,
		Terms: []string{
			"cyber", "cybercrime", "cyber crime", "online fraud", "phishing",
			"hacking", "hacked", "ransomware", "malware", "identity theft",
			"upi fraud", "bank fraud", "otp fraud", "sextortion",
			"it act", "information technology act", "data privacy",
			"social media harassment", "online harassment", "cyberstalking",
			"electronic evidence", "digital evidence",
			// Hindi
			"साइबर", "ऑनलाइन धोखाधड़ी", "हैकिंग", "फ़िशिंग", "डेटा चोरी",
		},
	},
	{
		Category: CategoryArrest,
		Terms: []string{
			"arrest", "arrested", "detention", "detained", "custody rights",
			"bail", "anticipatory bail", "handcuff", "police custody",
			"remand", "habeas corpus",
			// Hindi
			"गिरफ्तार", "गिरफ्तारी", "हिरासत", "जमानत",
		},
	},
	{
		Category: CategoryFIR,
		Terms: []string{
			"fir", "first information report", "police complaint",
			"police station", "cognizable", "zero fir", "chargesheet",
			"charge sheet", "police refuse", "complaint against police",
			// Hindi
			"एफआईआर", "प्राथमिकी", "पुलिस शिकायत", "थाना",
		},
	},
	{
		Category: CategoryTenant,
		Terms: []string{
			"tenant", "landlord", "rent", "rental", "lease", "eviction",
			"security deposit", "rent agreement", "rent control",
			"house owner", "evict",
			// Hindi
			"किरायेदार", "मकान मालिक", "किराया", "बेदखली",
		},
	},
	{
		Category: CategoryFamily,
		Terms: []string{
			"divorce", "marriage", "custody", "alimony", "maintenance",
			"dowry", "domestic violence", "adoption", "guardianship",
			"mutual consent", "streedhan",
			// Hindi
			"तलाक", "विवाह", "गुजारा भत्ता", "दहेज", "घरेलू हिंसा",
		},
	},
	{
		Category: CategoryContract,
		Terms: []string{
			"contract", "agreement", "breach", "damages", "employment",
			"salary", "termination", "notice period", "bond", "non-compete",
			"gratuity", "provident fund", "wrongful dismissal",
			// Hindi
			"अनुबंध", "समझौता", "वेतन", "नौकरी से निकाल",
		},
	},
	{
		Category: CategoryConsumer,
		Terms: []string{
			"consumer", "refund", "defective", "warranty", "guarantee",
			"consumer forum", "consumer court", "overcharged", "mrp",
			"product complaint", "service deficiency", "e-commerce",
			// Hindi
			"उपभोक्ता", "रिफंड", "खराब सामान", "वारंटी",
		},
	},
}

// identityTriggers detect questions about the assistant itself. Probes are
// assumed to arrive pre-translated to English in the canonical pipeline.
var identityTriggers = []string{
	"who are you",
	"what are you",
	"who is this",
	"identify yourself",
	"what is your name",
	"are you a bot",
}

// LegalKeywords is the broad in-scope gate: general legal vocabulary, the
// modern statutory codes, and cyber-law terms (cyber questions are treated
// as legal intent for this product).
var LegalKeywords = []string{
	// general legal vocabulary
	"law", "legal", "rights", "police", "court", "complaint", "fir",
	"appeal", "rti", "eviction", "divorce", "custody", "contract",
	"agreement", "charge", "arrest", "evidence", "bail", "sue", "lawsuit",
	"constitution", "article", "fundamental rights", "legal aid",
	"advocate", "lawyer", "judgment", "verdict", "legal precedent",
	"case law", "statute", "section",
	// modern statutory codes and their predecessors
	"bns", "bharatiya nyaya sanhita",
	"bnss", "bharatiya nagarik suraksha sanhita",
	"bsa", "bharatiya sakshya adhiniyam",
	"ipc", "crpc", "evidence act",
	// cyber law
	"cyber", "cyber crime", "cybercrime", "information technology act",
	"it act", "data privacy", "online fraud", "phishing", "upi fraud",
	"bank fraud", "sextortion", "harassment", "stalking",
	"electronic evidence", "social media", "identity theft", "ransomware",
	"malware", "hacking",
	// Hindi
	"कानून", "कानूनी", "अधिकार", "पुलिस", "अदालत", "न्यायालय", "वकील",
	"शिकायत", "जमानत", "गिरफ्तार", "तलाक", "अनुबंध",
}

// CyberSafetyKeywords is the narrower cyber-safety carve-out: hygiene
// questions that deserve prevention guidance even when they are not
// "legal" by the broad gate.
var CyberSafetyKeywords = []string{
	"cyber", "cyber crime", "cybercrime", "online fraud", "phishing",
	"scam", "otp", "upi", "bank fraud", "data privacy", "privacy",
	"social media", "identity theft", "sextortion", "harassment",
	"stalking", "ransomware", "malware", "hacking", "password",
	"2fa", "mfa", "vpn", "it act", "information technology act",
	// Hindi
	"साइबर", "पासवर्ड", "ओटीपी", "धोखाधड़ी",
}

// AIIdentityPatterns are upstream self-identification phrases that must
// never surface in an answer. A candidate containing any of them is
// discarded wholesale.
var AIIdentityPatterns = []string{
	"i am chatgpt", "i am gpt", "i am a language model", "i am an ai",
	"i am ai", "i am a chatbot", "this is chatgpt", "chatgpt", "openai",
	"this is gemini", "this is gemma", "i am an llm", "as a language model",
	"large language model",
}

// AttributionIndicators signal that an answer already cites its sources,
// so the disclaimer block must not be appended again.
var AttributionIndicators = []string{
	"according to", "as per", "under", "section", "article", "act of",
	"law of", "bns", "bnss", "bsa", "ipc", "crpc", "constitution",
	"supreme court", "high court", "judgment", "case law",
	"legal precedent", "statute",
	// Hindi
	"के अनुसार", "धारा", "अनुच्छेद", "सर्वोच्च न्यायालय", "उच्च न्यायालय",
}

// Score counts how many terms occur in text. Text is lowercased once by
// the caller via Normalize; terms are stored lowercase.
func Score(normalized string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(normalized, term) {
			n++
		}
	}
	return n
}

// ContainsAny reports whether any term occurs in the normalized text.
func ContainsAny(normalized string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(normalized, term) {
			return true
		}
	}
	return false
}

// Normalize prepares question or answer text for matching.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// IdentityTriggers exposes the identity-probe phrases for the classifier.
func IdentityTriggers() []string {
	return identityTriggers
}
