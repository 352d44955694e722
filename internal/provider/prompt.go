package provider

import (
	"fmt"
	"strings"

	"github.com/nyaysetu/legalchat/internal/models"
)

// systemInstruction scopes every generative call to Indian law and the
// current statutory codes. Providers are told to cite BNS/BNSS/BSA rather
// than the repealed IPC/CrPC/Evidence Act.
const systemInstruction = `You are a legal assistant specializing in Indian law. Answer only questions about Indian law and cyber law.

Rules:
- Cite the Bharatiya Nyaya Sanhita (BNS), 2023, Bharatiya Nagarik Suraksha Sanhita (BNSS), 2023, and Bharatiya Sakshya Adhiniyam (BSA), 2023 instead of the repealed IPC, CrPC, and Indian Evidence Act.
- Format answers as short points or numbered steps.
- Name the relevant sections and acts where applicable.
- State practical next steps: where to file, what documents to keep, deadlines.
- Recommend consulting a qualified lawyer for case-specific decisions.
- Answer in the same language as the question.`

// maxPrecedents bounds the case-law context embedded in a prompt.
const maxPrecedents = 5

// buildUserPrompt assembles the question plus an optional precedent block.
func buildUserPrompt(question string, precedents []models.CaseLaw) string {
	if len(precedents) == 0 {
		return question
	}
	if len(precedents) > maxPrecedents {
		precedents = precedents[:maxPrecedents]
	}

	var b strings.Builder
	b.WriteString(question)
	b.WriteString("\n\nRelevant precedents (reference them where applicable):\n")
	for i, p := range precedents {
		fmt.Fprintf(&b, "%d. %s", i+1, p.Title)
		if p.Court != "" {
			fmt.Fprintf(&b, " (%s", p.Court)
			if p.Date != "" {
				fmt.Fprintf(&b, ", %s", p.Date)
			}
			b.WriteString(")")
		}
		if p.Citation != "" {
			fmt.Fprintf(&b, " [%s]", p.Citation)
		}
		if p.Summary != "" {
			fmt.Fprintf(&b, ": %s", p.Summary)
		}
		if p.URL != "" {
			fmt.Fprintf(&b, " <%s>", p.URL)
		}
		b.WriteString("\n")
	}
	return b.String()
}
