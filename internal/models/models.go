package models

import "time"

// ChatRecord is one persisted chat turn. Records are append-only: the
// backend never mutates or deletes them.
type ChatRecord struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Language  string    `json:"language"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatFilter narrows chat history reads. Zero values mean "no filter".
type ChatFilter struct {
	Start    time.Time
	End      time.Time
	Language string
	Query    string // free-text match against question and answer
}

// FormRecord is a persisted generated legal form.
type FormRecord struct {
	ID        int64     `json:"id"`
	FormType  string    `json:"form_type"`
	FormText  string    `json:"form_text"`
	Responses string    `json:"responses_json"`
	Timestamp time.Time `json:"timestamp"`
}

// FormFilter narrows form history reads.
type FormFilter struct {
	Start    time.Time
	End      time.Time
	FormType string
	Query    string
}

// User is a registered account. Passwords are stored only as bcrypt hashes.
type User struct {
	ID                int64      `json:"id"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"-"`
	IsVerified        bool       `json:"is_verified"`
	VerificationToken string     `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty"`
}

// CaseLaw is one precedent record from the case-law search collaborator.
type CaseLaw struct {
	Title    string `json:"title"`
	Court    string `json:"court"`
	Date     string `json:"date"`
	Citation string `json:"citation"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}
