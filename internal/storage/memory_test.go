package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nyaysetu/legalchat/internal/models"
)

func TestMemorySaveAndListChats(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	records := []*models.ChatRecord{
		{Question: "how do i file an FIR", Answer: "Go to the police station.", Language: "en", Timestamp: base},
		{Question: "मकान मालिक किराया बढ़ा रहा है", Answer: "किरायेदार अधिकार...", Language: "hi", Timestamp: base.Add(time.Hour)},
		{Question: "what is bail", Answer: "Bail is...", Language: "en", Timestamp: base.Add(2 * time.Hour)},
	}
	for _, r := range records {
		if err := s.SaveChat(ctx, r); err != nil {
			t.Fatal(err)
		}
		if r.ID == 0 {
			t.Error("SaveChat must assign an ID")
		}
	}

	all, err := s.ListChats(ctx, models.ChatFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	// Newest first.
	if all[0].Question != "what is bail" {
		t.Errorf("first record = %q, want newest", all[0].Question)
	}

	tests := []struct {
		name   string
		filter models.ChatFilter
		want   int
	}{
		{"language", models.ChatFilter{Language: "hi"}, 1},
		{"query on question", models.ChatFilter{Query: "fir"}, 1},
		{"query on answer", models.ChatFilter{Query: "police station"}, 1},
		{"start", models.ChatFilter{Start: base.Add(90 * time.Minute)}, 1},
		{"end", models.ChatFilter{End: base.Add(30 * time.Minute)}, 1},
		{"window", models.ChatFilter{Start: base.Add(30 * time.Minute), End: base.Add(90 * time.Minute)}, 1},
		{"no match", models.ChatFilter{Language: "ta"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListChats(ctx, tt.filter)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestMemoryListChatsReturnsCopies(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	if err := s.SaveChat(ctx, &models.ChatRecord{Question: "q", Answer: "a", Language: "en", Timestamp: time.Now()}); err != nil {
		t.Fatal(err)
	}

	first, _ := s.ListChats(ctx, models.ChatFilter{})
	first[0].Answer = "mutated"

	second, _ := s.ListChats(ctx, models.ChatFilter{})
	if second[0].Answer != "a" {
		t.Error("stored record was mutated through a listed copy")
	}
}

func TestMemorySaveAndListForms(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	forms := []*models.FormRecord{
		{FormType: "FIR", FormText: "First Information Report ...", Timestamp: base},
		{FormType: "RTI", FormText: "Right to Information ...", Timestamp: base.Add(time.Hour)},
	}
	for _, f := range forms {
		if err := s.SaveForm(ctx, f); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.ListForms(ctx, models.FormFilter{FormType: "FIR"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].FormType != "FIR" {
		t.Errorf("unexpected result %v", got)
	}

	got, _ = s.ListForms(ctx, models.FormFilter{Query: "information"})
	if len(got) != 2 {
		t.Errorf("len = %d, want 2 (text search is case-insensitive)", len(got))
	}
}

func TestMemoryUserLifecycle(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	user := &models.User{
		Email:             "asha@example.com",
		PasswordHash:      "hash",
		VerificationToken: "tok123",
		CreatedAt:         time.Now(),
	}
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatal(err)
	}
	if user.ID == 0 {
		t.Error("CreateUser must assign an ID")
	}

	// Duplicate email, case-insensitive.
	err := s.CreateUser(ctx, &models.User{Email: "ASHA@example.com"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}

	got, err := s.GetUserByEmail(ctx, "Asha@Example.com")
	if err != nil {
		t.Fatal(err)
	}
	if got.Email != "asha@example.com" {
		t.Errorf("email = %q", got.Email)
	}
	if got.IsVerified {
		t.Error("new user must start unverified")
	}

	byToken, err := s.GetUserByVerificationToken(ctx, "tok123")
	if err != nil {
		t.Fatal(err)
	}
	if byToken.ID != user.ID {
		t.Errorf("token lookup returned user %d, want %d", byToken.ID, user.ID)
	}

	if err := s.SetUserVerified(ctx, user.ID); err != nil {
		t.Fatal(err)
	}
	verified, _ := s.GetUserByEmail(ctx, user.Email)
	if !verified.IsVerified {
		t.Error("user should be verified")
	}
	if verified.VerificationToken != "" {
		t.Error("verification token should be cleared")
	}
	if verified.VerifiedAt == nil {
		t.Error("VerifiedAt should be set")
	}

	// The spent token no longer resolves.
	if _, err := s.GetUserByVerificationToken(ctx, "tok123"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryNotFound(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	if _, err := s.GetUserByEmail(ctx, "none@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := s.GetUserByVerificationToken(ctx, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := s.SetUserVerified(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
