package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nyaysetu/legalchat/internal/models"
)

func newSQLite(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteChatRoundTrip(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	for i, r := range []*models.ChatRecord{
		{Question: "how do i file an FIR", Answer: "Go to the police station.", Language: "en", Timestamp: base},
		{Question: "किराया विवाद", Answer: "किरायेदार अधिकार", Language: "hi", Timestamp: base.Add(time.Hour)},
	} {
		if err := s.SaveChat(ctx, r); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		if r.ID == 0 {
			t.Errorf("record %d: no ID assigned", i)
		}
	}

	all, err := s.ListChats(ctx, models.ChatFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].Language != "hi" {
		t.Error("expected newest record first")
	}
	if !all[1].Timestamp.Equal(base) {
		t.Errorf("timestamp = %v, want %v", all[1].Timestamp, base)
	}

	filtered, err := s.ListChats(ctx, models.ChatFilter{Language: "en", Query: "police"})
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered) != 1 || filtered[0].Question != "how do i file an FIR" {
		t.Errorf("filtered = %v", filtered)
	}

	windowed, err := s.ListChats(ctx, models.ChatFilter{Start: base.Add(30 * time.Minute)})
	if err != nil {
		t.Fatal(err)
	}
	if len(windowed) != 1 || windowed[0].Language != "hi" {
		t.Errorf("windowed = %v", windowed)
	}
}

func TestSQLiteFormRoundTrip(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()

	record := &models.FormRecord{
		FormType:  "FIR",
		FormText:  "First Information Report ...",
		Responses: `{"name":"Ramesh Kumar"}`,
		Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := s.SaveForm(ctx, record); err != nil {
		t.Fatal(err)
	}

	got, err := s.ListForms(ctx, models.FormFilter{FormType: "FIR"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Responses != record.Responses {
		t.Errorf("got = %v", got)
	}

	none, err := s.ListForms(ctx, models.FormFilter{FormType: "RTI"})
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("none = %v", none)
	}
}

func TestSQLiteUserLifecycle(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()

	user := &models.User{
		Email:             "asha@example.com",
		PasswordHash:      "hash",
		VerificationToken: "tok123",
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatal(err)
	}

	err := s.CreateUser(ctx, &models.User{Email: "asha@example.com", CreatedAt: time.Now()})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}

	got, err := s.GetUserByVerificationToken(ctx, "tok123")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != user.ID || got.IsVerified {
		t.Errorf("got = %+v", got)
	}

	if err := s.SetUserVerified(ctx, user.ID); err != nil {
		t.Fatal(err)
	}
	verified, err := s.GetUserByEmail(ctx, "asha@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !verified.IsVerified || verified.VerificationToken != "" || verified.VerifiedAt == nil {
		t.Errorf("verified = %+v", verified)
	}

	if err := s.SetUserVerified(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := s.GetUserByEmail(ctx, "none@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
