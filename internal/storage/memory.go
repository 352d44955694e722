package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/nyaysetu/legalchat/internal/models"
)

// MemoryStorage is the in-memory Storage used for local development and
// tests.
type MemoryStorage struct {
	mu     sync.RWMutex
	chats  []*models.ChatRecord
	forms  []*models.FormRecord
	users  map[string]*models.User
	nextID int64
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:  make(map[string]*models.User),
		nextID: 1,
	}
}

func (s *MemoryStorage) SaveChat(_ context.Context, record *models.ChatRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.nextID
	s.nextID++
	saved := *record
	s.chats = append(s.chats, &saved)
	return nil
}

func (s *MemoryStorage) ListChats(_ context.Context, filter models.ChatFilter) ([]*models.ChatRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.ChatRecord
	for _, record := range s.chats {
		if !filter.Start.IsZero() && record.Timestamp.Before(filter.Start) {
			continue
		}
		if !filter.End.IsZero() && record.Timestamp.After(filter.End) {
			continue
		}
		if filter.Language != "" && record.Language != filter.Language {
			continue
		}
		if filter.Query != "" {
			q := strings.ToLower(filter.Query)
			if !strings.Contains(strings.ToLower(record.Question), q) &&
				!strings.Contains(strings.ToLower(record.Answer), q) {
				continue
			}
		}
		copied := *record
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *MemoryStorage) SaveForm(_ context.Context, record *models.FormRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.nextID
	s.nextID++
	saved := *record
	s.forms = append(s.forms, &saved)
	return nil
}

func (s *MemoryStorage) ListForms(_ context.Context, filter models.FormFilter) ([]*models.FormRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.FormRecord
	for _, record := range s.forms {
		if !filter.Start.IsZero() && record.Timestamp.Before(filter.Start) {
			continue
		}
		if !filter.End.IsZero() && record.Timestamp.After(filter.End) {
			continue
		}
		if filter.FormType != "" && record.FormType != filter.FormType {
			continue
		}
		if filter.Query != "" &&
			!strings.Contains(strings.ToLower(record.FormText), strings.ToLower(filter.Query)) {
			continue
		}
		copied := *record
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *MemoryStorage) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, exists := s.users[key]; exists {
		return ErrDuplicateEmail
	}
	user.ID = s.nextID
	s.nextID++
	saved := *user
	s.users[key] = &saved
	return nil
}

func (s *MemoryStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, exists := s.users[strings.ToLower(email)]; exists {
		copied := *user
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) GetUserByVerificationToken(_ context.Context, token string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if token == "" {
		return nil, ErrNotFound
	}
	for _, user := range s.users {
		if user.VerificationToken == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) SetUserVerified(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == userID {
			now := time.Now()
			user.IsVerified = true
			user.VerificationToken = ""
			user.VerifiedAt = &now
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStorage) Close() error {
	return nil
}
