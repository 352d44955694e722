package storage

import (
	"context"
	"errors"

	"github.com/nyaysetu/legalchat/internal/models"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when registering an email that exists.
var ErrDuplicateEmail = errors.New("email already registered")

// Storage persists chat turns, generated forms, and user accounts. Chat
// and form records are append-only.
type Storage interface {
	SaveChat(ctx context.Context, record *models.ChatRecord) error
	ListChats(ctx context.Context, filter models.ChatFilter) ([]*models.ChatRecord, error)

	SaveForm(ctx context.Context, record *models.FormRecord) error
	ListForms(ctx context.Context, filter models.FormFilter) ([]*models.FormRecord, error)

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error)
	SetUserVerified(ctx context.Context, userID int64) error

	Close() error
}
