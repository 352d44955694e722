package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nyaysetu/legalchat/internal/models"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS chats (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    language TEXT NOT NULL,
    timestamp TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chats_timestamp ON chats(timestamp);

CREATE TABLE IF NOT EXISTS forms (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    form_type TEXT NOT NULL,
    form_text TEXT NOT NULL,
    responses_json TEXT NOT NULL,
    timestamp TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_forms_timestamp ON forms(timestamp);

CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    is_verified INTEGER NOT NULL DEFAULT 0,
    verification_token TEXT,
    created_at TEXT NOT NULL,
    verified_at TEXT
);
`

// SQLiteStorage persists records in a local SQLite file. Timestamps are
// stored as RFC 3339 strings so range filters compare lexicographically.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to sqlite database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("error initializing sqlite schema: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) SaveChat(ctx context.Context, record *models.ChatRecord) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO chats (question, answer, language, timestamp) VALUES (?, ?, ?, ?)`,
		record.Question, record.Answer, record.Language, record.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("error saving chat: %w", err)
	}
	record.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading chat id: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) ListChats(ctx context.Context, filter models.ChatFilter) ([]*models.ChatRecord, error) {
	query := `SELECT id, question, answer, language, timestamp FROM chats`
	var clauses []string
	var args []any

	if !filter.Start.IsZero() {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Start.UTC().Format(time.RFC3339))
	}
	if !filter.End.IsZero() {
		clauses = append(clauses, "timestamp <= ?")
		args = append(args, filter.End.UTC().Format(time.RFC3339))
	}
	if filter.Language != "" {
		clauses = append(clauses, "language = ?")
		args = append(args, filter.Language)
	}
	if filter.Query != "" {
		clauses = append(clauses, "(question LIKE ? OR answer LIKE ?)")
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying chats: %w", err)
	}
	defer rows.Close()

	var records []*models.ChatRecord
	for rows.Next() {
		record := &models.ChatRecord{}
		var ts string
		if err := rows.Scan(&record.ID, &record.Question, &record.Answer, &record.Language, &ts); err != nil {
			return nil, fmt.Errorf("error scanning chat: %w", err)
		}
		record.Timestamp, _ = time.Parse(time.RFC3339, ts)
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *SQLiteStorage) SaveForm(ctx context.Context, record *models.FormRecord) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO forms (form_type, form_text, responses_json, timestamp) VALUES (?, ?, ?, ?)`,
		record.FormType, record.FormText, record.Responses, record.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("error saving form: %w", err)
	}
	record.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading form id: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) ListForms(ctx context.Context, filter models.FormFilter) ([]*models.FormRecord, error) {
	query := `SELECT id, form_type, form_text, responses_json, timestamp FROM forms`
	var clauses []string
	var args []any

	if !filter.Start.IsZero() {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Start.UTC().Format(time.RFC3339))
	}
	if !filter.End.IsZero() {
		clauses = append(clauses, "timestamp <= ?")
		args = append(args, filter.End.UTC().Format(time.RFC3339))
	}
	if filter.FormType != "" {
		clauses = append(clauses, "form_type = ?")
		args = append(args, filter.FormType)
	}
	if filter.Query != "" {
		clauses = append(clauses, "form_text LIKE ?")
		args = append(args, "%"+filter.Query+"%")
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying forms: %w", err)
	}
	defer rows.Close()

	var records []*models.FormRecord
	for rows.Next() {
		record := &models.FormRecord{}
		var ts string
		if err := rows.Scan(&record.ID, &record.FormType, &record.FormText, &record.Responses, &ts); err != nil {
			return nil, fmt.Errorf("error scanning form: %w", err)
		}
		record.Timestamp, _ = time.Parse(time.RFC3339, ts)
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *SQLiteStorage) CreateUser(ctx context.Context, user *models.User) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, is_verified, verification_token, created_at) VALUES (?, ?, ?, ?, ?)`,
		user.Email, user.PasswordHash, boolToInt(user.IsVerified), user.VerificationToken,
		user.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	user.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading user id: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, `email = ?`, email)
}

func (s *SQLiteStorage) GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	return s.getUser(ctx, `verification_token = ?`, token)
}

func (s *SQLiteStorage) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, is_verified, verification_token, created_at, verified_at
		FROM users WHERE ` + where

	user := &models.User{}
	var verified int
	var token, createdAt sql.NullString
	var verifiedAt sql.NullString
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &verified, &token, &createdAt, &verifiedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	user.IsVerified = verified != 0
	user.VerificationToken = token.String
	if createdAt.Valid {
		user.CreatedAt, _ = time.Parse(time.RFC3339, createdAt.String)
	}
	if verifiedAt.Valid {
		if t, err := time.Parse(time.RFC3339, verifiedAt.String); err == nil {
			user.VerifiedAt = &t
		}
	}
	return user, nil
}

func (s *SQLiteStorage) SetUserVerified(ctx context.Context, userID int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET is_verified = 1, verification_token = NULL, verified_at = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), userID,
	)
	if err != nil {
		return fmt.Errorf("error verifying user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
