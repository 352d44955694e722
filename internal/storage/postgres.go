package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/nyaysetu/legalchat/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// PostgresStorage persists records in PostgreSQL.
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config DatabaseConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	s := &PostgresStorage{db: db}
	if err := s.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}
	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}
	return nil
}

func (s *PostgresStorage) SaveChat(ctx context.Context, record *models.ChatRecord) error {
	query := `
		INSERT INTO chats (question, answer, language, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := s.db.QueryRowContext(ctx, query,
		record.Question, record.Answer, record.Language, record.Timestamp,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("error saving chat: %w", err)
	}
	return nil
}

func (s *PostgresStorage) ListChats(ctx context.Context, filter models.ChatFilter) ([]*models.ChatRecord, error) {
	query := `SELECT id, question, answer, language, timestamp FROM chats`
	var clauses []string
	var args []any

	if !filter.Start.IsZero() {
		args = append(args, filter.Start)
		clauses = append(clauses, fmt.Sprintf("timestamp >= $%d", len(args)))
	}
	if !filter.End.IsZero() {
		args = append(args, filter.End)
		clauses = append(clauses, fmt.Sprintf("timestamp <= $%d", len(args)))
	}
	if filter.Language != "" {
		args = append(args, filter.Language)
		clauses = append(clauses, fmt.Sprintf("language = $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		clauses = append(clauses, fmt.Sprintf("(question ILIKE $%d OR answer ILIKE $%d)", len(args), len(args)))
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
		if err := rows.Scan(&record.ID, &record.Question, &record.Answer, &record.Language, &record.Timestamp); err != nil {
			return nil, fmt.Errorf("error scanning chat: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *PostgresStorage) SaveForm(ctx context.Context, record *models.FormRecord) error {
	query := `
		INSERT INTO forms (form_type, form_text, responses_json, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := s.db.QueryRowContext(ctx, query,
		record.FormType, record.FormText, record.Responses, record.Timestamp,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("error saving form: %w", err)
	}
	return nil
}

func (s *PostgresStorage) ListForms(ctx context.Context, filter models.FormFilter) ([]*models.FormRecord, error) {
	query := `SELECT id, form_type, form_text, responses_json, timestamp FROM forms`
	var clauses []string
	var args []any

	if !filter.Start.IsZero() {
		args = append(args, filter.Start)
		clauses = append(clauses, fmt.Sprintf("timestamp >= $%d", len(args)))
	}
	if !filter.End.IsZero() {
		args = append(args, filter.End)
		clauses = append(clauses, fmt.Sprintf("timestamp <= $%d", len(args)))
	}
	if filter.FormType != "" {
		args = append(args, filter.FormType)
		clauses = append(clauses, fmt.Sprintf("form_type = $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		clauses = append(clauses, fmt.Sprintf("form_text ILIKE $%d", len(args)))
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
		if err := rows.Scan(&record.ID, &record.FormType, &record.FormText, &record.Responses, &record.Timestamp); err != nil {
			return nil, fmt.Errorf("error scanning form: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *PostgresStorage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, is_verified, verification_token, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := s.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.IsVerified, user.VerificationToken, user.CreatedAt,
	).Scan(&user.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, `email = $1`, email)
}

func (s *PostgresStorage) GetUserByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	return s.getUser(ctx, `verification_token = $1`, token)
}

func (s *PostgresStorage) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, is_verified, verification_token, created_at, verified_at
		FROM users WHERE ` + where

	user := &models.User{}
	var token sql.NullString
	var verifiedAt sql.NullTime
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.IsVerified, &token, &user.CreatedAt, &verifiedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	user.VerificationToken = token.String
	if verifiedAt.Valid {
		t := verifiedAt.Time
		user.VerifiedAt = &t
	}
	return user, nil
}

func (s *PostgresStorage) SetUserVerified(ctx context.Context, userID int64) error {
	query := `
		UPDATE users
		SET is_verified = TRUE, verification_token = NULL, verified_at = NOW()
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("error verifying user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
