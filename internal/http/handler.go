package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nyaysetu/legalchat/internal/auth"
	"github.com/nyaysetu/legalchat/internal/chat"
	"github.com/nyaysetu/legalchat/internal/forms"
	"github.com/nyaysetu/legalchat/internal/models"
	"github.com/nyaysetu/legalchat/internal/storage"
	"go.uber.org/zap"
)

// Handler implements the REST API.
type Handler struct {
	chat   *chat.Service
	store  storage.Storage
	auth   *auth.Manager
	logger *zap.Logger
}

func NewHandler(chatSvc *chat.Service, store storage.Storage, authMgr *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{chat: chatSvc, store: store, auth: authMgr, logger: logger}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "NyaySetu Legal Aid API",
	})
}

type chatRequest struct {
	Question string `json:"question"`
	Language string `json:"language"`
}

type chatResponse struct {
	Answer    string    `json:"answer"`
	Question  string    `json:"question"`
	Language  string    `json:"language"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return respondAppError(c, NewValidationError("invalid JSON body"))
	}
	if strings.TrimSpace(req.Question) == "" {
		return respondAppError(c, NewValidationError("question is required"))
	}

	record, err := h.chat.Ask(c.Request().Context(), req.Question, req.Language)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyQuestion) {
			return respondAppError(c, NewValidationError("question is required"))
		}
		h.logger.Error("chat turn failed", zap.Error(err))
		return respondAppError(c, NewInternalError("internal server error", err))
	}

	return c.JSON(http.StatusOK, chatResponse{
		Answer:    record.Answer,
		Question:  record.Question,
		Language:  record.Language,
		Timestamp: record.Timestamp,
	})
}

type formRequest struct {
	FormType  string            `json:"form_type"`
	Responses map[string]string `json:"responses"`
}

func (h *Handler) GenerateForm(c echo.Context) error {
	var req formRequest
	if err := c.Bind(&req); err != nil {
		return respondAppError(c, NewValidationError("invalid JSON body"))
	}
	if strings.TrimSpace(req.FormType) == "" {
		return respondAppError(c, NewValidationError("form_type is required"))
	}

	text, err := forms.Generate(req.FormType, req.Responses, time.Now())
	if err != nil {
		return respondAppError(c, NewValidationError(err.Error()))
	}

	responsesJSON, err := json.Marshal(req.Responses)
	if err != nil {
		responsesJSON = []byte("{}")
	}
	record := &models.FormRecord{
		FormType:  strings.ToUpper(strings.TrimSpace(req.FormType)),
		FormText:  text,
		Responses: string(responsesJSON),
		Timestamp: time.Now().UTC(),
	}
	if err := h.store.SaveForm(c.Request().Context(), record); err != nil {
		h.logger.Error("failed to persist form", zap.Error(err), zap.String("form_type", record.FormType))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"form_type": record.FormType,
		"form_text": text,
		"timestamp": record.Timestamp,
	})
}

func (h *Handler) FormFields(c echo.Context) error {
	formType := c.Param("type")
	fields := forms.FieldsFor(formType)
	if fields == nil {
		return respondAppError(c, NewNotFoundError("unknown form type"))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"form_type": strings.ToUpper(formType),
		"fields":    fields,
	})
}

func (h *Handler) DataChats(c echo.Context) error {
	filter := models.ChatFilter{
		Language: c.QueryParam("language"),
		Query:    c.QueryParam("q"),
	}
	var err error
	if filter.Start, err = parseTimeParam(c.QueryParam("start")); err != nil {
		return respondAppError(c, NewValidationError("invalid start timestamp"))
	}
	if filter.End, err = parseTimeParam(c.QueryParam("end")); err != nil {
		return respondAppError(c, NewValidationError("invalid end timestamp"))
	}

	records, err := h.chat.History(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("failed to list chats", zap.Error(err))
		return respondAppError(c, NewInternalError("internal server error", err))
	}
	if records == nil {
		records = []*models.ChatRecord{}
	}
	return c.JSON(http.StatusOK, map[string]any{"chats": records})
}

func (h *Handler) DataForms(c echo.Context) error {
	filter := models.FormFilter{
		FormType: strings.ToUpper(c.QueryParam("form_type")),
		Query:    c.QueryParam("q"),
	}
	var err error
	if filter.Start, err = parseTimeParam(c.QueryParam("start")); err != nil {
		return respondAppError(c, NewValidationError("invalid start timestamp"))
	}
	if filter.End, err = parseTimeParam(c.QueryParam("end")); err != nil {
		return respondAppError(c, NewValidationError("invalid end timestamp"))
	}

	records, err := h.store.ListForms(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("failed to list forms", zap.Error(err))
		return respondAppError(c, NewInternalError("internal server error", err))
	}
	if records == nil {
		records = []*models.FormRecord{}
	}
	return c.JSON(http.StatusOK, map[string]any{"forms": records})
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return respondAppError(c, NewValidationError("invalid JSON body"))
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return respondAppError(c, NewValidationError("valid email is required"))
	}
	if len(req.Password) < 8 {
		return respondAppError(c, NewValidationError("password must be at least 8 characters"))
	}

	ctx := c.Request().Context()
	if _, err := h.store.GetUserByEmail(ctx, email); err == nil {
		return respondAppError(c, NewConflictError("email already registered"))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return respondAppError(c, NewInternalError("internal server error", err))
	}
	token, err := auth.GenerateVerificationToken()
	if err != nil {
		return respondAppError(c, NewInternalError("internal server error", err))
	}

	user := &models.User{
		Email:             email,
		PasswordHash:      hash,
		VerificationToken: token,
		CreatedAt:         time.Now().UTC(),
	}
	if err := h.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return respondAppError(c, NewConflictError("email already registered"))
		}
		h.logger.Error("failed to create user", zap.Error(err))
		return respondAppError(c, NewInternalError("internal server error", err))
	}

	// Verification mail delivery is an external concern; the token is
	// returned so the operator's mailer can build the link.
	return c.JSON(http.StatusCreated, map[string]any{
		"message":            "registered; verification required",
		"verification_token": token,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return respondAppError(c, NewValidationError("invalid JSON body"))
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.store.GetUserByEmail(c.Request().Context(), email)
	if err != nil || !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return respondAppError(c, NewAuthError("invalid credentials"))
	}
	if !user.IsVerified {
		return respondAppError(c, NewAuthError("email not verified"))
	}

	token, err := h.auth.CreateToken(user.ID, user.Email)
	if err != nil {
		h.logger.Error("failed to sign token", zap.Error(err))
		return respondAppError(c, NewInternalError("internal server error", err))
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) Verify(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return respondAppError(c, NewValidationError("token is required"))
	}

	ctx := c.Request().Context()
	user, err := h.store.GetUserByVerificationToken(ctx, token)
	if err != nil {
		return respondAppError(c, NewNotFoundError("invalid verification token"))
	}
	if err := h.store.SetUserVerified(ctx, user.ID); err != nil {
		h.logger.Error("failed to verify user", zap.Error(err), zap.Int64("user_id", user.ID))
		return respondAppError(c, NewInternalError("internal server error", err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "email verified"})
}

func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func respondAppError(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.StatusCode, ErrorResponse{
			Error: appErr.Message,
			Code:  string(appErr.Category),
		})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
		Code:  string(ErrCatUnknown),
	})
}
