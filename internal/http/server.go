package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nyaysetu/legalchat/internal/auth"
	"go.uber.org/zap"
)

// NewServer wires up routes and middleware.
func NewServer(h *Handler, authMgr *auth.Manager, allowOrigin string, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{allowOrigin},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(RequestLogger(logger))

	e.GET("/health", h.Health)

	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/auth/verify", h.Verify)

	protected := e.Group("", RequireAuth(authMgr))
	protected.POST("/chat", h.Chat)
	protected.POST("/generate_form", h.GenerateForm)

	e.GET("/forms/:type/fields", h.FormFields)
	e.GET("/data/chats", h.DataChats)
	e.GET("/data/forms", h.DataForms)

	return e
}
