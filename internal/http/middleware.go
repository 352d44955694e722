package http

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nyaysetu/legalchat/internal/auth"
	"go.uber.org/zap"
)

// RequireAuth validates the Bearer token and stores the claims in the
// echo context under "claims".
func RequireAuth(mgr *auth.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return respondAppError(c, NewAuthError("missing bearer token"))
			}
			claims, err := mgr.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return respondAppError(c, NewAuthError("invalid or expired token"))
			}
			c.Set("claims", claims)
			return next(c)
		}
	}
}

// RequestLogger logs one structured line per request.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Int64("latency_ms", time.Since(start).Milliseconds()),
			)
			return err
		}
	}
}
