package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"nexhr-leave/internal/domain/identity"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// HeaderSessionUser names the logged-in user, set by the login flow in front of us.
	HeaderSessionUser = "X-Session-User"
	// HeaderSessionEmployeeID optionally overrides the employee linkage of the session.
	HeaderSessionEmployeeID = "X-Session-Employee-Id"

	identityKey = "identity"
)

// Session resolves the caller's identity from the session headers and the users table.
// A missing header yields an anonymous identity; handlers decide whether that is fine.
func Session(users identity.Repository, log *zap.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			var who identity.Identity

			username := strings.TrimSpace(req.Header.Get(HeaderSessionUser))
			if username != "" {
				who.Username = username
				u, err := users.GetByUsername(req.Context(), username)
				switch {
				case err == nil:
					who = u.Identity()
				case errors.Is(err, gorm.ErrRecordNotFound):
					// unknown users keep their name; the admin name alone still grants admin
				default:
					log.Error("session lookup failed", zap.String("username", username), zap.Error(err))
					return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
				}
			}

			if raw := strings.TrimSpace(req.Header.Get(HeaderSessionEmployeeID)); raw != "" {
				id, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid " + HeaderSessionEmployeeID})
				}
				who.EmployeeID = &id
			}

			c.Set(identityKey, who)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity stored by Session, or an anonymous one.
func IdentityFrom(c echo.Context) identity.Identity {
	if who, ok := c.Get(identityKey).(identity.Identity); ok {
		return who
	}
	return identity.Identity{}
}
