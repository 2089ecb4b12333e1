package http

import (
	"errors"
	"net/http"
	"strconv"

	"nexhr-leave/internal/adapter/middleware"
	"nexhr-leave/internal/domain/directory"
	"nexhr-leave/internal/domain/identity"
	"nexhr-leave/internal/domain/leave"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// writeError maps domain errors onto HTTP status codes.
func writeError(c echo.Context, log *zap.Logger, err error) error {
	var ve *leave.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: ve.Field, Message: ve.Message}},
		})
	case errors.Is(err, leave.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, identity.ErrNoSession):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no session"})
	case errors.Is(err, leave.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case errors.Is(err, leave.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "leave request not found"})
	case errors.Is(err, directory.ErrNotFound), errors.Is(err, identity.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, leave.ErrAlreadyDecided):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "leave request already decided"})
	default:
		log.Error("request failed",
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// bindValid binds the JSON body into req and validates it, writing the 400/422 itself.
// ok is false when a response was already written.
func bindValid(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

// session returns the caller identity, or ErrNoSession when nobody is logged in.
func session(c echo.Context) (identity.Identity, error) {
	who := middleware.IdentityFrom(c)
	if who.Anonymous() {
		return who, identity.ErrNoSession
	}
	return who, nil
}

func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	return id, err == nil
}
