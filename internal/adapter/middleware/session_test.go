package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexhr-leave/internal/domain/identity"
	"nexhr-leave/internal/testutil/usermock"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, users identity.Repository, hdr map[string]string) (*httptest.ResponseRecorder, identity.Identity) {
	t.Helper()
	e := echo.New()
	var got identity.Identity
	e.GET("/who", func(c echo.Context) error {
		got = IdentityFrom(c)
		return c.NoContent(http.StatusNoContent)
	}, Session(users, nil))

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, got
}

func TestSession_KnownUser(t *testing.T) {
	emp := int64(3)
	users := &usermock.Repo{
		GetByUsernameFn: func(_ context.Context, username string) (*identity.User, error) {
			require.Equal(t, "ram", username)
			return &identity.User{Username: "ram", Role: "employee", EmployeeID: &emp}, nil
		},
	}
	rec, who := runSession(t, users, map[string]string{HeaderSessionUser: " ram "})

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "ram", who.Username)
	assert.Equal(t, "employee", who.Role)
	require.NotNil(t, who.EmployeeID)
	assert.Equal(t, int64(3), *who.EmployeeID)
	assert.False(t, who.IsAdmin())
}

func TestSession_UnknownAdminNameStillAdmin(t *testing.T) {
	rec, who := runSession(t, &usermock.Repo{}, map[string]string{HeaderSessionUser: "Admin"})

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "Admin", who.Username)
	assert.True(t, who.IsAdmin())
	assert.Nil(t, who.EmployeeID)
}

func TestSession_EmployeeHeaderOverrides(t *testing.T) {
	emp := int64(3)
	users := &usermock.Repo{
		GetByUsernameFn: func(context.Context, string) (*identity.User, error) {
			return &identity.User{Username: "ram", Role: "employee", EmployeeID: &emp}, nil
		},
	}
	_, who := runSession(t, users, map[string]string{
		HeaderSessionUser:       "ram",
		HeaderSessionEmployeeID: "9",
	})
	require.NotNil(t, who.EmployeeID)
	assert.Equal(t, int64(9), *who.EmployeeID)
}

func TestSession_Anonymous(t *testing.T) {
	called := false
	users := &usermock.Repo{
		GetByUsernameFn: func(context.Context, string) (*identity.User, error) {
			called = true
			return nil, errors.New("unexpected")
		},
	}
	rec, who := runSession(t, users, nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, who.Anonymous())
	assert.False(t, called, "no lookup without a session header")
}

func TestSession_BadEmployeeHeader(t *testing.T) {
	rec, _ := runSession(t, &usermock.Repo{}, map[string]string{
		HeaderSessionUser:       "ram",
		HeaderSessionEmployeeID: "abc",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSession_LookupFailure(t *testing.T) {
	users := &usermock.Repo{
		GetByUsernameFn: func(context.Context, string) (*identity.User, error) {
			return nil, errors.New("db down")
		},
	}
	rec, _ := runSession(t, users, map[string]string{HeaderSessionUser: "ram"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
