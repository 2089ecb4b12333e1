package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthBody struct {
	Status string            `json:"status"`
	Time   string            `json:"time"`
	Deps   map[string]string `json:"deps"`
}

func runHealth(t *testing.T, h *Handler) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Health(e.NewContext(req, rec)))

	ct := rec.Header().Get(echo.HeaderContentType)
	require.True(t, strings.HasPrefix(strings.ToLower(ct), "application/json"), ct)
	var body healthBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func TestHealth_ReturnsOKWithRFC3339NanoUTC(t *testing.T) {
	rec, body := runHealth(t, NewHandler(map[string]Pinger{
		"db": func(context.Context) error { return nil },
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "ok", body.Deps["db"])

	// Time is RFC3339Nano and UTC (with 'Z')
	parsed, err := time.Parse(time.RFC3339Nano, body.Time)
	require.NoError(t, err, body.Time)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.WithinDuration(t, time.Now().UTC(), parsed, 2*time.Second)
}

func TestHealth_DegradedWhenDependencyDown(t *testing.T) {
	rec, body := runHealth(t, NewHandler(map[string]Pinger{
		"db":    func(context.Context) error { return nil },
		"redis": func(context.Context) error { return errors.New("refused") },
	}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, map[string]string{"db": "ok", "redis": "down"}, body.Deps)
}

func TestHealth_NoChecks(t *testing.T) {
	rec, body := runHealth(t, NewHandler(nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body.Status)
}
