package http

import (
	"net/http"

	"nexhr-leave/internal/usecase/balance"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	resolver *balance.Resolver
	log      *zap.Logger
}

func NewBalanceHandler(r *balance.Resolver, log *zap.Logger) *BalanceHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &BalanceHandler{resolver: r, log: log}
}

func (h *BalanceHandler) Mine(c echo.Context) error {
	who, err := session(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	view, err := h.resolver.ForIdentity(c.Request().Context(), who)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, view)
}
