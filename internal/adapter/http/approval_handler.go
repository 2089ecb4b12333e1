package http

import (
	"net/http"

	"nexhr-leave/internal/domain/leave"
	ucApproval "nexhr-leave/internal/usecase/approval"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ApprovalHandler struct {
	gate *ucApproval.Gate
	log  *zap.Logger
}

func NewApprovalHandler(gate *ucApproval.Gate, log *zap.Logger) *ApprovalHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ApprovalHandler{gate: gate, log: log}
}

type decisionReq struct {
	Outcome string `json:"outcome" validate:"required,outcome"`
}

func (h *ApprovalHandler) Decide(c echo.Context) error {
	who, err := session(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	// Validate path param
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id path param"})
	}
	// Bind + validate body payload JSON
	var req decisionReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	outcome, _ := leave.ParseStatus(req.Outcome)

	dto, err := h.gate.Decide(c.Request().Context(), ucApproval.DecideInput{
		RequestID: id,
		Outcome:   outcome,
		Actor:     who,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
