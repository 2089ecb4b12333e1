package http

import (
	"net/http"
	"time"

	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type LeaveHandler struct {
	uc  *ledger.Usecase
	log *zap.Logger
	now func() time.Time
}

func NewLeaveHandler(uc *ledger.Usecase, log *zap.Logger) *LeaveHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LeaveHandler{uc: uc, log: log, now: time.Now}
}

type submitLeaveReq struct {
	Type   string `json:"type"   validate:"required,leavetype"`
	Start  string `json:"start"  validate:"required,isodate"`
	End    string `json:"end"    validate:"required,isodate"`
	Reason string `json:"reason" validate:"max=1000"`
}

// Submit files a Pending request for the session's employee.
func (h *LeaveHandler) Submit(c echo.Context) error {
	who, err := session(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req submitLeaveReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}

	ctx := c.Request().Context()
	empID, name, err := h.uc.Requester(ctx, who)
	if err != nil {
		return writeError(c, h.log, err)
	}
	dto, err := h.uc.Submit(ctx, ledger.SubmitInput{
		EmployeeID: empID,
		Name:       name,
		Type:       req.Type,
		Start:      req.Start,
		End:        req.End,
		Reason:     req.Reason,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LeaveHandler) List(c echo.Context) error {
	out, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Mine lists the session employee's own requests.
func (h *LeaveHandler) Mine(c echo.Context) error {
	who, err := session(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	ctx := c.Request().Context()
	empID, _, err := h.uc.Requester(ctx, who)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.ListForEmployee(ctx, empID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LeaveHandler) Pending(c echo.Context) error {
	out, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Dashboard summarises the ledger for ?today=YYYY-MM-DD, defaulting to the server date.
func (h *LeaveHandler) Dashboard(c echo.Context) error {
	today := c.QueryParam("today")
	if today == "" {
		today = h.now().Format("2006-01-02")
	} else if !leave.ValidDate(today) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "today", Message: "must be a YYYY-MM-DD date"}},
		})
	}
	out, err := h.uc.Summary(c.Request().Context(), today)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}
