package http

import (
	"net/http"

	ucDirectory "nexhr-leave/internal/usecase/directory"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DirectoryHandler struct {
	uc  *ucDirectory.Usecase
	log *zap.Logger
}

func NewDirectoryHandler(uc *ucDirectory.Usecase, log *zap.Logger) *DirectoryHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DirectoryHandler{uc: uc, log: log}
}

type employeeReq struct {
	ID     int64  `json:"id"     validate:"gte=0"`
	Name   string `json:"name"   validate:"required,max=128"`
	Dept   string `json:"dept"   validate:"max=64"`
	Status string `json:"status" validate:"max=32"`
}

type linkUserReq struct {
	Role       string `json:"role"       validate:"max=32"`
	EmployeeID *int64 `json:"employeeId" validate:"omitempty,gt=0"`
}

func (h *DirectoryHandler) ListEmployees(c echo.Context) error {
	if _, err := session(c); err != nil {
		return writeError(c, h.log, err)
	}
	rows, err := h.uc.ListEmployees(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *DirectoryHandler) AddEmployee(c echo.Context) error {
	who, err := session(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req employeeReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	e, err := h.uc.AddEmployee(c.Request().Context(), who, ucDirectory.EmployeeInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *DirectoryHandler) UpdateEmployee(c echo.Context) error {
	who, err := session(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var req employeeReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	e, err := h.uc.UpdateEmployee(c.Request().Context(), who, id, ucDirectory.EmployeeInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *DirectoryHandler) DeleteEmployee(c echo.Context) error {
	who, err := session(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	if err := h.uc.DeleteEmployee(c.Request().Context(), who, id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DirectoryHandler) ListUsers(c echo.Context) error {
	who, err := session(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	users, err := h.uc.ListUsers(c.Request().Context(), who)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *DirectoryHandler) LinkUser(c echo.Context) error {
	who, err := session(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req linkUserReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	u, err := h.uc.LinkUser(c.Request().Context(), who, ucDirectory.LinkInput{
		Username:   c.Param("username"),
		Role:       req.Role,
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *DirectoryHandler) DeleteUser(c echo.Context) error {
	who, err := session(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.DeleteUser(c.Request().Context(), who, c.Param("username")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.NoContent(http.StatusNoContent)
}
