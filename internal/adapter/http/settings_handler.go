package http

import (
	"net/http"

	ucSettings "nexhr-leave/internal/usecase/settings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	uc  *ucSettings.Usecase
	log *zap.Logger
}

func NewSettingsHandler(uc *ucSettings.Usecase, log *zap.Logger) *SettingsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsHandler{uc: uc, log: log}
}

type leavePolicyReq struct {
	LeavePolicy        string `json:"leavePolicy"        validate:"max=10000"`
	CompanyRules       string `json:"companyRules"       validate:"max=10000"`
	AnnualLeaveBalance int    `json:"annualLeaveBalance" validate:"gte=0,lte=366"`
	SickLeaveBalance   int    `json:"sickLeaveBalance"   validate:"gte=0,lte=366"`
	CasualLeaveBalance int    `json:"casualLeaveBalance" validate:"gte=0,lte=366"`
}

func (h *SettingsHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SettingsHandler) Update(c echo.Context) error {
	who, err := session(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var req leavePolicyReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), who, ucSettings.UpdateInput{
		LeavePolicy:        req.LeavePolicy,
		CompanyRules:       req.CompanyRules,
		AnnualLeaveBalance: req.AnnualLeaveBalance,
		SickLeaveBalance:   req.SickLeaveBalance,
		CasualLeaveBalance: req.CasualLeaveBalance,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
