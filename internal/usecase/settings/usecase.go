package settings

import (
	"context"
	"strings"
	"time"

	"nexhr-leave/internal/domain/identity"
	"nexhr-leave/internal/domain/leave"
	domain "nexhr-leave/internal/domain/settings"

	"go.uber.org/zap"
)

type UpdateInput struct {
	LeavePolicy        string
	CompanyRules       string
	AnnualLeaveBalance int
	SickLeaveBalance   int
	CasualLeaveBalance int
}

type PolicyDTO struct {
	LeavePolicy        string             `json:"leavePolicy"`
	CompanyRules       string             `json:"companyRules"`
	AnnualLeaveBalance int                `json:"annualLeaveBalance"`
	SickLeaveBalance   int                `json:"sickLeaveBalance"`
	CasualLeaveBalance int                `json:"casualLeaveBalance"`
	Entitlements       map[leave.Type]int `json:"entitlements"`
	UpdatedBy          string             `json:"updatedBy,omitempty"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

type Usecase struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewUsecase(r domain.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: r, log: log}
}

func (u *Usecase) Get(ctx context.Context) (*PolicyDTO, error) {
	s, err := u.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

// Update replaces the leave policy text and explicit allotments. Admins only.
func (u *Usecase) Update(ctx context.Context, actor identity.Identity, in UpdateInput) (*PolicyDTO, error) {
	if !actor.IsAdmin() {
		return nil, leave.ErrForbidden
	}
	for _, f := range []struct {
		name string
		v    int
	}{
		{"annualLeaveBalance", in.AnnualLeaveBalance},
		{"sickLeaveBalance", in.SickLeaveBalance},
		{"casualLeaveBalance", in.CasualLeaveBalance},
	} {
		if f.v < 0 {
			return nil, &leave.ValidationError{Field: f.name, Message: "must not be negative"}
		}
	}

	s, err := u.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.LeavePolicy = strings.TrimSpace(in.LeavePolicy)
	s.CompanyRules = strings.TrimSpace(in.CompanyRules)
	s.AnnualLeaveBalance = in.AnnualLeaveBalance
	s.SickLeaveBalance = in.SickLeaveBalance
	s.CasualLeaveBalance = in.CasualLeaveBalance
	s.UpdatedBy = actor.Username
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}

	dto := toDTO(s)
	u.log.Info("leave policy updated",
		zap.String("actor", actor.Username),
		zap.Any("entitlements", dto.Entitlements))
	return dto, nil
}

func toDTO(s *domain.Settings) *PolicyDTO {
	return &PolicyDTO{
		LeavePolicy:        s.LeavePolicy,
		CompanyRules:       s.CompanyRules,
		AnnualLeaveBalance: s.AnnualLeaveBalance,
		SickLeaveBalance:   s.SickLeaveBalance,
		CasualLeaveBalance: s.CasualLeaveBalance,
		Entitlements:       s.Policy(),
		UpdatedBy:          s.UpdatedBy,
		UpdatedAt:          s.UpdatedAt,
	}
}
