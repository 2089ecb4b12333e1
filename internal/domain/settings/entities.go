package settings

import (
	"time"

	"nexhr-leave/internal/domain/leave"
)

// SingletonID is the primary key of the only settings row.
const SingletonID uint64 = 1

// Table: settings
type Settings struct {
	ID                 uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"-"`
	LeavePolicy        string    `gorm:"column:leave_policy;type:text" json:"leavePolicy"`
	CompanyRules       string    `gorm:"column:company_rules;type:text" json:"companyRules"`
	AnnualLeaveBalance int       `gorm:"column:annual_leave_balance;not null;default:0" json:"annualLeaveBalance"`
	SickLeaveBalance   int       `gorm:"column:sick_leave_balance;not null;default:0" json:"sickLeaveBalance"`
	CasualLeaveBalance int       `gorm:"column:casual_leave_balance;not null;default:0" json:"casualLeaveBalance"`
	UpdatedBy          string    `gorm:"column:updated_by;size:64" json:"updatedBy,omitempty"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Settings) TableName() string { return "settings" }

// Policy derives the entitlement policy from the free-text field, falling back to the
// explicit per-type numbers.
func (s *Settings) Policy() leave.Policy {
	if s == nil {
		return leave.ParsePolicy("", leave.Allotments{})
	}
	return leave.ParsePolicy(s.LeavePolicy, leave.Allotments{
		Annual: s.AnnualLeaveBalance,
		Sick:   s.SickLeaveBalance,
		Casual: s.CasualLeaveBalance,
	})
}
