package leave

import (
	"strings"
	"time"
)

type Type string

const (
	TypeAnnual Type = "Annual"
	TypeSick   Type = "Sick"
	TypeCasual Type = "Casual"
)

// Types lists the leave categories in display order.
var Types = []Type{TypeAnnual, TypeSick, TypeCasual}

// ParseType matches a leave category case-insensitively.
func ParseType(s string) (Type, bool) {
	for _, t := range Types {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, true
		}
	}
	return "", false
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ParseStatus matches a status case-insensitively. An empty value is Pending,
// which is how records without a status were always displayed.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusPending, true
	}
	for _, st := range []Status{StatusPending, StatusApproved, StatusRejected} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// Table: leave_requests
type Request struct {
	// Creation-time derived id (ms), monotonic per process
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	EmployeeID *int64 `gorm:"column:employee_id;index" json:"employeeId"`
	// Display name at submission time; not re-synced on rename
	Name   string `gorm:"column:name;size:128;not null" json:"name"`
	Type   Type   `gorm:"column:type;size:16;not null;index" json:"type"`
	Start  string `gorm:"column:start_date;size:10;not null" json:"start"`
	End    string `gorm:"column:end_date;size:10;not null" json:"end"`
	Reason string `gorm:"column:reason;type:text" json:"reason"`
	Status Status `gorm:"column:status;size:16;not null;default:'Pending';index" json:"status"`

	DecidedBy string     `gorm:"column:decided_by;size:64" json:"decidedBy,omitempty"`
	DecidedAt *time.Time `gorm:"column:decided_at" json:"decidedAt,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Request) TableName() string { return "leave_requests" }

// BelongsTo reports whether the request is linked to employeeID.
func (r *Request) BelongsTo(employeeID *int64) bool {
	return r.EmployeeID != nil && employeeID != nil && *r.EmployeeID == *employeeID
}
