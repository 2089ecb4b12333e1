package ledger

import (
	"time"

	"nexhr-leave/internal/domain/leave"
)

type SubmitInput struct {
	EmployeeID *int64
	Name       string
	Type       string
	Start      string // YYYY-MM-DD
	End        string // YYYY-MM-DD
	Reason     string
}

type LeaveDTO struct {
	ID         int64        `json:"id"`
	EmployeeID *int64       `json:"employeeId"`
	Name       string       `json:"name"`
	Type       leave.Type   `json:"type"`
	Start      string       `json:"start"`
	End        string       `json:"end"`
	Days       int          `json:"days"`
	Reason     string       `json:"reason,omitempty"`
	Status     leave.Status `json:"status"`
	DecidedBy  string       `json:"decidedBy,omitempty"`
	DecidedAt  *time.Time   `json:"decidedAt,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// SummaryDTO feeds the dashboard cards.
type SummaryDTO struct {
	PendingCount  int        `json:"pendingCount"`
	OnLeaveToday  int        `json:"onLeaveToday"`
	RecentPending []LeaveDTO `json:"recentPending"`
}

func ToDTO(r *leave.Request) LeaveDTO {
	return LeaveDTO{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Name:       r.Name,
		Type:       r.Type,
		Start:      r.Start,
		End:        r.End,
		Days:       leave.Days(r.Start, r.End),
		Reason:     r.Reason,
		Status:     r.Status,
		DecidedBy:  r.DecidedBy,
		DecidedAt:  r.DecidedAt,
		CreatedAt:  r.CreatedAt,
	}
}

func toDTOs(rs []leave.Request) []LeaveDTO {
	out := make([]LeaveDTO, 0, len(rs))
	for i := range rs {
		out = append(out, ToDTO(&rs[i]))
	}
	return out
}
