package approval

import (
	"time"

	"nexhr-leave/internal/domain/identity"
	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/usecase/ledger"
)

type DecideInput struct {
	RequestID int64
	Outcome   leave.Status // Approved or Rejected
	Actor     identity.Identity
}

type DecisionDTO struct {
	Request   ledger.LeaveDTO    `json:"request"`
	DecidedAt time.Time          `json:"decidedAt"`
	// Balance of the affected employee after the decision; nil for unlinked requests
	// or when recomputation failed.
	Balance *leave.BalanceView `json:"balance,omitempty"`
}
