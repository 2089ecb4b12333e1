package approval

import (
	"context"
	"time"

	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/domain/uow"
	"nexhr-leave/internal/usecase/ledger"

	"go.uber.org/zap"
)

// Balances recomputes an employee's balance after a decision.
type Balances interface {
	ForEmployee(ctx context.Context, employeeID *int64) (*leave.BalanceView, error)
}

// Gate is the only path from Pending to a terminal status.
type Gate struct {
	uow      uow.UnitOfWork
	balances Balances
	log      *zap.Logger
	now      func() time.Time
}

func NewGate(tx uow.UnitOfWork, balances Balances, log *zap.Logger) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{uow: tx, balances: balances, log: log, now: time.Now}
}

func (g *Gate) Decide(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	if !in.Actor.IsAdmin() {
		g.log.Warn("leave decision denied",
			zap.Int64("request_id", in.RequestID),
			zap.String("actor", in.Actor.Username))
		return nil, leave.ErrForbidden
	}
	if in.Outcome != leave.StatusApproved && in.Outcome != leave.StatusRejected {
		return nil, &leave.ValidationError{Field: "outcome", Message: "must be Approved or Rejected"}
	}

	var decided leave.Request
	at := g.now().UTC()
	err := g.uow.WithinLeaveTx(ctx, in.RequestID, func(r uow.Repos, l *leave.Request) error {
		// Only pending → approved/rejected
		if l.Status.Terminal() {
			return leave.ErrAlreadyDecided
		}
		l.Status = in.Outcome
		l.DecidedBy = in.Actor.Username
		l.DecidedAt = &at
		if err := r.Leaves.Save(ctx, l); err != nil {
			return err
		}
		decided = *l
		return nil
	})
	if err != nil {
		return nil, err
	}

	g.log.Info("leave request decided",
		zap.Int64("request_id", decided.ID),
		zap.String("outcome", string(decided.Status)),
		zap.String("actor", in.Actor.Username))

	dto := &DecisionDTO{Request: ledger.ToDTO(&decided), DecidedAt: at}
	if decided.EmployeeID != nil && g.balances != nil {
		view, err := g.balances.ForEmployee(ctx, decided.EmployeeID)
		if err != nil {
			// the decision is committed; a stale balance only affects this response
			g.log.Warn("balance recompute failed", zap.Int64("request_id", decided.ID), zap.Error(err))
		} else {
			dto.Balance = view
		}
	}
	return dto, nil
}
