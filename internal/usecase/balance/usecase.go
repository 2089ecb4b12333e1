package balance

import (
	"context"

	"nexhr-leave/internal/domain/identity"
	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/domain/settings"
	"nexhr-leave/internal/domain/uow"

	"go.uber.org/zap"
)

// Resolver loads what leave.Resolve needs and never writes.
type Resolver struct {
	leaves   leave.Repository
	users    identity.Repository
	settings settings.Repository
	log      *zap.Logger
}

func NewResolver(r uow.Repos, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{leaves: r.Leaves, users: r.Users, settings: r.Settings, log: log}
}

// ForIdentity resolves the balance of the employee behind a session. Sessions with no
// employee link get the full entitlement.
func (s *Resolver) ForIdentity(ctx context.Context, who identity.Identity) (*leave.BalanceView, error) {
	if who.Anonymous() && who.EmployeeID == nil {
		return nil, identity.ErrNoSession
	}
	empID, err := identity.ResolveEmployeeID(ctx, s.users, who)
	if err != nil {
		return nil, err
	}
	return s.ForEmployee(ctx, empID)
}

func (s *Resolver) ForEmployee(ctx context.Context, employeeID *int64) (*leave.BalanceView, error) {
	policy, err := s.Policy(ctx)
	if err != nil {
		return nil, err
	}

	var reqs []leave.Request
	if employeeID != nil {
		if reqs, err = s.leaves.ListByEmployee(ctx, *employeeID); err != nil {
			return nil, err
		}
	}

	view := leave.Resolve(policy, reqs, employeeID)
	if len(view.Approximated) > 0 {
		s.log.Debug("balance used approximate spans",
			zap.Int64p("employee_id", employeeID),
			zap.Int64s("request_ids", view.Approximated))
	}
	return &view, nil
}

func (s *Resolver) Policy(ctx context.Context) (leave.Policy, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return st.Policy(), nil
}
