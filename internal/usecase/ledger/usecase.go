package ledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"nexhr-leave/internal/domain/directory"
	"nexhr-leave/internal/domain/identity"
	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/domain/uow"
	"nexhr-leave/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultRequesterName is used when neither an employee record nor a username is known.
const DefaultRequesterName = "Admin User"

const recentPendingLimit = 3

type Usecase struct {
	leaves    leave.Repository
	users     identity.Repository
	employees directory.Repository
	ids       *id.Sequence
	log       *zap.Logger
	now       func() time.Time
}

func NewUsecase(r uow.Repos, ids *id.Sequence, log *zap.Logger) *Usecase {
	if ids == nil {
		ids = id.NewSequence()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{
		leaves:    r.Leaves,
		users:     r.Users,
		employees: r.Employees,
		ids:       ids,
		log:       log,
		now:       time.Now,
	}
}

// Submit validates the input and appends a Pending request. Invalid input never
// reaches the repository.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*LeaveDTO, error) {
	typ, err := leave.SubmitFields{Type: in.Type, Start: in.Start, End: in.End}.Validate()
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = DefaultRequesterName
	}
	r := &leave.Request{
		ID:         u.ids.Next(),
		EmployeeID: in.EmployeeID,
		Name:       name,
		Type:       typ,
		Start:      in.Start,
		End:        in.End,
		Reason:     strings.TrimSpace(in.Reason),
		Status:     leave.StatusPending,
		CreatedAt:  u.now().UTC(),
	}
	if err := u.leaves.Create(ctx, r); err != nil {
		return nil, err
	}

	if _, prec := leave.CountDays(r.Start, r.End); prec != leave.PrecisionExact {
		u.log.Debug("leave span approximated",
			zap.Int64("request_id", r.ID),
			zap.String("start", r.Start),
			zap.String("end", r.End),
			zap.Stringer("precision", prec))
	}
	u.log.Info("leave request submitted",
		zap.Int64("request_id", r.ID),
		zap.String("type", string(r.Type)),
		zap.Int64p("employee_id", r.EmployeeID))

	dto := ToDTO(r)
	return &dto, nil
}

func (u *Usecase) ListAll(ctx context.Context) ([]LeaveDTO, error) {
	rs, err := u.leaves.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

// ListForEmployee returns the history of one employee. Unlinked sessions have none.
func (u *Usecase) ListForEmployee(ctx context.Context, employeeID *int64) ([]LeaveDTO, error) {
	if employeeID == nil {
		return []LeaveDTO{}, nil
	}
	rs, err := u.leaves.ListByEmployee(ctx, *employeeID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

func (u *Usecase) ListPending(ctx context.Context) ([]LeaveDTO, error) {
	rs, err := u.leaves.ListByStatus(ctx, leave.StatusPending)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

// Summary counts pending requests and approved absences covering today, where today
// is a YYYY-MM-DD string compared lexically against the stored dates.
func (u *Usecase) Summary(ctx context.Context, today string) (*SummaryDTO, error) {
	rs, err := u.leaves.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &SummaryDTO{RecentPending: []LeaveDTO{}}
	for i := range rs {
		r := &rs[i]
		switch r.Status {
		case leave.StatusPending:
			out.PendingCount++
			if len(out.RecentPending) < recentPendingLimit {
				out.RecentPending = append(out.RecentPending, ToDTO(r))
			}
		case leave.StatusApproved:
			if r.Start <= today && r.End >= today {
				out.OnLeaveToday++
			}
		}
	}
	return out, nil
}

// Requester works out who is submitting: the linked employee and the name to
// snapshot on the request.
func (u *Usecase) Requester(ctx context.Context, who identity.Identity) (*int64, string, error) {
	if who.Anonymous() {
		return nil, "", identity.ErrNoSession
	}
	empID, err := identity.ResolveEmployeeID(ctx, u.users, who)
	if err != nil {
		return nil, "", err
	}

	name := strings.TrimSpace(who.Username)
	if empID != nil && u.employees != nil {
		e, err := u.employees.GetByID(ctx, *empID)
		switch {
		case err == nil:
			name = e.Name
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, "", err
		}
	}
	if name == "" {
		name = DefaultRequesterName
	}
	return empID, name, nil
}
