package directory

import (
	"context"
	"errors"
	"strings"

	domain "nexhr-leave/internal/domain/directory"
	"nexhr-leave/internal/domain/identity"
	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/domain/uow"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultStatus = "Active"
	defaultRole   = "employee"
)

// Usecase maintains the employee directory and the user to employee links
// that leave requests resolve against. Every write is admin only.
type Usecase struct {
	uow   uow.UnitOfWork
	repos uow.Repos
	log   *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, repos uow.Repos, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{uow: tx, repos: repos, log: log}
}

func (u *Usecase) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return u.repos.Employees.List(ctx)
}

// AddEmployee inserts a directory entry. Without an explicit id it takes max+1.
func (u *Usecase) AddEmployee(ctx context.Context, actor identity.Identity, in EmployeeInput) (*domain.Employee, error) {
	if !actor.IsAdmin() {
		return nil, leave.ErrForbidden
	}
	e, err := employeeFrom(in)
	if err != nil {
		return nil, err
	}
	if in.ID < 0 {
		return nil, &leave.ValidationError{Field: "id", Message: "must be positive"}
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if e.ID == 0 {
			max, err := r.Employees.MaxID(ctx)
			if err != nil {
				return err
			}
			e.ID = max + 1
		} else if _, err := r.Employees.GetByID(ctx, e.ID); err == nil {
			return &leave.ValidationError{Field: "id", Message: "already taken"}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return r.Employees.Upsert(ctx, e)
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("employee added",
		zap.Int64("employee_id", e.ID),
		zap.String("actor", actor.Username))
	return e, nil
}

func (u *Usecase) UpdateEmployee(ctx context.Context, actor identity.Identity, id int64, in EmployeeInput) (*domain.Employee, error) {
	if !actor.IsAdmin() {
		return nil, leave.ErrForbidden
	}
	e, err := employeeFrom(in)
	if err != nil {
		return nil, err
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cur, err := r.Employees.GetByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		cur.Name, cur.Dept, cur.Status = e.Name, e.Dept, e.Status
		e = cur
		return r.Employees.Upsert(ctx, cur)
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("employee updated",
		zap.Int64("employee_id", id),
		zap.String("actor", actor.Username))
	return e, nil
}

// DeleteEmployee removes the directory entry only. Leave requests keep their
// employee id and snapshot name.
func (u *Usecase) DeleteEmployee(ctx context.Context, actor identity.Identity, id int64) error {
	if !actor.IsAdmin() {
		return leave.ErrForbidden
	}
	if err := u.repos.Employees.Delete(ctx, id); err != nil {
		return err
	}
	u.log.Info("employee deleted",
		zap.Int64("employee_id", id),
		zap.String("actor", actor.Username))
	return nil
}

func (u *Usecase) ListUsers(ctx context.Context, actor identity.Identity) ([]identity.Identity, error) {
	if !actor.IsAdmin() {
		return nil, leave.ErrForbidden
	}
	rows, err := u.repos.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]identity.Identity, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].Identity())
	}
	return out, nil
}

// LinkUser creates or updates a user by username, optionally pointing it at
// an existing employee.
func (u *Usecase) LinkUser(ctx context.Context, actor identity.Identity, in LinkInput) (*identity.Identity, error) {
	if !actor.IsAdmin() {
		return nil, leave.ErrForbidden
	}
	user := &identity.User{
		Username:   strings.TrimSpace(in.Username),
		Role:       strings.ToLower(strings.TrimSpace(in.Role)),
		EmployeeID: in.EmployeeID,
	}
	if user.Username == "" {
		return nil, &leave.ValidationError{Field: "username", Message: "is required"}
	}
	if user.Role == "" {
		user.Role = defaultRole
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if user.EmployeeID != nil {
			_, err := r.Employees.GetByID(ctx, *user.EmployeeID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &leave.ValidationError{Field: "employeeId", Message: "unknown employee"}
			}
			if err != nil {
				return err
			}
		}
		return r.Users.Upsert(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("user linked",
		zap.String("username", user.Username),
		zap.String("role", user.Role),
		zap.Int64p("employee_id", user.EmployeeID),
		zap.String("actor", actor.Username))
	out := user.Identity()
	return &out, nil
}

func (u *Usecase) DeleteUser(ctx context.Context, actor identity.Identity, username string) error {
	if !actor.IsAdmin() {
		return leave.ErrForbidden
	}
	username = strings.TrimSpace(username)
	if strings.EqualFold(username, actor.Username) {
		return &leave.ValidationError{Field: "username", Message: "cannot delete the signed-in user"}
	}
	if err := u.repos.Users.Delete(ctx, username); err != nil {
		return err
	}
	u.log.Info("user deleted",
		zap.String("username", username),
		zap.String("actor", actor.Username))
	return nil
}

func employeeFrom(in EmployeeInput) (*domain.Employee, error) {
	e := &domain.Employee{
		ID:     in.ID,
		Name:   strings.TrimSpace(in.Name),
		Dept:   strings.TrimSpace(in.Dept),
		Status: strings.TrimSpace(in.Status),
	}
	if e.Name == "" {
		return nil, &leave.ValidationError{Field: "name", Message: "is required"}
	}
	if e.Status == "" {
		e.Status = defaultStatus
	}
	return e, nil
}
