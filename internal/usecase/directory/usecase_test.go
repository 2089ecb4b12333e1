package directory

import (
	"context"
	"errors"
	"testing"

	domain "nexhr-leave/internal/domain/directory"
	"nexhr-leave/internal/domain/identity"
	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/domain/uow"
	"nexhr-leave/internal/testutil/employeemock"
	"nexhr-leave/internal/testutil/uowmock"
	"nexhr-leave/internal/testutil/usermock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var (
	admin = identity.Identity{Username: "admin", Role: "admin"}
	clerk = identity.Identity{Username: "ram", Role: "employee"}
)

func newUC(emps *employeemock.Repo, users *usermock.Repo) *Usecase {
	repos := uow.Repos{Employees: emps, Users: users}
	return NewUsecase(uowmock.Over(repos), repos, nil)
}

func TestAddEmployee_TakesNextID(t *testing.T) {
	var saved *domain.Employee
	emps := &employeemock.Repo{
		MaxIDFn: func(context.Context) (int64, error) { return 41, nil },
		UpsertFn: func(_ context.Context, e *domain.Employee) error {
			saved = e
			return nil
		},
	}

	e, err := newUC(emps, &usermock.Repo{}).AddEmployee(context.Background(), admin, EmployeeInput{Name: "  Sita Rai ", Dept: "Finance"})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, int64(42), e.ID)
	assert.Equal(t, "Sita Rai", saved.Name)
	assert.Equal(t, "Active", saved.Status)
}

func TestAddEmployee_ExplicitID(t *testing.T) {
	emps := &employeemock.Repo{
		GetByIDFn: func(_ context.Context, id int64) (*domain.Employee, error) {
			return &domain.Employee{ID: id}, nil
		},
		MaxIDFn: func(context.Context) (int64, error) {
			t.Fatal("explicit id must not consult max id")
			return 0, nil
		},
	}

	_, err := newUC(emps, &usermock.Repo{}).AddEmployee(context.Background(), admin, EmployeeInput{ID: 7, Name: "Sita"})
	var ve *leave.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "id", ve.Field)

	emps.GetByIDFn = nil
	e, err := newUC(emps, &usermock.Repo{}).AddEmployee(context.Background(), admin, EmployeeInput{ID: 7, Name: "Sita"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), e.ID)
}

func TestAddEmployee_Rejections(t *testing.T) {
	uc := newUC(&employeemock.Repo{}, &usermock.Repo{})
	ctx := context.Background()

	_, err := uc.AddEmployee(ctx, clerk, EmployeeInput{Name: "Sita"})
	assert.ErrorIs(t, err, leave.ErrForbidden)

	_, err = uc.AddEmployee(ctx, admin, EmployeeInput{Name: "   "})
	var ve *leave.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	_, err = uc.AddEmployee(ctx, admin, EmployeeInput{ID: -1, Name: "Sita"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "id", ve.Field)
}

func TestUpdateEmployee(t *testing.T) {
	var saved *domain.Employee
	emps := &employeemock.Repo{
		GetByIDFn: func(_ context.Context, id int64) (*domain.Employee, error) {
			return &domain.Employee{ID: id, Name: "Ram", Dept: "IT", Status: "Active"}, nil
		},
		UpsertFn: func(_ context.Context, e *domain.Employee) error {
			saved = e
			return nil
		},
	}

	e, err := newUC(emps, &usermock.Repo{}).UpdateEmployee(context.Background(), admin, 1, EmployeeInput{Name: "Ram Sharma", Dept: "Ops", Status: "Resigned"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, "Ops", e.Dept)
	assert.Equal(t, "Resigned", e.Status)
}

func TestUpdateEmployee_Missing(t *testing.T) {
	_, err := newUC(&employeemock.Repo{}, &usermock.Repo{}).UpdateEmployee(context.Background(), admin, 9, EmployeeInput{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	var deleted int64
	emps := &employeemock.Repo{DeleteFn: func(_ context.Context, id int64) error {
		deleted = id
		return nil
	}}
	uc := newUC(emps, &usermock.Repo{})

	assert.ErrorIs(t, uc.DeleteEmployee(context.Background(), clerk, 3), leave.ErrForbidden)
	assert.Zero(t, deleted)

	require.NoError(t, uc.DeleteEmployee(context.Background(), admin, 3))
	assert.Equal(t, int64(3), deleted)
}

func TestLinkUser(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var saved *identity.User
	users := &usermock.Repo{UpsertFn: func(_ context.Context, u *identity.User) error {
		saved = u
		return nil
	}}
	emps := &employeemock.Repo{GetByIDFn: func(_ context.Context, id int64) (*domain.Employee, error) {
		return &domain.Employee{ID: id}, nil
	}}
	repos := uow.Repos{Employees: emps, Users: users}
	uc := NewUsecase(uowmock.Over(repos), repos, zap.New(core))

	emp := int64(2)
	who, err := uc.LinkUser(context.Background(), admin, LinkInput{Username: " sita ", Role: "HR", EmployeeID: &emp})
	require.NoError(t, err)
	assert.Equal(t, identity.Identity{Username: "sita", Role: "hr", EmployeeID: &emp}, *who)
	assert.Equal(t, "sita", saved.Username)

	who, err = uc.LinkUser(context.Background(), admin, LinkInput{Username: "gita"})
	require.NoError(t, err)
	assert.Equal(t, "employee", who.Role)
	assert.Nil(t, who.EmployeeID)

	entries := logs.FilterMessage("user linked").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "admin", entries[0].ContextMap()["actor"])
}

func TestLinkUser_Rejections(t *testing.T) {
	users := &usermock.Repo{UpsertFn: func(context.Context, *identity.User) error {
		t.Fatal("rejected link reached storage")
		return nil
	}}
	uc := newUC(&employeemock.Repo{}, users)
	ctx := context.Background()
	emp := int64(99)

	_, err := uc.LinkUser(ctx, clerk, LinkInput{Username: "sita"})
	assert.ErrorIs(t, err, leave.ErrForbidden)

	var ve *leave.ValidationError
	_, err = uc.LinkUser(ctx, admin, LinkInput{Username: " "})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "username", ve.Field)

	_, err = uc.LinkUser(ctx, admin, LinkInput{Username: "sita", EmployeeID: &emp})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "employeeId", ve.Field)
}

func TestListUsers(t *testing.T) {
	emp := int64(1)
	users := &usermock.Repo{ListFn: func(context.Context) ([]identity.User, error) {
		return []identity.User{{Username: "admin", Role: "admin"}, {Username: "ram", Role: "employee", EmployeeID: &emp}}, nil
	}}
	uc := newUC(&employeemock.Repo{}, users)

	_, err := uc.ListUsers(context.Background(), clerk)
	assert.ErrorIs(t, err, leave.ErrForbidden)

	got, err := uc.ListUsers(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, &emp, got[1].EmployeeID)
}

func TestDeleteUser(t *testing.T) {
	boom := errors.New("db down")
	users := &usermock.Repo{}
	uc := newUC(&employeemock.Repo{}, users)
	ctx := context.Background()

	var ve *leave.ValidationError
	require.ErrorAs(t, uc.DeleteUser(ctx, admin, "Admin"), &ve)
	assert.ErrorIs(t, uc.DeleteUser(ctx, admin, "ghost"), identity.ErrUserNotFound)

	users.DeleteFn = func(context.Context, string) error { return boom }
	assert.ErrorIs(t, uc.DeleteUser(ctx, admin, "ram"), boom)

	users.DeleteFn = func(context.Context, string) error { return nil }
	require.NoError(t, uc.DeleteUser(ctx, admin, "ram"))
	assert.ErrorIs(t, uc.DeleteUser(ctx, clerk, "gita"), leave.ErrForbidden)
}
