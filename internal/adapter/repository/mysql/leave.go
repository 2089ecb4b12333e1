package mysql

import (
	"context"
	"errors"

	leaveDomain "nexhr-leave/internal/domain/leave"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaveRepository struct{ db *gorm.DB }

func NewLeaveRepository(db *gorm.DB) *LeaveRepository { return &LeaveRepository{db: db} }

func (r *LeaveRepository) Create(ctx context.Context, l *leaveDomain.Request) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeaveRepository) Save(ctx context.Context, l *leaveDomain.Request) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LeaveRepository) GetByID(ctx context.Context, id int64) (*leaveDomain.Request, error) {
	var out leaveDomain.Request
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return found(&out, res.Error)
}

func (r *LeaveRepository) GetByIDForUpdate(ctx context.Context, id int64) (*leaveDomain.Request, error) {
	var out leaveDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return found(&out, res.Error)
}

func (r *LeaveRepository) List(ctx context.Context) ([]leaveDomain.Request, error) {
	var out []leaveDomain.Request
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *LeaveRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]leaveDomain.Request, error) {
	var out []leaveDomain.Request
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *LeaveRepository) ListByStatus(ctx context.Context, status leaveDomain.Status) ([]leaveDomain.Request, error) {
	var out []leaveDomain.Request
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func found(l *leaveDomain.Request, err error) (*leaveDomain.Request, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, leaveDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}
