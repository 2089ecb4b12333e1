package mysql

import (
	"context"

	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// Repos returns repositories bound to db outside of any transaction.
func Repos(db *gorm.DB) uow.Repos {
	return uow.Repos{
		Leaves:    &LeaveRepository{db: db},
		Users:     &UserRepository{db: db},
		Employees: &EmployeeRepository{db: db},
		Settings:  &SettingsRepository{db: db},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repos(tx))
	})
}

func (u *GormUoW) WithinLeaveTx(ctx context.Context, requestID int64, fn func(r uow.Repos, l *leave.Request) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := Repos(tx)
		// lock the request row up-front so concurrent decisions serialize
		l, err := r.Leaves.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
