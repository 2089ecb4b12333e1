package mysql

import (
	"context"

	"nexhr-leave/internal/domain/identity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Upsert(ctx context.Context, u *identity.User) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "employee_id", "updated_at"}),
		}).
		Create(u).Error
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	var out identity.User
	res := r.db.WithContext(ctx).Where("username = ?", username).First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context) ([]identity.User, error) {
	var out []identity.User
	err := r.db.WithContext(ctx).Order("username ASC").Find(&out).Error
	return out, err
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	res := r.db.WithContext(ctx).Delete(&identity.User{}, "username = ?", username)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return identity.ErrUserNotFound
	}
	return nil
}
