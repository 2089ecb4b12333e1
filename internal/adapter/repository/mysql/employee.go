package mysql

import (
	"context"

	"nexhr-leave/internal/domain/directory"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmployeeRepository struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{db: db} }

func (r *EmployeeRepository) Upsert(ctx context.Context, e *directory.Employee) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "dept", "status", "updated_at"}),
		}).
		Create(e).Error
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*directory.Employee, error) {
	var out directory.Employee
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) List(ctx context.Context) ([]directory.Employee, error) {
	var out []directory.Employee
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&directory.Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return directory.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) MaxID(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).Model(&directory.Employee{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&max).Error
	return max, err
}
