package mysql

import (
	"context"
	"errors"

	"nexhr-leave/internal/domain/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{db: db} }

func (r *SettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var out settings.Settings
	res := r.db.WithContext(ctx).Where("id = ?", settings.SingletonID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return &settings.Settings{ID: settings.SingletonID}, nil
	}
	return &out, res.Error
}

func (r *SettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	s.ID = settings.SingletonID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(s).Error
}
