package mysql

import (
	"nexhr-leave/internal/domain/directory"
	"nexhr-leave/internal/domain/identity"
	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/domain/settings"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&leave.Request{},
		&identity.User{},
		&directory.Employee{},
		&settings.Settings{},
	)
}
