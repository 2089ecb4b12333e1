package identity

import "time"

// Table: users. Credentials are not kept here; login happens elsewhere.
type User struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Username   string    `gorm:"column:username;size:64;not null;uniqueIndex"`
	Role       string    `gorm:"column:role;size:32;not null"`
	EmployeeID *int64    `gorm:"column:employee_id;index"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// Identity builds the session view of a stored user.
func (u *User) Identity() Identity {
	return Identity{Username: u.Username, Role: u.Role, EmployeeID: u.EmployeeID}
}
