package directory

import "time"

// Table: employees. Only what leave screens display is kept.
type Employee struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name      string    `gorm:"column:name;size:128;not null" json:"name"`
	Dept      string    `gorm:"column:dept;size:64" json:"dept"`
	Status    string    `gorm:"column:status;size:32" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Employee) TableName() string { return "employees" }
