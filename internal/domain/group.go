package domain

import "time"

// Group is a named subdivision of a project's workforce. Names are unique
// within a project, not globally.
type Group struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	ProjectID string    `gorm:"index:idx_group_project_name,unique" json:"project_id"`
	Name      string    `gorm:"index:idx_group_project_name,unique" json:"name"`
	CreatedAt time.Time `json:"-"`
}

func (Group) TableName() string { return "user_groups" }

type ShiftGroup struct {
	ShiftID string `gorm:"primaryKey;type:uuid"`
	GroupID string `gorm:"primaryKey;type:uuid"`
}

func (ShiftGroup) TableName() string { return "shift_group" }

type EmployeeGroup struct {
	EmployeeID string `gorm:"primaryKey;type:uuid"`
	GroupID    string `gorm:"primaryKey;type:uuid"`
}

func (EmployeeGroup) TableName() string { return "employee_groups" }
