package domain

import "time"

type Employee struct {
	ID             string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Email          string    `gorm:"unique" json:"email"`
	Password       string    `json:"-"`
	RefreshToken   string    `json:"-"`
	ResidencePoint string    `json:"residence_point"`
	Availability   string    `json:"availability"`
	TotalPay       float64   `json:"total_pay"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

// Manager is a principal allowed to administer at most one project.
// HandlingProject is nil until the manager selects one.
type Manager struct {
	ID              string    `gorm:"primaryKey;type:uuid" json:"id"`
	HandlingProject *string   `json:"handling_project"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}
