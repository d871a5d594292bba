package domain

import "time"

type Building struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Project rows are seeded out of band; the service never creates them.
type Project struct {
	ID             string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name           string    `json:"name"`
	BuildingID     string    `json:"building_id"`
	RequiredShifts int       `json:"required_shifts"`
	HoursPerShift  float64   `json:"hours_per_shift"`
	PayPerHour     float64   `json:"pay_per_hour"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}
