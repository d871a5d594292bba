package repository

import (
	"context"

	"workforce_project/internal/domain"

	"gorm.io/gorm"
)

type ShiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// TodayShift is a shift row with the employee's check-in state for the day.
type TodayShift struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	Day         string  `json:"day"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	HoursOfWork float64 `json:"hours_of_work"`
	Payment     float64 `json:"payment"`
	CheckedIn   bool    `json:"checked_in"`
}

func (r *ShiftRepository) employeeShifts(ctx context.Context, employeeID string) *gorm.DB {
	return r.db.WithContext(ctx).Table("shifts").
		Joins("INNER JOIN shift_group ON shift_group.shift_id = shifts.id").
		Joins("INNER JOIN employee_groups ON employee_groups.group_id = shift_group.group_id").
		Where("employee_groups.employee_id = ?", employeeID)
}

// TodayForEmployee lists the employee's shifts for the given weekday with a
// checked_in flag derived from today's attendance rows.
func (r *ShiftRepository) TodayForEmployee(ctx context.Context, employeeID, day, date string) ([]*TodayShift, error) {
	var shifts []*TodayShift
	err := r.employeeShifts(ctx, employeeID).
		Select(`shifts.id, shifts.project_id, shifts.day, shifts.start_time, shifts.end_time,
			shifts.hours_of_work, shifts.payment,
			CASE WHEN attendances.employee_id IS NOT NULL THEN true ELSE false END AS checked_in`).
		Joins("LEFT JOIN attendances ON attendances.shift_id = shifts.id AND attendances.employee_id = ? AND attendances.date_of_shift = ?",
			employeeID, date).
		Where("shifts.day = ?", day).
		Order("shifts.start_time ASC").
		Scan(&shifts).Error
	return shifts, err
}

// UpcomingForEmployee lists today's shifts that have not started yet.
func (r *ShiftRepository) UpcomingForEmployee(ctx context.Context, employeeID, day, afterTime string) ([]*domain.Shift, error) {
	var shifts []*domain.Shift
	err := r.employeeShifts(ctx, employeeID).
		Select("shifts.*").
		Where("shifts.day = ? AND shifts.start_time > ?", day, afterTime).
		Order("shifts.start_time ASC").
		Scan(&shifts).Error
	return shifts, err
}

// LinkedShifts returns every shift reachable through the employee's group
// memberships, attended or not. The pay summary deliberately aggregates
// all of them.
func (r *ShiftRepository) LinkedShifts(ctx context.Context, employeeID string) ([]*domain.Shift, error) {
	var shifts []*domain.Shift
	err := r.employeeShifts(ctx, employeeID).
		Select("shifts.*").
		Order("shifts.day DESC, shifts.start_time DESC").
		Scan(&shifts).Error
	return shifts, err
}
