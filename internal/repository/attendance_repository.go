package repository

import (
	"context"
	"errors"

	"workforce_project/internal/apperr"
	"workforce_project/internal/domain"
	"workforce_project/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// CheckIn records attendance for (employee, shift, date) and adds the
// shift's payment to the employee's total. The employee row stays locked
// for the whole transaction so a doubled request cannot double the pay.
func (r *AttendanceRepository) CheckIn(ctx context.Context, employeeID, shiftID, date string) (float64, error) {
	var newPay float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var checkedIn int64
		if err := tx.Model(&domain.Attendance{}).
			Where("employee_id = ? AND shift_id = ? AND date_of_shift = ?", employeeID, shiftID, date).
			Count(&checkedIn).Error; err != nil {
			return err
		}
		if checkedIn > 0 {
			return apperr.ErrAlreadyCheckedIn
		}

		var shift domain.Shift
		if err := tx.Where("id = ?", shiftID).First(&shift).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrShiftNotFound
			}
			return err
		}

		var employee domain.Employee
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", employeeID).
			First(&employee).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrEmployeeNotFound
			}
			return err
		}

		newPay = employee.TotalPay + shift.Payment
		if err := tx.Model(&domain.Employee{}).
			Where("id = ?", employeeID).
			Update("total_pay", newPay).Error; err != nil {
			return err
		}

		return tx.Create(&domain.Attendance{
			ID:          utils.NewID(),
			EmployeeID:  employeeID,
			ShiftID:     shiftID,
			DateOfShift: date,
		}).Error
	})
	if err != nil {
		return 0, err
	}
	return newPay, nil
}

// CheckOut confirms today's check-in and returns the current total pay.
// Nothing is persisted; repeated calls are harmless.
func (r *AttendanceRepository) CheckOut(ctx context.Context, employeeID, shiftID, date string) (float64, error) {
	var checkedIn int64
	if err := r.db.WithContext(ctx).Model(&domain.Attendance{}).
		Where("employee_id = ? AND shift_id = ? AND date_of_shift = ?", employeeID, shiftID, date).
		Count(&checkedIn).Error; err != nil {
		return 0, err
	}
	if checkedIn == 0 {
		return 0, apperr.ErrNotCheckedIn
	}

	var employee domain.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.ErrEmployeeNotFound
		}
		return 0, err
	}
	return employee.TotalPay, nil
}
