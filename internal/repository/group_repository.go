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

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

type CreateGroupParams struct {
	ProjectID    string
	Name         string
	Day          string
	StartTime    string
	EndTime      string
	ShiftMinutes int
}

// GroupWithShift is a group row joined with its shift schedule.
type GroupWithShift struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ProjectID   string  `json:"project_id"`
	ShiftID     string  `json:"shift_id"`
	Day         string  `json:"day"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	HoursOfWork float64 `json:"hours_of_work"`
	Payment     float64 `json:"payment"`
}

// CreateWithShift inserts the group, its shift and the link between them
// as one transaction. The project row is locked for the duration so the
// shift quota and the duplicate checks cannot be raced past.
func (r *GroupRepository) CreateWithShift(ctx context.Context, params CreateGroupParams) (*domain.Group, *domain.Shift, error) {
	var (
		group domain.Group
		shift domain.Shift
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project domain.Project
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", params.ProjectID).
			First(&project).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrProjectNotFound
			}
			return err
		}

		var shiftCount int64
		if err := tx.Model(&domain.Shift{}).
			Where("project_id = ?", params.ProjectID).
			Count(&shiftCount).Error; err != nil {
			return err
		}
		if shiftCount >= int64(project.RequiredShifts) {
			return apperr.ErrQuotaExceeded
		}

		var duplicate int64
		if err := tx.Model(&domain.Shift{}).
			Where("project_id = ? AND day = ? AND start_time = ? AND end_time = ?",
				params.ProjectID, params.Day, params.StartTime, params.EndTime).
			Count(&duplicate).Error; err != nil {
			return err
		}
		if duplicate > 0 {
			return apperr.ErrDuplicateShift
		}

		var nameTaken int64
		if err := tx.Model(&domain.Group{}).
			Where("project_id = ? AND name = ?", params.ProjectID, params.Name).
			Count(&nameTaken).Error; err != nil {
			return err
		}
		if nameTaken > 0 {
			return apperr.ErrGroupExists
		}

		group = domain.Group{
			ID:        utils.NewID(),
			ProjectID: params.ProjectID,
			Name:      params.Name,
		}
		if err := tx.Create(&group).Error; err != nil {
			return err
		}

		shift = domain.Shift{
			ID:          utils.NewID(),
			ProjectID:   params.ProjectID,
			Day:         params.Day,
			StartTime:   params.StartTime,
			EndTime:     params.EndTime,
			HoursOfWork: float64(params.ShiftMinutes) / 60,
			Payment:     domain.ShiftPayment(project.PayPerHour, params.ShiftMinutes),
		}
		if err := tx.Create(&shift).Error; err != nil {
			return err
		}

		return tx.Create(&domain.ShiftGroup{ShiftID: shift.ID, GroupID: group.ID}).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &group, &shift, nil
}

// ListForProject returns the project's groups with their shift schedule.
func (r *GroupRepository) ListForProject(ctx context.Context, projectID string) ([]*GroupWithShift, error) {
	var groups []*GroupWithShift
	err := r.db.WithContext(ctx).Table("user_groups").
		Select(`user_groups.id, user_groups.name, user_groups.project_id,
			shifts.id AS shift_id, shifts.day, shifts.start_time, shifts.end_time,
			shifts.hours_of_work, shifts.payment`).
		Joins("LEFT JOIN shift_group ON shift_group.group_id = user_groups.id").
		Joins("LEFT JOIN shifts ON shifts.id = shift_group.shift_id").
		Where("user_groups.project_id = ?", projectID).
		Order("user_groups.name ASC").
		Scan(&groups).Error
	return groups, err
}

// AddEmployee puts the employee into a group of the given project.
func (r *GroupRepository) AddEmployee(ctx context.Context, projectID, groupID, employeeID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group domain.Group
		err := tx.Where("id = ? AND project_id = ?", groupID, projectID).First(&group).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrGroupNotFound
			}
			return err
		}

		var employee domain.Employee
		if err := tx.Where("id = ?", employeeID).First(&employee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrEmployeeNotFound
			}
			return err
		}

		var member int64
		if err := tx.Model(&domain.EmployeeGroup{}).
			Where("employee_id = ? AND group_id = ?", employeeID, groupID).
			Count(&member).Error; err != nil {
			return err
		}
		if member > 0 {
			return apperr.ErrAlreadyMember
		}

		return tx.Create(&domain.EmployeeGroup{EmployeeID: employeeID, GroupID: groupID}).Error
	})
}

// Members lists the employees of a group belonging to the given project.
func (r *GroupRepository) Members(ctx context.Context, projectID, groupID string) ([]*domain.Employee, error) {
	var exists int64
	if err := r.db.WithContext(ctx).Model(&domain.Group{}).
		Where("id = ? AND project_id = ?", groupID, projectID).
		Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, apperr.ErrGroupNotFound
	}

	var employees []*domain.Employee
	err := r.db.WithContext(ctx).Table("employees").
		Select("employees.*").
		Joins("INNER JOIN employee_groups ON employee_groups.employee_id = employees.id").
		Where("employee_groups.group_id = ?", groupID).
		Order("employees.name ASC").
		Scan(&employees).Error
	return employees, err
}
