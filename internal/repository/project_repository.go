package repository

import (
	"context"
	"errors"

	"workforce_project/internal/apperr"
	"workforce_project/internal/domain"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ProjectDetails flattens the project, its building and the managing
// employee's contact into one row for the details endpoint.
type ProjectDetails struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	RequiredShifts int     `json:"required_shifts"`
	HoursPerShift  float64 `json:"hours_per_shift"`
	PayPerHour     float64 `json:"pay_per_hour"`
	BuildingName   string  `json:"building_name"`
	Location       string  `json:"location"`
	ManagerName    *string `json:"manager_name"`
	ManagerEmail   *string `json:"manager_email"`
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// ListIDsForEmployee returns the ids of projects reachable through the
// employee's group memberships.
func (r *ProjectRepository) ListIDsForEmployee(ctx context.Context, employeeID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Table("projects").
		Select("DISTINCT projects.id").
		Joins("INNER JOIN user_groups ON user_groups.project_id = projects.id").
		Joins("INNER JOIN employee_groups ON employee_groups.group_id = user_groups.id").
		Where("employee_groups.employee_id = ?", employeeID).
		Scan(&ids).Error
	return ids, err
}

func (r *ProjectRepository) Details(ctx context.Context, projectID string) (*ProjectDetails, error) {
	var details ProjectDetails
	err := r.db.WithContext(ctx).Table("projects").
		Select(`projects.id, projects.name, projects.required_shifts, projects.hours_per_shift, projects.pay_per_hour,
			buildings.name AS building_name, buildings.location,
			employees.name AS manager_name, employees.email AS manager_email`).
		Joins("INNER JOIN buildings ON buildings.id = projects.building_id").
		Joins("LEFT JOIN managers ON managers.handling_project = projects.id").
		Joins("LEFT JOIN employees ON employees.id = managers.id").
		Where("projects.id = ?", projectID).
		Take(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrProjectNotFound
		}
		return nil, err
	}
	return &details, nil
}

// CurrentForEmployee returns the first project the employee is attached to
// through a group, or nil when there is none.
func (r *ProjectRepository) CurrentForEmployee(ctx context.Context, employeeID string) (*domain.Project, error) {
	var projects []*domain.Project
	err := r.db.WithContext(ctx).Table("projects").
		Select("projects.*").
		Joins("INNER JOIN user_groups ON user_groups.project_id = projects.id").
		Joins("INNER JOIN employee_groups ON employee_groups.group_id = user_groups.id").
		Where("employee_groups.employee_id = ?", employeeID).
		Limit(1).
		Scan(&projects).Error
	if err != nil || len(projects) == 0 {
		return nil, err
	}
	return projects[0], nil
}

// ListAvailable returns projects no manager has claimed yet.
func (r *ProjectRepository) ListAvailable(ctx context.Context) ([]*domain.Project, error) {
	var projects []*domain.Project
	sub := r.db.WithContext(ctx).Table("managers").Select("handling_project").Where("handling_project IS NOT NULL")
	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", sub).
		Order("name ASC").
		Find(&projects).Error
	return projects, err
}
