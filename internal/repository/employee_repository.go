package repository

import (
	"context"
	"errors"

	"workforce_project/internal/apperr"
	"workforce_project/internal/domain"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *EmployeeRepository) UpdateRefreshToken(ctx context.Context, id, token string) error {
	return r.db.WithContext(ctx).Model(&domain.Employee{}).
		Where("id = ?", id).
		Update("refresh_token", token).Error
}

// ListUnassigned returns employees that belong to no group yet, the
// candidate pool a manager picks from.
func (r *EmployeeRepository) ListUnassigned(ctx context.Context) ([]*domain.Employee, error) {
	var employees []*domain.Employee
	sub := r.db.WithContext(ctx).Table("employee_groups").Select("employee_id")
	err := r.db.WithContext(ctx).
		Where("id NOT IN (?)", sub).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}
