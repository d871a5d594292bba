package repository

import (
	"context"
	"errors"

	"workforce_project/internal/apperr"
	"workforce_project/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ManagerRepository struct {
	db *gorm.DB
}

func NewManagerRepository(db *gorm.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

func (r *ManagerRepository) FindByID(ctx context.Context, id string) (*domain.Manager, error) {
	var manager domain.Manager
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&manager).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotManager
		}
		return nil, err
	}
	return &manager, nil
}

// AssignProject makes the manager responsible for the project. All checks
// and the update run in one transaction with both rows locked, so two
// managers racing for the same project cannot both win.
func (r *ManagerRepository) AssignProject(ctx context.Context, managerID, projectID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var manager domain.Manager
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", managerID).
			First(&manager).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotManager
			}
			return err
		}
		if manager.HandlingProject != nil {
			return apperr.ErrAlreadyManaging
		}

		var project domain.Project
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", projectID).
			First(&project).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrProjectNotFound
			}
			return err
		}

		var taken int64
		if err := tx.Model(&domain.Manager{}).
			Where("handling_project = ?", projectID).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return apperr.ErrProjectTaken
		}

		return tx.Model(&domain.Manager{}).
			Where("id = ?", managerID).
			Update("handling_project", projectID).Error
	})
}

// CurrentProject returns the project the manager handles, or
// ErrNoManagedProject when none is selected yet.
func (r *ManagerRepository) CurrentProject(ctx context.Context, managerID string) (*domain.Project, error) {
	manager, err := r.FindByID(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if manager.HandlingProject == nil {
		return nil, apperr.ErrNoManagedProject
	}

	var project domain.Project
	if err := r.db.WithContext(ctx).Where("id = ?", *manager.HandlingProject).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}
