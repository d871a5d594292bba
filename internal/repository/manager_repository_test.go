package repository

import (
	"context"
	"testing"

	"workforce_project/internal/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func managerRows(id string, handlingProject interface{}) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "handling_project"}).AddRow(id, handlingProject)
}

func TestAssignProjectAlreadyManaging(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewManagerRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "managers" WHERE id = \$1`).
		WillReturnRows(managerRows("mgr-1", "proj-9"))
	mock.ExpectRollback()

	err := repo.AssignProject(context.Background(), "mgr-1", "proj-1")

	assert.ErrorIs(t, err, apperr.ErrAlreadyManaging)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignProjectTakenByAnotherManager(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewManagerRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "managers" WHERE id = \$1`).
		WillReturnRows(managerRows("mgr-1", nil))
	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE id = \$1`).
		WillReturnRows(projectRows(3, 8, 12.5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "managers" WHERE handling_project = \$1`).
		WillReturnRows(countRows(1))
	mock.ExpectRollback()

	err := repo.AssignProject(context.Background(), "mgr-1", "proj-1")

	assert.ErrorIs(t, err, apperr.ErrProjectTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignProjectNotAManager(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewManagerRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "managers" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.AssignProject(context.Background(), "emp-1", "proj-1")

	assert.ErrorIs(t, err, apperr.ErrNotManager)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignProjectClaimsFreeProject(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewManagerRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "managers" WHERE id = \$1`).
		WillReturnRows(managerRows("mgr-1", nil))
	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE id = \$1`).
		WillReturnRows(projectRows(3, 8, 12.5))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "managers" WHERE handling_project = \$1`).
		WillReturnRows(countRows(0))
	mock.ExpectExec(`UPDATE "managers" SET "handling_project"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AssignProject(context.Background(), "mgr-1", "proj-1")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
