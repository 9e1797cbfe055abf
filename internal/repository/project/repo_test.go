package project

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/corpsite/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestCreateProject(t *testing.T) {
	repo, mock := setupMockDB(t)

	adv := "надёжность;ремонтопригодность"
	p := model.Project{Title: "Тепловоз", Advantages: &adv}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO projects`)).
		WithArgs(p.Title, nil, nil, nil, nil, adv, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	id, err := repo.CreateProject(context.Background(), p)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProjectByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	columns := []string{"id", "title", "subtitle", "image", "description", "purpose", "advantages", "application", "created_at"}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM projects WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(2), "T", "S", nil, nil, nil, nil, nil, time.Now()))

	p, err := repo.GetProjectByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "S", *p.Subtitle)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM projects WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err = repo.GetProjectByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProject_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM projects WHERE id = $1`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteProject(context.Background(), 9), ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
