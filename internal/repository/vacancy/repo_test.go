package vacancy

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

var columns = []string{
	"id", "location", "title", "salary", "pay_period", "experience", "employment_type",
	"schedule", "work_hours", "work_format", "description", "created_at",
}

func TestGetVacancyByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM vacancies WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(4), model.LocationPlant, "Сварщик", "80 000", "месяц", nil, nil, nil, nil, nil, nil, time.Now()))

	v, err := repo.GetVacancyByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Сварщик", v.Title)
	assert.Equal(t, "80 000", *v.Salary)
	assert.Nil(t, v.Experience)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVacancyByID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM vacancies WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetVacancyByID(context.Background(), 4)
	assert.ErrorIs(t, err, ErrVacancyNotFound)
}

func TestCreateVacancy(t *testing.T) {
	repo, mock := setupMockDB(t)

	v := model.Vacancy{Location: model.LocationOffice, Title: "Бухгалтер"}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO vacancies`)).
		WithArgs(v.Location, v.Title, nil, nil, nil, nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(6)))

	id, err := repo.CreateVacancy(context.Background(), v)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
