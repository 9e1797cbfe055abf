package employee

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/corpsite/internal/model"
	"github.com/aliskhannn/corpsite/internal/ordering"
	"github.com/aliskhannn/corpsite/internal/repository/dbtx"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

var employeeColumns = []string{"id", "full_name", "title", "dept", "email", "phone", "photo", "span2", "sort_order"}

func TestCreateEmployee(t *testing.T) {
	repo, mock := setupMockDB(t)

	rank := 4
	e := model.Employee{FullName: "Иванов Иван", Title: "Инженер", Dept: "Конструкторский отдел", SortOrder: &rank}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO employees (`)).
		WithArgs(e.FullName, e.Title, e.Dept, nil, nil, nil, false, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

	id, err := repo.CreateEmployee(context.Background(), e)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllEmployees(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY sort_order ASC NULLS LAST, id ASC`)).
		WillReturnRows(sqlmock.NewRows(employeeColumns).
			AddRow(int64(2), "A", "t", "d", "a@example.com", nil, nil, true, int64(1)).
			AddRow(int64(1), "B", "t", "d", nil, nil, nil, false, nil))

	list, err := repo.GetAllEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, int64(2), list[0].ID)
	require.NotNil(t, list[0].SortOrder)
	assert.Equal(t, 1, *list[0].SortOrder)
	require.NotNil(t, list[0].Email)
	assert.Equal(t, "a@example.com", *list[0].Email)
	assert.True(t, list[0].Span2)

	assert.Nil(t, list[1].SortOrder)
	assert.Nil(t, list[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployeeByID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM employees WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(employeeColumns))

	_, err := repo.GetEmployeeByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.ErrorIs(t, err, ordering.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmployee(t *testing.T) {
	repo, mock := setupMockDB(t)

	e := model.Employee{ID: 3, FullName: "C", Title: "t", Dept: "d"}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE employees SET full_name = $1`)).
		WithArgs(e.FullName, e.Title, e.Dept, nil, nil, nil, false, e.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateEmployee(context.Background(), e))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE employees SET full_name = $1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdateEmployee(context.Background(), e), ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM employees WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteEmployee(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMaxRank(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT MAX(sort_order) FROM employees`)).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

	_, ok, err := repo.MaxRank(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT MAX(sort_order) FROM employees`)).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(7)))

	top, ok, err := repo.MaxRank(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, top)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBefore_NoNeighbour(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE sort_order < $1 ORDER BY sort_order DESC, id ASC LIMIT 1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sort_order"}))

	_, found, err := repo.Before(context.Background(), 1)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAfter(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE sort_order > $1 ORDER BY sort_order ASC, id ASC LIMIT 1`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sort_order"}).AddRow(int64(8), int64(5)))

	it, found, err := repo.After(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(8), it.ID)
	assert.Equal(t, 5, *it.Rank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapRanks(t *testing.T) {
	repo, mock := setupMockDB(t)

	a, b := 2, 5

	mock.ExpectExec(regexp.QuoteMeta(`SET sort_order = CASE id WHEN $1 THEN $2::int WHEN $3 THEN $4::int END`)).
		WithArgs(int64(10), 5, int64(20), 2).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.SwapRanks(context.Background(), ordering.Item{ID: 10, Rank: &a}, ordering.Item{ID: 20, Rank: &b})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapRanks_Unranked(t *testing.T) {
	repo, mock := setupMockDB(t)

	a := 1
	err := repo.SwapRanks(context.Background(), ordering.Item{ID: 1, Rank: &a}, ordering.Item{ID: 2})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnranked(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE sort_order IS NULL ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)).AddRow(int64(9)))

	ids, err := repo.Unranked(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int64{3, 9}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInRankTx_CommitsAfterLock(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(dbtx.QueryAdvisoryLock)).
		WithArgs(dbtx.LockEmployeeOrder).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE employees SET sort_order = $1 WHERE id = $2`)).
		WithArgs(1, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.InRankTx(context.Background(), func(tx Tx) error {
		return tx.SetRank(context.Background(), 4, 1)
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInRankTx_RollsBackOnError(t *testing.T) {
	repo, mock := setupMockDB(t)

	failure := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(dbtx.QueryAdvisoryLock)).
		WithArgs(dbtx.LockEmployeeOrder).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.InRankTx(context.Background(), func(Tx) error { return failure })
	assert.ErrorIs(t, err, failure)
	assert.NoError(t, mock.ExpectationsWereMet())
}
