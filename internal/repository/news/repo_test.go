package news

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/corpsite/internal/model"
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

var newsRow = []string{"id", "title", "excerpt", "body", "cover", "pinned", "created_at"}

func TestCreateNews(t *testing.T) {
	repo, mock := setupMockDB(t)

	n := model.News{Title: "Открытие цеха", Pinned: true}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO news (title, excerpt, body, cover, pinned)`)).
		WithArgs(n.Title, nil, nil, nil, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := repo.CreateNews(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNewsWithImages(t *testing.T) {
	repo, mock := setupMockDB(t)

	n := model.News{Title: "Новая линия"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO news (title, excerpt, body, cover, pinned)`)).
		WithArgs(n.Title, nil, nil, nil, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO news_images (news_id, path, sort_order) VALUES ($1, $2, 0)`)).
		WithArgs(int64(9), "/uploads/a.jpg").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	id, err := repo.CreateNewsWithImages(context.Background(), n, []string{"/uploads/a.jpg"})
	assert.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNewsWithImages_ImageFailureRollsBackPost(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO news (title, excerpt, body, cover, pinned)`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO news_images`)).
		WithArgs(int64(9), "/uploads/a.jpg").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	id, err := repo.CreateNewsWithImages(context.Background(), model.News{Title: "x"}, []string{"/uploads/a.jpg", "/uploads/b.jpg"})
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Zero(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHighlightedNews_None(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM news WHERE pinned`)).
		WillReturnRows(sqlmock.NewRows(newsRow))

	_, err := repo.GetHighlightedNews(context.Background())
	assert.ErrorIs(t, err, ErrNewsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentNews(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM news WHERE id <> $1 ORDER BY created_at DESC, id DESC LIMIT $2`)).
		WithArgs(int64(1), 3).
		WillReturnRows(sqlmock.NewRows(newsRow).
			AddRow(int64(5), "e", "short", nil, "/uploads/c.jpg", false, now).
			AddRow(int64(4), "d", nil, nil, nil, true, now))

	list, err := repo.GetRecentNews(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "short", *list[0].Excerpt)
	assert.Nil(t, list[1].Cover)
	assert.True(t, list[1].Pinned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddImages(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO news_images (news_id, path, sort_order) VALUES ($1, $2, 0)`)).
		WithArgs(int64(7), "/uploads/a.jpg").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO news_images (news_id, path, sort_order) VALUES ($1, $2, 0)`)).
		WithArgs(int64(7), "https://cdn.example.com/b.jpg").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	err := repo.AddImages(context.Background(), 7, []string{"/uploads/a.jpg", "https://cdn.example.com/b.jpg"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddImages_RollsBack(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO news_images`)).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.AddImages(context.Background(), 7, []string{"/uploads/a.jpg", "/uploads/b.jpg"})
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteImage_ScopedToPost(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM news_images WHERE id = $1 AND news_id = $2 RETURNING path`)).
		WithArgs(int64(11), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"path"}))

	_, err := repo.DeleteImage(context.Background(), 2, 11)
	assert.ErrorIs(t, err, ErrImageNotFound)

	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM news_images WHERE id = $1 AND news_id = $2 RETURNING path`)).
		WithArgs(int64(11), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"path"}).AddRow("/uploads/a.jpg"))

	path, err := repo.DeleteImage(context.Background(), 1, 11)
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/a.jpg", path)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateImageOrder(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(dbtx.QueryAdvisoryLock)).
		WithArgs(dbtx.LockNewsImages).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE news_images SET sort_order = $1 WHERE id = $2 AND news_id = $3`)).
		WithArgs(2, int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE news_images SET sort_order = $1 WHERE id = $2 AND news_id = $3`)).
		WithArgs(1, int64(11), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateImageOrder(context.Background(), 1, map[int64]int{11: 1, 10: 2})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
