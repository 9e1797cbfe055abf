package news

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/corpsite/internal/model"
	"github.com/aliskhannn/corpsite/internal/repository/dbtx"
)

var (
	ErrNewsNotFound  = errors.New("news not found")
	ErrImageNotFound = errors.New("news image not found")
)

// Repository provides methods to interact with news and news_images tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new news repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

const newsColumns = `id, title, excerpt, body, cover, pinned, created_at`

// CreateNews inserts a post and returns its ID.
func (r *Repository) CreateNews(ctx context.Context, n model.News) (int64, error) {
	query := `
		INSERT INTO news (title, excerpt, body, cover, pinned)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
    `

	err := r.db.Master.QueryRowContext(ctx, query, n.Title, n.Excerpt, n.Body, n.Cover, n.Pinned).Scan(&n.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to create news: %w", err)
	}

	return n.ID, nil
}

// CreateNewsWithImages inserts a post together with its gallery in one transaction.
func (r *Repository) CreateNewsWithImages(ctx context.Context, n model.News, paths []string) (int64, error) {
	err := dbtx.WithTx(ctx, r.db.Master, func(tx *sql.Tx) error {
		query := `
			INSERT INTO news (title, excerpt, body, cover, pinned)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;
		`

		if err := tx.QueryRowContext(ctx, query, n.Title, n.Excerpt, n.Body, n.Cover, n.Pinned).Scan(&n.ID); err != nil {
			return fmt.Errorf("failed to create news: %w", err)
		}

		return insertImages(ctx, tx, n.ID, paths)
	})
	if err != nil {
		return 0, err
	}

	return n.ID, nil
}

// UpdateNews overwrites the editable fields of a post.
func (r *Repository) UpdateNews(ctx context.Context, n model.News) error {
	query := `
		UPDATE news
		SET title = $1, excerpt = $2, body = $3, cover = $4, pinned = $5
		WHERE id = $6;
    `

	res, err := r.db.Master.ExecContext(ctx, query, n.Title, n.Excerpt, n.Body, n.Cover, n.Pinned, n.ID)
	if err != nil {
		return fmt.Errorf("failed to update news: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNewsNotFound
	}

	return nil
}

// DeleteNews removes a post; its images go with it through ON DELETE CASCADE.
func (r *Repository) DeleteNews(ctx context.Context, id int64) error {
	res, err := r.db.Master.ExecContext(ctx, `DELETE FROM news WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete news: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNewsNotFound
	}

	return nil
}

// GetNewsByID retrieves a post by its ID.
func (r *Repository) GetNewsByID(ctx context.Context, id int64) (model.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE id = $1;`

	n, err := scanNews(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.News{}, ErrNewsNotFound
		}

		return model.News{}, fmt.Errorf("failed to get news: %w", err)
	}

	return n, nil
}

// GetAllNews retrieves all posts, newest first.
func (r *Repository) GetAllNews(ctx context.Context) ([]model.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news ORDER BY created_at DESC, id DESC;`

	return r.list(ctx, query)
}

// GetRecentNews retrieves up to limit newest posts other than excludeID.
func (r *Repository) GetRecentNews(ctx context.Context, excludeID int64, limit int) ([]model.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE id <> $1 ORDER BY created_at DESC, id DESC LIMIT $2;`

	return r.list(ctx, query, excludeID, limit)
}

// GetHighlightedNews returns the newest pinned post.
func (r *Repository) GetHighlightedNews(ctx context.Context) (model.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE pinned ORDER BY created_at DESC, id DESC LIMIT 1;`

	n, err := scanNews(r.db.Master.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.News{}, ErrNewsNotFound
		}

		return model.News{}, fmt.Errorf("failed to get highlighted news: %w", err)
	}

	return n, nil
}

// CountNews returns the number of posts.
func (r *Repository) CountNews(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Master.QueryRowContext(ctx, `SELECT COUNT(*) FROM news;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count news: %w", err)
	}

	return n, nil
}

// AddImages adds images to a post's gallery with sort value 0.
func (r *Repository) AddImages(ctx context.Context, newsID int64, paths []string) error {
	return dbtx.WithTx(ctx, r.db.Master, func(tx *sql.Tx) error {
		return insertImages(ctx, tx, newsID, paths)
	})
}

func insertImages(ctx context.Context, tx *sql.Tx, newsID int64, paths []string) error {
	for _, p := range paths {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO news_images (news_id, path, sort_order) VALUES ($1, $2, 0);`, newsID, p,
		)
		if err != nil {
			return fmt.Errorf("failed to add news image: %w", err)
		}
	}

	return nil
}

// GetImages retrieves the gallery images of a post in storage order.
func (r *Repository) GetImages(ctx context.Context, newsID int64) ([]model.NewsImage, error) {
	query := `
		SELECT id, news_id, path, sort_order
		FROM news_images
		WHERE news_id = $1
		ORDER BY id;
    `

	rows, err := r.db.Master.QueryContext(ctx, query, newsID)
	if err != nil {
		return nil, fmt.Errorf("failed to get news images: %w", err)
	}
	defer rows.Close()

	var images []model.NewsImage
	for rows.Next() {
		var img model.NewsImage
		if err := rows.Scan(&img.ID, &img.NewsID, &img.Path, &img.SortOrder); err != nil {
			return nil, err
		}

		images = append(images, img)
	}

	return images, rows.Err()
}

// DeleteImage removes an image, but only if it belongs to the given post.
func (r *Repository) DeleteImage(ctx context.Context, newsID, imageID int64) (string, error) {
	var path string
	err := r.db.Master.QueryRowContext(ctx,
		`DELETE FROM news_images WHERE id = $1 AND news_id = $2 RETURNING path;`, imageID, newsID,
	).Scan(&path)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrImageNotFound
		}

		return "", fmt.Errorf("failed to delete news image: %w", err)
	}

	return path, nil
}

// UpdateImageOrder writes the given sort values in one transaction. Images of other
// posts are never touched.
func (r *Repository) UpdateImageOrder(ctx context.Context, newsID int64, orders map[int64]int) error {
	return dbtx.WithTx(ctx, r.db.Master, func(tx *sql.Tx) error {
		if err := dbtx.AdvisoryLock(ctx, tx, dbtx.LockNewsImages); err != nil {
			return err
		}

		for _, id := range slices.Sorted(maps.Keys(orders)) {
			_, err := tx.ExecContext(ctx,
				`UPDATE news_images SET sort_order = $1 WHERE id = $2 AND news_id = $3;`, orders[id], id, newsID,
			)
			if err != nil {
				return fmt.Errorf("failed to update image order: %w", err)
			}
		}

		return nil
	})
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]model.News, error) {
	rows, err := r.db.Master.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer rows.Close()

	var list []model.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}

		list = append(list, n)
	}

	return list, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanNews(s scanner) (model.News, error) {
	var n model.News
	err := s.Scan(&n.ID, &n.Title, &n.Excerpt, &n.Body, &n.Cover, &n.Pinned, &n.CreatedAt)

	return n, err
}
