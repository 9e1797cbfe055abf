// Package migrate applies the versioned schema migrations at startup.
package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/corpsite/internal/repository/dbtx"
)

type migration struct {
	Version int
	SQL     string
}

var migrations = []migration{
	{
		Version: 1,
		SQL: `
CREATE TABLE IF NOT EXISTS admins (
	id            BIGSERIAL PRIMARY KEY,
	login         VARCHAR(64) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL
);

CREATE TABLE IF NOT EXISTS news (
	id         BIGSERIAL PRIMARY KEY,
	title      VARCHAR(255) NOT NULL,
	excerpt    VARCHAR(600),
	body       TEXT,
	cover      VARCHAR(512),
	pinned     BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS news_images (
	id         BIGSERIAL PRIMARY KEY,
	news_id    BIGINT NOT NULL REFERENCES news (id) ON DELETE CASCADE,
	path       VARCHAR(512) NOT NULL,
	sort_order INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS employees (
	id         BIGSERIAL PRIMARY KEY,
	full_name  VARCHAR(255) NOT NULL,
	title      VARCHAR(255) NOT NULL,
	dept       VARCHAR(255) NOT NULL,
	email      VARCHAR(255),
	phone      VARCHAR(64),
	photo      VARCHAR(512),
	span2      BOOLEAN NOT NULL DEFAULT FALSE,
	sort_order INT
);

CREATE TABLE IF NOT EXISTS projects (
	id          BIGSERIAL PRIMARY KEY,
	title       VARCHAR(255) NOT NULL,
	subtitle    VARCHAR(255),
	image       VARCHAR(512),
	description TEXT,
	purpose     TEXT,
	advantages  TEXT,
	application TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS vacancies (
	id              BIGSERIAL PRIMARY KEY,
	location        VARCHAR(16) NOT NULL CHECK (location IN ('office', 'plant')),
	title           VARCHAR(255) NOT NULL,
	salary          VARCHAR(255),
	pay_period      VARCHAR(255),
	experience      VARCHAR(255),
	employment_type VARCHAR(64),
	schedule        VARCHAR(255),
	work_hours      VARCHAR(255),
	work_format     VARCHAR(255),
	description     TEXT,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`,
	},
	{
		Version: 2,
		SQL: `
CREATE INDEX IF NOT EXISTS idx_news_pinned_created ON news (pinned, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_news_images_news_order ON news_images (news_id, sort_order);
CREATE INDEX IF NOT EXISTS idx_employees_sort_order ON employees (sort_order);
CREATE INDEX IF NOT EXISTS idx_vacancies_location ON vacancies (location);
`,
	},
}

// Up applies every migration that is not yet recorded in schema_migrations,
// each in its own transaction.
func Up(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (version INT NOT NULL PRIMARY KEY);`,
	); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		err := dbtx.WithTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
				return fmt.Errorf("exec migration %d: %w", m.Version, err)
			}

			if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1);`, m.Version); err != nil {
				return fmt.Errorf("record migration %d: %w", m.Version, err)
			}

			return nil
		})
		if err != nil {
			return err
		}

		zlog.Logger.Info().Int("version", m.Version).Msg("migration applied")
	}

	return nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations;`)
	if err != nil {
		return nil, fmt.Errorf("query schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := map[int]bool{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan schema_migrations: %w", err)
		}

		applied[v] = true
	}

	return applied, rows.Err()
}
