package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ishanperera/portfolio-backend/internal/projects/domain"
	"github.com/lib/pq"
)

// Postgres is a durable project store over database/sql with the pq
// driver. Ids come from a BIGSERIAL sequence, which never reuses values.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id           BIGSERIAL PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL,
	image        TEXT NOT NULL,
	technologies TEXT[] NOT NULL DEFAULT '{}',
	github_url   TEXT NOT NULL,
	live_url     TEXT NOT NULL,
	category     TEXT NOT NULL,
	featured     BOOLEAN NOT NULL DEFAULT FALSE,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ
)`

// EnsureSchema creates the projects table when missing.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const projectColumns = `id::text, title, description, image, technologies, github_url, live_url, category, featured, created_at, updated_at`

func (s *Postgres) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if out == nil {
		out = []domain.Project{}
	}
	return out, nil
}

func (s *Postgres) Get(ctx context.Context, id string) (domain.Project, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id::text = $1`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return p, err
}

func (s *Postgres) Insert(ctx context.Context, p domain.Project) (domain.Project, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO projects (title, description, image, technologies, github_url, live_url, category, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id::text`,
		p.Title, p.Description, p.Image, pq.Array(p.Technologies),
		p.GithubURL, p.LiveURL, p.Category, p.Featured, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return domain.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

func (s *Postgres) Replace(ctx context.Context, p domain.Project) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE projects
		SET title = $2, description = $3, image = $4, technologies = $5,
		    github_url = $6, live_url = $7, category = $8, featured = $9,
		    created_at = $10, updated_at = $11
		WHERE id::text = $1`,
		p.ID, p.Title, p.Description, p.Image, pq.Array(p.Technologies),
		p.GithubURL, p.LiveURL, p.Category, p.Featured, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("replace project: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("replace project: %w", err)
	}
	if n == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (s *Postgres) Delete(ctx context.Context, id string) (domain.Project, error) {
	row := s.db.QueryRowContext(ctx,
		`DELETE FROM projects WHERE id::text = $1 RETURNING `+projectColumns, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return p, err
}

func (s *Postgres) Seed(ctx context.Context, projects []domain.Project) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return fmt.Errorf("check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range projects {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO projects (id, title, description, image, technologies, github_url, live_url, category, featured, created_at)
			VALUES ($1::bigint, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			p.ID, p.Title, p.Description, p.Image, pq.Array(p.Technologies),
			p.GithubURL, p.LiveURL, p.Category, p.Featured, p.CreatedAt); err != nil {
			return fmt.Errorf("seed project %s: %w", p.ID, err)
		}
	}

	// Move the sequence past the explicit seed ids.
	if _, err := s.db.ExecContext(ctx,
		`SELECT setval('projects_id_seq', (SELECT MAX(id) FROM projects))`); err != nil {
		return fmt.Errorf("advance id sequence: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (domain.Project, error) {
	var p domain.Project
	var technologies pq.StringArray
	var updatedAt sql.NullTime

	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &technologies,
		&p.GithubURL, &p.LiveURL, &p.Category, &p.Featured, &p.CreatedAt, &updatedAt)
	if err != nil {
		return domain.Project{}, err
	}

	p.Technologies = []string(technologies)
	if updatedAt.Valid {
		t := updatedAt.Time
		p.UpdatedAt = &t
	}
	return p, nil
}
