package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/crucial707/blog-api/internal/models"
)

// ========================
// REPOSITORY STRUCT
// ========================

type PostRepo struct {
	DB *sql.DB
}

func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{DB: db}
}

// ========================
// CREATE POST
// ========================

// Create inserts p. p.ID and p.UserID must be set by the caller.
func (r *PostRepo) Create(ctx context.Context, p *models.Post) error {
	p.Tags = nonNilTags(p.Tags)
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO posts (id, user_id, title, description, image_url, tags)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		p.ID, p.UserID, p.Title, p.Description, p.ImageURL, pq.Array(p.Tags),
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", translate(err))
	}
	return nil
}

// ========================
// GET POST BY ID
// ========================

// GetByID returns ErrNotFound both for unknown ids and for ids that are not UUIDs,
// so callers never see a driver parse error for a bad path parameter.
func (r *PostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, ErrNotFound
	}

	var p models.Post
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, user_id, title, description, image_url, tags, created_at, updated_at
		 FROM posts
		 WHERE id = $1`,
		id,
	).Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Description,
		&p.ImageURL,
		pq.Array(&p.Tags),
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", translate(err))
	}
	p.Tags = nonNilTags(p.Tags)
	return &p, nil
}

// ========================
// UPDATE POST
// ========================

// Update overwrites the mutable fields of p (title, description, image url, tags).
// Ownership is not checked here.
func (r *PostRepo) Update(ctx context.Context, p *models.Post) error {
	p.Tags = nonNilTags(p.Tags)
	err := r.DB.QueryRowContext(ctx,
		`UPDATE posts
		 SET title = $1, description = $2, image_url = $3, tags = $4, updated_at = now()
		 WHERE id = $5
		 RETURNING updated_at`,
		p.Title, p.Description, p.ImageURL, pq.Array(p.Tags), p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update post: %w", translate(err))
	}
	return nil
}

// ========================
// DELETE POST
// ========================

func (r *PostRepo) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return ErrNotFound
	}

	result, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// canonicalID returns id in the lower-case hyphenated form Postgres accepts.
// uuid.Parse also accepts urn:uuid:, braced and unhyphenated forms; only the
// parsed value is ever bound.
func canonicalID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
