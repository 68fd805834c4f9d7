// Package post persists the dashboard's drafts and scheduled posts. The
// scoring and recommendation engine never reads these tables; persistence is
// strictly a caller-side concern.
package post

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/service/database"
	"github.com/postpilot/content-planner-go/pkg/errors"
	"go.uber.org/zap"
)

type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewRepository(pg *database.PostgresService, logger *zap.Logger) *Repository {
	return &Repository{
		db:     pg.GetDB(),
		logger: logger,
	}
}

const postColumns = "id, platform, content_type, title, caption, hashtags, scheduled_at, status, score, created_at, updated_at"

func (r *Repository) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	if p.Status == "" {
		p.Status = domain.PostStatusDraft
	}
	if !p.Status.Valid() {
		return nil, errors.NewValidationError("invalid post status", "status", string(p.Status))
	}

	query := fmt.Sprintf(`INSERT INTO posts (platform, content_type, title, caption, hashtags, scheduled_at, status, score)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING %s`, postColumns)

	row := r.db.QueryRowContext(ctx, query,
		p.Platform, p.ContentType, p.Title, p.Caption, p.Hashtags, p.ScheduledAt, p.Status, p.Score)

	created, err := scanPost(row)
	if err != nil {
		r.logger.Error("Failed to create post", zap.Error(err))
		return nil, errors.NewStorageError("create failed", "posts", "insert", err)
	}

	r.logger.Info("Post created",
		zap.Int64("id", created.ID),
		zap.String("platform", created.Platform),
		zap.String("status", string(created.Status)),
	)
	return created, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*domain.Post, error) {
	query := fmt.Sprintf("SELECT %s FROM posts WHERE id = $1", postColumns)

	p, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get post", zap.Int64("id", id), zap.Error(err))
		return nil, errors.NewStorageError("get failed", "posts", "select", err)
	}
	return p, nil
}

func (r *Repository) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	if !p.Status.Valid() {
		return nil, errors.NewValidationError("invalid post status", "status", string(p.Status))
	}

	query := fmt.Sprintf(`UPDATE posts
SET platform = $1, content_type = $2, title = $3, caption = $4, hashtags = $5,
    scheduled_at = $6, status = $7, score = $8, updated_at = now()
WHERE id = $9
RETURNING %s`, postColumns)

	row := r.db.QueryRowContext(ctx, query,
		p.Platform, p.ContentType, p.Title, p.Caption, p.Hashtags, p.ScheduledAt, p.Status, p.Score, p.ID)

	updated, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to update post", zap.Int64("id", p.ID), zap.Error(err))
		return nil, errors.NewStorageError("update failed", "posts", "update", err)
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		r.logger.Error("Failed to delete post", zap.Int64("id", id), zap.Error(err))
		return false, errors.NewStorageError("delete failed", "posts", "delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.NewStorageError("delete failed", "posts", "delete", err)
	}
	return affected > 0, nil
}

// ListRange returns posts scheduled inside [from, to) plus unscheduled drafts,
// oldest first. This backs the calendar view.
func (r *Repository) ListRange(ctx context.Context, from, to time.Time) ([]*domain.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts
WHERE (scheduled_at >= $1 AND scheduled_at < $2) OR scheduled_at IS NULL
ORDER BY scheduled_at NULLS LAST, id`, postColumns)

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		r.logger.Error("Failed to list posts", zap.Error(err))
		return nil, errors.NewStorageError("list failed", "posts", "select", err)
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, errors.NewStorageError("scan failed", "posts", "select", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageError("iteration failed", "posts", "select", err)
	}

	return posts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var p domain.Post
	var scheduledAt sql.NullTime
	var score sql.NullInt64

	err := row.Scan(&p.ID, &p.Platform, &p.ContentType, &p.Title, &p.Caption, &p.Hashtags,
		&scheduledAt, &p.Status, &score, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if scheduledAt.Valid {
		t := scheduledAt.Time
		p.ScheduledAt = &t
	}
	if score.Valid {
		v := int(score.Int64)
		p.Score = &v
	}
	return &p, nil
}
