package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-forum-api/internal/models"
)

// PostFilter narrows post listings.
type PostFilter struct {
	Category      string
	AuthorID      string
	OnlyValidated bool
}

// PostRepository manages persistence for posts.
type PostRepository struct {
	db *sqlx.DB
}

// NewPostRepository constructs a new post repository.
func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

const postColumns = "post_id, upload_time, title, content, author_id, anonymous, category, validated"

// Create persists a post and returns its generated id. New posts start
// validated.
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	const query = `INSERT INTO posts (upload_time, title, content, author_id, anonymous, category, validated) VALUES ($1, $2, $3, $4, $5, $6, TRUE) RETURNING post_id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, post.UploadTime, post.Title, post.Content, post.AuthorID, post.Anonymous, post.Category); err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	return id, nil
}

// FindByID returns a post by id.
func (r *PostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	query := fmt.Sprintf("SELECT %s FROM posts WHERE post_id = $1", postColumns)
	var post models.Post
	if err := r.db.GetContext(ctx, &post, query, id); err != nil {
		return nil, err
	}
	return &post, nil
}

// Exists reports whether the post id is present.
func (r *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT 1 FROM posts WHERE post_id = $1 LIMIT 1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check post: %w", err)
	}
	return true, nil
}

// List returns posts matching the filter, newest first.
func (r *PostRepository) List(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	var conditions []string
	var args []interface{}

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, filter.Category)
	}
	if filter.AuthorID != "" {
		conditions = append(conditions, fmt.Sprintf("author_id = $%d", len(args)+1))
		args = append(args, filter.AuthorID)
	}
	if filter.OnlyValidated {
		conditions = append(conditions, "validated = TRUE")
	}

	query := fmt.Sprintf("SELECT %s FROM posts", postColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY upload_time DESC"

	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// ListPending returns unvalidated posts, newest first.
func (r *PostRepository) ListPending(ctx context.Context) ([]models.Post, error) {
	query := fmt.Sprintf("SELECT %s FROM posts WHERE validated = FALSE ORDER BY upload_time DESC", postColumns)
	posts := []models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("list pending posts: %w", err)
	}
	return posts, nil
}

// SetValidated writes the moderation state. The write is idempotent.
func (r *PostRepository) SetValidated(ctx context.Context, id int64, validated bool) error {
	const query = `UPDATE posts SET validated = $1 WHERE post_id = $2`
	if _, err := r.db.ExecContext(ctx, query, validated, id); err != nil {
		return fmt.Errorf("set post validated: %w", err)
	}
	return nil
}

// CountByAuthor returns the number of posts authored by the given id.
func (r *PostRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	const query = `SELECT COUNT(*) FROM posts WHERE author_id = $1`
	var count int64
	if err := r.db.GetContext(ctx, &count, query, authorID); err != nil {
		return 0, fmt.Errorf("count posts by author: %w", err)
	}
	return count, nil
}
