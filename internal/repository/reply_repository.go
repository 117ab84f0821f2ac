package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-forum-api/internal/models"
)

// ReplyRepository manages persistence for replies.
type ReplyRepository struct {
	db *sqlx.DB
}

// NewReplyRepository constructs a new reply repository.
func NewReplyRepository(db *sqlx.DB) *ReplyRepository {
	return &ReplyRepository{db: db}
}

const replyColumns = "reply_id, parent_post_id, author_id, upload_time, anonymous, content, validated"

// Create persists a reply and returns its generated id.
func (r *ReplyRepository) Create(ctx context.Context, reply *models.Reply) (int64, error) {
	const query = `INSERT INTO replies (parent_post_id, author_id, upload_time, anonymous, content, validated) VALUES ($1, $2, $3, $4, $5, TRUE) RETURNING reply_id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, reply.ParentPostID, reply.AuthorID, reply.UploadTime, reply.Anonymous, reply.Content); err != nil {
		return 0, fmt.Errorf("create reply: %w", err)
	}
	return id, nil
}

// Exists reports whether the reply id is present.
func (r *ReplyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT 1 FROM replies WHERE reply_id = $1 LIMIT 1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check reply: %w", err)
	}
	return true, nil
}

// ListByPost returns a post's replies ordered by creation time ascending.
func (r *ReplyRepository) ListByPost(ctx context.Context, postID int64) ([]models.Reply, error) {
	query := fmt.Sprintf("SELECT %s FROM replies WHERE parent_post_id = $1 ORDER BY upload_time ASC", replyColumns)
	replies := []models.Reply{}
	if err := r.db.SelectContext(ctx, &replies, query, postID); err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	return replies, nil
}

// ListPending returns unvalidated replies, newest first.
func (r *ReplyRepository) ListPending(ctx context.Context) ([]models.Reply, error) {
	query := fmt.Sprintf("SELECT %s FROM replies WHERE validated = FALSE ORDER BY upload_time DESC", replyColumns)
	replies := []models.Reply{}
	if err := r.db.SelectContext(ctx, &replies, query); err != nil {
		return nil, fmt.Errorf("list pending replies: %w", err)
	}
	return replies, nil
}

// SetValidated writes the moderation state. The write is idempotent.
func (r *ReplyRepository) SetValidated(ctx context.Context, id int64, validated bool) error {
	const query = `UPDATE replies SET validated = $1 WHERE reply_id = $2`
	if _, err := r.db.ExecContext(ctx, query, validated, id); err != nil {
		return fmt.Errorf("set reply validated: %w", err)
	}
	return nil
}
