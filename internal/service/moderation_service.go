package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-forum-api/internal/models"
	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
)

type moderationPostRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	SetValidated(ctx context.Context, id int64, validated bool) error
	ListPending(ctx context.Context) ([]models.Post, error)
}

type moderationReplyRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	SetValidated(ctx context.Context, id int64, validated bool) error
	ListPending(ctx context.Context) ([]models.Reply, error)
}

// PendingContent is the moderation queue: unvalidated posts and replies.
type PendingContent struct {
	Posts   []models.Post  `json:"posts"`
	Replies []models.Reply `json:"replies"`
}

// ModerationService flips content between visible and blocked and serves the
// moderation queue. All operations require teacher or admin privilege.
type ModerationService struct {
	posts     moderationPostRepository
	replies   moderationReplyRepository
	privilege forumPrivilegeResolver
	logger    *zap.Logger
}

// NewModerationService constructs a ModerationService.
func NewModerationService(posts moderationPostRepository, replies moderationReplyRepository, privilege forumPrivilegeResolver, logger *zap.Logger) *ModerationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModerationService{posts: posts, replies: replies, privilege: privilege, logger: logger}
}

// SetPostValidated blocks or restores a post. The write is idempotent:
// blocking a blocked post succeeds.
func (s *ModerationService) SetPostValidated(ctx context.Context, postID int64, requester string, validated bool) error {
	allowed, err := s.canModerate(ctx, requester)
	if err != nil {
		return err
	}
	if !allowed {
		verb := "block"
		if validated {
			verb = "validate"
		}
		return appErrors.Clone(appErrors.ErrAccessDenied, "Access denied: Only teachers or admins can "+verb+" posts")
	}

	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check post")
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "Post not found")
	}

	if err := s.posts.SetValidated(ctx, postID, validated); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update post")
	}
	s.logger.Info("post moderation state changed", zap.Int64("post_id", postID), zap.Bool("validated", validated))
	return nil
}

// SetReplyValidated blocks or restores a reply.
func (s *ModerationService) SetReplyValidated(ctx context.Context, replyID int64, requester string, validated bool) error {
	allowed, err := s.canModerate(ctx, requester)
	if err != nil {
		return err
	}
	if !allowed {
		return appErrors.Clone(appErrors.ErrAccessDenied, "Access denied")
	}

	exists, err := s.replies.Exists(ctx, replyID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check reply")
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "Reply not found")
	}

	if err := s.replies.SetValidated(ctx, replyID, validated); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update reply")
	}
	s.logger.Info("reply moderation state changed", zap.Int64("reply_id", replyID), zap.Bool("validated", validated))
	return nil
}

// Pending returns the moderation queue for teachers and admins.
func (s *ModerationService) Pending(ctx context.Context, requester string) (*PendingContent, error) {
	allowed, err := s.canModerate(ctx, requester)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, appErrors.Clone(appErrors.ErrAccessDenied, "Access denied")
	}

	posts, err := s.posts.ListPending(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list pending posts")
	}
	replies, err := s.replies.ListPending(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list pending replies")
	}
	return &PendingContent{Posts: posts, Replies: replies}, nil
}

func (s *ModerationService) canModerate(ctx context.Context, requester string) (bool, error) {
	privilege, err := s.privilege.Resolve(ctx, requester)
	if err != nil {
		return false, err
	}
	return privilege.IsTeacher || privilege.IsAdmin, nil
}
