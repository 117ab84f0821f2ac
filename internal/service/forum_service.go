package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-forum-api/internal/models"
	"github.com/noah-isme/school-forum-api/internal/repository"
	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
)

type forumPostRepository interface {
	Create(ctx context.Context, post *models.Post) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.Post, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter repository.PostFilter) ([]models.Post, error)
}

type forumReplyRepository interface {
	Create(ctx context.Context, reply *models.Reply) (int64, error)
	ListByPost(ctx context.Context, postID int64) ([]models.Reply, error)
}

type forumAccountRepository interface {
	UserIDBySchoolID(ctx context.Context, schoolID string) (string, error)
}

type forumPrivilegeResolver interface {
	Resolve(ctx context.Context, identifier string) (Privilege, error)
}

const uploadTimeLayout = "2006-01-02 15:04:05"

// NormalizeUploadTime parses an ISO-8601 timestamp, with or without the Z
// suffix, into the fixed storage form. The parse failure text is passed
// through to the caller by contract.
func NormalizeUploadTime(raw string) (string, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", uploadTimeLayout, "2006-01-02"}
	var firstErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.Format(uploadTimeLayout), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("Invalid datetime format: %s", firstErr))
}

// CreatePostRequest captures the post upload payload.
type CreatePostRequest struct {
	UploadTime string `json:"upload_time" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	AuthorID   string `json:"author_id" validate:"required"`
	Anonymous  *bool  `json:"anonymous" validate:"required"`
	Category   string `json:"category" validate:"required"`
}

// CreateReplyRequest captures the reply payload.
type CreateReplyRequest struct {
	UploadTime   string `json:"upload_time" validate:"required"`
	ParentPostID int64  `json:"parent_post_id" validate:"required"`
	Content      string `json:"content" validate:"required"`
	AuthorID     string `json:"author_id" validate:"required"`
	Anonymous    *bool  `json:"anonymous" validate:"required"`
}

// ForumService assembles post listings under the visibility policy and
// handles content creation.
type ForumService struct {
	posts     forumPostRepository
	replies   forumReplyRepository
	accounts  forumAccountRepository
	privilege forumPrivilegeResolver
	validator *validator.Validate
	logger    *zap.Logger
}

// NewForumService constructs a ForumService.
func NewForumService(posts forumPostRepository, replies forumReplyRepository, accounts forumAccountRepository, privilege forumPrivilegeResolver, validate *validator.Validate, logger *zap.Logger) *ForumService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ForumService{posts: posts, replies: replies, accounts: accounts, privilege: privilege, validator: validate, logger: logger}
}

// CreatePost stores a new post. Posts start validated.
func (s *ForumService) CreatePost(ctx context.Context, req CreatePostRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrMissingFields.Code, appErrors.ErrMissingFields.Status, appErrors.ErrMissingFields.Message)
	}

	normalized, err := NormalizeUploadTime(req.UploadTime)
	if err != nil {
		return err
	}

	post := &models.Post{
		UploadTime: normalized,
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   req.AuthorID,
		Anonymous:  *req.Anonymous,
		Category:   req.Category,
	}
	if _, err := s.posts.Create(ctx, post); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create post")
	}
	return nil
}

// CreateReply stores a new reply after verifying the parent post exists.
func (s *ForumService) CreateReply(ctx context.Context, req CreateReplyRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrMissingFields.Code, appErrors.ErrMissingFields.Status, appErrors.ErrMissingFields.Message)
	}

	normalized, err := NormalizeUploadTime(req.UploadTime)
	if err != nil {
		return err
	}

	exists, err := s.posts.Exists(ctx, req.ParentPostID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check parent post")
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "Parent post not found")
	}

	reply := &models.Reply{
		ParentPostID: req.ParentPostID,
		AuthorID:     req.AuthorID,
		UploadTime:   normalized,
		Anonymous:    *req.Anonymous,
		Content:      req.Content,
	}
	if _, err := s.replies.Create(ctx, reply); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create reply")
	}
	return nil
}

// ListPosts returns the visible posts for the viewer, newest first, with
// replies attached. Pending content is included only when an admin asks for
// it; the toggle is silently ignored for everyone else.
func (s *ForumService) ListPosts(ctx context.Context, viewer string, showPending bool) ([]models.PostView, error) {
	return s.listPosts(ctx, "", viewer, showPending)
}

// ListByCategory returns the visible posts in a category.
func (s *ForumService) ListByCategory(ctx context.Context, category, viewer string, showPending bool) ([]models.PostView, error) {
	return s.listPosts(ctx, category, viewer, showPending)
}

func (s *ForumService) listPosts(ctx context.Context, category, viewer string, showPending bool) ([]models.PostView, error) {
	privilege, err := s.privilege.Resolve(ctx, viewer)
	if err != nil {
		return nil, err
	}

	filter := repository.PostFilter{
		Category:      category,
		OnlyValidated: !(privilege.IsAdmin && showPending),
	}
	posts, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list posts")
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		replies, err := s.replies.ListByPost(ctx, post.PostID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list replies")
		}
		views = append(views, assemblePostView(post, replies, privilege.IsAdmin))
	}
	return views, nil
}

// MyPosts returns every post by the author, validated or not, with raw
// replies. The author is viewing their own content, so nothing is masked.
func (s *ForumService) MyPosts(ctx context.Context, authorID string) ([]models.PostView, error) {
	if authorID == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "author_id is required")
	}

	posts, err := s.posts.List(ctx, repository.PostFilter{AuthorID: authorID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list posts")
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		replies, err := s.replies.ListByPost(ctx, post.PostID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list replies")
		}
		views = append(views, assemblePostView(post, replies, true))
	}
	return views, nil
}

// GetPost returns a single post for the viewer. Blocked posts answer "Post
// not found" unless the viewer is the author or an admin, so existence never
// leaks.
func (s *ForumService) GetPost(ctx context.Context, postID int64, viewer string) (*models.PostDetail, bool, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "Post not found")
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load post")
	}

	privilege, err := s.privilege.Resolve(ctx, viewer)
	if err != nil {
		return nil, false, err
	}

	isAuthor := false
	if viewer != "" {
		userID, err := s.accounts.UserIDBySchoolID(ctx, viewer)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve viewer")
		}
		if err == nil {
			isAuthor = userID == post.AuthorID
		}
	}

	if !ContentVisible(post.Validated, privilege.IsAdmin, isAuthor) {
		return nil, false, appErrors.Clone(appErrors.ErrNotFound, "Post not found")
	}

	detail := &models.PostDetail{
		PostID:     post.PostID,
		UploadTime: post.UploadTime,
		Content:    post.Content,
		Anonymous:  post.Anonymous,
		Title:      post.Title,
		Validated:  post.Validated,
		Category:   post.Category,
		AuthorID:   DisplayAuthor(post.Anonymous, post.AuthorID, privilege.IsAdmin),
	}
	return detail, privilege.IsAdmin, nil
}

// GetReplies returns a post's replies in creation order with authors masked
// for the viewer. Replies are listed regardless of their own validated flag;
// blocking a reply only affects the moderation queue.
func (s *ForumService) GetReplies(ctx context.Context, postID int64, viewer string) ([]models.ReplyView, error) {
	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check post")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Post not found")
	}

	privilege, err := s.privilege.Resolve(ctx, viewer)
	if err != nil {
		return nil, err
	}

	replies, err := s.replies.ListByPost(ctx, postID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list replies")
	}

	views := make([]models.ReplyView, 0, len(replies))
	for _, reply := range replies {
		views = append(views, assembleReplyView(reply, privilege.IsAdmin))
	}
	return views, nil
}

func assemblePostView(post models.Post, replies []models.Reply, unmask bool) models.PostView {
	replyViews := make([]models.ReplyView, 0, len(replies))
	for _, reply := range replies {
		replyViews = append(replyViews, assembleReplyView(reply, unmask))
	}
	return models.PostView{
		PostID:     post.PostID,
		UploadTime: post.UploadTime,
		Content:    post.Content,
		AuthorID:   DisplayAuthor(post.Anonymous, post.AuthorID, unmask),
		Anonymous:  post.Anonymous,
		Category:   post.Category,
		Title:      post.Title,
		Validated:  post.Validated,
		Replies:    replyViews,
	}
}

func assembleReplyView(reply models.Reply, unmask bool) models.ReplyView {
	return models.ReplyView{
		ReplyID:      reply.ReplyID,
		ParentPostID: reply.ParentPostID,
		AuthorID:     DisplayAuthor(reply.Anonymous, reply.AuthorID, unmask),
		UploadTime:   reply.UploadTime,
		Anonymous:    reply.Anonymous,
		Content:      reply.Content,
		Validated:    reply.Validated,
	}
}
