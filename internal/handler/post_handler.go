package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-forum-api/internal/models"
	"github.com/noah-isme/school-forum-api/internal/service"
	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
	"github.com/noah-isme/school-forum-api/pkg/response"
)

type forumService interface {
	CreatePost(ctx context.Context, req service.CreatePostRequest) error
	CreateReply(ctx context.Context, req service.CreateReplyRequest) error
	ListPosts(ctx context.Context, viewer string, showPending bool) ([]models.PostView, error)
	ListByCategory(ctx context.Context, category, viewer string, showPending bool) ([]models.PostView, error)
	MyPosts(ctx context.Context, authorID string) ([]models.PostView, error)
	GetPost(ctx context.Context, postID int64, viewer string) (*models.PostDetail, bool, error)
	GetReplies(ctx context.Context, postID int64, viewer string) ([]models.ReplyView, error)
}

// PostHandler exposes the forum content endpoints.
type PostHandler struct {
	forum forumService
}

// NewPostHandler constructs PostHandler.
func NewPostHandler(forum forumService) *PostHandler {
	return &PostHandler{forum: forum}
}

// Upload godoc
// @Summary Create a post
// @Tags Posts
// @Accept json
// @Produce json
// @Param payload body service.CreatePostRequest true "Post payload"
// @Success 200 {object} map[string]interface{}
// @Router /post-upload [post]
func (h *PostHandler) Upload(c *gin.Context) {
	var req service.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingFields, "Missing required fields"))
		return
	}

	if err := h.forum.CreatePost(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Post uploaded successfully!"})
}

// List godoc
// @Summary List visible posts
// @Tags Posts
// @Produce json
// @Param requester_school_id query string false "Viewer identifier"
// @Param show_pending query bool false "Include pending content (admins only)"
// @Success 200 {object} map[string]interface{}
// @Router /post-list [get]
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.forum.ListPosts(c.Request.Context(), c.Query("requester_school_id"), boolQuery(c, "show_pending"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"posts": posts})
}

// ListByCategory godoc
// @Summary List visible posts in a category
// @Tags Posts
// @Produce json
// @Param category query string true "Category"
// @Param requester_school_id query string false "Viewer identifier"
// @Param show_pending query bool false "Include pending content (admins only)"
// @Success 200 {object} map[string]interface{}
// @Router /post-by-category [get]
func (h *PostHandler) ListByCategory(c *gin.Context) {
	posts, err := h.forum.ListByCategory(c.Request.Context(), c.Query("category"), c.Query("requester_school_id"), boolQuery(c, "show_pending"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"posts": posts})
}

// MyPosts godoc
// @Summary List the caller's own posts
// @Tags Posts
// @Accept json
// @Produce json
// @Param payload body object true "author_id"
// @Success 200 {object} map[string]interface{}
// @Router /my-post-list [post]
func (h *PostHandler) MyPosts(c *gin.Context) {
	var req struct {
		AuthorID string `json:"author_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingFields, "author_id is required"))
		return
	}

	posts, err := h.forum.MyPosts(c.Request.Context(), req.AuthorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"posts": posts})
}

// Get godoc
// @Summary Fetch a single post
// @Tags Posts
// @Produce json
// @Param post_id query int true "Post id"
// @Param requester_school_id query string false "Viewer identifier"
// @Success 200 {object} map[string]interface{}
// @Router /get-post [get]
func (h *PostHandler) Get(c *gin.Context) {
	postID, err := intQuery(c, "post_id")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingFields, "post_id is required"))
		return
	}

	post, isAdmin, err := h.forum.GetPost(c.Request.Context(), postID, c.Query("requester_school_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"post": post, "is_admin": isAdmin})
}

// Replies godoc
// @Summary List a post's replies
// @Tags Posts
// @Produce json
// @Param post_id query int true "Post id"
// @Param requester_school_id query string false "Viewer identifier"
// @Success 200 {object} map[string]interface{}
// @Router /get-post-replies [get]
func (h *PostHandler) Replies(c *gin.Context) {
	postID, err := intQuery(c, "post_id")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingFields, "post_id is required"))
		return
	}

	replies, err := h.forum.GetReplies(c.Request.Context(), postID, c.Query("requester_school_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"replies": replies})
}

// Reply godoc
// @Summary Create a reply
// @Tags Posts
// @Accept json
// @Produce json
// @Param payload body service.CreateReplyRequest true "Reply payload"
// @Success 200 {object} map[string]interface{}
// @Router /post-reply [post]
func (h *PostHandler) Reply(c *gin.Context) {
	var req service.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingFields, "Missing required fields"))
		return
	}

	if err := h.forum.CreateReply(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Reply posted successfully!"})
}

func boolQuery(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.DefaultQuery(key, "false"))
	if err != nil {
		return false
	}
	return v
}

func intQuery(c *gin.Context, key string) (int64, error) {
	return strconv.ParseInt(c.Query(key), 10, 64)
}
