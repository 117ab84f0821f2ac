package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-forum-api/internal/service"
	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
	"github.com/noah-isme/school-forum-api/pkg/response"
)

type moderationService interface {
	SetPostValidated(ctx context.Context, postID int64, requester string, validated bool) error
	SetReplyValidated(ctx context.Context, replyID int64, requester string, validated bool) error
	Pending(ctx context.Context, requester string) (*service.PendingContent, error)
}

// ModerationHandler exposes the block/validate endpoints and the pending
// content queue.
type ModerationHandler struct {
	moderation moderationService
}

// NewModerationHandler constructs ModerationHandler.
func NewModerationHandler(moderation moderationService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation}
}

type postModerationRequest struct {
	PostID            int64  `json:"post_id"`
	RequesterSchoolID string `json:"requester_school_id"`
}

type replyModerationRequest struct {
	ReplyID           int64  `json:"reply_id"`
	RequesterSchoolID string `json:"requester_school_id"`
}

// BlockPost godoc
// @Summary Block a post
// @Tags Moderation
// @Accept json
// @Produce json
// @Param payload body postModerationRequest true "Moderation payload"
// @Success 200 {object} map[string]interface{}
// @Router /block-post [post]
func (h *ModerationHandler) BlockPost(c *gin.Context) {
	h.moderatePost(c, false, "Post blocked successfully")
}

// ValidatePost godoc
// @Summary Validate a post
// @Tags Moderation
// @Accept json
// @Produce json
// @Param payload body postModerationRequest true "Moderation payload"
// @Success 200 {object} map[string]interface{}
// @Router /validate-post [post]
func (h *ModerationHandler) ValidatePost(c *gin.Context) {
	h.moderatePost(c, true, "Post validated successfully")
}

func (h *ModerationHandler) moderatePost(c *gin.Context, validated bool, message string) {
	var req postModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PostID == 0 || req.RequesterSchoolID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingFields, "post_id and requester_school_id are required"))
		return
	}

	if err := h.moderation.SetPostValidated(c.Request.Context(), req.PostID, req.RequesterSchoolID, validated); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": message})
}

// BlockReply godoc
// @Summary Block a reply
// @Tags Moderation
// @Accept json
// @Produce json
// @Param payload body replyModerationRequest true "Moderation payload"
// @Success 200 {object} map[string]interface{}
// @Router /block-reply [post]
func (h *ModerationHandler) BlockReply(c *gin.Context) {
	h.moderateReply(c, false, "Reply blocked successfully")
}

// ValidateReply godoc
// @Summary Validate a reply
// @Tags Moderation
// @Accept json
// @Produce json
// @Param payload body replyModerationRequest true "Moderation payload"
// @Success 200 {object} map[string]interface{}
// @Router /validate-reply [post]
func (h *ModerationHandler) ValidateReply(c *gin.Context) {
	h.moderateReply(c, true, "Reply validated successfully")
}

func (h *ModerationHandler) moderateReply(c *gin.Context, validated bool, message string) {
	var req replyModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ReplyID == 0 || req.RequesterSchoolID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingFields, "reply_id and requester_school_id are required"))
		return
	}

	if err := h.moderation.SetReplyValidated(c.Request.Context(), req.ReplyID, req.RequesterSchoolID, validated); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": message})
}

// Pending godoc
// @Summary List unvalidated posts and replies
// @Tags Moderation
// @Produce json
// @Param requester_school_id query string true "Requester identifier"
// @Success 200 {object} map[string]interface{}
// @Router /pending-content [get]
func (h *ModerationHandler) Pending(c *gin.Context) {
	pending, err := h.moderation.Pending(c.Request.Context(), c.Query("requester_school_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"posts": pending.Posts, "replies": pending.Replies})
}
