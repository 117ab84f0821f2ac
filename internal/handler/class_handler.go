package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-forum-api/internal/models"
	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
	"github.com/noah-isme/school-forum-api/pkg/response"
)

type classService interface {
	List(ctx context.Context, teacherID string) ([]models.ClassGroup, error)
	Create(ctx context.Context, teacherID, name string) (int64, error)
	Delete(ctx context.Context, classID int64, teacherID string) error
	Rename(ctx context.Context, classID int64, teacherID, name string) error
	AddStudent(ctx context.Context, classID int64, schoolID string) error
	RemoveStudent(ctx context.Context, classID int64, schoolID string) error
}

// ClassHandler exposes the class roster endpoints.
type ClassHandler struct {
	classes classService
}

// NewClassHandler constructs ClassHandler.
func NewClassHandler(classes classService) *ClassHandler {
	return &ClassHandler{classes: classes}
}

// List godoc
// @Summary List a teacher's classes
// @Tags Classes
// @Produce json
// @Param school_id query string true "Teacher school id"
// @Success 200 {object} map[string]interface{}
// @Router /get-classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.classes.List(c.Request.Context(), c.Query("school_id"))
	if err != nil {
		// The roster UI branches on this flag, so the denial carries it.
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Code == appErrors.ErrAccessDenied.Code {
			c.Header("Cache-Control", "no-store")
			c.Header("Pragma", "no-cache")
			c.JSON(http.StatusOK, gin.H{"status": "error", "message": appErr.Message, "is_teacher": false})
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"classes": classes, "is_teacher": true})
}

// Create godoc
// @Summary Create a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body object true "creator_id, name"
// @Success 200 {object} map[string]interface{}
// @Router /create-class [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req struct {
		CreatorID string `json:"creator_id"`
		Name      string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.CreatorID == "" || req.Name == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingFields, "creator_id and name are required"))
		return
	}

	classID, err := h.classes.Create(c.Request.Context(), req.CreatorID, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Class created successfully", "class_id": classID})
}

// Delete godoc
// @Summary Delete a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body object true "class_id, creator_id"
// @Success 200 {object} map[string]interface{}
// @Router /delete-class [post]
func (h *ClassHandler) Delete(c *gin.Context) {
	var req struct {
		ClassID   int64  `json:"class_id"`
		CreatorID string `json:"creator_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ClassID == 0 || req.CreatorID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingFields, "class_id and creator_id are required"))
		return
	}

	if err := h.classes.Delete(c.Request.Context(), req.ClassID, req.CreatorID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Class deleted successfully"})
}

// Rename godoc
// @Summary Rename a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body object true "class_id, creator_id, new_name"
// @Success 200 {object} map[string]interface{}
// @Router /rename-class [post]
func (h *ClassHandler) Rename(c *gin.Context) {
	var req struct {
		ClassID   int64  `json:"class_id"`
		CreatorID string `json:"creator_id"`
		NewName   string `json:"new_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ClassID == 0 || req.CreatorID == "" || req.NewName == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingFields, "class_id, creator_id, and new_name are required"))
		return
	}

	if err := h.classes.Rename(c.Request.Context(), req.ClassID, req.CreatorID, req.NewName); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Class renamed successfully"})
}

// AddStudent godoc
// @Summary Add a student to a class roster
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body object true "class_id, school_id"
// @Success 200 {object} map[string]interface{}
// @Router /add-student-to-class [post]
func (h *ClassHandler) AddStudent(c *gin.Context) {
	classID, schoolID, ok := h.bindMembership(c)
	if !ok {
		return
	}

	if err := h.classes.AddStudent(c.Request.Context(), classID, schoolID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Student added to class successfully"})
}

// RemoveStudent godoc
// @Summary Remove a student from a class roster
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body object true "class_id, school_id"
// @Success 200 {object} map[string]interface{}
// @Router /remove-student-from-class [post]
func (h *ClassHandler) RemoveStudent(c *gin.Context) {
	classID, schoolID, ok := h.bindMembership(c)
	if !ok {
		return
	}

	if err := h.classes.RemoveStudent(c.Request.Context(), classID, schoolID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Student removed from class successfully"})
}

func (h *ClassHandler) bindMembership(c *gin.Context) (int64, string, bool) {
	var req struct {
		ClassID  int64  `json:"class_id"`
		SchoolID string `json:"school_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ClassID == 0 || req.SchoolID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrMissingFields, "class_id and school_id are required"))
		return 0, "", false
	}
	return req.ClassID, req.SchoolID, true
}
