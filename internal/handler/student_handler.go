package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-forum-api/internal/models"
	"github.com/noah-isme/school-forum-api/pkg/response"
)

type studentService interface {
	Info(ctx context.Context, schoolID string) (*models.StudentInfo, error)
	PostCount(ctx context.Context, authorID string) (int64, error)
	Search(ctx context.Context, query string) ([]models.StudentSearchRow, error)
}

// StudentHandler exposes the student directory endpoints.
type StudentHandler struct {
	students studentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// Info godoc
// @Summary Fetch a student's profile
// @Tags Students
// @Produce json
// @Param school_id query string true "Student school id"
// @Success 200 {object} map[string]interface{}
// @Router /get-student-info [get]
func (h *StudentHandler) Info(c *gin.Context) {
	student, err := h.students.Info(c.Request.Context(), c.Query("school_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"student": student})
}

// PostCount godoc
// @Summary Count a student's posts
// @Tags Students
// @Produce json
// @Param author_id query string true "Author account id"
// @Success 200 {object} map[string]interface{}
// @Router /get-student-post-count [get]
func (h *StudentHandler) PostCount(c *gin.Context) {
	count, err := h.students.PostCount(c.Request.Context(), c.Query("author_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"post_count": count})
}

// Search godoc
// @Summary Search students by name or school id
// @Tags Students
// @Produce json
// @Param name query string true "Name fragment or exact school id"
// @Success 200 {object} map[string]interface{}
// @Router /search-students [get]
func (h *StudentHandler) Search(c *gin.Context) {
	students, err := h.students.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"students": students})
}
