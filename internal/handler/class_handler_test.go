package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-forum-api/internal/models"
	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
)

type classServiceMock struct {
	classes   []models.ClassGroup
	createdID int64
	err       error
	lastName  string
}

func (m *classServiceMock) List(ctx context.Context, teacherID string) ([]models.ClassGroup, error) {
	return m.classes, m.err
}

func (m *classServiceMock) Create(ctx context.Context, teacherID, name string) (int64, error) {
	m.lastName = name
	return m.createdID, m.err
}

func (m *classServiceMock) Delete(ctx context.Context, classID int64, teacherID string) error {
	return m.err
}

func (m *classServiceMock) Rename(ctx context.Context, classID int64, teacherID, name string) error {
	return m.err
}

func (m *classServiceMock) AddStudent(ctx context.Context, classID int64, schoolID string) error {
	return m.err
}

func (m *classServiceMock) RemoveStudent(ctx context.Context, classID int64, schoolID string) error {
	return m.err
}

func TestGetClassesSuccess(t *testing.T) {
	mockSvc := &classServiceMock{classes: []models.ClassGroup{{ClassID: 1, CreatorID: "T1", Name: "A", Students: "S1,S2"}}}
	h := NewClassHandler(mockSvc)

	w, parsed := getRequest(t, h.List, "/get-classes?school_id=T1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", parsed["status"])
	assert.Equal(t, true, parsed["is_teacher"])

	classes := parsed["classes"].([]interface{})
	require.Len(t, classes, 1)
	assert.Equal(t, "S1,S2", classes[0].(map[string]interface{})["students"])
}

func TestGetClassesDeniedCarriesFlag(t *testing.T) {
	mockSvc := &classServiceMock{err: appErrors.Clone(appErrors.ErrAccessDenied, "Access denied: Not a teacher account")}
	h := NewClassHandler(mockSvc)

	w, parsed := getRequest(t, h.List, "/get-classes?school_id=S1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "error", parsed["status"])
	assert.Equal(t, "Access denied: Not a teacher account", parsed["message"])
	assert.Equal(t, false, parsed["is_teacher"])
}

func TestCreateClassMissingFields(t *testing.T) {
	h := NewClassHandler(&classServiceMock{})

	_, parsed := postJSON(t, h.Create, gin.H{"creator_id": "T1"})
	assert.Equal(t, "error", parsed["status"])
	assert.Equal(t, "creator_id and name are required", parsed["message"])
}

func TestCreateClassReturnsID(t *testing.T) {
	mockSvc := &classServiceMock{createdID: 9}
	h := NewClassHandler(mockSvc)

	_, parsed := postJSON(t, h.Create, gin.H{"creator_id": "T1", "name": "Homeroom A"})
	assert.Equal(t, "success", parsed["status"])
	assert.Equal(t, "Class created successfully", parsed["message"])
	assert.Equal(t, float64(9), parsed["class_id"])
}

func TestDeleteClassMissingFields(t *testing.T) {
	h := NewClassHandler(&classServiceMock{})

	_, parsed := postJSON(t, h.Delete, gin.H{"class_id": 1})
	assert.Equal(t, "error", parsed["status"])
	assert.Equal(t, "class_id and creator_id are required", parsed["message"])
}

func TestRenameClassMissingFields(t *testing.T) {
	h := NewClassHandler(&classServiceMock{})

	_, parsed := postJSON(t, h.Rename, gin.H{"class_id": 1, "creator_id": "T1"})
	assert.Equal(t, "error", parsed["status"])
	assert.Equal(t, "class_id, creator_id, and new_name are required", parsed["message"])
}

func TestAddStudentMissingFields(t *testing.T) {
	h := NewClassHandler(&classServiceMock{})

	_, parsed := postJSON(t, h.AddStudent, gin.H{"school_id": "S1"})
	assert.Equal(t, "error", parsed["status"])
	assert.Equal(t, "class_id and school_id are required", parsed["message"])
}

func TestAddStudentDuplicate(t *testing.T) {
	mockSvc := &classServiceMock{err: appErrors.Clone(appErrors.ErrConflict, "Student is already in this class")}
	h := NewClassHandler(mockSvc)

	_, parsed := postJSON(t, h.AddStudent, gin.H{"class_id": 1, "school_id": "S1"})
	assert.Equal(t, "error", parsed["status"])
	assert.Equal(t, "Student is already in this class", parsed["message"])
}

func TestRemoveStudentSuccess(t *testing.T) {
	h := NewClassHandler(&classServiceMock{})

	_, parsed := postJSON(t, h.RemoveStudent, gin.H{"class_id": 1, "school_id": "S1"})
	assert.Equal(t, "success", parsed["status"])
	assert.Equal(t, "Student removed from class successfully", parsed["message"])
}
