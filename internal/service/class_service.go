package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/school-forum-api/internal/models"
	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
)

type classRepository interface {
	Create(ctx context.Context, creatorID, name string) (int64, error)
	Exists(ctx context.Context, classID int64) (bool, error)
	ExistsOwned(ctx context.Context, classID int64, creatorID string) (bool, error)
	ListByCreator(ctx context.Context, creatorID string) ([]models.ClassGroup, error)
	Delete(ctx context.Context, classID int64) error
	Rename(ctx context.Context, classID int64, name string) error
	AddMember(ctx context.Context, classID int64, schoolID string) (bool, error)
	RemoveMember(ctx context.Context, classID int64, schoolID string) (bool, error)
}

// ClassService manages teacher-owned class rosters. Destructive operations
// hide ownership failures behind the same message as missing classes.
type ClassService struct {
	classes   classRepository
	privilege forumPrivilegeResolver
	logger    *zap.Logger
}

// NewClassService constructs a ClassService.
func NewClassService(classes classRepository, privilege forumPrivilegeResolver, logger *zap.Logger) *ClassService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{classes: classes, privilege: privilege, logger: logger}
}

// List returns the classes owned by a teacher. Non-teacher identifiers are
// rejected before any roster data is read.
func (s *ClassService) List(ctx context.Context, teacherID string) ([]models.ClassGroup, error) {
	privilege, err := s.privilege.Resolve(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if !privilege.IsTeacher {
		return nil, appErrors.Clone(appErrors.ErrAccessDenied, "Access denied: Not a teacher account")
	}

	classes, err := s.classes.ListByCreator(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// Create adds an empty class owned by the creator and returns its id. The
// caller is responsible for establishing that the creator is a teacher.
func (s *ClassService) Create(ctx context.Context, teacherID, name string) (int64, error) {
	id, err := s.classes.Create(ctx, teacherID, name)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}
	s.logger.Info("class created", zap.Int64("class_id", id), zap.String("creator_id", teacherID))
	return id, nil
}

// Delete removes a class and its roster, only when the requester owns it.
func (s *ClassService) Delete(ctx context.Context, classID int64, teacherID string) error {
	owned, err := s.classes.ExistsOwned(ctx, classID, teacherID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check class")
	}
	if !owned {
		return appErrors.Clone(appErrors.ErrNotFound, "Class not found or you don't have permission to delete it")
	}

	if err := s.classes.Delete(ctx, classID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class")
	}
	s.logger.Info("class deleted", zap.Int64("class_id", classID))
	return nil
}

// Rename changes a class display name, only when the requester owns it.
func (s *ClassService) Rename(ctx context.Context, classID int64, teacherID, name string) error {
	owned, err := s.classes.ExistsOwned(ctx, classID, teacherID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check class")
	}
	if !owned {
		return appErrors.Clone(appErrors.ErrNotFound, "Class not found or you don't have permission to rename it")
	}

	if err := s.classes.Rename(ctx, classID, strings.TrimSpace(name)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to rename class")
	}
	return nil
}

// AddStudent adds a student to the roster. Duplicates are reported, not
// silently absorbed.
func (s *ClassService) AddStudent(ctx context.Context, classID int64, schoolID string) error {
	exists, err := s.classes.Exists(ctx, classID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check class")
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "Class not found")
	}

	added, err := s.classes.AddMember(ctx, classID, schoolID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add student")
	}
	if !added {
		return appErrors.Clone(appErrors.ErrConflict, "Student is already in this class")
	}
	return nil
}

// RemoveStudent removes a student from the roster.
func (s *ClassService) RemoveStudent(ctx context.Context, classID int64, schoolID string) error {
	exists, err := s.classes.Exists(ctx, classID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check class")
	}
	if !exists {
		return appErrors.Clone(appErrors.ErrNotFound, "Class not found")
	}

	removed, err := s.classes.RemoveMember(ctx, classID, schoolID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove student")
	}
	if !removed {
		return appErrors.Clone(appErrors.ErrNotFound, "Student is not in this class")
	}
	return nil
}
