package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/school-forum-api/internal/models"
	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
)

type studentRepository interface {
	InfoBySchoolID(ctx context.Context, schoolID string) (*models.StudentInfo, error)
	ExistsStudent(ctx context.Context, schoolID string) (bool, error)
	SearchBySchoolID(ctx context.Context, schoolID string) ([]models.StudentSearchRow, error)
	SearchByName(ctx context.Context, nameParts []string) ([]models.StudentSearchRow, error)
}

type studentPostCounter interface {
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
}

// StudentService serves the student directory: profile lookups, activity
// counts and the teacher-facing search.
type StudentService struct {
	students studentRepository
	posts    studentPostCounter
	logger   *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(students studentRepository, posts studentPostCounter, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, posts: posts, logger: logger}
}

// Info returns the reduced profile for a school id.
func (s *StudentService) Info(ctx context.Context, schoolID string) (*models.StudentInfo, error) {
	if schoolID == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "school_id is required")
	}
	info, err := s.students.InfoBySchoolID(ctx, schoolID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return info, nil
}

// PostCount returns how many posts an author has written.
func (s *StudentService) PostCount(ctx context.Context, authorID string) (int64, error) {
	if authorID == "" {
		return 0, appErrors.Clone(appErrors.ErrMissingFields, "author_id is required")
	}
	count, err := s.posts.CountByAuthor(ctx, authorID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count posts")
	}
	return count, nil
}

// Search resolves a free-text query. All-digit queries are treated as an
// exact school id and only match student records; anything else is a
// substring match over given name and surname.
func (s *StudentService) Search(ctx context.Context, query string) ([]models.StudentSearchRow, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingFields, "Please provide a name or student ID to search")
	}

	if isDigits(query) {
		isStudent, err := s.students.ExistsStudent(ctx, query)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check student")
		}
		if !isStudent {
			return []models.StudentSearchRow{}, nil
		}
		rows, err := s.students.SearchBySchoolID(ctx, query)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search students")
		}
		return rows, nil
	}

	rows, err := s.students.SearchByName(ctx, strings.Fields(query))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search students")
	}
	return rows, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
