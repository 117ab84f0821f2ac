package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-forum-api/internal/models"
	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
)

type studentRepoStub struct {
	infos       map[string]*models.StudentInfo
	students    map[string]bool
	byID        map[string][]models.StudentSearchRow
	byName      []models.StudentSearchRow
	lastParts   []string
	nameQueries int
}

func (s *studentRepoStub) InfoBySchoolID(ctx context.Context, schoolID string) (*models.StudentInfo, error) {
	if info, ok := s.infos[schoolID]; ok {
		return info, nil
	}
	return nil, sql.ErrNoRows
}

func (s *studentRepoStub) ExistsStudent(ctx context.Context, schoolID string) (bool, error) {
	return s.students[schoolID], nil
}

func (s *studentRepoStub) SearchBySchoolID(ctx context.Context, schoolID string) ([]models.StudentSearchRow, error) {
	return s.byID[schoolID], nil
}

func (s *studentRepoStub) SearchByName(ctx context.Context, nameParts []string) ([]models.StudentSearchRow, error) {
	s.nameQueries++
	s.lastParts = nameParts
	return s.byName, nil
}

type postCounterStub struct {
	counts map[string]int64
}

func (s *postCounterStub) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	return s.counts[authorID], nil
}

func newStudentFixture() (*studentRepoStub, *StudentService) {
	repo := &studentRepoStub{
		infos: map[string]*models.StudentInfo{
			"100": {GivenName: "Ada", Surname: "Lovelace", UserID: "ada", SchoolID: "100"},
		},
		students: map[string]bool{"100": true},
		byID: map[string][]models.StudentSearchRow{
			"100": {{SchoolID: "100", GivenName: "Ada", Surname: "Lovelace"}},
		},
		byName: []models.StudentSearchRow{{SchoolID: "100", GivenName: "Ada", Surname: "Lovelace"}},
	}
	posts := &postCounterStub{counts: map[string]int64{"ada": 3}}
	return repo, NewStudentService(repo, posts, nil)
}

func TestStudentInfoFound(t *testing.T) {
	_, svc := newStudentFixture()

	info, err := svc.Info(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, "ada", info.UserID)
}

func TestStudentInfoMissing(t *testing.T) {
	_, svc := newStudentFixture()

	_, err := svc.Info(context.Background(), "999")
	require.Error(t, err)
	assert.Equal(t, "Student not found", appErrors.FromError(err).Message)
}

func TestStudentPostCount(t *testing.T) {
	_, svc := newStudentFixture()

	count, err := svc.PostCount(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSearchBlankQuery(t *testing.T) {
	_, svc := newStudentFixture()

	_, err := svc.Search(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, "Please provide a name or student ID to search", appErrors.FromError(err).Message)
}

func TestSearchNumericQueryHitsStudent(t *testing.T) {
	repo, svc := newStudentFixture()

	rows, err := svc.Search(context.Background(), "100")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "100", rows[0].SchoolID)
	assert.Zero(t, repo.nameQueries)
}

func TestSearchNumericQueryUnknownStudent(t *testing.T) {
	_, svc := newStudentFixture()

	rows, err := svc.Search(context.Background(), "999")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSearchByNameSplitsParts(t *testing.T) {
	repo, svc := newStudentFixture()

	rows, err := svc.Search(context.Background(), "Ada Lovelace")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Ada", "Lovelace"}, repo.lastParts)
}
