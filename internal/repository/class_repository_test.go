package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO classes (creator_id, name) VALUES ($1, $2) RETURNING class_id")).
		WithArgs("T1", "Homeroom A").
		WillReturnRows(sqlmock.NewRows([]string{"class_id"}).AddRow(3))

	id, err := repo.Create(context.Background(), "T1", "Homeroom A")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryExistsOwned(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM classes WHERE class_id = $1 AND creator_id = $2 LIMIT 1")).
		WithArgs(int64(3), "T1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	owned, err := repo.ExistsOwned(context.Background(), 3, "T1")
	require.NoError(t, err)
	assert.True(t, owned)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM classes WHERE class_id = $1 AND creator_id = $2 LIMIT 1")).
		WithArgs(int64(3), "T2").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	owned, err = repo.ExistsOwned(context.Background(), 3, "T2")
	require.NoError(t, err)
	assert.False(t, owned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryListByCreator(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := sqlmock.NewRows([]string{"class_id", "creator_id", "name", "students"}).
		AddRow(1, "T1", "Homeroom A", "S1,S2").
		AddRow(2, "T1", "Homeroom B", "")
	mock.ExpectQuery("SELECT c.class_id, c.creator_id, c.name").
		WithArgs("T1").
		WillReturnRows(rows)

	classes, err := repo.ListByCreator(context.Background(), "T1")
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "S1,S2", classes[0].Students)
	assert.Equal(t, "", classes[1].Students)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryAddMember(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectExec("INSERT INTO class_members").
		WithArgs(int64(1), "S1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	added, err := repo.AddMember(context.Background(), 1, "S1")
	require.NoError(t, err)
	assert.True(t, added)

	// Conflict: no row written.
	mock.ExpectExec("INSERT INTO class_members").
		WithArgs(int64(1), "S1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	added, err = repo.AddMember(context.Background(), 1, "S1")
	require.NoError(t, err)
	assert.False(t, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryRemoveMember(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM class_members WHERE class_id = $1 AND school_id = $2")).
		WithArgs(int64(1), "S1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.RemoveMember(context.Background(), 1, "S1")
	require.NoError(t, err)
	assert.True(t, removed)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM class_members WHERE class_id = $1 AND school_id = $2")).
		WithArgs(int64(1), "S2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err = repo.RemoveMember(context.Background(), 1, "S2")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM class_members WHERE class_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM classes WHERE class_id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
