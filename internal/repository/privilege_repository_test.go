package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivilegeRepositoryIsTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPrivilegeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM teachers WHERE school_id = $1 LIMIT 1")).
		WithArgs("200").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	isTeacher, err := repo.IsTeacher(context.Background(), "200")
	require.NoError(t, err)
	assert.True(t, isTeacher)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM teachers WHERE school_id = $1 LIMIT 1")).
		WithArgs("100").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	isTeacher, err = repo.IsTeacher(context.Background(), "100")
	require.NoError(t, err)
	assert.False(t, isTeacher)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrivilegeRepositoryIsAdmin(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPrivilegeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM admins WHERE school_id = $1 LIMIT 1")).
		WithArgs("300").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	isAdmin, err := repo.IsAdmin(context.Background(), "300")
	require.NoError(t, err)
	assert.True(t, isAdmin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrivilegeRepositorySchoolIDByUserID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPrivilegeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT school_id FROM accounts WHERE user_id = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"school_id"}).AddRow("100"))

	schoolID, err := repo.SchoolIDByUserID(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "100", schoolID)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT school_id FROM accounts WHERE user_id = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"school_id"}))

	_, err = repo.SchoolIDByUserID(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrivilegeRepositoryHasAccountWithSchoolID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPrivilegeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM accounts WHERE school_id = $1 LIMIT 1")).
		WithArgs("100").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	found, err := repo.HasAccountWithSchoolID(context.Background(), "100")
	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
