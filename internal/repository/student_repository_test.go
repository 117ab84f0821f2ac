package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentRepositoryInfoBySchoolID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"given_name", "surname", "user_id", "school_id"}).
		AddRow("Ada", "Lovelace", "ada", "100")
	mock.ExpectQuery(`SELECT given_name, surname, user_id, school_id FROM accounts`).
		WithArgs("100").
		WillReturnRows(rows)

	info, err := repo.InfoBySchoolID(context.Background(), "100")
	require.NoError(t, err)
	assert.Equal(t, "ada", info.UserID)
	assert.Equal(t, "Lovelace", info.Surname)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryExistsStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`SELECT 1 FROM students WHERE school_id`).
		WithArgs("100").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	ok, err := repo.ExistsStudent(context.Background(), "100")
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(`SELECT 1 FROM students WHERE school_id`).
		WithArgs("999").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	ok, err = repo.ExistsStudent(context.Background(), "999")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositorySearchBySchoolID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"school_id", "given_name", "surname", "email", "class_of"}).
		AddRow("100", "Ada", "Lovelace", "ada@example.com", "2027")
	mock.ExpectQuery(`SELECT school_id, given_name, surname, email, class_of FROM accounts`).
		WithArgs("100").
		WillReturnRows(rows)

	found, err := repo.SearchBySchoolID(context.Background(), "100")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Ada", found[0].GivenName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositorySearchByNameSinglePart(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"school_id", "given_name", "surname", "email", "class_of"}).
		AddRow("100", "Ada", "Lovelace", "ada@example.com", "2027")
	mock.ExpectQuery(`INNER JOIN students s ON a.school_id = s.school_id`).
		WithArgs("%Ada%").
		WillReturnRows(rows)

	found, err := repo.SearchByName(context.Background(), []string{"Ada"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositorySearchByNameTwoPartsBothOrders(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(`INNER JOIN students s ON a.school_id = s.school_id`).
		WithArgs("%Ada%", "%Lovelace%").
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "given_name", "surname", "email", "class_of"}))

	found, err := repo.SearchByName(context.Background(), []string{"Ada", "Lovelace"})
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
