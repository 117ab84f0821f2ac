package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-forum-api/internal/models"
)

// StudentRepository serves the student directory lookups.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a new student repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// InfoBySchoolID returns the reduced student profile.
func (r *StudentRepository) InfoBySchoolID(ctx context.Context, schoolID string) (*models.StudentInfo, error) {
	const query = `SELECT given_name, surname, user_id, school_id FROM accounts WHERE school_id = $1`
	var info models.StudentInfo
	if err := r.db.GetContext(ctx, &info, query, schoolID); err != nil {
		return nil, err
	}
	return &info, nil
}

// ExistsStudent reports whether the school id belongs to a student record.
func (r *StudentRepository) ExistsStudent(ctx context.Context, schoolID string) (bool, error) {
	const query = `SELECT 1 FROM students WHERE school_id = $1 LIMIT 1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, schoolID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check student: %w", err)
	}
	return true, nil
}

// SearchBySchoolID returns the directory rows for an exact school id.
func (r *StudentRepository) SearchBySchoolID(ctx context.Context, schoolID string) ([]models.StudentSearchRow, error) {
	const query = `SELECT school_id, given_name, surname, email, class_of FROM accounts WHERE school_id = $1`
	rows := []models.StudentSearchRow{}
	if err := r.db.SelectContext(ctx, &rows, query, schoolID); err != nil {
		return nil, fmt.Errorf("search students by id: %w", err)
	}
	return rows, nil
}

// SearchByName matches given name and surname fragments, in both orders when
// the query has multiple parts, restricted to accounts with student records.
func (r *StudentRepository) SearchByName(ctx context.Context, nameParts []string) ([]models.StudentSearchRow, error) {
	base := `SELECT a.school_id, a.given_name, a.surname, a.email, a.class_of
        FROM accounts a INNER JOIN students s ON a.school_id = s.school_id WHERE `

	var condition string
	var args []interface{}
	if len(nameParts) == 1 {
		condition = "(a.given_name ILIKE $1 OR a.surname ILIKE $1)"
		args = append(args, "%"+nameParts[0]+"%")
	} else {
		first := nameParts[0]
		last := joinParts(nameParts[1:])
		condition = "(a.given_name ILIKE $1 AND a.surname ILIKE $2) OR (a.given_name ILIKE $2 AND a.surname ILIKE $1)"
		args = append(args, "%"+first+"%", "%"+last+"%")
	}

	rows := []models.StudentSearchRow{}
	if err := r.db.SelectContext(ctx, &rows, base+condition, args...); err != nil {
		return nil, fmt.Errorf("search students by name: %w", err)
	}
	return rows, nil
}

func joinParts(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}
