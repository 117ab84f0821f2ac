package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PrivilegeRepository answers the set-membership lookups behind privilege
// resolution. Teacher and admin standing is presence in the respective
// table, never a column on the account.
type PrivilegeRepository struct {
	db *sqlx.DB
}

// NewPrivilegeRepository constructs a new privilege repository.
func NewPrivilegeRepository(db *sqlx.DB) *PrivilegeRepository {
	return &PrivilegeRepository{db: db}
}

// HasAccountWithSchoolID reports whether any account carries the school id.
func (r *PrivilegeRepository) HasAccountWithSchoolID(ctx context.Context, schoolID string) (bool, error) {
	const query = `SELECT 1 FROM accounts WHERE school_id = $1 LIMIT 1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, schoolID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check school id: %w", err)
	}
	return true, nil
}

// SchoolIDByUserID resolves an account id to its school id. Returns
// sql.ErrNoRows when the account does not exist.
func (r *PrivilegeRepository) SchoolIDByUserID(ctx context.Context, userID string) (string, error) {
	const query = `SELECT school_id FROM accounts WHERE user_id = $1`
	var schoolID string
	if err := r.db.GetContext(ctx, &schoolID, query, userID); err != nil {
		return "", err
	}
	return schoolID, nil
}

// IsTeacher reports membership in the teacher set.
func (r *PrivilegeRepository) IsTeacher(ctx context.Context, schoolID string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM teachers WHERE school_id = $1 LIMIT 1`, schoolID, "check teacher")
}

// IsAdmin reports membership in the admin set.
func (r *PrivilegeRepository) IsAdmin(ctx context.Context, schoolID string) (bool, error) {
	return r.exists(ctx, `SELECT 1 FROM admins WHERE school_id = $1 LIMIT 1`, schoolID, "check admin")
}

func (r *PrivilegeRepository) exists(ctx context.Context, query, arg, label string) (bool, error) {
	var one int
	if err := r.db.GetContext(ctx, &one, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", label, err)
	}
	return true, nil
}
