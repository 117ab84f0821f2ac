package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-forum-api/internal/models"
)

// AccountRepository manages persistence for accounts and student records.
type AccountRepository struct {
	db *sqlx.DB
}

// NewAccountRepository constructs a new account repository.
func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// FindByCredentials returns the account matching the id/password pair.
// Passwords are stored and compared as opaque strings; the public API
// contract predates hashing and must keep the equality check.
func (r *AccountRepository) FindByCredentials(ctx context.Context, userID, password string) (*models.Account, error) {
	const query = `SELECT user_id, password, given_name, surname, age, school_id, intended_major, email, class_of FROM accounts WHERE user_id = $1 AND password = $2`
	var account models.Account
	if err := r.db.GetContext(ctx, &account, query, userID, password); err != nil {
		return nil, err
	}
	return &account, nil
}

// Exists reports whether an account is already registered under the id.
func (r *AccountRepository) Exists(ctx context.Context, userID string) (bool, error) {
	const query = `SELECT 1 FROM accounts WHERE user_id = $1 LIMIT 1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check account: %w", err)
	}
	return true, nil
}

// Create persists a new account together with its student record.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin sign-up tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const studentQuery = `INSERT INTO students (school_id, points, validated) VALUES ($1, 0, TRUE)`
	if _, err := tx.ExecContext(ctx, studentQuery, account.SchoolID); err != nil {
		return fmt.Errorf("create student record: %w", err)
	}

	const accountQuery = `INSERT INTO accounts (user_id, password, given_name, surname, age, school_id, intended_major, email, class_of) VALUES (:user_id, :password, :given_name, :surname, :age, :school_id, :intended_major, :email, :class_of)`
	if _, err := tx.NamedExecContext(ctx, accountQuery, account); err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sign-up tx: %w", err)
	}
	return nil
}

// UserIDBySchoolID resolves the account id owning the given school id.
func (r *AccountRepository) UserIDBySchoolID(ctx context.Context, schoolID string) (string, error) {
	const query = `SELECT user_id FROM accounts WHERE school_id = $1`
	var userID string
	if err := r.db.GetContext(ctx, &userID, query, schoolID); err != nil {
		return "", err
	}
	return userID, nil
}
