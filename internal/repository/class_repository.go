package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-forum-api/internal/models"
)

// ClassRepository manages persistence for class rosters. Membership is a
// (class_id, school_id) relation with a primary key on the pair, so add and
// remove are single atomic statements rather than a read-modify-write of a
// flattened list.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a new class repository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// Create persists a class with an empty roster and returns its id.
func (r *ClassRepository) Create(ctx context.Context, creatorID, name string) (int64, error) {
	const query = `INSERT INTO classes (creator_id, name) VALUES ($1, $2) RETURNING class_id`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, creatorID, name); err != nil {
		return 0, fmt.Errorf("create class: %w", err)
	}
	return id, nil
}

// Exists reports whether the class id is present.
func (r *ClassRepository) Exists(ctx context.Context, classID int64) (bool, error) {
	const query = `SELECT 1 FROM classes WHERE class_id = $1 LIMIT 1`
	return r.exists(ctx, query, "check class", classID)
}

// ExistsOwned reports whether the class exists AND belongs to the creator.
// Callers deliberately cannot tell the two failure cases apart.
func (r *ClassRepository) ExistsOwned(ctx context.Context, classID int64, creatorID string) (bool, error) {
	const query = `SELECT 1 FROM classes WHERE class_id = $1 AND creator_id = $2 LIMIT 1`
	return r.exists(ctx, query, "check class ownership", classID, creatorID)
}

// ListByCreator returns the classes created by a teacher, rosters flattened
// to the comma-joined wire form in insertion order.
func (r *ClassRepository) ListByCreator(ctx context.Context, creatorID string) ([]models.ClassGroup, error) {
	const query = `SELECT c.class_id, c.creator_id, c.name,
        COALESCE((SELECT string_agg(m.school_id, ',' ORDER BY m.added_at) FROM class_members m WHERE m.class_id = c.class_id), '') AS students
        FROM classes c WHERE c.creator_id = $1 ORDER BY c.class_id`
	classes := []models.ClassGroup{}
	if err := r.db.SelectContext(ctx, &classes, query, creatorID); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// Delete removes a class and its memberships.
func (r *ClassRepository) Delete(ctx context.Context, classID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete class tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM class_members WHERE class_id = $1`, classID); err != nil {
		return fmt.Errorf("delete class members: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM classes WHERE class_id = $1`, classID); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete class tx: %w", err)
	}
	return nil
}

// Rename updates the class display name.
func (r *ClassRepository) Rename(ctx context.Context, classID int64, name string) error {
	const query = `UPDATE classes SET name = $1 WHERE class_id = $2`
	if _, err := r.db.ExecContext(ctx, query, name, classID); err != nil {
		return fmt.Errorf("rename class: %w", err)
	}
	return nil
}

// AddMember inserts a roster membership. Returns false without error when
// the member was already present.
func (r *ClassRepository) AddMember(ctx context.Context, classID int64, schoolID string) (bool, error) {
	const query = `INSERT INTO class_members (class_id, school_id, added_at) VALUES ($1, $2, NOW()) ON CONFLICT (class_id, school_id) DO NOTHING`
	result, err := r.db.ExecContext(ctx, query, classID, schoolID)
	if err != nil {
		return false, fmt.Errorf("add class member: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add class member result: %w", err)
	}
	return affected > 0, nil
}

// RemoveMember deletes a roster membership. Returns false without error when
// the member was absent.
func (r *ClassRepository) RemoveMember(ctx context.Context, classID int64, schoolID string) (bool, error) {
	const query = `DELETE FROM class_members WHERE class_id = $1 AND school_id = $2`
	result, err := r.db.ExecContext(ctx, query, classID, schoolID)
	if err != nil {
		return false, fmt.Errorf("remove class member: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove class member result: %w", err)
	}
	return affected > 0, nil
}

func (r *ClassRepository) exists(ctx context.Context, query, label string, args ...interface{}) (bool, error) {
	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", label, err)
	}
	return true, nil
}
