package models

// ClassGroup is a teacher-owned roster. Students holds the member school ids
// comma-joined in insertion order; membership itself lives in the
// class_members relation so roster mutations stay atomic.
type ClassGroup struct {
	ClassID   int64  `db:"class_id" json:"class_id"`
	CreatorID string `db:"creator_id" json:"creator_id"`
	Name      string `db:"name" json:"name"`
	Students  string `db:"students" json:"students"`
}
