package models

// Account is a registered person's credentials and profile. The password is
// never serialized into API payloads.
type Account struct {
	UserID        string `db:"user_id" json:"user_id"`
	Password      string `db:"password" json:"-"`
	GivenName     string `db:"given_name" json:"given_name"`
	Surname       string `db:"surname" json:"surname"`
	Age           string `db:"age" json:"age"`
	SchoolID      string `db:"school_id" json:"school_id"`
	IntendedMajor string `db:"intended_major" json:"intended_major"`
	Email         string `db:"email" json:"email"`
	ClassOf       string `db:"class_of" json:"class"`

	// Role flags set by the login flows, absent for plain student logins.
	IsTeacher bool `db:"-" json:"is_teacher,omitempty"`
	IsAdmin   bool `db:"-" json:"is_admin,omitempty"`
}

// StudentRecord tracks forum standing for a student account, keyed by school
// id. Created alongside the account at sign-up.
type StudentRecord struct {
	SchoolID  string `db:"school_id" json:"school_id"`
	Points    int    `db:"points" json:"points"`
	Validated bool   `db:"validated" json:"validated"`
}

// StudentInfo is the reduced profile returned by the student lookup endpoint.
type StudentInfo struct {
	GivenName string `db:"given_name" json:"given_name"`
	Surname   string `db:"surname" json:"surname"`
	UserID    string `db:"user_id" json:"user_id"`
	SchoolID  string `db:"school_id" json:"school_id"`
}

// StudentSearchRow is a directory search result.
type StudentSearchRow struct {
	SchoolID  string `db:"school_id" json:"school_id"`
	GivenName string `db:"given_name" json:"given_name"`
	Surname   string `db:"surname" json:"surname"`
	Email     string `db:"email" json:"email"`
	ClassOf   string `db:"class_of" json:"class"`
}
