package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-forum-api/internal/models"
	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
)

type authAccountRepository interface {
	FindByCredentials(ctx context.Context, userID, password string) (*models.Account, error)
	Exists(ctx context.Context, userID string) (bool, error)
	Create(ctx context.Context, account *models.Account) error
}

type authPrivilegeRepository interface {
	IsTeacher(ctx context.Context, schoolID string) (bool, error)
	IsAdmin(ctx context.Context, schoolID string) (bool, error)
}

// Field formats for sign-up, mirrored from the legacy contract.
var (
	namePattern     = regexp.MustCompile(`^[\w\s]{2,20}$`)
	emailPattern    = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	agePattern      = regexp.MustCompile(`^\d{1,3}$`)
	schoolIDPattern = regexp.MustCompile(`^\d{1,10}$`)
)

// RegisterRequest captures the sign-up payload.
type RegisterRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	Password      string `json:"password" validate:"required"`
	GivenName     string `json:"given_name"`
	Surname       string `json:"surname"`
	Age           string `json:"age"`
	SchoolID      string `json:"school_id"`
	IntendedMajor string `json:"intended_major"`
	Email         string `json:"email"`
	ClassOf       string `json:"class"`
}

// AuthService handles credential checks and account registration. Secrets
// are compared verbatim against stored values; the legacy wire contract
// leaves no room for hashing without a coordinated migration.
type AuthService struct {
	accounts   authAccountRepository
	privileges authPrivilegeRepository
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(accounts authAccountRepository, privileges authPrivilegeRepository, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{accounts: accounts, privileges: privileges, validator: validate, logger: logger}
}

// LoginStudent authenticates a student. Teacher accounts are rejected with
// guidance toward the teacher login.
func (s *AuthService) LoginStudent(ctx context.Context, userID, password string) (*models.Account, error) {
	account, err := s.findByCredentials(ctx, userID, password)
	if err != nil {
		return nil, err
	}

	if account.SchoolID != "" {
		isTeacher, err := s.privileges.IsTeacher(ctx, account.SchoolID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teacher privilege")
		}
		if isTeacher {
			return nil, appErrors.Clone(appErrors.ErrAccessDenied, "This is a teacher account. Please use teacher login.")
		}
	}

	return account, nil
}

// LoginTeacher authenticates a teacher account.
func (s *AuthService) LoginTeacher(ctx context.Context, userID, password string) (*models.Account, error) {
	account, err := s.findByCredentials(ctx, userID, password)
	if err != nil {
		return nil, err
	}

	if account.SchoolID == "" {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "No school_id found for this user")
	}

	isTeacher, err := s.privileges.IsTeacher(ctx, account.SchoolID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teacher privilege")
	}
	if !isTeacher {
		return nil, appErrors.Clone(appErrors.ErrAccessDenied, "Not a teacher account")
	}

	account.IsTeacher = true
	return account, nil
}

// LoginAdmin authenticates an administrator account.
func (s *AuthService) LoginAdmin(ctx context.Context, userID, password string) (*models.Account, error) {
	account, err := s.findByCredentials(ctx, userID, password)
	if err != nil {
		return nil, err
	}

	if account.SchoolID == "" {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "No school_id found for this user")
	}

	isAdmin, err := s.privileges.IsAdmin(ctx, account.SchoolID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check admin privilege")
	}
	if !isAdmin {
		return nil, appErrors.Clone(appErrors.ErrAccessDenied, "Not an admin account")
	}

	account.IsAdmin = true
	return account, nil
}

// Register validates field formats and creates the account together with its
// student record. Duplicate identifiers are rejected.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrMissingFields.Code, appErrors.ErrMissingFields.Status, appErrors.ErrMissingFields.Message)
	}

	if !namePattern.MatchString(req.GivenName) || !namePattern.MatchString(req.Surname) {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid name format")
	}
	if !emailPattern.MatchString(req.Email) {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid email format")
	}
	if !agePattern.MatchString(req.Age) {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid age format")
	}
	if !schoolIDPattern.MatchString(req.SchoolID) {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid school ID format")
	}
	if !namePattern.MatchString(req.ClassOf) {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid class format")
	}

	exists, err := s.accounts.Exists(ctx, req.UserID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check account")
	}
	if exists {
		return appErrors.Clone(appErrors.ErrConflict, "Denied: Account already exists with this username.")
	}

	account := &models.Account{
		UserID:        req.UserID,
		Password:      req.Password,
		GivenName:     req.GivenName,
		Surname:       req.Surname,
		Age:           req.Age,
		SchoolID:      req.SchoolID,
		IntendedMajor: req.IntendedMajor,
		Email:         req.Email,
		ClassOf:       req.ClassOf,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create account")
	}

	s.logger.Info("account registered", zap.String("user_id", req.UserID))
	return nil
}

func (s *AuthService) findByCredentials(ctx context.Context, userID, password string) (*models.Account, error) {
	account, err := s.accounts.FindByCredentials(ctx, userID, password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch account")
	}
	return account, nil
}
