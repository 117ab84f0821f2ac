package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
)

type privilegeRepository interface {
	HasAccountWithSchoolID(ctx context.Context, schoolID string) (bool, error)
	SchoolIDByUserID(ctx context.Context, userID string) (string, error)
	IsTeacher(ctx context.Context, schoolID string) (bool, error)
	IsAdmin(ctx context.Context, schoolID string) (bool, error)
}

type privilegeCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Privilege is the resolved capability pair for an identifier.
type Privilege struct {
	IsTeacher bool `json:"is_teacher"`
	IsAdmin   bool `json:"is_admin"`
}

// PrivilegeService resolves an arbitrary identifier, either a school id or
// an account id, into teacher/admin capability flags. Resolution is
// read-only and never fails on unknown identifiers: garbage in yields
// (false, false).
type PrivilegeService struct {
	repo     privilegeRepository
	cache    privilegeCache
	cacheTTL time.Duration
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewPrivilegeService constructs a PrivilegeService. Cache may be nil.
func NewPrivilegeService(repo privilegeRepository, cache privilegeCache, cacheTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *PrivilegeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PrivilegeService{repo: repo, cache: cache, cacheTTL: cacheTTL, metrics: metrics, logger: logger}
}

// Resolve classifies the identifier. The school-id interpretation wins; an
// account-id interpretation is tried second; otherwise the raw input is used
// for the membership lookups unchanged.
func (s *PrivilegeService) Resolve(ctx context.Context, identifier string) (Privilege, error) {
	if identifier == "" {
		return Privilege{}, nil
	}

	if s.cache != nil {
		start := time.Now()
		var cached Privilege
		err := s.cache.Get(ctx, privilegeCacheKey(identifier), &cached)
		s.metrics.RecordCacheOperation(err == nil, time.Since(start))
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("privilege cache read failed", zap.Error(err))
		}
	}

	resolved := identifier
	found, err := s.repo.HasAccountWithSchoolID(ctx, identifier)
	if err != nil {
		return Privilege{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve identifier")
	}
	if !found {
		schoolID, err := s.repo.SchoolIDByUserID(ctx, identifier)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return Privilege{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve identifier")
		}
		if err == nil {
			resolved = schoolID
		}
	}

	isTeacher, err := s.repo.IsTeacher(ctx, resolved)
	if err != nil {
		return Privilege{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teacher privilege")
	}
	isAdmin, err := s.repo.IsAdmin(ctx, resolved)
	if err != nil {
		return Privilege{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check admin privilege")
	}

	privilege := Privilege{IsTeacher: isTeacher, IsAdmin: isAdmin}

	if s.cache != nil {
		if err := s.cache.Set(ctx, privilegeCacheKey(identifier), privilege, s.cacheTTL); err != nil {
			s.logger.Warn("privilege cache write failed", zap.Error(err))
		}
	}

	return privilege, nil
}

func privilegeCacheKey(identifier string) string {
	return "privilege:" + identifier
}
