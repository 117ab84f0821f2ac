package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
)

type privilegeRepoStub struct {
	schoolIDs map[string]bool
	userIDs   map[string]string
	teachers  map[string]bool
	admins    map[string]bool
	err       error
}

func (s *privilegeRepoStub) HasAccountWithSchoolID(ctx context.Context, schoolID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.schoolIDs[schoolID], nil
}

func (s *privilegeRepoStub) SchoolIDByUserID(ctx context.Context, userID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if id, ok := s.userIDs[userID]; ok {
		return id, nil
	}
	return "", sql.ErrNoRows
}

func (s *privilegeRepoStub) IsTeacher(ctx context.Context, schoolID string) (bool, error) {
	return s.teachers[schoolID], nil
}

func (s *privilegeRepoStub) IsAdmin(ctx context.Context, schoolID string) (bool, error) {
	return s.admins[schoolID], nil
}

type privilegeCacheStub struct {
	entries map[string]Privilege
	sets    map[string]Privilege
	getErr  error
}

func (s *privilegeCacheStub) Get(ctx context.Context, key string, dest interface{}) error {
	if s.getErr != nil {
		return s.getErr
	}
	if v, ok := s.entries[key]; ok {
		*dest.(*Privilege) = v
		return nil
	}
	return appErrors.ErrCacheMiss
}

func (s *privilegeCacheStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s.sets == nil {
		s.sets = make(map[string]Privilege)
	}
	s.sets[key] = value.(Privilege)
	return nil
}

func TestPrivilegeResolveEmptyIdentifier(t *testing.T) {
	svc := NewPrivilegeService(&privilegeRepoStub{}, nil, 0, nil, nil)

	p, err := svc.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, p.IsTeacher)
	assert.False(t, p.IsAdmin)
}

func TestPrivilegeResolveBySchoolID(t *testing.T) {
	repo := &privilegeRepoStub{
		schoolIDs: map[string]bool{"100": true},
		teachers:  map[string]bool{"100": true},
		admins:    map[string]bool{},
	}
	svc := NewPrivilegeService(repo, nil, 0, nil, nil)

	p, err := svc.Resolve(context.Background(), "100")
	require.NoError(t, err)
	assert.True(t, p.IsTeacher)
	assert.False(t, p.IsAdmin)
}

func TestPrivilegeResolveFallsBackToUserID(t *testing.T) {
	repo := &privilegeRepoStub{
		schoolIDs: map[string]bool{},
		userIDs:   map[string]string{"alice": "200"},
		teachers:  map[string]bool{},
		admins:    map[string]bool{"200": true},
	}
	svc := NewPrivilegeService(repo, nil, 0, nil, nil)

	p, err := svc.Resolve(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, p.IsTeacher)
	assert.True(t, p.IsAdmin)
}

func TestPrivilegeResolveUnknownIdentifier(t *testing.T) {
	repo := &privilegeRepoStub{
		schoolIDs: map[string]bool{},
		userIDs:   map[string]string{},
		teachers:  map[string]bool{},
		admins:    map[string]bool{},
	}
	svc := NewPrivilegeService(repo, nil, 0, nil, nil)

	p, err := svc.Resolve(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, p.IsTeacher)
	assert.False(t, p.IsAdmin)
}

func TestPrivilegeResolveUsesCache(t *testing.T) {
	repo := &privilegeRepoStub{err: errors.New("db down")}
	cache := &privilegeCacheStub{entries: map[string]Privilege{
		"privilege:100": {IsTeacher: true},
	}}
	svc := NewPrivilegeService(repo, cache, time.Minute, nil, nil)

	p, err := svc.Resolve(context.Background(), "100")
	require.NoError(t, err)
	assert.True(t, p.IsTeacher)
}

func TestPrivilegeResolveWritesCacheOnMiss(t *testing.T) {
	repo := &privilegeRepoStub{
		schoolIDs: map[string]bool{"300": true},
		teachers:  map[string]bool{},
		admins:    map[string]bool{"300": true},
	}
	cache := &privilegeCacheStub{entries: map[string]Privilege{}}
	svc := NewPrivilegeService(repo, cache, time.Minute, nil, nil)

	p, err := svc.Resolve(context.Background(), "300")
	require.NoError(t, err)
	assert.True(t, p.IsAdmin)
	assert.Equal(t, Privilege{IsAdmin: true}, cache.sets["privilege:300"])
}
