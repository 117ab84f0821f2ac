package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-forum-api/internal/models"
	"github.com/noah-isme/school-forum-api/internal/repository"
	appErrors "github.com/noah-isme/school-forum-api/pkg/errors"
)

type forumPostsStub struct {
	posts      []models.Post
	created    []*models.Post
	lastFilter repository.PostFilter
}

func (s *forumPostsStub) Create(ctx context.Context, post *models.Post) (int64, error) {
	s.created = append(s.created, post)
	return int64(len(s.created)), nil
}

func (s *forumPostsStub) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	for i := range s.posts {
		if s.posts[i].PostID == id {
			clone := s.posts[i]
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *forumPostsStub) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.FindByID(ctx, id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

func (s *forumPostsStub) List(ctx context.Context, filter repository.PostFilter) ([]models.Post, error) {
	s.lastFilter = filter
	var out []models.Post
	for _, p := range s.posts {
		if filter.OnlyValidated && !p.Validated {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.AuthorID != "" && p.AuthorID != filter.AuthorID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type forumRepliesStub struct {
	replies []models.Reply
	created []*models.Reply
}

func (s *forumRepliesStub) Create(ctx context.Context, reply *models.Reply) (int64, error) {
	s.created = append(s.created, reply)
	return int64(len(s.created)), nil
}

func (s *forumRepliesStub) ListByPost(ctx context.Context, postID int64) ([]models.Reply, error) {
	var out []models.Reply
	for _, r := range s.replies {
		if r.ParentPostID == postID {
			out = append(out, r)
		}
	}
	return out, nil
}

type forumAccountsStub struct {
	bySchoolID map[string]string
}

func (s *forumAccountsStub) UserIDBySchoolID(ctx context.Context, schoolID string) (string, error) {
	if id, ok := s.bySchoolID[schoolID]; ok {
		return id, nil
	}
	return "", sql.ErrNoRows
}

type resolverStub struct {
	privileges map[string]Privilege
}

func (s *resolverStub) Resolve(ctx context.Context, identifier string) (Privilege, error) {
	return s.privileges[identifier], nil
}

func newForumFixture() (*forumPostsStub, *forumRepliesStub, *ForumService) {
	posts := &forumPostsStub{posts: []models.Post{
		{PostID: 1, UploadTime: "2025-09-02 10:00:00", Title: "Open", Content: "hello", AuthorID: "alice", Anonymous: true, Category: "general", Validated: true},
		{PostID: 2, UploadTime: "2025-09-01 10:00:00", Title: "Hidden", Content: "secret", AuthorID: "bob", Anonymous: false, Category: "general", Validated: false},
	}}
	replies := &forumRepliesStub{replies: []models.Reply{
		{ReplyID: 10, ParentPostID: 1, AuthorID: "carol", UploadTime: "2025-09-02 11:00:00", Anonymous: true, Content: "hi", Validated: true},
	}}
	accounts := &forumAccountsStub{bySchoolID: map[string]string{"100": "alice", "300": "root"}}
	resolver := &resolverStub{privileges: map[string]Privilege{
		"300": {IsTeacher: true, IsAdmin: true},
		"200": {IsTeacher: true},
	}}
	return posts, replies, NewForumService(posts, replies, accounts, resolver, nil, nil)
}

func TestNormalizeUploadTime(t *testing.T) {
	got, err := NormalizeUploadTime("2025-09-02T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-09-02 10:30:00", got)

	got, err = NormalizeUploadTime("2025-09-02T10:30:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-09-02 10:30:00", got)

	_, err = NormalizeUploadTime("yesterday")
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "Invalid datetime format: ")
}

func TestCreatePostNormalizesTimestamp(t *testing.T) {
	posts, _, svc := newForumFixture()

	anon := false
	err := svc.CreatePost(context.Background(), CreatePostRequest{
		UploadTime: "2025-09-02T10:30:00Z",
		Title:      "t",
		Content:    "c",
		AuthorID:   "alice",
		Anonymous:  &anon,
		Category:   "general",
	})
	require.NoError(t, err)
	require.Len(t, posts.created, 1)
	assert.Equal(t, "2025-09-02 10:30:00", posts.created[0].UploadTime)
}

func TestCreatePostMissingFields(t *testing.T) {
	_, _, svc := newForumFixture()

	err := svc.CreatePost(context.Background(), CreatePostRequest{Title: "t"})
	require.Error(t, err)
	assert.Equal(t, "Missing required fields", appErrors.FromError(err).Message)
}

func TestCreateReplyParentMissing(t *testing.T) {
	_, _, svc := newForumFixture()

	anon := false
	err := svc.CreateReply(context.Background(), CreateReplyRequest{
		UploadTime:   "2025-09-02T10:30:00Z",
		ParentPostID: 999,
		Content:      "c",
		AuthorID:     "alice",
		Anonymous:    &anon,
	})
	require.Error(t, err)
	assert.Equal(t, "Parent post not found", appErrors.FromError(err).Message)
}

func TestListPostsMasksAnonymousAuthors(t *testing.T) {
	_, _, svc := newForumFixture()

	views, err := svc.ListPosts(context.Background(), "", false)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, models.AnonymousAuthor, views[0].AuthorID)
	require.Len(t, views[0].Replies, 1)
	assert.Equal(t, models.AnonymousAuthor, views[0].Replies[0].AuthorID)
}

func TestListPostsAdminSeesPendingAndAuthors(t *testing.T) {
	_, _, svc := newForumFixture()

	views, err := svc.ListPosts(context.Background(), "300", true)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "alice", views[0].AuthorID)
}

func TestListPostsTeacherPendingToggleIgnored(t *testing.T) {
	posts, _, svc := newForumFixture()

	views, err := svc.ListPosts(context.Background(), "200", true)
	require.NoError(t, err)
	assert.Len(t, views, 1)
	assert.True(t, posts.lastFilter.OnlyValidated)
}

func TestListByCategoryFilters(t *testing.T) {
	_, _, svc := newForumFixture()

	views, err := svc.ListByCategory(context.Background(), "other", "", false)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestMyPostsIncludesPendingUnmasked(t *testing.T) {
	_, _, svc := newForumFixture()

	views, err := svc.MyPosts(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "bob", views[0].AuthorID)
	assert.False(t, views[0].Validated)
}

func TestMyPostsRequiresAuthor(t *testing.T) {
	_, _, svc := newForumFixture()

	_, err := svc.MyPosts(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "author_id is required", appErrors.FromError(err).Message)
}

func TestGetPostHidesBlockedFromStrangers(t *testing.T) {
	_, _, svc := newForumFixture()

	_, _, err := svc.GetPost(context.Background(), 2, "")
	require.Error(t, err)
	assert.Equal(t, "Post not found", appErrors.FromError(err).Message)
}

func TestGetPostAuthorSeesOwnBlocked(t *testing.T) {
	posts, _, svc := newForumFixture()
	posts.posts[1].AuthorID = "alice"

	detail, isAdmin, err := svc.GetPost(context.Background(), 2, "100")
	require.NoError(t, err)
	assert.False(t, isAdmin)
	assert.Equal(t, "alice", detail.AuthorID)
}

func TestGetPostAdminSeesBlockedWithFlag(t *testing.T) {
	_, _, svc := newForumFixture()

	detail, isAdmin, err := svc.GetPost(context.Background(), 2, "300")
	require.NoError(t, err)
	assert.True(t, isAdmin)
	assert.Equal(t, "bob", detail.AuthorID)
}

func TestGetPostMasksAnonymousForRegularViewer(t *testing.T) {
	_, _, svc := newForumFixture()

	detail, _, err := svc.GetPost(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Equal(t, models.AnonymousAuthor, detail.AuthorID)
}

func TestGetPostMissing(t *testing.T) {
	_, _, svc := newForumFixture()

	_, _, err := svc.GetPost(context.Background(), 42, "")
	require.Error(t, err)
	assert.Equal(t, "Post not found", appErrors.FromError(err).Message)
}

func TestGetRepliesChecksPostExists(t *testing.T) {
	_, _, svc := newForumFixture()

	_, err := svc.GetReplies(context.Background(), 42, "")
	require.Error(t, err)
	assert.Equal(t, "Post not found", appErrors.FromError(err).Message)
}

func TestGetRepliesListsBlockedReplies(t *testing.T) {
	_, replies, svc := newForumFixture()
	replies.replies = append(replies.replies, models.Reply{
		ReplyID: 11, ParentPostID: 1, AuthorID: "dave", UploadTime: "2025-09-02 12:00:00", Content: "blocked", Validated: false,
	})

	views, err := svc.GetReplies(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Len(t, views, 2)
}
