package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quiverapp/quiver/api/internal/database"
	"github.com/quiverapp/quiver/api/internal/model"
	"github.com/quiverapp/quiver/api/internal/rest"
)

// stubDB records the queries a repository issues
type stubDB struct {
	queryFunc    func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
	queryOneFunc func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
	executeFunc  func(ctx context.Context, query string, vars map[string]interface{}) error
}

func (s *stubDB) Connect(ctx context.Context) error { return nil }
func (s *stubDB) Close() error                      { return nil }
func (s *stubDB) Ping(ctx context.Context) error    { return nil }

func (s *stubDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if s.queryFunc != nil {
		return s.queryFunc(ctx, query, vars)
	}
	return nil, nil
}

func (s *stubDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	if s.queryOneFunc != nil {
		return s.queryOneFunc(ctx, query, vars)
	}
	return nil, database.ErrNotFound
}

func (s *stubDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	if s.executeFunc != nil {
		return s.executeFunc(ctx, query, vars)
	}
	return nil
}

func bookmarkRow(id, url string) map[string]interface{} {
	return map[string]interface{}{
		"id":          id,
		"url":         url,
		"title":       "a title",
		"notes":       "",
		"folder_id":   "",
		"tags":        []interface{}{"go"},
		"favorite":    false,
		"link_status": "ok",
		"status_code": float64(200),
		"checked_on":  "2026-03-14T09:26:53Z",
		"created_on":  "2026-03-01T00:00:00Z",
		"updated_on":  "2026-03-14T09:26:53Z",
	}
}

func TestBookmarkList_NoFilter(t *testing.T) {
	var gotQuery string
	db := &stubDB{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			gotQuery = query
			return []interface{}{bookmarkRow("bookmark:a", "https://example.com")}, nil
		},
	}
	repo := NewBookmarkRepository(db)

	bookmarks, err := repo.List(context.Background(), rest.Filter{})
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)

	assert.NotContains(t, gotQuery, "WHERE")
	assert.Equal(t, "bookmark:a", bookmarks[0].ID)
	assert.Equal(t, "https://example.com", bookmarks[0].URL)
	assert.Equal(t, model.LinkStatusOK, bookmarks[0].LinkStatus)
	assert.Equal(t, 200, bookmarks[0].StatusCode)
	require.NotNil(t, bookmarks[0].CheckedOn)
}

func TestBookmarkList_FolderAndTagFilter(t *testing.T) {
	var gotQuery string
	var gotVars map[string]interface{}
	db := &stubDB{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			gotQuery = query
			gotVars = vars
			return nil, nil
		},
	}
	repo := NewBookmarkRepository(db)

	_, err := repo.List(context.Background(), rest.Filter{"folder": "folder:a", "tag": "go"})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "folder_id = $folder")
	assert.Contains(t, gotQuery, "$tag IN tags")
	assert.Equal(t, "folder:a", gotVars["folder"])
	assert.Equal(t, "go", gotVars["tag"])
}

func TestBookmarkGet_MalformedIDIsNotFound(t *testing.T) {
	dbCalled := false
	db := &stubDB{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			dbCalled = true
			return nil, nil
		},
	}
	repo := NewBookmarkRepository(db)

	_, err := repo.Get(context.Background(), "not-a-record-id")
	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.False(t, dbCalled, "malformed ids never reach the database")
}

func TestBookmarkGet_ParsesRow(t *testing.T) {
	db := &stubDB{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			assert.Equal(t, "bookmark:a", vars["id"])
			return bookmarkRow("bookmark:a", "https://example.com"), nil
		},
	}
	repo := NewBookmarkRepository(db)

	b, err := repo.Get(context.Background(), "bookmark:a")
	require.NoError(t, err)
	assert.Equal(t, "a title", b.Title)
	assert.Equal(t, []string{"go"}, b.Tags)
}

func TestBookmarkSave_AssignsIdentityAndDefaults(t *testing.T) {
	var gotVars map[string]interface{}
	db := &stubDB{
		executeFunc: func(ctx context.Context, query string, vars map[string]interface{}) error {
			assert.Contains(t, query, "UPSERT type::record($id)")
			gotVars = vars
			return nil
		},
	}
	repo := NewBookmarkRepository(db)

	b := &model.Bookmark{URL: "https://example.com", Title: "x"}
	require.NoError(t, repo.Save(context.Background(), b))

	assert.True(t, strings.HasPrefix(b.ID, "bookmark:"))
	assert.NotContains(t, b.ID, "-")
	assert.Equal(t, model.LinkStatusUnchecked, b.LinkStatus)
	assert.False(t, b.CreatedOn.IsZero())
	assert.False(t, b.UpdatedOn.IsZero())
	assert.Equal(t, b.ID, gotVars["id"])
}

func TestBookmarkSave_KeepsExistingIdentity(t *testing.T) {
	db := &stubDB{}
	repo := NewBookmarkRepository(db)

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := &model.Bookmark{ID: "bookmark:a", URL: "https://example.com", Title: "x", CreatedOn: created}
	require.NoError(t, repo.Save(context.Background(), b))

	assert.Equal(t, "bookmark:a", b.ID)
	assert.Equal(t, created, b.CreatedOn)
	assert.True(t, b.UpdatedOn.After(created))
}

func TestBookmarkSave_DuplicateURL(t *testing.T) {
	db := &stubDB{
		executeFunc: func(ctx context.Context, query string, vars map[string]interface{}) error {
			return errors.New("index 'bookmark_url' contains a unique value")
		},
	}
	repo := NewBookmarkRepository(db)

	err := repo.Save(context.Background(), &model.Bookmark{URL: "https://example.com", Title: "x"})
	assert.ErrorIs(t, err, database.ErrDuplicate)
}

func TestBookmarkSaveAll_SingleTransaction(t *testing.T) {
	var gotQuery string
	var gotVars map[string]interface{}
	calls := 0
	db := &stubDB{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			calls++
			gotQuery = query
			gotVars = vars
			return nil, nil
		},
	}
	repo := NewBookmarkRepository(db)

	bookmarks := []*model.Bookmark{
		{URL: "https://a.example.com", Title: "a"},
		{URL: "https://b.example.com", Title: "b"},
	}
	require.NoError(t, repo.SaveAll(context.Background(), bookmarks))

	assert.Equal(t, 1, calls, "the batch goes out as one query")
	assert.Contains(t, gotQuery, "BEGIN TRANSACTION;")
	assert.Contains(t, gotQuery, "COMMIT TRANSACTION;")
	assert.Equal(t, "https://a.example.com", gotVars["v1_url"])
	assert.Equal(t, "https://b.example.com", gotVars["v2_url"])
}

func TestBookmarkDelete(t *testing.T) {
	var gotVars map[string]interface{}
	db := &stubDB{
		executeFunc: func(ctx context.Context, query string, vars map[string]interface{}) error {
			assert.Contains(t, query, "DELETE type::record($id)")
			gotVars = vars
			return nil
		},
	}
	repo := NewBookmarkRepository(db)

	require.NoError(t, repo.Delete(context.Background(), "bookmark:a"))
	assert.Equal(t, "bookmark:a", gotVars["id"])
}

func TestBookmarkRecordCheck(t *testing.T) {
	var gotVars map[string]interface{}
	db := &stubDB{
		executeFunc: func(ctx context.Context, query string, vars map[string]interface{}) error {
			assert.Contains(t, query, "link_status = $status")
			gotVars = vars
			return nil
		},
	}
	repo := NewBookmarkRepository(db)

	require.NoError(t, repo.RecordCheck(context.Background(), "bookmark:a", model.LinkStatusBroken, 404))
	assert.Equal(t, "broken", gotVars["status"])
	assert.Equal(t, 404, gotVars["code"])
}
