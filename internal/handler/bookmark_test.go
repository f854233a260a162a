package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quiverapp/quiver/api/internal/database"
	"github.com/quiverapp/quiver/api/internal/middleware"
	"github.com/quiverapp/quiver/api/internal/model"
	"github.com/quiverapp/quiver/api/internal/rest"
)

// memBookmarkStore is a map-backed BookmarkStore for route tests
type memBookmarkStore struct {
	items  map[string]*model.Bookmark
	next   int
	getErr error
}

func newMemBookmarkStore() *memBookmarkStore {
	return &memBookmarkStore{items: make(map[string]*model.Bookmark)}
}

func (s *memBookmarkStore) List(ctx context.Context, filter rest.Filter) ([]*model.Bookmark, error) {
	out := make([]*model.Bookmark, 0, len(s.items))
	for _, b := range s.items {
		if folder := filter["folder"]; folder != "" && b.FolderID != folder {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *memBookmarkStore) Get(ctx context.Context, id string) (*model.Bookmark, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	b, ok := s.items[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *memBookmarkStore) Save(ctx context.Context, b *model.Bookmark) error {
	if b.ID == "" {
		s.next++
		b.ID = "bookmark:" + string(rune('a'+s.next-1))
	}
	s.items[b.ID] = b
	return nil
}

func (s *memBookmarkStore) SaveAll(ctx context.Context, bookmarks []*model.Bookmark) error {
	for _, b := range bookmarks {
		if err := s.Save(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func (s *memBookmarkStore) Delete(ctx context.Context, id string) error {
	delete(s.items, id)
	return nil
}

type mockEnqueuer struct {
	ids []string
}

func (m *mockEnqueuer) Enqueue(id string) {
	m.ids = append(m.ids, id)
}

func noAuth(next http.Handler) http.Handler { return next }

func bookmarkMux(store *memBookmarkStore, enq LinkEnqueuer) *http.ServeMux {
	mux := http.NewServeMux()
	NewBookmarkHandler(store, enq).RegisterRoutes(mux, noAuth)
	return mux
}

func TestBookmarkRoutes_CreateThenFetch(t *testing.T) {
	store := newMemBookmarkStore()
	mux := bookmarkMux(store, nil)

	payload := []byte(`{"url":"https://example.com/post","title":"a post","tags":["go"]}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookmarks", bytes.NewReader(payload)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data model.Bookmark `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookmarks/"+created.Data.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched struct {
		Data model.Bookmark `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.Data.ID, fetched.Data.ID)
	assert.Equal(t, "a post", fetched.Data.Title)
}

func TestBookmarkRoutes_LifecycleThroughVerbs(t *testing.T) {
	store := newMemBookmarkStore()
	store.items["bookmark:a"] = &model.Bookmark{
		ID:    "bookmark:a",
		URL:   "https://example.com",
		Title: "original",
		Notes: "notes",
	}
	mux := bookmarkMux(store, nil)

	// PATCH mutates only the supplied field
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/v1/bookmarks/bookmark:a",
		bytes.NewReader([]byte(`{"title":"renamed"}`))))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "renamed", store.items["bookmark:a"].Title)
	assert.Equal(t, "notes", store.items["bookmark:a"].Notes)

	// PUT replaces, clearing absent optional fields
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/bookmarks/bookmark:a",
		bytes.NewReader([]byte(`{"url":"https://example.com","title":"replaced"}`))))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "replaced", store.items["bookmark:a"].Title)
	assert.Empty(t, store.items["bookmark:a"].Notes)

	// DELETE removes the record
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/bookmarks/bookmark:a", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.NotContains(t, store.items, "bookmark:a")
}

func TestBookmarkRoutes_ValidationFailure(t *testing.T) {
	mux := bookmarkMux(newMemBookmarkStore(), nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookmarks",
		bytes.NewReader([]byte(`{"title":"no url"}`))))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var problem model.ProblemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	require.Contains(t, problem.Errors, "url")
	assert.NotEmpty(t, problem.Errors["url"])
}

func TestBookmarkCheck_Accepted(t *testing.T) {
	store := newMemBookmarkStore()
	store.items["bookmark:a"] = &model.Bookmark{ID: "bookmark:a", URL: "https://example.com", Title: "x"}
	enq := &mockEnqueuer{}
	mux := bookmarkMux(store, enq)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookmarks/bookmark:a/check", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, []string{"bookmark:a"}, enq.ids)
}

func TestBookmarkCheck_UnknownBookmark(t *testing.T) {
	enq := &mockEnqueuer{}
	mux := bookmarkMux(newMemBookmarkStore(), enq)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookmarks/bookmark:missing/check", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, enq.ids)
}

func TestBookmarkCheck_StoreFailure(t *testing.T) {
	// A database failure during the existence check is a server fault, not a
	// missing bookmark
	store := newMemBookmarkStore()
	store.getErr = database.ErrConnection
	enq := &mockEnqueuer{}
	mux := bookmarkMux(store, enq)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookmarks/bookmark:a/check", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, enq.ids)
}

func TestBookmarkCheck_CheckerDisabled(t *testing.T) {
	store := newMemBookmarkStore()
	store.items["bookmark:a"] = &model.Bookmark{ID: "bookmark:a", URL: "https://example.com", Title: "x"}
	mux := bookmarkMux(store, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookmarks/bookmark:a/check", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookmarkRoutes_AuthApplied(t *testing.T) {
	deny := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			model.NewUnauthorizedError("missing bearer token").WriteJSON(w)
		})
	}

	mux := http.NewServeMux()
	NewBookmarkHandler(newMemBookmarkStore(), nil).RegisterRoutes(mux, middleware.Middleware(deny))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookmarks", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
