package handler

import (
	"net/http"

	"github.com/quiverapp/quiver/api/internal/mapper"
	"github.com/quiverapp/quiver/api/internal/middleware"
	"github.com/quiverapp/quiver/api/internal/model"
	"github.com/quiverapp/quiver/api/internal/rest"
)

// BookmarkStore is the full capability set the bookmark endpoints need
type BookmarkStore interface {
	rest.Lister[*model.Bookmark]
	rest.Reader[*model.Bookmark]
	rest.Writer[*model.Bookmark]
	rest.BulkWriter[*model.Bookmark]
	rest.Deleter
}

// LinkEnqueuer accepts on-demand link check requests
type LinkEnqueuer interface {
	Enqueue(id string)
}

// BookmarkHandler handles bookmark endpoints
type BookmarkHandler struct {
	collection *rest.Collection[*model.Bookmark]
	item       *rest.Item[*model.Bookmark]
	reader     rest.Reader[*model.Bookmark]
	checker    LinkEnqueuer
}

// NewBookmarkHandler creates a new bookmark handler. checker may be nil when
// the link checker is disabled.
func NewBookmarkHandler(store BookmarkStore, checker LinkEnqueuer) *BookmarkHandler {
	m := mapper.BookmarkMapper{}
	return &BookmarkHandler{
		collection: &rest.Collection[*model.Bookmark]{
			Resource:     "bookmark",
			Lister:       store,
			Writer:       store,
			Mapper:       m,
			New:          func() *model.Bookmark { return &model.Bookmark{} },
			FilterParams: []string{"folder", "tag"},
			SelfLink:     "/v1/bookmarks",
		},
		item: &rest.Item[*model.Bookmark]{
			Resource: "bookmark",
			Reader:   store,
			Writer:   store,
			Deleter:  store,
			Mapper:   m,
			Param:    "bookmarkId",
		},
		reader:  store,
		checker: checker,
	}
}

// Check handles POST /v1/bookmarks/{bookmarkId}/check - queue a link check
func (h *BookmarkHandler) Check(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("bookmarkId")
	if id == "" {
		rest.WriteError(w, model.NewBadRequestError("bookmark ID required"))
		return
	}
	if h.checker == nil {
		rest.WriteError(w, model.NewBadRequestError("link checking is disabled"))
		return
	}

	// Surface a 404 (or a store failure) before accepting the work
	if _, err := h.reader.Get(r.Context(), id); err != nil {
		rest.WriteError(w, rest.StoreError(err, "bookmark"))
		return
	}

	h.checker.Enqueue(id)
	rest.WriteAccepted(w)
}

// RegisterRoutes registers all bookmark routes
func (h *BookmarkHandler) RegisterRoutes(mux *http.ServeMux, auth middleware.Middleware) {
	mux.Handle("GET /v1/bookmarks", auth(http.HandlerFunc(h.collection.Get)))
	mux.Handle("POST /v1/bookmarks", auth(http.HandlerFunc(h.collection.Post)))
	mux.Handle("GET /v1/bookmarks/{bookmarkId}", auth(http.HandlerFunc(h.item.Get)))
	mux.Handle("PUT /v1/bookmarks/{bookmarkId}", auth(http.HandlerFunc(h.item.Put)))
	mux.Handle("PATCH /v1/bookmarks/{bookmarkId}", auth(http.HandlerFunc(h.item.Patch)))
	mux.Handle("DELETE /v1/bookmarks/{bookmarkId}", auth(http.HandlerFunc(h.item.Delete)))
	mux.Handle("POST /v1/bookmarks/{bookmarkId}/check", auth(http.HandlerFunc(h.Check)))
}
