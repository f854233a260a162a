package handler

import (
	"net/http"

	"github.com/quiverapp/quiver/api/internal/mapper"
	"github.com/quiverapp/quiver/api/internal/middleware"
	"github.com/quiverapp/quiver/api/internal/model"
	"github.com/quiverapp/quiver/api/internal/rest"
)

// TagStore is the capability set the tag endpoints need
type TagStore interface {
	rest.Lister[*model.Tag]
	rest.Reader[*model.Tag]
	rest.Writer[*model.Tag]
	rest.BulkWriter[*model.Tag]
	rest.Deleter
}

// TagHandler handles tag endpoints
type TagHandler struct {
	collection *rest.Collection[*model.Tag]
	item       *rest.Item[*model.Tag]
}

// NewTagHandler creates a new tag handler
func NewTagHandler(store TagStore) *TagHandler {
	m := mapper.TagMapper{}
	return &TagHandler{
		collection: &rest.Collection[*model.Tag]{
			Resource: "tag",
			Lister:   store,
			Writer:   store,
			Mapper:   m,
			New:      func() *model.Tag { return &model.Tag{} },
			SelfLink: "/v1/tags",
		},
		item: &rest.Item[*model.Tag]{
			Resource: "tag",
			Reader:   store,
			Writer:   store,
			Deleter:  store,
			Mapper:   m,
			Param:    "tagId",
		},
	}
}

// RegisterRoutes registers all tag routes
func (h *TagHandler) RegisterRoutes(mux *http.ServeMux, auth middleware.Middleware) {
	mux.Handle("GET /v1/tags", auth(http.HandlerFunc(h.collection.Get)))
	mux.Handle("POST /v1/tags", auth(http.HandlerFunc(h.collection.Post)))
	mux.Handle("GET /v1/tags/{tagId}", auth(http.HandlerFunc(h.item.Get)))
	mux.Handle("PUT /v1/tags/{tagId}", auth(http.HandlerFunc(h.item.Put)))
	mux.Handle("PATCH /v1/tags/{tagId}", auth(http.HandlerFunc(h.item.Patch)))
	mux.Handle("DELETE /v1/tags/{tagId}", auth(http.HandlerFunc(h.item.Delete)))
}
