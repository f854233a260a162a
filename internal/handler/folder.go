package handler

import (
	"net/http"

	"github.com/quiverapp/quiver/api/internal/mapper"
	"github.com/quiverapp/quiver/api/internal/middleware"
	"github.com/quiverapp/quiver/api/internal/model"
	"github.com/quiverapp/quiver/api/internal/rest"
)

// FolderStore is the capability set the folder endpoints need
type FolderStore interface {
	rest.Lister[*model.Folder]
	rest.Reader[*model.Folder]
	rest.Writer[*model.Folder]
	rest.BulkWriter[*model.Folder]
	rest.Deleter
}

// FolderHandler handles folder endpoints
type FolderHandler struct {
	collection *rest.Collection[*model.Folder]
	item       *rest.Item[*model.Folder]
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(store FolderStore) *FolderHandler {
	m := mapper.FolderMapper{}
	return &FolderHandler{
		collection: &rest.Collection[*model.Folder]{
			Resource: "folder",
			Lister:   store,
			Writer:   store,
			Mapper:   m,
			New:      func() *model.Folder { return &model.Folder{} },
			SelfLink: "/v1/folders",
		},
		item: &rest.Item[*model.Folder]{
			Resource: "folder",
			Reader:   store,
			Writer:   store,
			Deleter:  store,
			Mapper:   m,
			Param:    "folderId",
		},
	}
}

// RegisterRoutes registers all folder routes
func (h *FolderHandler) RegisterRoutes(mux *http.ServeMux, auth middleware.Middleware) {
	mux.Handle("GET /v1/folders", auth(http.HandlerFunc(h.collection.Get)))
	mux.Handle("POST /v1/folders", auth(http.HandlerFunc(h.collection.Post)))
	mux.Handle("GET /v1/folders/{folderId}", auth(http.HandlerFunc(h.item.Get)))
	mux.Handle("PUT /v1/folders/{folderId}", auth(http.HandlerFunc(h.item.Put)))
	mux.Handle("PATCH /v1/folders/{folderId}", auth(http.HandlerFunc(h.item.Patch)))
	mux.Handle("DELETE /v1/folders/{folderId}", auth(http.HandlerFunc(h.item.Delete)))
}
