package rest

import (
	"net/http"

	"github.com/quiverapp/quiver/api/internal/mapper"
	"github.com/quiverapp/quiver/api/internal/model"
)

// Item handles the item endpoint of a resource: GET reads, PUT full-replaces,
// PATCH partially updates, DELETE removes. Every verb first fetches the
// target by the identifier path parameter; missing resources surface as 404
// through the central store error mapping.
type Item[T any] struct {
	Resource string
	Reader   Reader[T]
	Writer   Writer[T]
	Deleter  Deleter
	Mapper   mapper.Mapper[T]

	// Param is the path value holding the identifier, e.g. "bookmarkId"
	Param string
}

func (it *Item[T]) id(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue(it.Param)
	if id == "" {
		WriteError(w, model.NewBadRequestError(it.Resource+" ID required"))
		return "", false
	}
	return id, true
}

// Get handles GET on the item endpoint: 200 with the serialized resource
func (it *Item[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := it.id(w, r)
	if !ok {
		return
	}

	obj, err := it.Reader.Get(r.Context(), id)
	if err != nil {
		WriteError(w, StoreError(err, it.Resource))
		return
	}
	WriteData(w, http.StatusOK, it.Mapper.Out(obj), nil)
}

// Put handles PUT: fetch, full-replace through the mapper, persist, 200.
// Identical payloads are idempotent: the final state and the response body
// are the same on every repetition.
func (it *Item[T]) Put(w http.ResponseWriter, r *http.Request) {
	it.update(w, r, it.Mapper.Apply)
}

// Patch handles PATCH: fetch, partial-apply through the mapper, persist, 200.
// Only the supplied fields mutate.
func (it *Item[T]) Patch(w http.ResponseWriter, r *http.Request) {
	it.update(w, r, it.Mapper.Patch)
}

func (it *Item[T]) update(w http.ResponseWriter, r *http.Request, apply func(T, []byte) error) {
	id, ok := it.id(w, r)
	if !ok {
		return
	}

	obj, err := it.Reader.Get(r.Context(), id)
	if err != nil {
		WriteError(w, StoreError(err, it.Resource))
		return
	}

	body, perr := readPayload(w, r)
	if perr != nil {
		WriteError(w, perr)
		return
	}

	if err := apply(obj, body); err != nil {
		if errs, vok := asValidation(err); vok {
			WriteError(w, model.NewValidationError(errs))
			return
		}
		WriteError(w, model.NewInternalError(""))
		return
	}

	if err := it.Writer.Save(r.Context(), obj); err != nil {
		WriteError(w, StoreError(err, it.Resource))
		return
	}
	WriteData(w, http.StatusOK, it.Mapper.Out(obj), nil)
}

// Delete handles DELETE: fetch, delete, 204 with no body
func (it *Item[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := it.id(w, r)
	if !ok {
		return
	}

	if _, err := it.Reader.Get(r.Context(), id); err != nil {
		WriteError(w, StoreError(err, it.Resource))
		return
	}

	if err := it.Deleter.Delete(r.Context(), id); err != nil {
		WriteError(w, StoreError(err, it.Resource))
		return
	}
	WriteNoContent(w)
}
