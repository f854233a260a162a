package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quiverapp/quiver/api/internal/mapper"
	"github.com/quiverapp/quiver/api/internal/model"
)

// Collection handles the collection endpoint of a resource: GET lists, POST
// creates. The request envelope for POST is either a single object or an
// ordered sequence of objects; a sequence is created all-or-nothing and
// requires a writer with atomic bulk saves.
type Collection[T any] struct {
	Resource string
	Lister   Lister[T]
	Writer   Writer[T]
	Mapper   mapper.Mapper[T]
	New      func() T

	// FilterParams lists the query parameters forwarded to the Lister
	FilterParams []string
	// SelfLink is the collection path used in response links
	SelfLink string
}

func (c *Collection[T]) links() map[string]string {
	if c.SelfLink == "" {
		return nil
	}
	return map[string]string{"self": c.SelfLink}
}

// Get handles GET on the collection endpoint: fetch, map each member,
// respond 200 with a sequence envelope.
func (c *Collection[T]) Get(w http.ResponseWriter, r *http.Request) {
	objs, err := c.Lister.List(r.Context(), filterFromQuery(r, c.FilterParams))
	if err != nil {
		WriteError(w, StoreError(err, c.Resource))
		return
	}

	out := make([]interface{}, 0, len(objs))
	for _, obj := range objs {
		out = append(out, c.Mapper.Out(obj))
	}
	WriteCollection(w, http.StatusOK, out, c.links())
}

// Post handles POST on the collection endpoint: construct empty resources,
// apply the payload through the mapper, persist, respond 201 with the
// serialization of what was persisted. Validation failures respond 400 with
// the flattened field errors.
func (c *Collection[T]) Post(w http.ResponseWriter, r *http.Request) {
	body, perr := readPayload(w, r)
	if perr != nil {
		WriteError(w, perr)
		return
	}

	if isSequence(body) {
		c.postSequence(w, r, body)
		return
	}

	obj := c.New()
	if err := c.Mapper.Apply(obj, body); err != nil {
		c.postInvalid(w, err)
		return
	}
	if err := c.Writer.Save(r.Context(), obj); err != nil {
		WriteError(w, StoreError(err, c.Resource))
		return
	}
	WriteData(w, http.StatusCreated, c.Mapper.Out(obj), c.links())
}

// postSequence bulk-creates an ordered sequence of objects. Element
// validation errors are indexed ("2.url") so clients can attribute them.
func (c *Collection[T]) postSequence(w http.ResponseWriter, r *http.Request, body []byte) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		WriteError(w, model.NewBadRequestError("malformed sequence payload"))
		return
	}
	if len(elements) == 0 {
		WriteError(w, model.NewBadRequestError("sequence payload must not be empty"))
		return
	}

	objs := make([]T, 0, len(elements))
	for i, element := range elements {
		obj := c.New()
		if err := c.Mapper.Apply(obj, element); err != nil {
			if errs, ok := asValidation(err); ok {
				WriteError(w, model.NewValidationError(errs.Prefixed(fmt.Sprintf("%d.", i))))
				return
			}
			WriteError(w, model.NewInternalError(""))
			return
		}
		objs = append(objs, obj)
	}

	if err := c.saveAll(r, objs); err != nil {
		WriteError(w, StoreError(err, c.Resource))
		return
	}

	out := make([]interface{}, 0, len(objs))
	for _, obj := range objs {
		out = append(out, c.Mapper.Out(obj))
	}
	WriteCollection(w, http.StatusCreated, out, c.links())
}

// saveAll persists a sequence through the writer's atomic bulk save. There
// is no element-by-element fallback: it would persist a prefix of the
// sequence when a later element fails.
func (c *Collection[T]) saveAll(r *http.Request, objs []T) error {
	bw, ok := c.Writer.(BulkWriter[T])
	if !ok {
		return errBulkUnsupported
	}
	return bw.SaveAll(r.Context(), objs)
}

func (c *Collection[T]) postInvalid(w http.ResponseWriter, err error) {
	if errs, ok := asValidation(err); ok {
		WriteError(w, model.NewValidationError(errs))
		return
	}
	WriteError(w, model.NewInternalError(""))
}

// isSequence reports whether the payload is a JSON array
func isSequence(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
