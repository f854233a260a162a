package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/quiverapp/quiver/api/internal/database"
	"github.com/quiverapp/quiver/api/internal/mapper"
	"github.com/quiverapp/quiver/api/internal/model"
)

// Filter carries the recognized collection query parameters to a Lister
type Filter map[string]string

// Capability interfaces. A store implements the subset of capabilities its
// endpoints expose; handlers are composed per endpoint from exactly the
// capabilities they need.

// Lister fetches the collection, optionally narrowed by a filter
type Lister[T any] interface {
	List(ctx context.Context, filter Filter) ([]T, error)
}

// Reader fetches one resource by identifier
type Reader[T any] interface {
	Get(ctx context.Context, id string) (T, error)
}

// Writer persists a resource, creating it when it has no identifier yet
type Writer[T any] interface {
	Save(ctx context.Context, obj T) error
}

// BulkWriter persists several resources atomically. Stores that implement it
// get all-or-nothing sequence creation; others fall back to sequential saves.
type BulkWriter[T any] interface {
	SaveAll(ctx context.Context, objs []T) error
}

// Deleter removes a resource by identifier
type Deleter interface {
	Delete(ctx context.Context, id string) error
}

// filterFromQuery extracts the recognized parameters from the request query
func filterFromQuery(r *http.Request, params []string) Filter {
	if len(params) == 0 {
		return nil
	}
	filter := make(Filter)
	for _, p := range params {
		if v := r.URL.Query().Get(p); v != "" {
			filter[p] = v
		}
	}
	if len(filter) == 0 {
		return nil
	}
	return filter
}

// errBulkUnsupported reports a sequence payload sent to a store without
// atomic bulk saves. Creating the elements one by one could leave a prefix
// persisted when a later element fails, so the adapter refuses instead.
var errBulkUnsupported = errors.New("store does not support atomic bulk saves")

// StoreError maps persistence errors onto problem details. Validation never
// reaches here; it is handled at the mapper boundary.
func StoreError(err error, resource string) *model.ProblemDetails {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return model.NewNotFoundError(resource)
	case errors.Is(err, database.ErrDuplicate):
		return model.NewConflictError(resource + " already exists")
	default:
		return model.NewInternalError("")
	}
}

// asValidation unwraps a mapper validation failure, if that is what err is
func asValidation(err error) (mapper.Errors, bool) {
	var errs mapper.Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
