// Package handler wires Quiver resources onto HTTP routes.
//
// The CRUD plumbing lives in the rest package; each handler here composes a
// rest.Collection and rest.Item from a store and a mapper, registers the
// verb routes, and adds the endpoints that fall outside plain CRUD (health,
// on-demand link checks).
//
// # Example
//
//	h := handler.NewBookmarkHandler(bookmarkRepo, linkChecker)
//	h.RegisterRoutes(mux, authMiddleware)
package handler
