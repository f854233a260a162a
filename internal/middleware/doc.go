// Package middleware provides HTTP middleware for the Quiver API.
//
// Middlewares are plain func(http.Handler) http.Handler values composed with
// Chain. The global chain applied in cmd/server is: RequestID, Logger,
// Recovery, CORS. Auth wraps individual protected routes.
package middleware
