// Package database provides the database abstraction layer for Quiver.
//
// This package defines the Database interface that abstracts SurrealDB
// operations, keeping the REST adapter and repositories independent of the
// concrete driver.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns the result rows of a SELECT
//   - QueryOne: Returns a single row (ErrNotFound when the query matches nothing)
//   - Execute: No return value (for CREATE/UPDATE/DELETE mutations)
//
// # Transactions
//
// Transactions are BATCH-BASED, not connection-level. Statements accumulate
// in an AtomicBatch and are wrapped in BEGIN TRANSACTION / COMMIT TRANSACTION
// at execute time, so they succeed or fail together. There is no isolation
// between Add() calls. See transaction.go.
//
// # Error Handling
//
// Standard errors are defined for common failure cases and checked with
// errors.Is():
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation (e.g., duplicate tag name).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, invalid reference, etc.).
	ErrQuery = errors.New("query error")
)

// Database defines the interface for database operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns the result rows
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single row, or ErrNotFound
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds database configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
