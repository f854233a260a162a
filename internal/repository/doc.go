// Package repository provides SurrealDB-backed stores for Quiver resources.
//
// Each repository implements the capability interfaces consumed by the rest
// package (Lister, Reader, Writer, Deleter; BookmarkRepository additionally
// BulkWriter for atomic sequence creation). Repositories issue explicit
// SurrealQL and translate driver results into model types; they return the
// sentinel errors from the database package so callers can branch with
// errors.Is.
//
// Record IDs are "table:key" strings with UUID-derived keys generated at
// first save.
package repository
