package database

// Atomic batch execution.
//
// SurrealDB transactions here are batch-based: statements accumulate in
// memory and are wrapped in BEGIN TRANSACTION / COMMIT TRANSACTION when
// executed, so the whole batch succeeds or fails together. Variables are
// namespaced per statement ($url -> $v1_url) so statements built from the
// same template can be combined without collisions.

import (
	"context"
	"fmt"
	"strings"
)

// AtomicBatch accumulates statements that must succeed or fail together.
//
//	batch := database.NewAtomicBatch()
//	batch.Add("CREATE bookmark CONTENT { url: $url }", vars1)
//	batch.Add("CREATE bookmark CONTENT { url: $url }", vars2)
//	err := batch.Execute(ctx, db)
type AtomicBatch struct {
	statements []string
	vars       map[string]interface{}
	varCounter int
}

// NewAtomicBatch creates an empty batch
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{
		statements: make([]string, 0),
		vars:       make(map[string]interface{}),
	}
}

// Len returns the number of statements in the batch
func (b *AtomicBatch) Len() int {
	return len(b.statements)
}

// Add appends a statement, namespacing its variables to avoid collisions
// with variables of previously added statements.
func (b *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	b.varCounter++
	rewritten := query
	for name, value := range vars {
		namespaced := fmt.Sprintf("v%d_%s", b.varCounter, name)
		rewritten = strings.ReplaceAll(rewritten, "$"+name, "$"+namespaced)
		b.vars[namespaced] = value
	}
	b.statements = append(b.statements, rewritten)
	return b
}

// Build returns the complete transaction query and merged variables
func (b *AtomicBatch) Build() (string, map[string]interface{}) {
	if len(b.statements) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range b.statements {
		sb.WriteString(stmt)
		if !strings.HasSuffix(strings.TrimSpace(stmt), ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return sb.String(), b.vars
}

// Execute runs the batch as a single transaction and returns the result rows
func (b *AtomicBatch) Execute(ctx context.Context, db Database) ([]interface{}, error) {
	query, vars := b.Build()
	if query == "" {
		return nil, nil
	}
	return db.Query(ctx, query, vars)
}
