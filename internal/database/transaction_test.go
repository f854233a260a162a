package database

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDatabase struct {
	queryFunc func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
}

func (m *mockDatabase) Connect(ctx context.Context) error { return nil }
func (m *mockDatabase) Close() error                      { return nil }
func (m *mockDatabase) Ping(ctx context.Context) error    { return nil }

func (m *mockDatabase) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, query, vars)
	}
	return nil, nil
}

func (m *mockDatabase) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	rows, err := m.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

func (m *mockDatabase) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := m.Query(ctx, query, vars)
	return err
}

func TestAtomicBatch_Empty(t *testing.T) {
	batch := NewAtomicBatch()

	assert.Equal(t, 0, batch.Len())
	query, vars := batch.Build()
	assert.Empty(t, query)
	assert.Nil(t, vars)
}

func TestAtomicBatch_BuildWrapsInTransaction(t *testing.T) {
	batch := NewAtomicBatch()
	batch.Add("CREATE bookmark CONTENT { url: $url }", map[string]interface{}{
		"url": "https://example.com",
	})

	query, vars := batch.Build()

	assert.True(t, strings.HasPrefix(query, "BEGIN TRANSACTION;"))
	assert.True(t, strings.HasSuffix(query, "COMMIT TRANSACTION;"))
	assert.Contains(t, query, "$v1_url")
	assert.Equal(t, "https://example.com", vars["v1_url"])
}

func TestAtomicBatch_NamespacesCollidingVariables(t *testing.T) {
	batch := NewAtomicBatch()
	batch.Add("CREATE bookmark CONTENT { url: $url }", map[string]interface{}{"url": "https://a.example.com"})
	batch.Add("CREATE bookmark CONTENT { url: $url }", map[string]interface{}{"url": "https://b.example.com"})

	require.Equal(t, 2, batch.Len())
	query, vars := batch.Build()

	assert.Contains(t, query, "$v1_url")
	assert.Contains(t, query, "$v2_url")
	assert.NotContains(t, vars, "url")
	assert.Equal(t, "https://a.example.com", vars["v1_url"])
	assert.Equal(t, "https://b.example.com", vars["v2_url"])
}

func TestAtomicBatch_TerminatesStatements(t *testing.T) {
	batch := NewAtomicBatch()
	batch.Add("DELETE bookmark:a", nil)
	batch.Add("DELETE bookmark:b;", nil)

	query, _ := batch.Build()

	assert.Contains(t, query, "DELETE bookmark:a;\n")
	assert.NotContains(t, query, "DELETE bookmark:b;;")
}

func TestAtomicBatch_ExecuteSendsBuiltQuery(t *testing.T) {
	var gotQuery string
	var gotVars map[string]interface{}
	db := &mockDatabase{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			gotQuery = query
			gotVars = vars
			return []interface{}{map[string]interface{}{"ok": true}}, nil
		},
	}

	batch := NewAtomicBatch()
	batch.Add("UPSERT type::record($id) CONTENT { name: $name }", map[string]interface{}{
		"id":   "folder:a",
		"name": "reading",
	})

	rows, err := batch.Execute(context.Background(), db)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Contains(t, gotQuery, "BEGIN TRANSACTION;")
	assert.Equal(t, "reading", gotVars["v1_name"])
}

func TestAtomicBatch_ExecuteEmptyIsNoop(t *testing.T) {
	called := false
	db := &mockDatabase{
		queryFunc: func(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
			called = true
			return nil, nil
		},
	}

	rows, err := NewAtomicBatch().Execute(context.Background(), db)
	require.NoError(t, err)
	assert.Nil(t, rows)
	assert.False(t, called)
}
