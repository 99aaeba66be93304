// Package drafts provides the durable key/value store backing the draft
// cache. Rows are addressed by (namespace, record id).
package drafts

import "context"

// Repository is the durable side of the draft cache. Implementations are
// backed by the local SQLite database.
type Repository interface {
	// Get returns the stored value, or common.ErrNotFound.
	Get(ctx context.Context, namespace, id string) ([]byte, error)

	// Set inserts or replaces the value for (namespace, id).
	Set(ctx context.Context, namespace, id string, value []byte) error

	// Delete removes the row. Deleting an absent row is not an error.
	Delete(ctx context.Context, namespace, id string) error

	// ListNamespace returns every id -> value pair in the namespace.
	ListNamespace(ctx context.Context, namespace string) (map[string][]byte, error)
}
