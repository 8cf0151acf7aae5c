package store

import "context"

// Fields is a flat field mapping used for filters, creates, and updates.
type Fields map[string]any

// Record is a single live record: its numeric id plus its raw field values.
// Implementations that cannot report the id of a freshly created record leave
// ID zero; callers that need it re-find by the record's identity key.
type Record struct {
	ID     int64
	Fields Fields
}

// Store is the narrow record access surface the snapshot engine needs.
// Implementations search named collections by field equality and create or
// update records from flat field mappings.
//
// The engine never opens, commits, or rolls back transactions; it issues
// operations against whatever session the implementation wraps, and the
// embedding host owns the transaction boundary.
type Store interface {
	// Find returns all records in collection whose fields equal every filter
	// entry. A nil or empty filter returns the whole collection.
	Find(ctx context.Context, collection string, filters Fields) ([]Record, error)

	// Create inserts a new record built from fields.
	Create(ctx context.Context, collection string, fields Fields) (Record, error)

	// Update overwrites the given fields on the record identified by id.
	Update(ctx context.Context, collection string, id int64, fields Fields) error
}
