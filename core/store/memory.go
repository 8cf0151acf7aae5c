package store

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryStore is a Store kept entirely in process memory.
// It backs the engine's tests and is useful for rehearsing an import without a
// live database.
type InMemoryStore struct {
	mu      sync.Mutex
	nextID  map[string]int64
	records map[string][]*Record
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		nextID:  make(map[string]int64),
		records: make(map[string][]*Record),
	}
}

// Find returns copies of all records matching the equality filters.
func (s *InMemoryStore) Find(ctx context.Context, collection string, filters Fields) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Record
	for _, rec := range s.records[collection] {
		if matches(rec.Fields, filters) {
			out = append(out, copyRecord(rec))
		}
	}
	return out, nil
}

// Create stores a copy of fields under a fresh id.
func (s *InMemoryStore) Create(ctx context.Context, collection string, fields Fields) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID[collection]++
	rec := &Record{ID: s.nextID[collection], Fields: copyFields(fields)}
	rec.Fields["id"] = rec.ID
	s.records[collection] = append(s.records[collection], rec)
	return copyRecord(rec), nil
}

// Update merges fields into the record identified by id.
func (s *InMemoryStore) Update(ctx context.Context, collection string, id int64, fields Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records[collection] {
		if rec.ID == id {
			for k, v := range fields {
				rec.Fields[k] = v
			}
			return nil
		}
	}
	return fmt.Errorf("update %s id=%d: record not found", collection, id)
}

// Count returns the number of records in a collection. Test helper.
func (s *InMemoryStore) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records[collection])
}

// matches reports whether fields satisfy every filter entry. Scalars are
// compared through their string rendering since values arrive with
// driver- and codec-dependent types.
func matches(fields, filters Fields) bool {
	for key, want := range filters {
		got, ok := fields[key]
		if !ok {
			return false
		}
		if fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
			return false
		}
	}
	return true
}

func copyFields(fields Fields) Fields {
	out := make(Fields, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func copyRecord(rec *Record) Record {
	return Record{ID: rec.ID, Fields: copyFields(rec.Fields)}
}
