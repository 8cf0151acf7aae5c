package store

import (
	"context"
	"fmt"

	"config-manager/core/utils"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a GORM connection using dynamic table
// access. Collections map directly to table names; no model structs are
// involved, so the store works against any instance that has the expected
// configuration tables.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Find returns all rows of collection matching the equality filters.
func (s *GormStore) Find(ctx context.Context, collection string, filters Fields) ([]Record, error) {
	var rows []map[string]any
	q := s.db.WithContext(ctx).Table(collection)
	if len(filters) > 0 {
		q = q.Where(map[string]any(filters))
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := Record{Fields: Fields(row)}
		if id, ok := row["id"]; ok {
			rec.ID = utils.ToInt64(id)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Create inserts a row built from fields.
// GORM does not report generated keys for map-based inserts, so the returned
// record carries a zero ID.
func (s *GormStore) Create(ctx context.Context, collection string, fields Fields) (Record, error) {
	row := map[string]any(fields)
	if err := s.db.WithContext(ctx).Table(collection).Create(&row).Error; err != nil {
		return Record{}, fmt.Errorf("create in %s: %w", collection, err)
	}
	return Record{Fields: Fields(row)}, nil
}

// Update overwrites the given fields on the row identified by id.
func (s *GormStore) Update(ctx context.Context, collection string, id int64, fields Fields) error {
	if err := s.db.WithContext(ctx).Table(collection).Where("id = ?", id).Updates(map[string]any(fields)).Error; err != nil {
		return fmt.Errorf("update %s id=%d: %w", collection, id, err)
	}
	return nil
}
