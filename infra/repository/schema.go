package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Schema manages the lifecycle of the seeded tables.
type Schema struct {
	db *gorm.DB
}

// NewSchema returns a Schema operating on db.
func NewSchema(db *gorm.DB) *Schema {
	return &Schema{db: db}
}

// Drop removes every seeded table. Dependent tables are dropped first.
func (s *Schema) Drop(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Migrator().DropTable(Models()...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return nil
}

// Create creates any missing tables, columns, indexes and foreign keys.
func (s *Schema) Create(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}
	return nil
}
