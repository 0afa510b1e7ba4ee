package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
)

// Migrate creates missing tables, columns and indexes. It never drops anything.
func Migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv, schema.WithForeignKeys(true))
	if err != nil {
		return fmt.Errorf("prepare migration: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
