package setting

import (
	"context"
)

// Repository defines the interface for setting persistence
type Repository interface {
	// GetByKey retrieves a setting by category and key
	GetByKey(ctx context.Context, category, key string) (*Setting, error)

	// GetByCategory retrieves all settings in a category
	GetByCategory(ctx context.Context, category string) ([]*Setting, error)

	// GetAll retrieves all settings
	GetAll(ctx context.Context) ([]*Setting, error)

	// Upsert creates or updates a setting
	Upsert(ctx context.Context, setting *Setting) error

	// UpsertMany creates or updates a batch of settings atomically
	UpsertMany(ctx context.Context, settings []*Setting) error

	// Delete removes a setting by category and key
	Delete(ctx context.Context, category, key string) error
}
