package storage

import (
	"context"

	"github.com/astroracle/starway/core"
)

// CatalogRepository provides operations for persisting starship records.
// Implementations must be thread-safe and support concurrent access.
type CatalogRepository interface {
	// PutStarships stores one or more starship records, replacing any
	// existing records with the same archive id.
	PutStarships(ctx context.Context, records ...core.StarshipRecord) error

	// GetStarship retrieves a single record by archive id.
	// Returns ErrNotFound if the record doesn't exist.
	GetStarship(ctx context.Context, archiveID string) (core.StarshipRecord, error)

	// ListStarships retrieves all stored records, ordered by archive id.
	ListStarships(ctx context.Context) ([]core.StarshipRecord, error)

	// PutFingerprint records the fingerprint of the catalog this database
	// was seeded from.
	PutFingerprint(ctx context.Context, fp core.ID) error

	// GetFingerprint retrieves the seeded catalog fingerprint.
	// Returns ErrNotFound if the database was seeded without one.
	GetFingerprint(ctx context.Context) (core.ID, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
