package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/astroracle/starway/core"
	"github.com/astroracle/starway/storage"
)

// catalogFile matches the starships.json layout shared with the frontend.
type catalogFile struct {
	Starships []core.StarshipRecord `json:"starships"`
}

// LoadFile reads a catalog from a starships.json file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return New(file.Starships)
}

// FromRepository loads a catalog previously seeded into a repository.
func FromRepository(ctx context.Context, repo storage.CatalogRepository) (*Catalog, error) {
	records, err := repo.ListStarships(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog repository: %w", err)
	}
	return New(records)
}
