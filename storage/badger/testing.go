package badger

import "github.com/astroracle/starway/storage"

// NewMemoryRepository creates an in-memory catalog repository for tests.
// Closing the repository releases the in-memory database.
func NewMemoryRepository() (storage.CatalogRepository, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}
	return NewCatalogRepository(backend)
}
