// Copyright 2025 Starway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package badger implements the storage interfaces on BadgerDB.
package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/astroracle/starway/core"
	"github.com/astroracle/starway/storage"
)

// CatalogRepository implements storage.CatalogRepository on a Backend.
type CatalogRepository struct {
	backend *Backend
	logger  *slog.Logger
}

// NewCatalogRepository creates a catalog repository over an open backend.
// Closing the repository closes the backend.
//
// Returns storage.CatalogRepository to enforce abstraction.
func NewCatalogRepository(backend *Backend) (storage.CatalogRepository, error) {
	if backend == nil {
		return nil, errors.New("badger: backend is required")
	}
	return &CatalogRepository{
		backend: backend,
		logger:  slog.Default().With("component", "badger-catalog"),
	}, nil
}

// PutStarships stores records, replacing existing ones with the same id.
func (r *CatalogRepository) PutStarships(ctx context.Context, records ...core.StarshipRecord) error {
	return r.backend.db.Update(func(txn *badger.Txn) error {
		for i := range records {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec := &records[i]
			if err := rec.Validate(); err != nil {
				return err
			}
			if err := txn.Set(starshipKey(rec.ArchiveID), storage.MarshalStarshipRecord(rec)); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetStarship retrieves one record by archive id.
func (r *CatalogRepository) GetStarship(ctx context.Context, archiveID string) (core.StarshipRecord, error) {
	var record core.StarshipRecord
	err := r.backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(starshipKey(archiveID))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			rec, err := storage.UnmarshalStarshipRecord(val)
			if err != nil {
				return err
			}
			record = *rec
			return nil
		})
	})
	return record, err
}

// ListStarships returns every stored record, ordered by archive id.
func (r *CatalogRepository) ListStarships(ctx context.Context) ([]core.StarshipRecord, error) {
	var records []core.StarshipRecord
	err := r.backend.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(starshipPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(val []byte) error {
				rec, err := storage.UnmarshalStarshipRecord(val)
				if err != nil {
					return err
				}
				records = append(records, *rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.logger.Debug("listed starships", "count", len(records))
	return records, nil
}

// PutFingerprint records the seeded catalog's fingerprint.
func (r *CatalogRepository) PutFingerprint(ctx context.Context, fp core.ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.backend.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(fingerprintKey), storage.MarshalID(fp))
	})
}

// GetFingerprint retrieves the seeded catalog's fingerprint.
func (r *CatalogRepository) GetFingerprint(ctx context.Context) (core.ID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var fp core.ID
	err := r.backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fingerprintKey))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			fp, err = storage.UnmarshalID(val)
			return err
		})
	})
	return fp, err
}

// Close closes the underlying backend.
func (r *CatalogRepository) Close() error {
	return r.backend.Close()
}
