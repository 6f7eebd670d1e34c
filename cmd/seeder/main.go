// Seeder loads a starship catalog JSON file into a BadgerDB directory so
// deployments can serve the catalog from a local KV store.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/astroracle/starway/catalog"
	badgerstore "github.com/astroracle/starway/storage/badger"
)

var (
	srcFileName = flag.String("src", "", "starship catalog JSON file")
	dbPath      = flag.String("db", "./starway_db", "BadgerDB directory to seed")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	if *srcFileName == "" {
		slog.Error("missing -src catalog file")
		os.Exit(1)
	}

	cat, err := catalog.LoadFile(*srcFileName)
	if err != nil {
		slog.Error("failed to load catalog", "err", err)
		os.Exit(1)
	}

	backend, err := badgerstore.OpenBackend(*dbPath, false)
	if err != nil {
		slog.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer backend.Close()

	repo, err := badgerstore.NewCatalogRepository(backend)
	if err != nil {
		slog.Error("failed to create repository", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := repo.PutStarships(ctx, cat.Records()...); err != nil {
		slog.Error("failed to seed starships", "err", err)
		os.Exit(1)
	}
	if err := repo.PutFingerprint(ctx, cat.Fingerprint()); err != nil {
		slog.Error("failed to record catalog fingerprint", "err", err)
		os.Exit(1)
	}

	slog.Info("catalog seeded",
		"db", *dbPath,
		"starships", cat.Len(),
		"fingerprint", cat.Fingerprint())
}
