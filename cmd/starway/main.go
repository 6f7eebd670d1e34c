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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/astroracle/starway/ai"
	"github.com/astroracle/starway/ai/openai"
	"github.com/astroracle/starway/api"
	"github.com/astroracle/starway/catalog"
	"github.com/astroracle/starway/core"
	"github.com/astroracle/starway/oracle"
	badgerstore "github.com/astroracle/starway/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "starway",
		Usage: "Starship oracle resolution engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the oracle HTTP API",
				Action: serveCommand,
				Flags: append(catalogFlags(), gatewayFlags(),
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "HTTP listen address",
						Value:   ":8080",
					},
					&cli.IntFlag{
						Name:  "rate-limit",
						Usage: "Requests per hour per client on model-consuming routes (0 disables)",
						Value: 60,
					},
				),
			},
			{
				Name:   "divine",
				Usage:  "Run one resolution from the terminal",
				Action: divineCommand,
				Flags: append(catalogFlags(), gatewayFlags(),
					&cli.StringFlag{
						Name:     "birth-date",
						Aliases:  []string{"b"},
						Usage:    "Birth date (YYYY-MM-DD)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "question",
						Aliases: []string{"q"},
						Usage:   "Question for the inquiry axis",
					},
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "User name woven into the interpretation",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// catalogFlags supplies a JSON catalog or a seeded badger database; the
// two sources are mutually exclusive.
func catalogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog",
			Aliases: []string{"c"},
			Usage:   "Path to starship catalog JSON file",
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB catalog directory (alternative to --catalog)",
		},
	}
}

func gatewayFlags() cli.Flag {
	return &cli.StringFlag{
		Name:    "api-key",
		Usage:   "Gateway API key",
		EnvVars: []string{"ALIYUN_BAILIAN_API_KEY"},
	}
}

// modelOverride reads the shared model env var: when set it replaces both
// tiers, matching how single-model deployments run.
func modelOverride() (fast, quality string) {
	model := os.Getenv("ALIYUN_BAILIAN_MODEL")
	return model, model
}

func loadCatalog(c *cli.Context) (*catalog.Catalog, error) {
	catalogPath := c.String("catalog")
	dbPath := c.String("db")

	switch {
	case catalogPath != "" && dbPath != "":
		return nil, fmt.Errorf("--catalog and --db are mutually exclusive")
	case catalogPath != "":
		return catalog.LoadFile(catalogPath)
	case dbPath != "":
		backend, err := badgerstore.OpenBackend(dbPath, false)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		repo, err := badgerstore.NewCatalogRepository(backend)
		if err != nil {
			backend.Close()
			return nil, fmt.Errorf("failed to create repository: %w", err)
		}
		defer repo.Close()

		cat, err := catalog.FromRepository(c.Context, repo)
		if err != nil {
			return nil, err
		}
		// A fingerprint mismatch means the database diverged from the
		// catalog it was seeded with (partial seed, manual edits).
		if fp, err := repo.GetFingerprint(c.Context); err == nil && fp != cat.Fingerprint() {
			slog.Warn("catalog fingerprint mismatch",
				"stored", fp, "computed", cat.Fingerprint())
		}
		return cat, nil
	default:
		return nil, fmt.Errorf("either --catalog or --db is required")
	}
}

func buildEngine(c *cli.Context) (*oracle.Engine, ai.Gateway, error) {
	cat, err := loadCatalog(c)
	if err != nil {
		return nil, nil, err
	}

	config := ai.NewConfig(ai.WithAPIKey(c.String("api-key")))
	if err := config.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid gateway configuration: %w", err)
	}

	gateway, err := openai.NewGateway(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create gateway: %w", err)
	}

	fast, quality := modelOverride()
	engine, err := oracle.New(cat, gateway, oracle.WithModels(fast, quality))
	if err != nil {
		gateway.Close()
		return nil, nil, err
	}

	slog.Info("engine ready", "starships", cat.Len(), "fingerprint", cat.Fingerprint())
	return engine, gateway, nil
}

func serveCommand(c *cli.Context) error {
	engine, gateway, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer gateway.Close()

	srv, err := api.NewServer(engine,
		api.WithAddr(c.String("addr")),
		api.WithRateLimit(c.Int("rate-limit"), time.Hour),
	)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

func divineCommand(c *cli.Context) error {
	engine, gateway, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer gateway.Close()

	birth, err := core.ParseDate(c.String("birth-date"))
	if err != nil {
		return fmt.Errorf("invalid birth-date: %w", err)
	}

	ctx := c.Context
	bundle := engine.Resolve(ctx, oracle.Request{
		BirthDate: birth,
		Question:  c.String("question"),
		UserName:  c.String("name"),
	})

	printMatch := func(label string, m core.MatchResult) {
		if !m.Present() {
			fmt.Printf("%s: （无匹配）\n", label)
			return
		}
		fmt.Printf("%s: %s (%s)  score=%.3f\n", label, m.Starship.NameCN, m.Starship.ArchiveID, m.Score)
	}
	printMatch("本命星舟", bundle.Origin)
	printMatch("天时星舟", bundle.Celestial)
	printMatch("问道星舟", bundle.Inquiry)
	fmt.Println()

	// Stream the interpretation as it arrives.
	for fragment := range engine.InterpretStream(ctx, bundle) {
		if fragment.Kind == core.FragmentResult {
			fmt.Print(fragment.Text)
		}
	}
	fmt.Println()
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
