package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/openlabor/jobmarket/internal/export"
	"github.com/openlabor/jobmarket/internal/ledger"
	repo "github.com/openlabor/jobmarket/internal/repository"
)

// ratings-export replays the journal offline and writes one account's rating
// history to an XLSX file, without going through the gRPC surface.
func main() {
	var (
		address = flag.String("address", "", "account address to export (0x...)")
		out     = flag.String("out", "ratings.xlsx", "output file path")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *address == "" {
		logger.Error("missing -address flag")
		os.Exit(2)
	}
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		logger.Error("missing DB_URL environment variable")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dbURL,
		MaxConns:        4,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	snap, err := repo.Restore(ctx, entc, logger)
	if err != nil {
		logger.Error("failed to restore journal", "error", err)
		os.Exit(1)
	}

	// Read-only replay; no journal is attached.
	market := ledger.New(nil, logger)
	market.Restore(snap)

	exporter := export.NewService(market, logger)
	xlsx, err := exporter.ExportRatingsXLSX(ctx, *address)
	if err != nil {
		logger.Error("failed to export ratings", "address", *address, "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("ratings exported", "address", *address, "path", *out, "bytes", len(xlsx))
}
