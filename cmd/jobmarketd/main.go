package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/openlabor/jobmarket/gen/ent"
	v1 "github.com/openlabor/jobmarket/gen/proto/jobmarket/v1"
	"github.com/openlabor/jobmarket/internal/common"
	"github.com/openlabor/jobmarket/internal/export"
	"github.com/openlabor/jobmarket/internal/ledger"
	repo "github.com/openlabor/jobmarket/internal/repository"
	svc "github.com/openlabor/jobmarket/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if dsn, ok := strings.CutPrefix(cfg.Database.DSN, "sqlite://"); ok {
		// Single-node mode: journal in a local SQLite file.
		entc, err = repo.OpenSQLite(dsn, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
	} else {
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	}
	defer repo.Close(entc, pool, logger)

	// Replay the journal, then resume appending to it.
	snap, err := repo.Restore(ctx, entc, logger)
	if err != nil {
		logger.Error("failed to restore journal", "error", err)
		os.Exit(1)
	}
	journal := repo.NewLedgerJournal(entc, logger)
	market := ledger.New(journal, logger)
	market.Restore(snap)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(svc.RequestIDInterceptor(logger)),
	)

	v1.RegisterJobsServiceServer(grpcServer, svc.NewJobsServer(market, logger))
	v1.RegisterAccountsServiceServer(grpcServer, svc.NewAccountsServer(market, logger))
	v1.RegisterRatingsServiceServer(grpcServer, svc.NewRatingsServer(market, logger))
	v1.RegisterReviewsServiceServer(grpcServer, svc.NewReviewsServer(market, logger))

	exporter := export.NewService(market, logger)
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("jobmarketd listening", "addr", addr, "jobs", len(snap.Jobs))
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
