package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"payroll-analyzer/db/migrations"
	"payroll-analyzer/internal/adapter/http"
	"payroll-analyzer/internal/adapter/postgres"
	"payroll-analyzer/internal/adapter/usecase"
	"payroll-analyzer/internal/config"
	"payroll-analyzer/internal/core/port"
	"payroll-analyzer/internal/db"
	"payroll-analyzer/internal/launcher"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyzer on 0.0.0.0:$PORT",
		Long: `Serve the built-in analyzer API on 0.0.0.0:$PORT. When ENTRYPOINT_RUNNER is
set the runner is started in place of the built-in server.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap(os.Stdout)
	if err != nil {
		return err
	}
	settings := launcher.NewSettings(cfg.HTTP.Port)

	if cfg.EntryPoint.External() {
		logger.Info("starting external entry point",
			slog.String("runner", cfg.EntryPoint.Runner),
			slog.Int("port", int(settings.Port)),
		)
		return launcher.Exec(settings, cfg.EntryPoint.Argv(), os.Environ())
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.AnalysisRepository
	if cfg.Psql.Enabled() {
		closeArchive, archive, err := openArchive(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer closeArchive()
		repo = archive
	}

	svc := usecase.NewPayrollUseCase(repo, logger)
	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.MaxUploadBytes)
	srv := &http.Server{
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("starting analyzer", slog.String("env", cfg.Env), slog.Bool("archive", repo != nil))
	return launcher.New(settings, cfg.HTTP.ShutdownTimeout, logger).Run(ctx, srv)
}

// openArchive migrates the schema when asked to and connects the pool.
func openArchive(ctx context.Context, cfg config.Config, logger *slog.Logger) (func(), *postgres.AnalysisRepository, error) {
	if cfg.Psql.RunMigrations {
		from, err := db.Migrate(cfg.Psql.Addr)
		if err != nil {
			return nil, nil, fmt.Errorf("migrate archive: %w", err)
		}
		logger.Info("migrations applied successfully",
			slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(migrations.Version)))
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("connect archive: %w", err)
	}
	return pool.Close, postgres.NewAnalysisRepository(pool), nil
}
