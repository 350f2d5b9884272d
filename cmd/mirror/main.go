package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/dmezav/empleados-ms/internal/config"
	"github.com/dmezav/empleados-ms/internal/lib/logger"
	"github.com/dmezav/empleados-ms/internal/metrics"
	"github.com/dmezav/empleados-ms/internal/repository"
	"github.com/dmezav/empleados-ms/internal/services/mirror"
	"github.com/dmezav/empleados-ms/pkg/empleados"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main is the entry point of the mirror: it keeps a local copy of the
// empleado records served by the remote service.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	slogger := logger.Setup(cfg.Env)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	mirrorRepo := repository.NewMirrorRepository(dtb, appMetrics)
	statusRepo := repository.NewStatusRepository(dtb, appMetrics)
	remote := empleados.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout, slogger)

	service := mirror.NewService(slogger, mirrorRepo, statusRepo, remote, appMetrics)

	slogger.InfoContext(ctx, "Starting Mirror Service", "remote", remote.BaseURL())
	if err = service.Start(ctx, cfg.Remote.SyncInterval); err != nil {
		slogger.ErrorContext(ctx, "Mirror Service failed", "error", err)
	}
	slogger.InfoContext(ctx, "Mirror Service stopped.")
}
