package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmezav/empleados-ms/internal/config"
	"github.com/dmezav/empleados-ms/internal/lib/logger"
	"github.com/dmezav/empleados-ms/internal/metrics"
	"github.com/dmezav/empleados-ms/internal/repository"
	"github.com/dmezav/empleados-ms/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main is the entry point of the empleados API service.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	slogger := logger.Setup(cfg.Env)

	// Create a separate registry for application metrics
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

	empleadoRepo := repository.NewEmpleadoRepository(dtb, appMetrics)

	// The table must exist before the first request arrives.
	schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err = empleadoRepo.EnsureSchema(schemaCtx); err != nil {
		cancel()
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	cancel()

	router := server.NewRouter(slogger, reg, appMetrics, empleadoRepo, dtb)

	slogger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.", "port", cfg.HTTP.Port)

	server.Start(ctx, slogger, cfg.HTTP.Port, router)

	slogger.InfoContext(ctx, "Application stopped gracefully...")
}
