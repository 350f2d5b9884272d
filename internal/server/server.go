package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/dmezav/empleados-ms/internal/lib/logger/sl"
	"github.com/dmezav/empleados-ms/internal/metrics"
	"github.com/dmezav/empleados-ms/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the service mux: the empleado endpoints, the health
// endpoint and the metrics endpoint of the provided registry.
func NewRouter(
	log *slog.Logger,
	reg *prometheus.Registry,
	appMetrics *metrics.Metrics,
	repo repository.EmpleadoRepoIface,
	db DBPinger,
) *http.ServeMux {
	empHandler := NewEmpleadosHandler(repo, log)
	mux := http.NewServeMux()

	mux.Handle("GET /health", instrument(appMetrics, "health", NewHealthChecker(db, log)))
	mux.Handle("GET /get", instrument(appMetrics, "list_empleados", http.HandlerFunc(empHandler.HandleList)))
	mux.Handle("POST /post", instrument(appMetrics, "create_empleado", http.HandlerFunc(empHandler.HandleCreate)))
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return mux
}

// Start runs the HTTP server on the given port and blocks until the context
// is cancelled, then shuts down gracefully.
func Start(ctx context.Context, log *slog.Logger, port string, handler http.Handler) {
	const shutdownTimeout = 10 * time.Second

	srv := &http.Server{
		Addr:              net.JoinHostPort("", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.InfoContext(ctx, "HTTP server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "HTTP server failed", sl.Err(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "HTTP server shutdown failed", sl.Err(err))
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func instrument(appMetrics *metrics.Metrics, name string, next http.Handler) http.Handler {
	if appMetrics == nil {
		return next
	}

	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		startTime := time.Now()
		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(recorder, req)

		appMetrics.HTTPDuration.WithLabelValues(name).Observe(time.Since(startTime).Seconds())
		appMetrics.HTTPRequestsTotal.WithLabelValues(name, strconv.Itoa(recorder.status)).Inc()
	})
}
