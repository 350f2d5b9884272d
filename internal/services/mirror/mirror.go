package mirror

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dmezav/empleados-ms/internal/metrics"
	"github.com/dmezav/empleados-ms/internal/models"
	"github.com/dmezav/empleados-ms/internal/repository"
	"github.com/dmezav/empleados-ms/pkg/empleados"
)

// RemoteLister is the part of the empleados client the mirror consumes.
type RemoteLister interface {
	ListEmpleados(ctx context.Context) ([]empleados.Empleado, error)
}

// Service keeps a local copy of the remote empleado list.
type Service struct {
	log     *slog.Logger
	repo    repository.MirrorRepoIface
	status  repository.StatusRepoIface
	remote  RemoteLister
	metrics *metrics.Metrics
}

func NewService(
	log *slog.Logger,
	repo repository.MirrorRepoIface,
	status repository.StatusRepoIface,
	remote RemoteLister,
	appMetrics *metrics.Metrics,
) *Service {
	return &Service{log: log, repo: repo, status: status, remote: remote, metrics: appMetrics}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "mirror"),
	)
}

// Start executes the mirror logic: an immediate catch-up sync, then periodic
// syncs until the context is cancelled. Individual sync failures are logged
// and counted but never stop the loop.
func (s *Service) Start(ctx context.Context, interval time.Duration) error {
	const opn = "Mirror.Start"
	log := s.initLogger(opn)

	// 1. Catch-up mode
	log.InfoContext(ctx, "Starting catch-up sync")
	if err := s.Sync(ctx); err != nil {
		return fmt.Errorf("failed during catch-up sync: %w", err)
	}

	// 2. Maintenance mode
	log.InfoContext(ctx, "Starting maintenance mode", "interval", interval.String())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			log.InfoContext(ctx, "Periodic sync triggered.")
			if err := s.Sync(ctx); err != nil {
				log.ErrorContext(ctx, "Periodic sync failed", "error", err)
			}
		case <-ctx.Done():
			log.InfoContext(ctx, "Service shutting down.")
			return nil
		}
	}
}

// Sync pulls the remote empleado list and reconciles the local copy: unknown
// records are saved, changed ones updated, identical ones skipped.
func (s *Service) Sync(pctx context.Context) error {
	const opn = "Mirror.Sync"
	log := s.initLogger(opn)

	contextTimeout := 10
	ctx, cancel := context.WithTimeout(pctx, time.Duration(contextTimeout)*time.Second)
	defer cancel()

	startTime := time.Now()

	remoteEmpleados, err := s.remote.ListEmpleados(ctx)
	if err != nil {
		s.metrics.SyncRuns.WithLabelValues("failure").Inc()
		return fmt.Errorf("failed to fetch remote empleados: %w", err)
	}

	for _, remote := range remoteEmpleados {
		empleado := models.Empleado{ID: remote.ID, Nombres: remote.Nombres, Telefono: remote.Telefono}

		existed, existedEmpleado := IsEmpleadoExists(ctx, empleado.ID, s.repo)
		if existed {
			if existedEmpleado == empleado {
				log.DebugContext(ctx, "empleado is unchanged, skipped", "nombres", empleado.Nombres)
				continue
			}
			if updateErr := s.repo.UpdateEmpleado(ctx, empleado.ID, empleado.Nombres, empleado.Telefono); updateErr != nil {
				s.metrics.SyncRuns.WithLabelValues("failure").Inc()
				return fmt.Errorf("failed to update empleado '%s': %w", empleado.Nombres, updateErr)
			}
		} else {
			if saveErr := s.repo.SaveEmpleado(ctx, empleado.ID, empleado.Nombres, empleado.Telefono); saveErr != nil {
				s.metrics.SyncRuns.WithLabelValues("failure").Inc()
				return fmt.Errorf("failed to save empleado '%s': %w", empleado.Nombres, saveErr)
			}
		}
		s.metrics.EmpleadosSynced.Inc()
	}

	if err = s.status.SaveLastSyncTime(ctx, time.Now()); err != nil {
		log.WarnContext(ctx, "Failed to record sync time", "error", err)
	}

	s.metrics.SyncRuns.WithLabelValues("success").Inc()
	s.metrics.LastSyncTime.SetToCurrentTime()
	s.metrics.SyncDuration.Observe(time.Since(startTime).Seconds())

	log.InfoContext(ctx, "Sync completed", "remote_records", len(remoteEmpleados))

	return nil
}

// IsEmpleadoExists reports whether an empleado with the given identifier is
// already mirrored, returning the stored record when it is.
func IsEmpleadoExists(ctx context.Context, identifier int, repo repository.MirrorRepoIface) (bool, models.Empleado) {
	empleado, err := repo.GetEmpleadoByID(ctx, identifier)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			slog.Default().WarnContext(ctx, "failed to check empleado existence", "id", identifier, "error", err)
		}
		return false, models.Empleado{}
	}

	return true, empleado
}
