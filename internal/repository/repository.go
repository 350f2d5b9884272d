package repository

import (
	"context"
	"time"

	"github.com/dmezav/empleados-ms/internal/metrics"
	"github.com/dmezav/empleados-ms/internal/models"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmpleadoRepoIface represents the interface the API handlers use to serve
// empleado data.
type EmpleadoRepoIface interface {
	EnsureSchema(ctx context.Context) error
	ListEmpleados(ctx context.Context) ([]models.Empleado, error)
	CreateEmpleado(ctx context.Context, nombres, telefono string) (models.Empleado, error)
}

func NewEmpleadoRepository(db Database, m *metrics.Metrics) EmpleadoRepoIface {
	return &Repository{db: db, metrics: m}
}

// MirrorRepoIface represents the interface the mirror service uses to keep a
// local copy of remote empleado records.
type MirrorRepoIface interface {
	SaveEmpleado(ctx context.Context, identifier int, nombres, telefono string) error
	UpdateEmpleado(ctx context.Context, identifier int, nombres, telefono string) error
	GetEmpleadoByID(ctx context.Context, identifier int) (models.Empleado, error)
}

func NewMirrorRepository(db Database, m *metrics.Metrics) MirrorRepoIface {
	return &Repository{db: db, metrics: m}
}

type StatusRepoIface interface {
	SaveLastSyncTime(ctx context.Context, date time.Time) error
	GetLastSyncTime(ctx context.Context) (time.Time, error)
}

func NewStatusRepository(db Database, m *metrics.Metrics) StatusRepoIface {
	return &Repository{db: db, metrics: m}
}

func (r *Repository) observe(queryType string, startTime time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
}
