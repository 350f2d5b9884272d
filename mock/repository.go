// Package mocks provides testify mocks for the repository and client
// interfaces used across service tests.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmezav/empleados-ms/internal/models"
)

// MirrorRepoIface mocks repository.MirrorRepoIface.
type MirrorRepoIface struct {
	mock.Mock
}

func (m *MirrorRepoIface) SaveEmpleado(ctx context.Context, identifier int, nombres, telefono string) error {
	args := m.Called(ctx, identifier, nombres, telefono)
	return args.Error(0)
}

func (m *MirrorRepoIface) UpdateEmpleado(ctx context.Context, identifier int, nombres, telefono string) error {
	args := m.Called(ctx, identifier, nombres, telefono)
	return args.Error(0)
}

func (m *MirrorRepoIface) GetEmpleadoByID(ctx context.Context, identifier int) (models.Empleado, error) {
	args := m.Called(ctx, identifier)
	return args.Get(0).(models.Empleado), args.Error(1)
}

// StatusRepoIface mocks repository.StatusRepoIface.
type StatusRepoIface struct {
	mock.Mock
}

func (m *StatusRepoIface) SaveLastSyncTime(ctx context.Context, date time.Time) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

func (m *StatusRepoIface) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

// EmpleadoRepoIface mocks repository.EmpleadoRepoIface.
type EmpleadoRepoIface struct {
	mock.Mock
}

func (m *EmpleadoRepoIface) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *EmpleadoRepoIface) ListEmpleados(ctx context.Context) ([]models.Empleado, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Empleado), args.Error(1)
}

func (m *EmpleadoRepoIface) CreateEmpleado(ctx context.Context, nombres, telefono string) (models.Empleado, error) {
	args := m.Called(ctx, nombres, telefono)
	return args.Get(0).(models.Empleado), args.Error(1)
}
