package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmezav/empleados-ms/pkg/empleados"
)

// RemoteLister mocks mirror.RemoteLister.
type RemoteLister struct {
	mock.Mock
}

func (m *RemoteLister) ListEmpleados(ctx context.Context) ([]empleados.Empleado, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]empleados.Empleado), args.Error(1)
}
