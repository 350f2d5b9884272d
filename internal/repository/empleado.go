package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dmezav/empleados-ms/internal/models"
)

// EnsureSchema creates the empleados table if it does not exist yet, so the
// service can answer requests right after startup.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS empleados (
			id SERIAL PRIMARY KEY,
			nombres TEXT NOT NULL,
			telefono TEXT
		);
	`

	_, err := r.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to ensure empleados schema: %w", err)
	}

	return nil
}

// ListEmpleados returns all empleado records ordered by identifier.
func (r *Repository) ListEmpleados(ctx context.Context) ([]models.Empleado, error) {
	defer r.observe("list_empleados", time.Now())
	query := `SELECT id, nombres, telefono FROM empleados ORDER BY id;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list empleados: %w", err)
	}
	defer rows.Close()

	empleados := []models.Empleado{}
	for rows.Next() {
		var emp models.Empleado
		if err = rows.Scan(&emp.ID, &emp.Nombres, &emp.Telefono); err != nil {
			return nil, fmt.Errorf("failed to scan empleado row: %w", err)
		}
		empleados = append(empleados, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read empleado rows: %w", err)
	}

	return empleados, nil
}

// CreateEmpleado inserts a new empleado and returns the created record with
// its server-assigned identifier.
func (r *Repository) CreateEmpleado(ctx context.Context, nombres, telefono string) (models.Empleado, error) {
	var result models.Empleado

	defer r.observe("create_empleado", time.Now())
	query := `INSERT INTO empleados (nombres, telefono) VALUES ($1, $2) RETURNING id, nombres, telefono;`

	err := r.db.QueryRow(ctx, query, nombres, telefono).Scan(&result.ID, &result.Nombres, &result.Telefono)
	if err != nil {
		return models.Empleado{}, fmt.Errorf("failed to create empleado: %w", err)
	}

	return result, nil
}

// SaveEmpleado saves a remote empleado record under its remote identifier.
// An already mirrored record is left untouched.
func (r *Repository) SaveEmpleado(ctx context.Context, identifier int, nombres, telefono string) error {
	defer r.observe("save_empleado", time.Now())
	query := `
		INSERT INTO empleados (id, nombres, telefono)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING;
	`

	_, err := r.db.Exec(ctx, query, identifier, nombres, telefono)
	if err != nil {
		return fmt.Errorf("failed to save empleado: %w", err)
	}

	return nil
}

// UpdateEmpleado updates a mirrored empleado record.
func (r *Repository) UpdateEmpleado(ctx context.Context, identifier int, nombres, telefono string) error {
	defer r.observe("update_empleado", time.Now())
	query := `
		UPDATE empleados
		SET nombres = $2, telefono = $3
		WHERE id = $1;
	`

	_, err := r.db.Exec(ctx, query, identifier, nombres, telefono)
	if err != nil {
		return fmt.Errorf("failed to update empleado data: %w", err)
	}

	return nil
}

// GetEmpleadoByID retrieves an empleado from the database by its ID.
func (r *Repository) GetEmpleadoByID(ctx context.Context, identifier int) (models.Empleado, error) {
	var result models.Empleado

	defer r.observe("get_empleado_by_id", time.Now())
	query := `SELECT id, nombres, telefono FROM empleados WHERE id=$1`

	err := r.db.QueryRow(ctx, query, identifier).Scan(&result.ID, &result.Nombres, &result.Telefono)
	if err != nil {
		return models.Empleado{}, fmt.Errorf("failed to get empleado by id: %w", err)
	}

	return result, nil
}
