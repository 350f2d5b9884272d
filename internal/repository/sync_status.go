package repository

import (
	"context"
	"fmt"
	"time"
)

// SaveLastSyncTime records when the mirror last completed a successful sync.
func (r *Repository) SaveLastSyncTime(ctx context.Context, date time.Time) error {
	query := `
		INSERT INTO sync_status (last_sync_time)
		VALUES ($1)
		ON CONFLICT (id) DO UPDATE SET last_sync_time = $1, updated_at = CURRENT_TIMESTAMP;`

	_, err := r.db.Exec(ctx, query, date)
	if err != nil {
		return fmt.Errorf("failed to execute insert query: %w", err)
	}

	return nil
}

// GetLastSyncTime returns when the mirror last completed a successful sync.
func (r *Repository) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	query := "SELECT last_sync_time FROM sync_status ORDER BY updated_at DESC LIMIT 1"

	var lastSync time.Time

	err := r.db.QueryRow(ctx, query).Scan(&lastSync)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time from table sync_status: %w", err)
	}

	return lastSync, nil
}
