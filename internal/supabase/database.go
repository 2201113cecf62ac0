package supabase

import (
	"context"
	"database/sql"
	"fmt"

	"client-portal/internal/models"

	_ "github.com/lib/pq"
)

// DatabaseClient talks to the Supabase Postgres instance directly. The portal
// tables go through PostgREST; this connection only backs the orphan ledger.
type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) RecordOrphan(ctx context.Context, storagePath, reason string) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO media_orphans (storage_path, reason)
		VALUES ($1, $2)
	`, storagePath, reason)
	if err != nil {
		return fmt.Errorf("failed to record orphan: %w", err)
	}
	return nil
}

func (d *DatabaseClient) ListOrphans(ctx context.Context, limit int) ([]models.Orphan, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, storage_path, reason, created_at
		FROM media_orphans
		ORDER BY created_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orphans: %w", err)
	}
	defer rows.Close()

	var orphans []models.Orphan
	for rows.Next() {
		var o models.Orphan
		if err := rows.Scan(&o.ID, &o.StoragePath, &o.Reason, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan orphan: %w", err)
		}
		orphans = append(orphans, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list orphans: %w", err)
	}

	return orphans, nil
}

func (d *DatabaseClient) DeleteOrphan(ctx context.Context, id int64) error {
	_, err := d.db.ExecContext(ctx, `
		DELETE FROM media_orphans
		WHERE id = $1
	`, id)
	return err
}

func (d *DatabaseClient) CountOrphans(ctx context.Context) (int, error) {
	var count int
	err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM media_orphans`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orphans: %w", err)
	}
	return count, nil
}

func (d *DatabaseClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
