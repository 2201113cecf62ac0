package services

import (
	"context"

	"client-portal/internal/models"

	"github.com/sirupsen/logrus"
)

// OrphanStore is the ledger of blobs that could not be removed. Implemented
// by supabase.DatabaseClient.
type OrphanStore interface {
	RecordOrphan(ctx context.Context, storagePath, reason string) error
	ListOrphans(ctx context.Context, limit int) ([]models.Orphan, error)
	DeleteOrphan(ctx context.Context, id int64) error
	CountOrphans(ctx context.Context) (int, error)
}

// LogOrphanStore is used when no direct database connection is configured.
// Orphans are logged and nothing is kept to sweep.
type LogOrphanStore struct {
	log *logrus.Logger
}

func NewLogOrphanStore(log *logrus.Logger) *LogOrphanStore {
	return &LogOrphanStore{log: log}
}

func (l *LogOrphanStore) RecordOrphan(_ context.Context, storagePath, reason string) error {
	l.log.WithFields(logrus.Fields{
		"storage_path": storagePath,
		"reason":       reason,
	}).Error("Orphaned blob left in storage")
	return nil
}

func (l *LogOrphanStore) ListOrphans(context.Context, int) ([]models.Orphan, error) {
	return nil, nil
}

func (l *LogOrphanStore) DeleteOrphan(context.Context, int64) error {
	return nil
}

func (l *LogOrphanStore) CountOrphans(context.Context) (int, error) {
	return 0, nil
}
