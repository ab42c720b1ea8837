package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/platform/logger"
	"github.com/phrazzld/pegword-api/internal/store"
)

// PostgresEntryStore implements the store.EntryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresEntryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEntryStore creates a new PostgreSQL implementation of the
// EntryStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// a default logger will be used.
func NewPostgresEntryStore(db store.DBTX, logger *slog.Logger) *PostgresEntryStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresEntryStore{
		db:     db,
		logger: logger.With(slog.String("component", "entry_store")),
	}
}

// Ensure PostgresEntryStore implements store.EntryStore interface
var _ store.EntryStore = (*PostgresEntryStore)(nil)

// Upsert implements store.EntryStore.Upsert
// An entry whose word is empty deletes the row so the table stays sparse.
func (s *PostgresEntryStore) Upsert(ctx context.Context, entry *domain.WordEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("entry validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("workspace_id", entry.WorkspaceID.String()),
			slog.String("key", entry.Key))
		return err
	}

	if entry.Word == "" {
		query := `DELETE FROM entries WHERE workspace_id = $1 AND key = $2`
		if _, err := s.db.ExecContext(ctx, query, entry.WorkspaceID, entry.Key); err != nil {
			log.Error("failed to clear entry",
				slog.String("error", err.Error()),
				slog.String("workspace_id", entry.WorkspaceID.String()),
				slog.String("key", entry.Key))
			return err
		}
		log.Debug("entry cleared",
			slog.String("workspace_id", entry.WorkspaceID.String()),
			slog.String("key", entry.Key))
		return nil
	}

	query := `
		INSERT INTO entries (workspace_id, key, word, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (workspace_id, key)
		DO UPDATE SET word = EXCLUDED.word, updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		entry.WorkspaceID,
		entry.Key,
		entry.Word,
		entry.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during entry upsert",
				slog.String("workspace_id", entry.WorkspaceID.String()),
				slog.String("key", entry.Key))
			return fmt.Errorf("%w: workspace with ID %s not found",
				store.ErrInvalidEntity, entry.WorkspaceID)
		}
		if isCheckViolation(err) {
			log.Warn("check violation during entry upsert",
				slog.String("workspace_id", entry.WorkspaceID.String()),
				slog.String("key", entry.Key))
			return domain.ErrEntryKeyInvalid
		}

		log.Error("failed to upsert entry",
			slog.String("error", err.Error()),
			slog.String("workspace_id", entry.WorkspaceID.String()),
			slog.String("key", entry.Key))
		return err
	}

	log.Debug("entry upserted",
		slog.String("workspace_id", entry.WorkspaceID.String()),
		slog.String("key", entry.Key))
	return nil
}

// ListByWorkspace implements store.EntryStore.ListByWorkspace
// Returns an empty slice for an empty table.
func (s *PostgresEntryStore) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*domain.WordEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT workspace_id, key, word, updated_at
		FROM entries
		WHERE workspace_id = $1
		ORDER BY key ASC
	`

	rows, err := s.db.QueryContext(ctx, query, workspaceID)
	if err != nil {
		log.Error("failed to list entries",
			slog.String("error", err.Error()),
			slog.String("workspace_id", workspaceID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var entries []*domain.WordEntry
	for rows.Next() {
		var entry domain.WordEntry
		if err := rows.Scan(&entry.WorkspaceID, &entry.Key, &entry.Word, &entry.UpdatedAt); err != nil {
			log.Error("failed to scan entry row",
				slog.String("error", err.Error()))
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	if entries == nil {
		entries = []*domain.WordEntry{}
	}

	return entries, nil
}

// ReplaceAll implements store.EntryStore.ReplaceAll
// It deletes the workspace's rows and inserts the given entries.
// Run it within a transaction via WithTxEntryStore for atomicity.
func (s *PostgresEntryStore) ReplaceAll(ctx context.Context, workspaceID uuid.UUID, entries []*domain.WordEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			log.Warn("entry validation failed during replace",
				slog.String("error", err.Error()),
				slog.String("workspace_id", workspaceID.String()),
				slog.String("key", entry.Key))
			return err
		}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE workspace_id = $1`, workspaceID); err != nil {
		log.Error("failed to clear entries for replace",
			slog.String("error", err.Error()),
			slog.String("workspace_id", workspaceID.String()))
		return err
	}

	query := `
		INSERT INTO entries (workspace_id, key, word, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	for _, entry := range entries {
		if entry.Word == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, query, workspaceID, entry.Key, entry.Word, entry.UpdatedAt); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: workspace with ID %s not found",
					store.ErrInvalidEntity, workspaceID)
			}
			log.Error("failed to insert entry during replace",
				slog.String("error", err.Error()),
				slog.String("workspace_id", workspaceID.String()),
				slog.String("key", entry.Key))
			return err
		}
	}

	log.Info("entries replaced",
		slog.String("workspace_id", workspaceID.String()),
		slog.Int("count", len(entries)))
	return nil
}

// WithTxEntryStore implements store.EntryStore.WithTxEntryStore
// It returns a new EntryStore bound to the provided transaction.
func (s *PostgresEntryStore) WithTxEntryStore(tx *sql.Tx) store.EntryStore {
	return &PostgresEntryStore{
		db:     tx,
		logger: s.logger,
	}
}
