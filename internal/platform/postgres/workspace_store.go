package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/platform/logger"
	"github.com/phrazzld/pegword-api/internal/store"
)

// PostgresWorkspaceStore implements the store.WorkspaceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWorkspaceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWorkspaceStore creates a new PostgreSQL implementation of the
// WorkspaceStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewPostgresWorkspaceStore(db store.DBTX, logger *slog.Logger) *PostgresWorkspaceStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWorkspaceStore{
		db:     db,
		logger: logger.With(slog.String("component", "workspace_store")),
	}
}

// Ensure PostgresWorkspaceStore implements store.WorkspaceStore interface
var _ store.WorkspaceStore = (*PostgresWorkspaceStore)(nil)

// Create implements store.WorkspaceStore.Create
func (s *PostgresWorkspaceStore) Create(ctx context.Context, workspace *domain.Workspace) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := workspace.Validate(); err != nil {
		log.Warn("workspace validation failed during create",
			slog.String("error", err.Error()),
			slog.String("workspace_id", workspace.ID.String()))
		return err
	}

	query := `
		INSERT INTO workspaces (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		workspace.ID,
		workspace.UserID,
		workspace.Name,
		workspace.CreatedAt,
		workspace.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate workspace name during creation",
				slog.String("workspace_id", workspace.ID.String()),
				slog.String("user_id", workspace.UserID.String()))
			return store.ErrWorkspaceNameExists
		}
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during workspace creation",
				slog.String("workspace_id", workspace.ID.String()),
				slog.String("user_id", workspace.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, workspace.UserID)
		}

		log.Error("failed to create workspace",
			slog.String("error", err.Error()),
			slog.String("workspace_id", workspace.ID.String()))
		return err
	}

	log.Info("workspace created successfully",
		slog.String("workspace_id", workspace.ID.String()),
		slog.String("user_id", workspace.UserID.String()))
	return nil
}

// GetByID implements store.WorkspaceStore.GetByID
// Returns store.ErrWorkspaceNotFound if the workspace does not exist.
func (s *PostgresWorkspaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM workspaces
		WHERE id = $1
	`

	var ws domain.Workspace
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&ws.ID,
		&ws.UserID,
		&ws.Name,
		&ws.CreatedAt,
		&ws.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("workspace not found", slog.String("workspace_id", id.String()))
			return nil, store.ErrWorkspaceNotFound
		}
		log.Error("failed to get workspace by ID",
			slog.String("error", err.Error()),
			slog.String("workspace_id", id.String()))
		return nil, err
	}

	return &ws, nil
}

// ListByUser implements store.WorkspaceStore.ListByUser
// Returns an empty slice when the user has no workspaces.
func (s *PostgresWorkspaceStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workspace, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM workspaces
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list workspaces",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var workspaces []*domain.Workspace
	for rows.Next() {
		var ws domain.Workspace
		if err := rows.Scan(&ws.ID, &ws.UserID, &ws.Name, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			log.Error("failed to scan workspace row",
				slog.String("error", err.Error()))
			return nil, err
		}
		workspaces = append(workspaces, &ws)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	if workspaces == nil {
		workspaces = []*domain.Workspace{}
	}

	return workspaces, nil
}

// Update implements store.WorkspaceStore.Update
// Returns store.ErrWorkspaceNotFound if the workspace does not exist.
func (s *PostgresWorkspaceStore) Update(ctx context.Context, workspace *domain.Workspace) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := workspace.Validate(); err != nil {
		log.Warn("workspace validation failed during update",
			slog.String("error", err.Error()),
			slog.String("workspace_id", workspace.ID.String()))
		return err
	}

	query := `
		UPDATE workspaces
		SET name = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		workspace.Name,
		workspace.UpdatedAt,
		workspace.ID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate workspace name during update",
				slog.String("workspace_id", workspace.ID.String()))
			return store.ErrWorkspaceNameExists
		}
		log.Error("failed to update workspace",
			slog.String("error", err.Error()),
			slog.String("workspace_id", workspace.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("workspace_id", workspace.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("workspace not found for update",
			slog.String("workspace_id", workspace.ID.String()))
		return store.ErrWorkspaceNotFound
	}

	log.Info("workspace updated successfully",
		slog.String("workspace_id", workspace.ID.String()))
	return nil
}

// Delete implements store.WorkspaceStore.Delete
// Word entries are removed by ON DELETE CASCADE on the entries table.
// Returns store.ErrWorkspaceNotFound if the workspace does not exist.
func (s *PostgresWorkspaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM workspaces WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete workspace",
			slog.String("error", err.Error()),
			slog.String("workspace_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("workspace_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("workspace not found for delete",
			slog.String("workspace_id", id.String()))
		return store.ErrWorkspaceNotFound
	}

	log.Info("workspace deleted successfully",
		slog.String("workspace_id", id.String()))
	return nil
}
