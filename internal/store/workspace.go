package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/pegword-api/internal/domain"
)

// WorkspaceStore defines the interface for workspace ("tab") persistence.
type WorkspaceStore interface {
	// Create saves a new workspace. Returns ErrWorkspaceNameExists when the
	// user already has a workspace with that name, ErrInvalidEntity when the
	// owning user does not exist, and domain validation errors otherwise.
	Create(ctx context.Context, workspace *domain.Workspace) error

	// GetByID retrieves a workspace by its unique ID.
	// Returns ErrWorkspaceNotFound if the workspace does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)

	// ListByUser returns all workspaces owned by the user, newest first.
	// Returns an empty slice when the user has none.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workspace, error)

	// Update saves changes to an existing workspace (currently its name).
	// Returns ErrWorkspaceNotFound if the workspace does not exist and
	// ErrWorkspaceNameExists on a name collision.
	Update(ctx context.Context, workspace *domain.Workspace) error

	// Delete removes a workspace by its ID. Associated word entries are
	// removed by the schema's ON DELETE CASCADE constraint.
	// Returns ErrWorkspaceNotFound if the workspace does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// EntryStore defines the interface for word-entry persistence.
// A workspace's table logically has 100 keys; unset keys have no row.
type EntryStore interface {
	// Upsert inserts or replaces the entry for its workspace and key.
	// An entry with an empty word deletes the row instead, keeping the
	// stored table sparse. Returns ErrInvalidEntity when the workspace does
	// not exist and domain validation errors otherwise.
	Upsert(ctx context.Context, entry *domain.WordEntry) error

	// ListByWorkspace returns the workspace's entries in ascending key order.
	// Returns an empty slice for an empty table.
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*domain.WordEntry, error)

	// ReplaceAll atomically replaces the workspace's entire table with the
	// given entries. Entries with empty words are skipped. Must be run
	// within a transaction via WithTxEntryStore and RunInTransaction.
	ReplaceAll(ctx context.Context, workspaceID uuid.UUID, entries []*domain.WordEntry) error

	// WithTxEntryStore returns a new EntryStore instance that uses the
	// provided transaction, so multiple operations can execute atomically.
	WithTxEntryStore(tx *sql.Tx) EntryStore
}
