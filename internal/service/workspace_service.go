package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/store"
)

// WorkspaceService provides workspace ("tab") operations with ownership checks.
// Every method verifies that the workspace belongs to the requesting user
// before touching it, so handlers never need their own authorization logic.
type WorkspaceService interface {
	// Create makes a new, empty workspace for the user.
	Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Workspace, error)

	// Get retrieves a workspace owned by the user.
	// Returns store.ErrWorkspaceNotFound or ErrWorkspaceNotOwned.
	Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.Workspace, error)

	// List returns the user's workspaces, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Workspace, error)

	// Rename changes a workspace's name.
	Rename(ctx context.Context, userID, workspaceID uuid.UUID, name string) (*domain.Workspace, error)

	// Delete removes a workspace and, via the schema, all of its entries.
	Delete(ctx context.Context, userID, workspaceID uuid.UUID) error
}

// workspaceServiceImpl implements the WorkspaceService interface
type workspaceServiceImpl struct {
	workspaceStore store.WorkspaceStore
	logger         *slog.Logger
}

// NewWorkspaceService creates a new WorkspaceService.
// It returns an error if the workspace store is nil.
func NewWorkspaceService(
	workspaceStore store.WorkspaceStore,
	logger *slog.Logger,
) (WorkspaceService, error) {
	if workspaceStore == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "workspaceStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &workspaceServiceImpl{
		workspaceStore: workspaceStore,
		logger:         logger.With("component", "workspace_service"),
	}, nil
}

// authorize fetches the workspace and verifies ownership.
func (s *workspaceServiceImpl) authorize(
	ctx context.Context,
	userID, workspaceID uuid.UUID,
) (*domain.Workspace, error) {
	ws, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if ws.UserID != userID {
		s.logger.Warn("workspace access denied",
			"workspace_id", workspaceID,
			"owner_id", ws.UserID,
			"user_id", userID)
		return nil, ErrWorkspaceNotOwned
	}
	return ws, nil
}

// Create makes a new workspace owned by the user.
func (s *workspaceServiceImpl) Create(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) (*domain.Workspace, error) {
	ws, err := domain.NewWorkspace(userID, name)
	if err != nil {
		s.logger.Warn("invalid workspace data",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	if err := s.workspaceStore.Create(ctx, ws); err != nil {
		if errors.Is(err, store.ErrWorkspaceNameExists) {
			return nil, err
		}
		s.logger.Error("failed to create workspace",
			"error", err,
			"user_id", userID)
		return nil, NewServiceError("create_workspace", "failed to save workspace", err)
	}

	s.logger.Info("workspace created",
		"workspace_id", ws.ID,
		"user_id", userID)
	return ws, nil
}

// Get retrieves a workspace after verifying ownership.
func (s *workspaceServiceImpl) Get(
	ctx context.Context,
	userID, workspaceID uuid.UUID,
) (*domain.Workspace, error) {
	return s.authorize(ctx, userID, workspaceID)
}

// List returns all workspaces owned by the user.
func (s *workspaceServiceImpl) List(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Workspace, error) {
	workspaces, err := s.workspaceStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list workspaces",
			"error", err,
			"user_id", userID)
		return nil, NewServiceError("list_workspaces", "failed to list workspaces", err)
	}
	return workspaces, nil
}

// Rename changes the workspace's name after verifying ownership.
func (s *workspaceServiceImpl) Rename(
	ctx context.Context,
	userID, workspaceID uuid.UUID,
	name string,
) (*domain.Workspace, error) {
	ws, err := s.authorize(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}

	if err := ws.Rename(name); err != nil {
		s.logger.Warn("invalid workspace name",
			"error", err,
			"workspace_id", workspaceID)
		return nil, err
	}

	if err := s.workspaceStore.Update(ctx, ws); err != nil {
		if errors.Is(err, store.ErrWorkspaceNameExists) ||
			errors.Is(err, store.ErrWorkspaceNotFound) {
			return nil, err
		}
		s.logger.Error("failed to rename workspace",
			"error", err,
			"workspace_id", workspaceID)
		return nil, NewServiceError("rename_workspace", "failed to save workspace", err)
	}

	s.logger.Info("workspace renamed",
		"workspace_id", workspaceID,
		"user_id", userID)
	return ws, nil
}

// Delete removes the workspace after verifying ownership.
func (s *workspaceServiceImpl) Delete(
	ctx context.Context,
	userID, workspaceID uuid.UUID,
) error {
	if _, err := s.authorize(ctx, userID, workspaceID); err != nil {
		return err
	}

	if err := s.workspaceStore.Delete(ctx, workspaceID); err != nil {
		if errors.Is(err, store.ErrWorkspaceNotFound) {
			return err
		}
		s.logger.Error("failed to delete workspace",
			"error", err,
			"workspace_id", workspaceID)
		return NewServiceError("delete_workspace", "failed to delete workspace", err)
	}

	s.logger.Info("workspace deleted",
		"workspace_id", workspaceID,
		"user_id", userID)
	return nil
}
