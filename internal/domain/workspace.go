package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Workspace-specific validation errors
var (
	// ErrWorkspaceIDEmpty is returned when a workspace ID is empty or nil.
	ErrWorkspaceIDEmpty = errors.New("workspace ID cannot be empty")

	// ErrWorkspaceUserIDEmpty is returned when a workspace's user ID is empty or nil.
	ErrWorkspaceUserIDEmpty = errors.New("workspace user ID cannot be empty")

	// ErrWorkspaceNameEmpty is returned when a workspace's name is empty.
	ErrWorkspaceNameEmpty = errors.New("workspace name cannot be empty")

	// ErrWorkspaceNameTooLong is returned when a workspace's name exceeds 100 characters.
	ErrWorkspaceNameTooLong = errors.New("workspace name cannot exceed 100 characters")
)

// Workspace is one named peg-word table, the "tab" in the browser UI.
// Each workspace owns up to 100 word entries, one per two-digit key.
type Workspace struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWorkspace creates a new Workspace with the given user ID and name.
// It generates a new UUID for the workspace ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewWorkspace(userID uuid.UUID, name string) (*Workspace, error) {
	ws := &Workspace{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := ws.Validate(); err != nil {
		return nil, err
	}

	return ws, nil
}

// Validate checks if the Workspace has valid data.
// Returns an error if any field fails validation.
func (w *Workspace) Validate() error {
	if w.ID == uuid.Nil {
		return ErrWorkspaceIDEmpty
	}

	if w.UserID == uuid.Nil {
		return ErrWorkspaceUserIDEmpty
	}

	if w.Name == "" {
		return ErrWorkspaceNameEmpty
	}

	if len(w.Name) > 100 {
		return ErrWorkspaceNameTooLong
	}

	return nil
}

// Rename updates the workspace's name and the UpdatedAt timestamp.
// Returns an error if the new name is invalid.
func (w *Workspace) Rename(name string) error {
	origName := w.Name
	w.Name = name

	if err := w.Validate(); err != nil {
		w.Name = origName
		return err
	}

	w.UpdatedAt = time.Now().UTC()
	return nil
}
