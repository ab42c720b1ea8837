package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/service"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"access_token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	// RefreshToken is the JWT refresh token used to obtain a new token pair
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateWorkspaceRequest defines the payload for creating a workspace.
type CreateWorkspaceRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// RenameWorkspaceRequest defines the payload for renaming a workspace.
type RenameWorkspaceRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// WorkspaceResponse is the API representation of a workspace.
type WorkspaceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// newWorkspaceResponse converts a domain workspace for the wire.
func newWorkspaceResponse(ws *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:        ws.ID,
		Name:      ws.Name,
		CreatedAt: ws.CreatedAt,
		UpdatedAt: ws.UpdatedAt,
	}
}

// SetWordRequest defines the payload for setting a key's word.
// An empty word clears the entry.
type SetWordRequest struct {
	Word string `json:"word" validate:"max=100"`
}

// EntryResponse is the API representation of a word entry.
type EntryResponse struct {
	Key       string    `json:"key"`
	Word      string    `json:"word"`
	UpdatedAt time.Time `json:"updated_at"`
}

// newEntryResponse converts a domain entry for the wire.
func newEntryResponse(entry *domain.WordEntry) EntryResponse {
	return EntryResponse{
		Key:       entry.Key,
		Word:      entry.Word,
		UpdatedAt: entry.UpdatedAt,
	}
}

// EntriesResponse wraps a workspace's entry list.
type EntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ReviewResponse wraps the per-key review items for a workspace.
type ReviewResponse struct {
	Items []service.ReviewItem `json:"items"`
}

// ExportResponse carries a workspace's table as "NN: word" lines.
type ExportResponse struct {
	Table string `json:"table"`
}

// ImportRequest carries a table to import, one "NN: word" entry per line.
type ImportRequest struct {
	Table string `json:"table" validate:"required"`
}

// SuggestResponse carries validated word suggestions for a key.
type SuggestResponse struct {
	Key   string   `json:"key"`
	Words []string `json:"words"`
}
