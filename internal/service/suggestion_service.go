package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/pegword-api/internal/domain/major"
	"github.com/phrazzld/pegword-api/internal/generation"
	"github.com/phrazzld/pegword-api/internal/store"
)

// SuggestionService proposes peg words for a key, backed by an LLM.
// Model output is untrusted: every candidate is re-checked against the major
// system and words that do not encode the key are dropped.
type SuggestionService interface {
	// Suggest returns validated candidate words for the key, excluding words
	// already present in the workspace's table.
	// Returns ErrSuggestionsDisabled when no suggester is configured and
	// major.ErrInvalidKey for malformed keys.
	Suggest(ctx context.Context, userID, workspaceID uuid.UUID, key string) ([]string, error)
}

// suggestionServiceImpl implements the SuggestionService interface
type suggestionServiceImpl struct {
	workspaceStore store.WorkspaceStore
	entryStore     store.EntryStore
	suggester      generation.Suggester
	major          major.Service
	logger         *slog.Logger
}

// NewSuggestionService creates a new SuggestionService.
// A nil suggester is permitted: the feature is optional, and Suggest then
// returns ErrSuggestionsDisabled.
func NewSuggestionService(
	workspaceStore store.WorkspaceStore,
	entryStore store.EntryStore,
	suggester generation.Suggester,
	majorService major.Service,
	logger *slog.Logger,
) (SuggestionService, error) {
	if workspaceStore == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "workspaceStore cannot be nil",
		}
	}
	if entryStore == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "entryStore cannot be nil",
		}
	}
	if majorService == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "majorService cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &suggestionServiceImpl{
		workspaceStore: workspaceStore,
		entryStore:     entryStore,
		suggester:      suggester,
		major:          majorService,
		logger:         logger.With("component", "suggestion_service"),
	}, nil
}

// Suggest implements SuggestionService.Suggest
func (s *suggestionServiceImpl) Suggest(
	ctx context.Context,
	userID, workspaceID uuid.UUID,
	key string,
) ([]string, error) {
	if s.suggester == nil {
		return nil, ErrSuggestionsDisabled
	}

	// Validate the key before spending an API call on it.
	if _, err := s.major.IsValid(key, ""); err != nil {
		return nil, err
	}

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

	entries, err := s.entryStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		s.logger.Error("failed to list entries for suggestion",
			"error", err,
			"workspace_id", workspaceID)
		return nil, NewServiceError("suggest", "failed to list entries", err)
	}

	exclude := make([]string, 0, len(entries))
	taken := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.Word == "" {
			continue
		}
		exclude = append(exclude, entry.Word)
		taken[entry.Word] = true
	}

	candidates, err := s.suggester.Suggest(ctx, key, exclude)
	if err != nil {
		s.logger.Error("suggestion generation failed",
			"error", err,
			"key", key)
		return nil, NewServiceError("suggest", "failed to generate suggestions", err)
	}

	// Keep only words that actually encode the key, in case the model drifts.
	words := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, word := range candidates {
		if seen[word] || taken[word] {
			continue
		}
		ok, err := s.major.IsValid(key, word)
		if err != nil || !ok {
			s.logger.Debug("dropping invalid suggestion",
				"key", key,
				"word", word)
			continue
		}
		seen[word] = true
		words = append(words, word)
	}

	s.logger.Info("suggestions validated",
		"key", key,
		"candidates", len(candidates),
		"kept", len(words))
	return words, nil
}
