package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/domain/homonym"
	"github.com/phrazzld/pegword-api/internal/domain/major"
	"github.com/phrazzld/pegword-api/internal/store"
)

// ReviewItem is the per-key result of reviewing a workspace's table.
type ReviewItem struct {
	// Key is the two-digit number the word is filed under.
	Key string `json:"key"`

	// Word is the stored peg word.
	Word string `json:"word"`

	// Valid reports whether the word phonetically encodes its own key.
	Valid bool `json:"valid"`

	// Positions lists the other keys the word would be valid for, in
	// ascending order. The word's own key is excluded.
	Positions []string `json:"positions"`

	// Conflicts lists the keys whose words are acoustic homonyms of this
	// word, in ascending order. Empty when the word is unambiguous.
	Conflicts []string `json:"conflicts"`
}

// EntryService provides word-entry operations with ownership checks.
type EntryService interface {
	// SetWord stores (or, with an empty word, clears) the entry for the key.
	// The word is validated against the key's digits; an invalid word is
	// still stored, since the table is the user's to fill, and the review
	// operation reports the mismatch.
	SetWord(ctx context.Context, userID, workspaceID uuid.UUID, key, word string) (*domain.WordEntry, error)

	// List returns the workspace's entries in ascending key order.
	List(ctx context.Context, userID, workspaceID uuid.UUID) ([]*domain.WordEntry, error)

	// Review analyzes the workspace's filled entries: per-key phonetic
	// validity, alternative positions, and homonym conflicts.
	Review(ctx context.Context, userID, workspaceID uuid.UUID) ([]ReviewItem, error)
}

// entryServiceImpl implements the EntryService interface
type entryServiceImpl struct {
	workspaceStore store.WorkspaceStore
	entryStore     store.EntryStore
	major          major.Service
	grouper        *homonym.Grouper
	logger         *slog.Logger
}

// NewEntryService creates a new EntryService.
// It returns an error if any of the required dependencies are nil.
func NewEntryService(
	workspaceStore store.WorkspaceStore,
	entryStore store.EntryStore,
	majorService major.Service,
	grouper *homonym.Grouper,
	logger *slog.Logger,
) (EntryService, error) {
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
	if grouper == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "grouper cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &entryServiceImpl{
		workspaceStore: workspaceStore,
		entryStore:     entryStore,
		major:          majorService,
		grouper:        grouper,
		logger:         logger.With("component", "entry_service"),
	}, nil
}

// authorize fetches the workspace and verifies ownership.
func (s *entryServiceImpl) authorize(
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

// SetWord stores or clears the entry for the key after verifying ownership.
func (s *entryServiceImpl) SetWord(
	ctx context.Context,
	userID, workspaceID uuid.UUID,
	key, word string,
) (*domain.WordEntry, error) {
	if _, err := s.authorize(ctx, userID, workspaceID); err != nil {
		return nil, err
	}

	entry, err := domain.NewWordEntry(workspaceID, key, word)
	if err != nil {
		s.logger.Warn("invalid entry data",
			"error", err,
			"workspace_id", workspaceID,
			"key", key)
		return nil, err
	}

	if err := s.entryStore.Upsert(ctx, entry); err != nil {
		s.logger.Error("failed to store entry",
			"error", err,
			"workspace_id", workspaceID,
			"key", key)
		return nil, NewServiceError("set_word", "failed to store entry", err)
	}

	s.logger.Info("entry stored",
		"workspace_id", workspaceID,
		"key", key,
		"cleared", word == "")
	return entry, nil
}

// List returns the workspace's entries after verifying ownership.
func (s *entryServiceImpl) List(
	ctx context.Context,
	userID, workspaceID uuid.UUID,
) ([]*domain.WordEntry, error) {
	if _, err := s.authorize(ctx, userID, workspaceID); err != nil {
		return nil, err
	}

	entries, err := s.entryStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		s.logger.Error("failed to list entries",
			"error", err,
			"workspace_id", workspaceID)
		return nil, NewServiceError("list_entries", "failed to list entries", err)
	}
	return entries, nil
}

// Review analyzes the workspace's filled entries after verifying ownership.
// Each entry's digit sequence is computed once, via ValidPositions.
func (s *entryServiceImpl) Review(
	ctx context.Context,
	userID, workspaceID uuid.UUID,
) ([]ReviewItem, error) {
	if _, err := s.authorize(ctx, userID, workspaceID); err != nil {
		return nil, err
	}

	entries, err := s.entryStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		s.logger.Error("failed to list entries for review",
			"error", err,
			"workspace_id", workspaceID)
		return nil, NewServiceError("review", "failed to list entries", err)
	}

	words := make(map[string]string, len(entries))
	for _, entry := range entries {
		words[entry.Key] = entry.Word
	}
	conflicts := s.grouper.Conflicts(words)

	items := make([]ReviewItem, 0, len(entries))
	for _, entry := range entries {
		positions := s.major.ValidPositions(entry.Word)

		valid := false
		others := make([]string, 0, len(positions))
		for _, pos := range positions {
			if pos == entry.Key {
				valid = true
				continue
			}
			others = append(others, pos)
		}

		entryConflicts := conflicts[entry.Key]
		if entryConflicts == nil {
			entryConflicts = []string{}
		}

		items = append(items, ReviewItem{
			Key:       entry.Key,
			Word:      entry.Word,
			Valid:     valid,
			Positions: others,
			Conflicts: entryConflicts,
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })

	s.logger.Debug("workspace reviewed",
		"workspace_id", workspaceID,
		"entries", len(items))
	return items, nil
}
