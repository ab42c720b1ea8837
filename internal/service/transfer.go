package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/store"
)

// ImportLineError describes one rejected line of an import payload.
type ImportLineError struct {
	// Line is the 1-based line number in the payload.
	Line int `json:"line"`

	// Text is the offending line, trimmed.
	Text string `json:"text"`

	// Reason is a human-readable description of the problem.
	Reason string `json:"reason"`
}

// ImportResult summarizes a table import.
type ImportResult struct {
	// Imported is the number of entries written.
	Imported int `json:"imported"`

	// Errors lists the rejected lines. A payload can partially succeed:
	// valid lines are imported, bad lines are reported here.
	Errors []ImportLineError `json:"errors"`
}

// TransferService moves whole peg-word tables in and out as plain text.
// The format is one entry per line, "NN: word", sorted by key on export.
type TransferService interface {
	// Export renders the workspace's filled entries as text.
	Export(ctx context.Context, userID, workspaceID uuid.UUID) (string, error)

	// Import replaces the workspace's entire table with the parsed payload.
	// Parsing is tolerant: blank lines are skipped, malformed lines are
	// reported per line, and a key appearing twice keeps its last word.
	// The replacement itself is atomic.
	Import(ctx context.Context, userID, workspaceID uuid.UUID, payload string) (*ImportResult, error)
}

// transferServiceImpl implements the TransferService interface
type transferServiceImpl struct {
	workspaceStore store.WorkspaceStore
	entryStore     store.EntryStore
	logger         *slog.Logger

	// runTx wraps store.RunInTransaction over the application's database
	// handle. A field rather than a direct call so tests can substitute it.
	runTx func(ctx context.Context, fn store.TxFn) error
}

// NewTransferService creates a new TransferService.
// The database handle is required for atomic import.
func NewTransferService(
	db *sql.DB,
	workspaceStore store.WorkspaceStore,
	entryStore store.EntryStore,
	logger *slog.Logger,
) (TransferService, error) {
	if db == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "db cannot be nil",
		}
	}
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

	if logger == nil {
		logger = slog.Default()
	}

	return &transferServiceImpl{
		workspaceStore: workspaceStore,
		entryStore:     entryStore,
		logger:         logger.With("component", "transfer_service"),
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
	}, nil
}

// authorize fetches the workspace and verifies ownership.
func (s *transferServiceImpl) authorize(
	ctx context.Context,
	userID, workspaceID uuid.UUID,
) error {
	ws, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	if ws.UserID != userID {
		s.logger.Warn("workspace access denied",
			"workspace_id", workspaceID,
			"owner_id", ws.UserID,
			"user_id", userID)
		return ErrWorkspaceNotOwned
	}
	return nil
}

// Export implements TransferService.Export
func (s *transferServiceImpl) Export(
	ctx context.Context,
	userID, workspaceID uuid.UUID,
) (string, error) {
	if err := s.authorize(ctx, userID, workspaceID); err != nil {
		return "", err
	}

	entries, err := s.entryStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		s.logger.Error("failed to list entries for export",
			"error", err,
			"workspace_id", workspaceID)
		return "", NewServiceError("export", "failed to list entries", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	var b strings.Builder
	for _, entry := range entries {
		if entry.Word == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", entry.Key, entry.Word)
	}

	s.logger.Info("workspace exported",
		"workspace_id", workspaceID,
		"entries", len(entries))
	return b.String(), nil
}

// Import implements TransferService.Import
func (s *transferServiceImpl) Import(
	ctx context.Context,
	userID, workspaceID uuid.UUID,
	payload string,
) (*ImportResult, error) {
	if err := s.authorize(ctx, userID, workspaceID); err != nil {
		return nil, err
	}

	parsed, lineErrors := parseTable(payload)

	entries := make([]*domain.WordEntry, 0, len(parsed))
	for key, word := range parsed {
		entry, err := domain.NewWordEntry(workspaceID, key, word)
		if err != nil {
			// parseTable already rejected bad keys; this guards word length.
			lineErrors = append(lineErrors, ImportLineError{
				Text:   fmt.Sprintf("%s: %s", key, word),
				Reason: err.Error(),
			})
			continue
		}
		entries = append(entries, entry)
	}

	err := s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.entryStore.WithTxEntryStore(tx)
		return txStore.ReplaceAll(ctx, workspaceID, entries)
	})
	if err != nil {
		s.logger.Error("failed to import entries",
			"error", err,
			"workspace_id", workspaceID)
		return nil, NewServiceError("import", "failed to replace entries", err)
	}

	sort.Slice(lineErrors, func(i, j int) bool { return lineErrors[i].Line < lineErrors[j].Line })

	s.logger.Info("workspace imported",
		"workspace_id", workspaceID,
		"imported", len(entries),
		"rejected", len(lineErrors))
	return &ImportResult{
		Imported: len(entries),
		Errors:   lineErrors,
	}, nil
}

// parseTable parses "NN: word" lines into a key-to-word map.
// Blank lines are skipped. A repeated key keeps its last word.
func parseTable(payload string) (map[string]string, []ImportLineError) {
	parsed := make(map[string]string)
	var lineErrors []ImportLineError

	for i, line := range strings.Split(payload, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, word, found := strings.Cut(line, ":")
		if !found {
			lineErrors = append(lineErrors, ImportLineError{
				Line:   i + 1,
				Text:   line,
				Reason: "missing ':' separator",
			})
			continue
		}

		key = strings.TrimSpace(key)
		if !domain.ValidEntryKey(key) {
			lineErrors = append(lineErrors, ImportLineError{
				Line:   i + 1,
				Text:   line,
				Reason: "key must be exactly two digits",
			})
			continue
		}

		word = strings.TrimSpace(word)
		if word == "" {
			// A bare "NN:" clears the key, same as omitting the line.
			delete(parsed, key)
			continue
		}

		parsed[key] = word
	}

	return parsed, lineErrors
}
