package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/store"
)

// testLogger returns a logger that discards output, keeping test runs quiet.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// In-memory store fakes for service tests. They implement just enough of the
// store interfaces to exercise the service logic without a database.

type mockUserStore struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	// Mirror the real store: stash the plaintext as the "hash" and clear it.
	user.HashedPassword = "hashed:" + user.Password
	user.Password = ""
	m.users[user.ID] = user
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// fakeVerifier matches the mockUserStore's "hashed:" scheme.
type fakeVerifier struct{}

func (fakeVerifier) Compare(hashedPassword, password string) error {
	if hashedPassword == "hashed:"+password {
		return nil
	}
	return errors.New("password mismatch")
}

type mockWorkspaceStore struct {
	workspaces map[uuid.UUID]*domain.Workspace
	err        error
}

func newMockWorkspaceStore() *mockWorkspaceStore {
	return &mockWorkspaceStore{workspaces: make(map[uuid.UUID]*domain.Workspace)}
}

func (m *mockWorkspaceStore) Create(ctx context.Context, ws *domain.Workspace) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.workspaces {
		if existing.UserID == ws.UserID && existing.Name == ws.Name {
			return store.ErrWorkspaceNameExists
		}
	}
	copied := *ws
	m.workspaces[ws.ID] = &copied
	return nil
}

func (m *mockWorkspaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if m.err != nil {
		return nil, m.err
	}
	ws, ok := m.workspaces[id]
	if !ok {
		return nil, store.ErrWorkspaceNotFound
	}
	copied := *ws
	return &copied, nil
}

func (m *mockWorkspaceStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workspace, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := []*domain.Workspace{}
	for _, ws := range m.workspaces {
		if ws.UserID == userID {
			copied := *ws
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockWorkspaceStore) Update(ctx context.Context, ws *domain.Workspace) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.workspaces[ws.ID]; !ok {
		return store.ErrWorkspaceNotFound
	}
	copied := *ws
	m.workspaces[ws.ID] = &copied
	return nil
}

func (m *mockWorkspaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.workspaces[id]; !ok {
		return store.ErrWorkspaceNotFound
	}
	delete(m.workspaces, id)
	return nil
}

type entryKey struct {
	workspaceID uuid.UUID
	key         string
}

type mockEntryStore struct {
	entries map[entryKey]*domain.WordEntry
	err     error
}

func newMockEntryStore() *mockEntryStore {
	return &mockEntryStore{entries: make(map[entryKey]*domain.WordEntry)}
}

func (m *mockEntryStore) Upsert(ctx context.Context, entry *domain.WordEntry) error {
	if m.err != nil {
		return m.err
	}
	k := entryKey{entry.WorkspaceID, entry.Key}
	if entry.Word == "" {
		delete(m.entries, k)
		return nil
	}
	copied := *entry
	m.entries[k] = &copied
	return nil
}

func (m *mockEntryStore) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*domain.WordEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := []*domain.WordEntry{}
	for k, entry := range m.entries {
		if k.workspaceID == workspaceID {
			copied := *entry
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

func (m *mockEntryStore) ReplaceAll(ctx context.Context, workspaceID uuid.UUID, entries []*domain.WordEntry) error {
	if m.err != nil {
		return m.err
	}
	for k := range m.entries {
		if k.workspaceID == workspaceID {
			delete(m.entries, k)
		}
	}
	for _, entry := range entries {
		if entry.Word == "" {
			continue
		}
		copied := *entry
		m.entries[entryKey{workspaceID, entry.Key}] = &copied
	}
	return nil
}

func (m *mockEntryStore) WithTxEntryStore(tx *sql.Tx) store.EntryStore {
	return m
}

// mockSuggester returns a canned word list.
type mockSuggester struct {
	words []string
	err   error
	// lastExclude records the exclude list passed to Suggest.
	lastExclude []string
}

func (m *mockSuggester) Suggest(ctx context.Context, key string, exclude []string) ([]string, error) {
	m.lastExclude = exclude
	if m.err != nil {
		return nil, m.err
	}
	return m.words, nil
}
