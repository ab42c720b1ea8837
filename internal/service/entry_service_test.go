package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/domain/homonym"
	"github.com/phrazzld/pegword-api/internal/domain/major"
)

// soundAlike keys words by a fixed homonym table so review tests do not
// depend on the production phonetic algorithm.
type soundAlike struct{}

func (soundAlike) Key(word string) string {
	switch word {
	case "there", "their":
		return "0R"
	default:
		return word
	}
}

// entryFixture wires an EntryService over in-memory stores with one
// workspace already created.
type entryFixture struct {
	svc         EntryService
	workspaces  *mockWorkspaceStore
	entries     *mockEntryStore
	userID      uuid.UUID
	workspaceID uuid.UUID
}

func newEntryFixture(t *testing.T) *entryFixture {
	t.Helper()

	workspaces := newMockWorkspaceStore()
	entries := newMockEntryStore()

	userID := uuid.New()
	ws, err := domain.NewWorkspace(userID, "test")
	require.NoError(t, err)
	require.NoError(t, workspaces.Create(context.Background(), ws))

	svc, err := NewEntryService(
		workspaces,
		entries,
		major.NewDefaultService(),
		homonym.NewGrouper(soundAlike{}, nil),
		nil,
	)
	require.NoError(t, err)

	return &entryFixture{
		svc:         svc,
		workspaces:  workspaces,
		entries:     entries,
		userID:      userID,
		workspaceID: ws.ID,
	}
}

func TestNewEntryService(t *testing.T) {
	t.Parallel()

	_, err := NewEntryService(nil, newMockEntryStore(), major.NewDefaultService(), homonym.NewGrouper(nil, nil), nil)
	assert.Error(t, err)

	_, err = NewEntryService(newMockWorkspaceStore(), nil, major.NewDefaultService(), homonym.NewGrouper(nil, nil), nil)
	assert.Error(t, err)

	_, err = NewEntryService(newMockWorkspaceStore(), newMockEntryStore(), nil, homonym.NewGrouper(nil, nil), nil)
	assert.Error(t, err)

	_, err = NewEntryService(newMockWorkspaceStore(), newMockEntryStore(), major.NewDefaultService(), nil, nil)
	assert.Error(t, err)
}

func TestSetWord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEntryFixture(t)

	entry, err := f.svc.SetWord(ctx, f.userID, f.workspaceID, "12", "tan")
	require.NoError(t, err)
	assert.Equal(t, "12", entry.Key)
	assert.Equal(t, "tan", entry.Word)

	t.Run("invalid word is still stored", func(t *testing.T) {
		_, err := f.svc.SetWord(ctx, f.userID, f.workspaceID, "34", "cat")
		require.NoError(t, err)

		listed, err := f.svc.List(ctx, f.userID, f.workspaceID)
		require.NoError(t, err)
		assert.Len(t, listed, 2)
	})

	t.Run("empty word clears the entry", func(t *testing.T) {
		_, err := f.svc.SetWord(ctx, f.userID, f.workspaceID, "34", "")
		require.NoError(t, err)

		listed, err := f.svc.List(ctx, f.userID, f.workspaceID)
		require.NoError(t, err)
		assert.Len(t, listed, 1)
		assert.Equal(t, "12", listed[0].Key)
	})

	t.Run("bad key", func(t *testing.T) {
		_, err := f.svc.SetWord(ctx, f.userID, f.workspaceID, "1", "tea")
		assert.ErrorIs(t, err, domain.ErrEntryKeyInvalid)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		_, err := f.svc.SetWord(ctx, uuid.New(), f.workspaceID, "12", "tan")
		assert.ErrorIs(t, err, ErrWorkspaceNotOwned)
	})
}

func TestReview(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEntryFixture(t)

	// "tan" encodes 12 (valid); "moon" encodes 32, filed under 21 (invalid);
	// "there"/"their" are homonyms of each other.
	seed := map[string]string{
		"12": "tan",
		"21": "moon",
		"14": "there",
		"15": "their",
	}
	for key, word := range seed {
		_, err := f.svc.SetWord(ctx, f.userID, f.workspaceID, key, word)
		require.NoError(t, err)
	}

	items, err := f.svc.Review(ctx, f.userID, f.workspaceID)
	require.NoError(t, err)
	require.Len(t, items, 4)

	byKey := make(map[string]ReviewItem, len(items))
	for _, item := range items {
		byKey[item.Key] = item
	}

	t.Run("sorted by key", func(t *testing.T) {
		assert.Equal(t, "12", items[0].Key)
		assert.Equal(t, "21", items[3].Key)
	})

	t.Run("valid word", func(t *testing.T) {
		item := byKey["12"]
		assert.True(t, item.Valid)
		assert.NotContains(t, item.Positions, "12", "own key is excluded from positions")
		assert.Empty(t, item.Conflicts)
	})

	t.Run("misfiled word", func(t *testing.T) {
		item := byKey["21"]
		assert.False(t, item.Valid)
		assert.Contains(t, item.Positions, "32", "moon encodes 32")
	})

	t.Run("homonym conflicts", func(t *testing.T) {
		assert.Equal(t, []string{"15"}, byKey["14"].Conflicts)
		assert.Equal(t, []string{"14"}, byKey["15"].Conflicts)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		_, err := f.svc.Review(ctx, uuid.New(), f.workspaceID)
		assert.ErrorIs(t, err, ErrWorkspaceNotOwned)
	})
}

func TestReviewEmptyWorkspace(t *testing.T) {
	t.Parallel()

	f := newEntryFixture(t)
	items, err := f.svc.Review(context.Background(), f.userID, f.workspaceID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
