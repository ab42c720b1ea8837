package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/domain/major"
	"github.com/phrazzld/pegword-api/internal/generation"
)

type suggestionFixture struct {
	svc         SuggestionService
	suggester   *mockSuggester
	entries     *mockEntryStore
	userID      uuid.UUID
	workspaceID uuid.UUID
}

func newSuggestionFixture(t *testing.T, suggester generation.Suggester) *suggestionFixture {
	t.Helper()

	workspaces := newMockWorkspaceStore()
	entries := newMockEntryStore()

	userID := uuid.New()
	ws, err := domain.NewWorkspace(userID, "test")
	require.NoError(t, err)
	require.NoError(t, workspaces.Create(context.Background(), ws))

	svc, err := NewSuggestionService(workspaces, entries, suggester, major.NewDefaultService(), testLogger())
	require.NoError(t, err)

	mock, _ := suggester.(*mockSuggester)
	return &suggestionFixture{
		svc:         svc,
		suggester:   mock,
		entries:     entries,
		userID:      userID,
		workspaceID: ws.ID,
	}
}

func TestSuggestDisabled(t *testing.T) {
	t.Parallel()

	f := newSuggestionFixture(t, nil)
	_, err := f.svc.Suggest(context.Background(), f.userID, f.workspaceID, "12")
	assert.ErrorIs(t, err, ErrSuggestionsDisabled)
}

func TestSuggestFiltersInvalidWords(t *testing.T) {
	t.Parallel()

	// "tan" and "dune" encode 12; "cat" (71) and "eye" (no digits) do not.
	f := newSuggestionFixture(t, &mockSuggester{
		words: []string{"tan", "cat", "dune", "eye", "tan"},
	})

	words, err := f.svc.Suggest(context.Background(), f.userID, f.workspaceID, "12")
	require.NoError(t, err)
	assert.Equal(t, []string{"tan", "dune"}, words)
}

func TestSuggestExcludesExistingWords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newSuggestionFixture(t, &mockSuggester{words: []string{"tan", "dune"}})

	entry, err := domain.NewWordEntry(f.workspaceID, "12", "tan")
	require.NoError(t, err)
	require.NoError(t, f.entries.Upsert(ctx, entry))

	words, err := f.svc.Suggest(ctx, f.userID, f.workspaceID, "12")
	require.NoError(t, err)

	assert.Equal(t, []string{"dune"}, words, "existing word is dropped even if the model repeats it")
	assert.Equal(t, []string{"tan"}, f.suggester.lastExclude, "existing words are passed as the exclude list")
}

func TestSuggestErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("bad key", func(t *testing.T) {
		t.Parallel()
		f := newSuggestionFixture(t, &mockSuggester{words: []string{"tan"}})
		_, err := f.svc.Suggest(ctx, f.userID, f.workspaceID, "123")
		assert.ErrorIs(t, err, major.ErrInvalidKey)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		t.Parallel()
		f := newSuggestionFixture(t, &mockSuggester{words: []string{"tan"}})
		_, err := f.svc.Suggest(ctx, uuid.New(), f.workspaceID, "12")
		assert.ErrorIs(t, err, ErrWorkspaceNotOwned)
	})

	t.Run("generation failure is wrapped", func(t *testing.T) {
		t.Parallel()
		f := newSuggestionFixture(t, &mockSuggester{err: generation.ErrTransientFailure})
		_, err := f.svc.Suggest(ctx, f.userID, f.workspaceID, "12")
		require.Error(t, err)

		var svcErr *ServiceError
		assert.True(t, errors.As(err, &svcErr))
		assert.ErrorIs(t, err, generation.ErrTransientFailure)
	})
}
