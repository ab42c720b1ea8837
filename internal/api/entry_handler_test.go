package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/service"
)

func TestSetWordHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	workspaceID := uuid.New()

	params := func(key string) map[string]string {
		return map[string]string{"id": workspaceID.String(), "key": key}
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		h := NewEntryHandler(&mockEntryService{
			setWordFn: func(ctx context.Context, uid, wid uuid.UUID, key, word string) (*domain.WordEntry, error) {
				assert.Equal(t, "12", key)
				assert.Equal(t, "tin", word)
				return &domain.WordEntry{WorkspaceID: wid, Key: key, Word: word}, nil
			},
		}, &mockSuggestionService{})

		r := newJSONRequest(t, http.MethodPut, "/api/workspaces/"+workspaceID.String()+"/entries/12",
			SetWordRequest{Word: "tin"}, userID, params("12"))
		rec := httptest.NewRecorder()
		h.SetWord(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp EntryResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "12", resp.Key)
		assert.Equal(t, "tin", resp.Word)
	})

	t.Run("clearing a word", func(t *testing.T) {
		t.Parallel()
		h := NewEntryHandler(&mockEntryService{
			setWordFn: func(ctx context.Context, uid, wid uuid.UUID, key, word string) (*domain.WordEntry, error) {
				assert.Empty(t, word)
				return &domain.WordEntry{WorkspaceID: wid, Key: key}, nil
			},
		}, &mockSuggestionService{})

		r := newJSONRequest(t, http.MethodPut, "/api/workspaces/"+workspaceID.String()+"/entries/12",
			SetWordRequest{Word: ""}, userID, params("12"))
		rec := httptest.NewRecorder()
		h.SetWord(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad key", func(t *testing.T) {
		t.Parallel()
		for _, key := range []string{"1", "123", "ab", ""} {
			h := NewEntryHandler(&mockEntryService{}, &mockSuggestionService{})

			r := newJSONRequest(t, http.MethodPut, "/api/workspaces/"+workspaceID.String()+"/entries/"+key,
				SetWordRequest{Word: "tin"}, userID, params(key))
			rec := httptest.NewRecorder()
			h.SetWord(rec, r)

			assert.Equal(t, http.StatusBadRequest, rec.Code, "key %q", key)
		}
	})

	t.Run("foreign workspace", func(t *testing.T) {
		t.Parallel()
		h := NewEntryHandler(&mockEntryService{
			setWordFn: func(ctx context.Context, uid, wid uuid.UUID, key, word string) (*domain.WordEntry, error) {
				return nil, service.ErrWorkspaceNotOwned
			},
		}, &mockSuggestionService{})

		r := newJSONRequest(t, http.MethodPut, "/api/workspaces/"+workspaceID.String()+"/entries/12",
			SetWordRequest{Word: "tin"}, userID, params("12"))
		rec := httptest.NewRecorder()
		h.SetWord(rec, r)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestListEntriesHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	workspaceID := uuid.New()

	h := NewEntryHandler(&mockEntryService{
		listFn: func(ctx context.Context, uid, wid uuid.UUID) ([]*domain.WordEntry, error) {
			return []*domain.WordEntry{
				{WorkspaceID: wid, Key: "12", Word: "tin"},
				{WorkspaceID: wid, Key: "40", Word: "rose"},
			}, nil
		},
	}, &mockSuggestionService{})

	r := newJSONRequest(t, http.MethodGet, "/api/workspaces/"+workspaceID.String()+"/entries",
		nil, userID, map[string]string{"id": workspaceID.String()})
	rec := httptest.NewRecorder()
	h.List(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp EntriesResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "tin", resp.Entries[0].Word)
	assert.Equal(t, "rose", resp.Entries[1].Word)
}

func TestReviewHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	workspaceID := uuid.New()

	h := NewEntryHandler(&mockEntryService{
		reviewFn: func(ctx context.Context, uid, wid uuid.UUID) ([]service.ReviewItem, error) {
			return []service.ReviewItem{
				{Key: "12", Word: "tin", Valid: true, Positions: []string{}, Conflicts: []string{}},
				{Key: "21", Word: "moon", Valid: false, Positions: []string{"32"}, Conflicts: []string{}},
			}, nil
		},
	}, &mockSuggestionService{})

	r := newJSONRequest(t, http.MethodGet, "/api/workspaces/"+workspaceID.String()+"/review",
		nil, userID, map[string]string{"id": workspaceID.String()})
	rec := httptest.NewRecorder()
	h.Review(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ReviewResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].Valid)
	assert.False(t, resp.Items[1].Valid)
	assert.Equal(t, []string{"32"}, resp.Items[1].Positions)
}

func TestSuggestHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	workspaceID := uuid.New()

	params := func(key string) map[string]string {
		return map[string]string{"id": workspaceID.String(), "key": key}
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		h := NewEntryHandler(&mockEntryService{}, &mockSuggestionService{
			suggestFn: func(ctx context.Context, uid, wid uuid.UUID, key string) ([]string, error) {
				assert.Equal(t, "12", key)
				return []string{"tin", "dune"}, nil
			},
		})

		r := newJSONRequest(t, http.MethodGet, "/api/workspaces/"+workspaceID.String()+"/suggest/12",
			nil, userID, params("12"))
		rec := httptest.NewRecorder()
		h.Suggest(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp SuggestResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "12", resp.Key)
		assert.Equal(t, []string{"tin", "dune"}, resp.Words)
	})

	t.Run("bad key", func(t *testing.T) {
		t.Parallel()
		h := NewEntryHandler(&mockEntryService{}, &mockSuggestionService{})

		r := newJSONRequest(t, http.MethodGet, "/api/workspaces/"+workspaceID.String()+"/suggest/xx",
			nil, userID, params("xx"))
		rec := httptest.NewRecorder()
		h.Suggest(rec, r)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("suggestions disabled", func(t *testing.T) {
		t.Parallel()
		h := NewEntryHandler(&mockEntryService{}, &mockSuggestionService{
			suggestFn: func(ctx context.Context, uid, wid uuid.UUID, key string) ([]string, error) {
				return nil, service.ErrSuggestionsDisabled
			},
		})

		r := newJSONRequest(t, http.MethodGet, "/api/workspaces/"+workspaceID.String()+"/suggest/12",
			nil, userID, params("12"))
		rec := httptest.NewRecorder()
		h.Suggest(rec, r)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
