package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/pegword-api/internal/api/shared"
	"github.com/phrazzld/pegword-api/internal/domain"
	"github.com/phrazzld/pegword-api/internal/service"
)

// EntryHandler handles word-entry API requests: setting words, listing the
// table, reviewing it, and requesting suggestions.
type EntryHandler struct {
	entryService      service.EntryService
	suggestionService service.SuggestionService
}

// NewEntryHandler creates a new EntryHandler with the given dependencies.
func NewEntryHandler(
	entryService service.EntryService,
	suggestionService service.SuggestionService,
) *EntryHandler {
	return &EntryHandler{
		entryService:      entryService,
		suggestionService: suggestionService,
	}
}

// getPathKey extracts and validates the two-digit key path parameter.
func getPathKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := chi.URLParam(r, "key")
	if !domain.ValidEntryKey(key) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Key must be exactly two digits")
		return "", false
	}
	return key, true
}

// SetWord handles PUT /api/workspaces/{id}/entries/{key}.
// An empty word clears the entry.
func (h *EntryHandler) SetWord(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requireUserAndWorkspace(w, r)
	if !ok {
		return
	}
	key, ok := getPathKey(w, r)
	if !ok {
		return
	}

	var req SetWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Word is too long")
		return
	}

	entry, err := h.entryService.SetWord(r.Context(), userID, workspaceID, key, req.Word)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newEntryResponse(entry))
}

// List handles GET /api/workspaces/{id}/entries.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requireUserAndWorkspace(w, r)
	if !ok {
		return
	}

	entries, err := h.entryService.List(r.Context(), userID, workspaceID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	resp := EntriesResponse{Entries: make([]EntryResponse, 0, len(entries))}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, newEntryResponse(entry))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Review handles GET /api/workspaces/{id}/review.
func (h *EntryHandler) Review(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requireUserAndWorkspace(w, r)
	if !ok {
		return
	}

	items, err := h.entryService.Review(r.Context(), userID, workspaceID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ReviewResponse{Items: items})
}

// Suggest handles GET /api/workspaces/{id}/suggest/{key}.
func (h *EntryHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requireUserAndWorkspace(w, r)
	if !ok {
		return
	}
	key, ok := getPathKey(w, r)
	if !ok {
		return
	}

	words, err := h.suggestionService.Suggest(r.Context(), userID, workspaceID, key)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuggestResponse{Key: key, Words: words})
}
