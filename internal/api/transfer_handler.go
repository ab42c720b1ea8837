package api

import (
	"net/http"

	"github.com/phrazzld/pegword-api/internal/api/shared"
	"github.com/phrazzld/pegword-api/internal/service"
)

// TransferHandler handles table export and import requests.
type TransferHandler struct {
	transferService service.TransferService
}

// NewTransferHandler creates a new TransferHandler with the given dependencies.
func NewTransferHandler(transferService service.TransferService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// Export handles GET /api/workspaces/{id}/export.
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requireUserAndWorkspace(w, r)
	if !ok {
		return
	}

	table, err := h.transferService.Export(r.Context(), userID, workspaceID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ExportResponse{Table: table})
}

// Import handles POST /api/workspaces/{id}/import.
// The whole table is replaced; bad lines are reported without failing the
// rest of the payload.
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID, workspaceID, ok := requireUserAndWorkspace(w, r)
	if !ok {
		return
	}

	var req ImportRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Table payload is required")
		return
	}

	result, err := h.transferService.Import(r.Context(), userID, workspaceID, req.Table)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
