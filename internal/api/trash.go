package api

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fixadd/BilgiislemTool/internal/store"
)

// TrashHandler handles trash inspection and permanent deletion.
type TrashHandler struct {
	DB *sql.DB
}

// List handles GET /api/trash/{category}.
func (h *TrashHandler) List(w http.ResponseWriter, r *http.Request) {
	family, err := store.FamilyFor(r.PathValue("category"))
	if err != nil {
		storeError(w, err)
		return
	}

	records, err := store.ListTrash(r.Context(), h.DB, family)
	if err != nil {
		storeError(w, err)
		return
	}
	if records == nil {
		records = []store.TrashRecord{}
	}
	jsonResponse(w, http.StatusOK, records)
}

type permanentDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// Delete handles POST /api/trash/{category}/delete. Only rows already in
// the trash can be wiped; active records are out of reach.
func (h *TrashHandler) Delete(w http.ResponseWriter, r *http.Request) {
	family, err := store.FamilyFor(r.PathValue("category"))
	if err != nil {
		storeError(w, err)
		return
	}

	var req permanentDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		jsonError(w, http.StatusBadRequest, "ids are required")
		return
	}

	claims := GetClaims(r.Context())
	if err := store.PermanentDelete(r.Context(), h.DB, family, req.IDs); err != nil {
		storeError(w, err)
		return
	}
	store.LogAction(r.Context(), h.DB, claims.Username,
		fmt.Sprintf("permanently deleted %d %s records", len(req.IDs), family.Category))

	slog.Info("trash wiped", "user", claims.Username,
		"category", family.Category, "count", len(req.IDs))
	w.WriteHeader(http.StatusNoContent)
}
