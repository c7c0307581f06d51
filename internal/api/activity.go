package api

import (
	"database/sql"
	"net/http"

	"github.com/fixadd/BilgiislemTool/internal/model"
	"github.com/fixadd/BilgiislemTool/internal/store"
)

// ActivityHandler exposes the coarse who-did-what diagnostic log.
type ActivityHandler struct {
	DB *sql.DB
}

// List handles GET /api/activity.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pagination")
		return
	}

	entries, err := store.QueryActivity(r.Context(), h.DB, r.URL.Query().Get("actor"), limit, offset)
	if err != nil {
		storeError(w, err)
		return
	}
	if entries == nil {
		entries = []model.ActivityEntry{}
	}
	jsonResponse(w, http.StatusOK, entries)
}
