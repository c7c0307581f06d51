package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/fixadd/BilgiislemTool/internal/store"
)

// TransfersHandler handles stock-to-record transfer endpoints.
type TransfersHandler struct {
	DB *sql.DB
}

type transferRequest struct {
	StockID    int64  `json:"stock_id"`
	Target     string `json:"target"`
	Quantity   int    `json:"quantity"`
	HolderID   *int64 `json:"holder_id"`
	Department string `json:"department"`
	Label      string `json:"label"`
	UsageArea  string `json:"usage_area"`
	Note       string `json:"note"`
}

func (t *transferRequest) attrs() store.TransferAttrs {
	return store.TransferAttrs{
		HolderID:   t.HolderID,
		Department: t.Department,
		Label:      t.Label,
		UsageArea:  t.UsageArea,
		Note:       t.Note,
	}
}

// Create handles POST /api/transfers.
func (h *TransfersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := GetClaims(r.Context())
	ids, err := store.Transfer(r.Context(), h.DB, req.StockID, req.Target,
		req.Quantity, req.attrs(), claims.UserID, claims.Username)
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("stock transferred", "user", claims.Username,
		"stock", req.StockID, "target", req.Target, "quantity", req.Quantity)
	jsonResponse(w, http.StatusCreated, map[string]any{"created_ids": ids})
}

// Assign handles POST /api/transfers/assign, a transfer that also places
// the created records in someone's custody.
func (h *TransfersHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := GetClaims(r.Context())
	ids, err := store.Assign(r.Context(), h.DB, req.StockID, req.Target,
		req.Quantity, req.attrs(), claims.UserID, claims.Username)
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("stock assigned", "user", claims.Username,
		"stock", req.StockID, "target", req.Target,
		"quantity", req.Quantity, "holder", req.HolderID)
	jsonResponse(w, http.StatusCreated, map[string]any{"created_ids": ids})
}
