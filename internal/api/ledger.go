package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fixadd/BilgiislemTool/internal/model"
	"github.com/fixadd/BilgiislemTool/internal/store"
)

// LedgerHandler handles audit-log endpoints.
type LedgerHandler struct {
	DB *sql.DB
}

type eventRequest struct {
	Category    string `json:"category"`
	ItemID      int64  `json:"item_id"`
	Action      string `json:"action"`
	OldHolderID *int64 `json:"old_holder_id"`
	NewHolderID *int64 `json:"new_holder_id"`
	OldLocation string `json:"old_location"`
	NewLocation string `json:"new_location"`
	OldLabel    string `json:"old_label"`
	NewLabel    string `json:"new_label"`
	Note        string `json:"note"`
}

// Append handles POST /api/logs. The action comes from the request body.
func (h *LedgerHandler) Append(w http.ResponseWriter, r *http.Request) {
	h.appendWithAction(w, r, "")
}

// Assign handles POST /api/logs/assign.
func (h *LedgerHandler) Assign(w http.ResponseWriter, r *http.Request) {
	h.appendWithAction(w, r, model.ActionAssign)
}

// Return handles POST /api/logs/return.
func (h *LedgerHandler) Return(w http.ResponseWriter, r *http.Request) {
	h.appendWithAction(w, r, model.ActionReturn)
}

// Move handles POST /api/logs/move.
func (h *LedgerHandler) Move(w http.ResponseWriter, r *http.Request) {
	h.appendWithAction(w, r, model.ActionMove)
}

// Relabel handles POST /api/logs/relabel.
func (h *LedgerHandler) Relabel(w http.ResponseWriter, r *http.Request) {
	h.appendWithAction(w, r, model.ActionRelabel)
}

func (h *LedgerHandler) appendWithAction(w http.ResponseWriter, r *http.Request, action string) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if action == "" {
		action = req.Action
	}

	claims := GetClaims(r.Context())
	ev := &model.LedgerEvent{
		Category:    req.Category,
		ItemID:      req.ItemID,
		Action:      action,
		OldHolderID: req.OldHolderID,
		NewHolderID: req.NewHolderID,
		OldLocation: req.OldLocation,
		NewLocation: req.NewLocation,
		OldLabel:    req.OldLabel,
		NewLabel:    req.NewLabel,
		Note:        req.Note,
		ActorID:     claims.UserID,
	}

	id, err := store.AppendEvent(r.Context(), h.DB, ev)
	if err != nil {
		storeError(w, err)
		return
	}
	ev.ID = id

	slog.Info("ledger event appended", "user", claims.Username,
		"category", ev.Category, "item", ev.ItemID, "action", ev.Action)
	jsonResponse(w, http.StatusCreated, ev)
}

// List handles GET /api/logs.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.LedgerFilter{Category: r.URL.Query().Get("category")}

	var err error
	if filter.ItemID, err = queryInt(r, "item_id"); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item_id")
		return
	}
	if filter.HolderID, err = queryInt(r, "holder_id"); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid holder_id")
		return
	}
	limit, offset, err := pagination(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pagination")
		return
	}
	filter.Limit, filter.Offset = limit, offset

	events, err := store.QueryLedger(r.Context(), h.DB, filter)
	if err != nil {
		storeError(w, err)
		return
	}
	if events == nil {
		events = []model.LedgerEvent{}
	}
	jsonResponse(w, http.StatusOK, events)
}

// Latest handles GET /api/latest.
func (h *LedgerHandler) Latest(w http.ResponseWriter, r *http.Request) {
	filter := store.LatestFilter{Category: r.URL.Query().Get("category")}

	var err error
	if filter.HolderID, err = queryInt(r, "holder_id"); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid holder_id")
		return
	}
	limit, offset, err := pagination(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid pagination")
		return
	}
	filter.Limit, filter.Offset = limit, offset

	states, err := store.LatestAll(r.Context(), h.DB, filter)
	if err != nil {
		storeError(w, err)
		return
	}
	if states == nil {
		states = []model.LatestState{}
	}
	jsonResponse(w, http.StatusOK, states)
}

// LatestOne handles GET /api/latest/{category}/{id}.
func (h *LedgerHandler) LatestOne(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if !model.ValidCategory(category) {
		jsonError(w, http.StatusBadRequest, "unknown category")
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	state, err := store.LatestFor(r.Context(), h.DB, category, id)
	if err != nil {
		storeError(w, err)
		return
	}
	if state == nil {
		jsonError(w, http.StatusNotFound, "no events for item")
		return
	}
	jsonResponse(w, http.StatusOK, state)
}

// queryInt parses an optional integer query parameter, 0 when absent.
func queryInt(r *http.Request, name string) (int64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

// pagination parses optional limit/offset query parameters.
func pagination(r *http.Request) (int, int, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return 0, 0, err
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		return 0, 0, err
	}
	return int(limit), int(offset), nil
}
