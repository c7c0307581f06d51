package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fixadd/BilgiislemTool/internal/model"
	"github.com/fixadd/BilgiislemTool/internal/store"
)

// ItemsHandler handles intake, listing, soft deletion and restore for the
// four record families. The category is a path segment; the handler
// dispatches on it rather than registering one route per family.
type ItemsHandler struct {
	DB *sql.DB
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// List handles GET /api/items/{category}.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var data any
	var err error

	switch r.PathValue("category") {
	case model.CategoryPC:
		var items []model.Hardware
		items, err = store.ListHardware(ctx, h.DB)
		if items == nil {
			items = []model.Hardware{}
		}
		data = items
	case model.CategoryLicense:
		var items []model.License
		items, err = store.ListLicenses(ctx, h.DB)
		if items == nil {
			items = []model.License{}
		}
		data = items
	case model.CategoryAccessory:
		var items []model.Accessory
		items, err = store.ListAccessories(ctx, h.DB)
		if items == nil {
			items = []model.Accessory{}
		}
		data = items
	case model.CategoryStock:
		var items []model.StockItem
		items, err = store.ListStockItems(ctx, h.DB)
		if items == nil {
			items = []model.StockItem{}
		}
		data = items
	default:
		jsonError(w, http.StatusBadRequest, "unknown category")
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, data)
}

// Create handles POST /api/items/{category}.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims := GetClaims(ctx)
	var data any
	var err error

	switch r.PathValue("category") {
	case model.CategoryPC:
		var in model.Hardware
		if err := decodeJSON(r, &in); err != nil {
			jsonError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		in.RecordedBy = claims.Username
		data, err = store.CreateHardware(ctx, h.DB, &in)
	case model.CategoryLicense:
		var in model.License
		if err := decodeJSON(r, &in); err != nil {
			jsonError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		in.RecordedBy = claims.Username
		data, err = store.CreateLicense(ctx, h.DB, &in)
	case model.CategoryAccessory:
		var in model.Accessory
		if err := decodeJSON(r, &in); err != nil {
			jsonError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		in.RecordedBy = claims.Username
		data, err = store.CreateAccessory(ctx, h.DB, &in)
	case model.CategoryStock:
		var in model.StockItem
		if err := decodeJSON(r, &in); err != nil {
			jsonError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		in.RecordedBy = claims.Username
		data, err = store.CreateStockItem(ctx, h.DB, &in)
	default:
		jsonError(w, http.StatusBadRequest, "unknown category")
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("record created", "user", claims.Username, "category", r.PathValue("category"))
	jsonResponse(w, http.StatusCreated, data)
}

// Get handles GET /api/items/{category}/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx := r.Context()
	var data any

	switch r.PathValue("category") {
	case model.CategoryPC:
		var item *model.Hardware
		item, err = store.GetHardware(ctx, h.DB, id)
		if item != nil {
			data = item
		}
	case model.CategoryLicense:
		var item *model.License
		item, err = store.GetLicense(ctx, h.DB, id)
		if item != nil {
			data = item
		}
	case model.CategoryAccessory:
		var item *model.Accessory
		item, err = store.GetAccessory(ctx, h.DB, id)
		if item != nil {
			data = item
		}
	case model.CategoryStock:
		var item *model.StockItem
		item, err = store.GetStockItem(ctx, h.DB, id)
		if item != nil {
			data = item
		}
	default:
		jsonError(w, http.StatusBadRequest, "unknown category")
		return
	}
	if err != nil {
		storeError(w, err)
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "record not found")
		return
	}
	jsonResponse(w, http.StatusOK, data)
}

// Delete handles DELETE /api/items/{category}/{id}. Records are moved to
// the trash, not destroyed; they purge automatically after the retention
// window.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	family, err := store.FamilyFor(r.PathValue("category"))
	if err != nil {
		storeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	claims := GetClaims(r.Context())
	if err := store.SoftDelete(r.Context(), h.DB, family, id, claims.Username); err != nil {
		storeError(w, err)
		return
	}

	slog.Info("record deleted", "user", claims.Username,
		"category", family.Category, "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// Restore handles POST /api/items/{category}/{id}/restore.
func (h *ItemsHandler) Restore(w http.ResponseWriter, r *http.Request) {
	family, err := store.FamilyFor(r.PathValue("category"))
	if err != nil {
		storeError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	claims := GetClaims(r.Context())
	if err := store.Restore(r.Context(), h.DB, family, id); err != nil {
		storeError(w, err)
		return
	}
	store.LogAction(r.Context(), h.DB, claims.Username,
		"restored "+family.Category+" record "+strconv.FormatInt(id, 10))

	slog.Info("record restored", "user", claims.Username,
		"category", family.Category, "id", id)
	w.WriteHeader(http.StatusNoContent)
}
