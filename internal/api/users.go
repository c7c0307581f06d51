package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/fixadd/BilgiislemTool/internal/model"
	"github.com/fixadd/BilgiislemTool/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// UsersHandler handles user management endpoints.
type UsersHandler struct {
	DB *sql.DB
}

// List handles GET /api/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := store.ListUsers(r.Context(), h.DB)
	if err != nil {
		storeError(w, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}
	jsonResponse(w, http.StatusOK, users)
}

type createUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

// Create handles POST /api/users (admin only).
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user, err := store.CreateUser(r.Context(), h.DB, req.Username,
		req.FirstName, req.LastName, req.Email, string(hash), req.IsAdmin)
	if err != nil {
		storeError(w, err)
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("user created", "by", claims.Username, "username", user.Username, "admin", user.IsAdmin)
	jsonResponse(w, http.StatusCreated, user)
}

// LookupHandler handles dropdown-value endpoints.
type LookupHandler struct {
	DB *sql.DB
}

// List handles GET /api/lookup, optionally filtered by ?type=.
func (h *LookupHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListLookupItems(r.Context(), h.DB, r.URL.Query().Get("type"))
	if err != nil {
		storeError(w, err)
		return
	}
	if items == nil {
		items = []model.LookupItem{}
	}
	jsonResponse(w, http.StatusOK, items)
}

type createLookupRequest struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Create handles POST /api/lookup (admin only).
func (h *LookupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLookupRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Type == "" || req.Name == "" {
		jsonError(w, http.StatusBadRequest, "type and name are required")
		return
	}

	item, err := store.CreateLookupItem(r.Context(), h.DB, req.Type, req.Name)
	if err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, item)
}
