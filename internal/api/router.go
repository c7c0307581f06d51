package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	ledgerHandler := &LedgerHandler{DB: db}
	itemsHandler := &ItemsHandler{DB: db}
	transfersHandler := &TransfersHandler{DB: db}
	trashHandler := &TrashHandler{DB: db}
	activityHandler := &ActivityHandler{DB: db}
	usersHandler := &UsersHandler{DB: db}
	lookupHandler := &LookupHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret)

	// Audit log.
	mux.Handle("POST /api/logs", authMW(http.HandlerFunc(ledgerHandler.Append)))
	mux.Handle("GET /api/logs", authMW(http.HandlerFunc(ledgerHandler.List)))
	mux.Handle("POST /api/logs/assign", authMW(http.HandlerFunc(ledgerHandler.Assign)))
	mux.Handle("POST /api/logs/return", authMW(http.HandlerFunc(ledgerHandler.Return)))
	mux.Handle("POST /api/logs/move", authMW(http.HandlerFunc(ledgerHandler.Move)))
	mux.Handle("POST /api/logs/relabel", authMW(http.HandlerFunc(ledgerHandler.Relabel)))

	// Latest resolved state.
	mux.Handle("GET /api/latest", authMW(http.HandlerFunc(ledgerHandler.Latest)))
	mux.Handle("GET /api/latest/{category}/{id}", authMW(http.HandlerFunc(ledgerHandler.LatestOne)))

	// Record families: intake, listing, soft delete, restore.
	mux.Handle("GET /api/items/{category}", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items/{category}", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items/{category}/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("DELETE /api/items/{category}/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("POST /api/items/{category}/{id}/restore", authMW(http.HandlerFunc(itemsHandler.Restore)))

	// Stock transfers.
	mux.Handle("POST /api/transfers", authMW(http.HandlerFunc(transfersHandler.Create)))
	mux.Handle("POST /api/transfers/assign", authMW(http.HandlerFunc(transfersHandler.Assign)))

	// Trash: listing for all, permanent deletion for admins.
	mux.Handle("GET /api/trash/{category}", authMW(http.HandlerFunc(trashHandler.List)))
	mux.Handle("POST /api/trash/{category}/delete", authMW(RequireAdmin(http.HandlerFunc(trashHandler.Delete))))

	// Activity log.
	mux.Handle("GET /api/activity", authMW(http.HandlerFunc(activityHandler.List)))

	// Users and lookup values (writes are admin only).
	mux.Handle("GET /api/users", authMW(http.HandlerFunc(usersHandler.List)))
	mux.Handle("POST /api/users", authMW(RequireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("GET /api/lookup", authMW(http.HandlerFunc(lookupHandler.List)))
	mux.Handle("POST /api/lookup", authMW(RequireAdmin(http.HandlerFunc(lookupHandler.Create))))

	return mux
}
