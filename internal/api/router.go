package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/fastenerlib/internal/auth"
	"github.com/erazemk/fastenerlib/internal/inventory"
	"github.com/erazemk/fastenerlib/internal/model"
)

// Config carries the router's collaborators.
type Config struct {
	DB      *sql.DB
	Issuer  *auth.Issuer
	Library *inventory.Library
	// MaxUpload limits import and photo uploads, in bytes.
	MaxUpload int64
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(cfg Config) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: cfg.DB, Issuer: cfg.Issuer}
	usersHandler := &UsersHandler{DB: cfg.DB}
	itemsHandler := &ItemsHandler{DB: cfg.DB, Lib: cfg.Library, MaxUpload: cfg.MaxUpload}
	ordersHandler := &OrdersHandler{Lib: cfg.Library}
	inventoryHandler := &InventoryHandler{Lib: cfg.Library, MaxUpload: cfg.MaxUpload}
	auditHandler := &AuditHandler{Lib: cfg.Library}

	authMW := AuthMiddleware(cfg.Issuer, cfg.DB)
	requireAdmin := RequireRole(model.RoleAdmin)
	requireManager := RequireRole(model.RoleManager)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("GET /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Get))))
	mux.Handle("PUT /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Update))))
	mux.Handle("PUT /api/users/{id}/password", authMW(requireAdmin(http.HandlerFunc(usersHandler.ResetPassword))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	// Items: read and stock movements (all roles), write (manager+).
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(requireManager(http.HandlerFunc(itemsHandler.Save))))
	mux.Handle("GET /api/items/{article}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("DELETE /api/items/{article}", authMW(requireManager(http.HandlerFunc(itemsHandler.Delete))))
	mux.Handle("PUT /api/items/{article}/note", authMW(requireManager(http.HandlerFunc(itemsHandler.SaveNote))))
	mux.Handle("POST /api/items/{article}/stock", authMW(http.HandlerFunc(itemsHandler.Stock)))
	mux.Handle("GET /api/items/{article}/equivalents", authMW(http.HandlerFunc(itemsHandler.Equivalents)))
	mux.Handle("PUT /api/items/{article}/photo", authMW(requireManager(http.HandlerFunc(itemsHandler.UploadPhoto))))
	mux.Handle("GET /api/items/{article}/photo", authMW(http.HandlerFunc(itemsHandler.GetPhoto)))
	mux.Handle("GET /api/locations/free", authMW(http.HandlerFunc(itemsHandler.FreeLocations)))

	// Orders (all roles).
	mux.Handle("POST /api/orders", authMW(http.HandlerFunc(ordersHandler.Validate)))
	mux.Handle("POST /api/orders/export", authMW(http.HandlerFunc(ordersHandler.Export)))

	// Import (manager+), export and audit (all roles; backup manager+).
	mux.Handle("POST /api/import", authMW(requireManager(http.HandlerFunc(inventoryHandler.Import))))
	mux.Handle("GET /api/export/items", authMW(http.HandlerFunc(inventoryHandler.ExportItems)))
	mux.Handle("GET /api/export/backup", authMW(requireManager(http.HandlerFunc(inventoryHandler.Backup))))
	mux.Handle("GET /api/audit", authMW(http.HandlerFunc(auditHandler.List)))
	mux.Handle("GET /api/audit/export", authMW(http.HandlerFunc(auditHandler.Export)))

	return mux
}
