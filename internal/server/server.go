package server

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/larder/internal/auth"
	"github.com/dukerupert/larder/internal/backup"
	"github.com/dukerupert/larder/internal/config"
	"github.com/dukerupert/larder/internal/enrich"
	"github.com/dukerupert/larder/internal/feed"
	"github.com/dukerupert/larder/internal/handler"
	"github.com/dukerupert/larder/internal/list"
	"github.com/dukerupert/larder/internal/middleware"
	"github.com/dukerupert/larder/internal/profile"
	"github.com/dukerupert/larder/internal/push"
	"github.com/dukerupert/larder/internal/realtime"
	"github.com/dukerupert/larder/internal/sync"
)

const (
	scanRateLimit  = 10
	scanRateWindow = time.Minute
)

type Server struct {
	store         realtime.Store
	tokens        *auth.Tokens
	inventoryH    *handler.InventoryHandler
	groceryH      *handler.GroceryHandler
	scanH         *handler.ScanHandler
	recipesH      *handler.RecipesHandler
	profileH      *handler.ProfileHandler
	pushH         *handler.PushHandler
	rateLimiter   *middleware.RateLimiter
	backupManager *backup.Manager
	logger        *slog.Logger
}

func New(db *sql.DB, cfg config.Config, logger *slog.Logger) *Server {
	store := realtime.NewSQLiteStore(db, logger.With("component", "realtime"))
	repo := list.NewRepository(store, logger.With("component", "list"))

	pushStore := push.NewStore(db)
	pushSvc := push.NewService(cfg.Push, pushStore, logger.With("component", "push"))

	orchestrator := enrich.NewOrchestrator(
		enrich.NewProductClient(cfg.ProductAPIBase),
		enrich.NewCategoryClient(cfg.CategoryAPIBase, cfg.CategoryAPIKey),
		enrich.NewRecipeClient(cfg.RecipeAPIBase, cfg.RecipeAPIKey),
		logger.With("component", "enrich"),
	)

	return &Server{
		store:         store,
		tokens:        auth.NewTokens(cfg.JWTSecret, 0),
		inventoryH:    handler.NewInventoryHandler(repo, logger.With("component", "inventory")),
		groceryH:      handler.NewGroceryHandler(repo, pushSvc, logger.With("component", "grocery")),
		scanH:         handler.NewScanHandler(orchestrator, logger.With("component", "scan")),
		recipesH:      handler.NewRecipesHandler(repo, sync.NewMemoRegistry(), orchestrator, logger.With("component", "recipes")),
		profileH:      handler.NewProfileHandler(profile.NewStore(db), logger.With("component", "profile")),
		pushH:         handler.NewPushHandler(pushSvc, pushStore, logger.With("component", "push_handler")),
		rateLimiter:   middleware.NewRateLimiter(),
		backupManager: backup.NewManager(cfg.Backup, db, logger.With("component", "backup")),
		logger:        logger,
	}
}

// BackupManager exposes the backup scheduler for lifecycle management.
func (s *Server) BackupManager() *backup.Manager {
	return s.backupManager
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	api := http.NewServeMux()

	api.HandleFunc("GET /api/inventory", s.inventoryH.List)
	api.HandleFunc("POST /api/inventory", s.inventoryH.Create)
	api.HandleFunc("PUT /api/inventory/{id}", s.inventoryH.Update)
	api.HandleFunc("DELETE /api/inventory/{id}", s.inventoryH.Delete)

	api.HandleFunc("GET /api/grocery", s.groceryH.List)
	api.HandleFunc("POST /api/grocery", s.groceryH.Create)
	api.HandleFunc("PUT /api/grocery/{id}", s.groceryH.Update)
	api.HandleFunc("DELETE /api/grocery/{id}", s.groceryH.Delete)
	api.HandleFunc("POST /api/grocery/{id}/check", s.groceryH.Check)
	api.HandleFunc("POST /api/grocery/move-to-inventory", s.groceryH.MoveToInventory)
	api.HandleFunc("POST /api/grocery/clear-checked", s.groceryH.ClearChecked)

	// Scans hit metered external APIs; rate-limit by client IP.
	scanLimit := middleware.RateLimit(s.rateLimiter, middleware.RealIP, scanRateLimit, scanRateWindow)
	api.Handle("POST /api/scan", scanLimit(http.HandlerFunc(s.scanH.Scan)))

	api.HandleFunc("GET /api/recipes", s.recipesH.List)

	api.HandleFunc("GET /api/profile", s.profileH.Get)
	api.HandleFunc("PUT /api/profile", s.profileH.Update)

	api.HandleFunc("GET /api/push/vapid-key", s.pushH.VAPIDKey)
	api.HandleFunc("POST /api/push/subscribe", s.pushH.Subscribe)
	api.HandleFunc("DELETE /api/push/subscriptions/{id}", s.pushH.Unsubscribe)

	api.HandleFunc("GET /ws", feed.Handle(s.store, s.logger.With("component", "feed")))

	requireAuth := middleware.RequireAuth(s.tokens)
	mux.Handle("/api/", requireAuth(api))
	mux.Handle("/ws", requireAuth(api))

	return middleware.RequestLogger(s.logger)(mux)
}
