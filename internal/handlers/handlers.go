package handlers

import (
	"TodoKeeper/internal/config"
	"TodoKeeper/internal/middleware"
	"TodoKeeper/internal/service"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger проверяет доступность БД (*sql.DB подходит).
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	db Pinger,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	itemHandler := NewItemHandler(itemService, logger, config)

	// Item routes
	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", itemHandler.List)
		r.Post("/", itemHandler.Create)
		r.Get("/{id}", itemHandler.Get)
		r.Put("/{id}", itemHandler.Rename)
		r.Post("/{id}/toggle", itemHandler.Toggle)
		r.Delete("/{id}", itemHandler.Delete)
	})

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				logger.Errorw("Ping: database unavailable", "error", err)
				http.Error(w, "database unavailable", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	return &Handler{Router: r}
}
