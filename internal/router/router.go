package router

import (
	"net/http"

	"horse-registry/internal/adapters/storage"
	"horse-registry/internal/domain/horses"
	"horse-registry/internal/domain/owners"
	"horse-registry/internal/middleware"
	"horse-registry/internal/platform/logger"
	"horse-registry/internal/platform/metrics"

	_ "horse-registry/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, usa esos repos (postgres/sqlite). Si no, in-memory.
	Stores *storage.Stores
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	stores := opts.Stores
	if stores == nil {
		stores = storage.NewMemory()
	}

	// Services por módulo
	ownersSvc := owners.NewService(stores.Owners, log)
	horsesSvc := horses.NewService(stores.Horses, ownersSvc, log)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc, log)
	horses.RegisterRoutes(r, horsesSvc, log)

	return r
}
