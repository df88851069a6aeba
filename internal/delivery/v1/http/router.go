package http

import (
	"context"
	"net/http"

	_ "github.com/DRSN-tech/bifl-catalog/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/bifl-catalog/internal/usecase"
	"github.com/DRSN-tech/bifl-catalog/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// HealthChecker проверяет доступность хранилища.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, health HealthChecker) {
	r.router.Use(RequestID, AccessLog(r.logger), middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.router.Get("/healthz", healthHandler(health, r.logger))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		h := NewCatalogHandler(catalogUC, r.logger)
		registerProductRoutes(v1, h)
		registerBrandRoutes(v1, h)
	})
}

func registerProductRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/filters", h.getFilterOptions)
		pr.Get("/{id}", h.getProduct)
	})
}

func registerBrandRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/brands", func(br chi.Router) {
		br.Get("/", h.listBrands)
		br.Get("/{id}", h.getBrand)
	})
}

// healthHandler
//
//	@Summary	Проверка доступности
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	dto.ErrorResponse
//	@Router		/healthz [get]
func healthHandler(health HealthChecker, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := health.Ping(r.Context()); err != nil {
			loggerFromCtx(r.Context(), log).Errorf(err, "health check failed")
			WriteSuccess(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}

		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
