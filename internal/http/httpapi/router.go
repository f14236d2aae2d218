package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"reselleros/internal/http/handlers"
	"reselleros/internal/infra"
	"reselleros/internal/middleware"
)

// NewRouter assembles the API routes with the shared middleware chain.
// Assistant routes carry a per-IP rate limit because each request may hold a
// model call open for the full completion timeout.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/system/ai", app.SystemAI)

	r.Route("/v1/assistant", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
		r.Post("/seo", app.AssistantSEO)
		r.Post("/pricing", app.AssistantPricing)
		r.Post("/marketing", app.AssistantMarketing)
		r.Post("/optimize-title", app.AssistantOptimizeTitle)
		r.Post("/research", app.AssistantResearch)
	})

	r.Route("/v1/items", func(r chi.Router) {
		r.Get("/", app.ListItems)
		r.Post("/", app.CreateItem)
		r.Get("/{id}", app.GetItem)
		r.Post("/{id}/seo", app.ItemSEO)
		r.Post("/{id}/pricing", app.ItemPricing)
		r.Post("/{id}/marketing", app.ItemMarketing)
	})

	return r
}
