package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maskrx/pharmacy-backend/api/controllers"
	"github.com/maskrx/pharmacy-backend/api/middleware"
	"github.com/maskrx/pharmacy-backend/internal/pharmacies"
	"github.com/maskrx/pharmacy-backend/internal/purchase"
	"github.com/maskrx/pharmacy-backend/internal/reports"
	"github.com/maskrx/pharmacy-backend/internal/search"
	"github.com/maskrx/pharmacy-backend/pkg/config"
	"github.com/maskrx/pharmacy-backend/pkg/db"
	"github.com/maskrx/pharmacy-backend/pkg/logger"
	"github.com/maskrx/pharmacy-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	pharmacyService pharmacies.Service,
	searchService search.Service,
	purchaseService purchase.Service,
	reportsService reports.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Get("/", controllers.ServiceInfo(config.AppVersion))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/pharmacies", func(r chi.Router) {
			r.Get("/open", controllers.OpenPharmacies(pharmacyService, logg))
			r.Get("/filter_by_mask_count", controllers.FilterPharmaciesByMaskCount(pharmacyService, logg))
			r.Get("/{pharmacyName}/masks", controllers.PharmacyMasks(pharmacyService, logg))
		})

		r.Get("/search", controllers.Search(searchService, logg))
		r.Post("/purchase", controllers.Purchase(purchaseService, logg))
		r.Get("/summary", controllers.SalesSummary(reportsService, logg))
		r.Get("/users/top", controllers.TopUsers(reportsService, logg))
	})

	return r
}
