package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Orders    *OrderHandler
	Recommend *RecommendHandler
	Reports   *ReportHandler
	Catalog   *CatalogHandler
}

// NewRouter builds the HTTP routing tree. mw wraps the API routes only;
// probes stay unthrottled.
func NewRouter(h Handlers, mw func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, errorBody{Code: codeNotFound, Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, errorBody{Code: codeBadRequest, Message: "method not allowed"})
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		if mw != nil {
			r.Use(mw)
		}

		r.Post("/orders", h.Orders.Create)
		r.Get("/orders/{id}", h.Orders.Get)
		r.Get("/orders/{id}/history", h.Orders.History)

		r.Get("/customers/{id}/recommendations", h.Recommend.List)
		r.Get("/customers/{id}/history", h.Orders.CustomerHistory)

		r.Get("/reports/daily-revenue", h.Reports.DailyRevenue)
		r.Get("/reports/top-products", h.Reports.TopProducts)
		r.Get("/reports/high-value-customers", h.Reports.HighValueCustomers)

		r.Get("/products/search", h.Catalog.SearchProducts)
		r.Get("/products/{id}", h.Catalog.GetProduct)
		r.Post("/categories", h.Catalog.CreateCategory)
		r.Put("/categories/{id}/parent", h.Catalog.MoveCategory)
	})

	return r
}

func chiParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
