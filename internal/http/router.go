package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/product-catalog/docs"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(Recoverer)

	r.NotFound(handlers.Handle(func(w http.ResponseWriter, r *http.Request) error {
		return &handlers.NotFoundError{Message: "Route not found"}
	}))
	r.MethodNotAllowed(handlers.Handle(func(w http.ResponseWriter, req *http.Request) error {
		w.Header().Set("Allow", strings.Join(allowedMethods(r, req.URL.Path), ", "))
		return &handlers.MethodNotAllowedError{Message: "Method not allowed"}
	}))

	r.Get("/", handlers.Handle(handlers.RootHandler))
	r.Get("/healthz", handlers.Handle(handlers.HealthHandler))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", handlers.Handle(handlers.GetProductsHandler))
		r.Get("/stats", handlers.Handle(handlers.GetProductStatsHandler))
		r.Get("/{id}", handlers.Handle(handlers.GetProductByIDHandler))

		r.Group(func(r chi.Router) {
			r.Use(APIKeyMiddleware(cfg.APIKey))
			r.Post("/", handlers.Handle(handlers.CreateProductHandler))
			r.Put("/{id}", handlers.Handle(handlers.UpdateProductHandler))
			r.Delete("/{id}", handlers.Handle(handlers.DeleteProductHandler))
		})
	})

	return r
}

var routeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// allowedMethods lists the methods routes serves for path, in routeMethods order.
func allowedMethods(routes chi.Routes, path string) []string {
	var allowed []string
	for _, m := range routeMethods {
		if routes.Match(chi.NewRouteContext(), m, path) {
			allowed = append(allowed, m)
		}
	}
	return allowed
}
