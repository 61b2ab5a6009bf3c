package http

import (
	"net/http"

	"local-services-marketplace/internal/delivery/http/handler"
	"local-services-marketplace/internal/delivery/http/middleware"
	"local-services-marketplace/pkg/response"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router          *mux.Router
	log             *logrus.Logger
	registry        *prometheus.Registry
	metrics         *middleware.Metrics
	authHandler     *handler.AuthHandler
	providerHandler *handler.ProviderHandler
	categoryHandler *handler.CategoryHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	log *logrus.Logger,
	registry *prometheus.Registry,
	authHandler *handler.AuthHandler,
	providerHandler *handler.ProviderHandler,
	categoryHandler *handler.CategoryHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		log:             log,
		registry:        registry,
		metrics:         middleware.NewMetrics(registry),
		authHandler:     authHandler,
		providerHandler: providerHandler,
		categoryHandler: categoryHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

// Setup registers every route. CORS and request IDs wrap the router itself
// so preflight requests and unmatched paths still get them.
func (r *Router) Setup() http.Handler {
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})
	r.router.Use(middleware.AccessLog(r.log, r.metrics))

	r.router.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	api.HandleFunc("/auth/register", r.authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	api.HandleFunc("/categories", r.categoryHandler.ListCategories).Methods(http.MethodGet)

	// Provider routes (public). Literal paths go before {id}.
	api.HandleFunc("/providers", r.providerHandler.ListProviders).Methods(http.MethodGet)
	api.HandleFunc("/providers/search", r.providerHandler.SearchProviders).Methods(http.MethodGet)

	// Provider routes (provider role only)
	provider := api.PathPrefix("/providers").Subrouter()
	provider.Use(r.authMiddleware.Authenticate)
	provider.Use(middleware.RequireProvider)
	provider.HandleFunc("/me/profile", r.providerHandler.GetMyProfile).Methods(http.MethodGet)
	provider.HandleFunc("/me/activity", r.providerHandler.GetMyActivity).Methods(http.MethodGet)
	provider.HandleFunc("/profile", r.providerHandler.CreateProfile).Methods(http.MethodPost)
	provider.HandleFunc("/{id}/profile", r.providerHandler.UpdateProfile).Methods(http.MethodPut)
	provider.HandleFunc("/{id}/portfolio", r.providerHandler.AddPortfolioItem).Methods(http.MethodPost)

	api.HandleFunc("/providers/{id}", r.providerHandler.GetProvider).Methods(http.MethodGet)

	return middleware.RequestID(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "ok", map[string]string{"status": "ok"})
}
