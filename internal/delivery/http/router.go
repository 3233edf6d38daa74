package http

import (
	"net/http"

	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	pageHandler       *handler.PageHandler
	metricsHandler    http.Handler
	loggingMiddleware *middleware.LoggingMiddleware
	corsMiddleware    *middleware.CORSMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	pageHandler *handler.PageHandler,
	metricsHandler http.Handler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		pageHandler:       pageHandler,
		metricsHandler:    metricsHandler,
		loggingMiddleware: loggingMiddleware,
		corsMiddleware:    corsMiddleware,
	}
}

func (r *Router) Setup() http.Handler {
	// Directory page
	r.router.HandleFunc("/", r.pageHandler.Directory).Methods(http.MethodGet)
	r.router.HandleFunc("/filters/{action}", r.pageHandler.ApplyFilter).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory API
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/suggestions", r.doctorHandler.SuggestDoctors).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.doctorHandler.ListSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/filters/{action}", r.doctorHandler.ApplyFilterAction).Methods(http.MethodGet)

	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	r.router.Use(r.loggingMiddleware.Handle)

	// CORS wraps the router so preflight requests are answered before method matching.
	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
