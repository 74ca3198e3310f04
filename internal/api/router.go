package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/trends/trends_api/docs"
	"github.com/trends/trends_api/internal/api/middlewares"
	"github.com/trends/trends_api/internal/errlocal"
	"github.com/trends/trends_api/internal/metrics"
)

const (
	trendIDTag    = "trend_id"
	trendNameTag  = "name"
	defaultLimit  = 50
	maxQueryLimit = 100
)

func (s *Server) initRouter() {
	// Must precede Subrouter: subrouters copy the route config when created.
	// Path variables then arrive escaped, so names may contain "/".
	s.router.UseEncodedPath()

	s.router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	s.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	root := s.router.PathPrefix(apiPrefix).Subrouter().StrictSlash(true)
	// Use() does not cover NotFoundHandler, so it gets the same chain by hand.
	root.NotFoundHandler = metrics.Middleware(s.commonMiddleware(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.WriteError(w, r, errlocal.NewErrNotFound("endpoint not found", "router",
				map[string]any{"path": r.URL.Path}))
		})))
	root.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			s.setCORSHeaders(w, r)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	root.Use(mux.CORSMethodMiddleware(root), metrics.Middleware, s.commonMiddleware)
	if s.limiter != nil {
		root.Use(middlewares.RateLimit(s.limiter, s.WriteError))
	}

	root.HandleFunc("/health", s.healthCheck).Methods(http.MethodGet)

	trendRouter := root.PathPrefix("/trends").Subrouter()
	trendRouter.HandleFunc("", s.listTrends).Methods(http.MethodGet)
	trendRouter.HandleFunc("", s.createTrend).Methods(http.MethodPost)
	trendRouter.HandleFunc("", s.purgeTrends).Methods(http.MethodDelete)
	trendRouter.HandleFunc("/import", s.importTrends).Methods(http.MethodPost)
	trendRouter.HandleFunc(fmt.Sprintf("/by-name/{%s}", trendNameTag), s.getTrendByName).Methods(http.MethodGet)
	trendRouter.HandleFunc(fmt.Sprintf("/{%s}", trendIDTag), s.getTrend).Methods(http.MethodGet)
	trendRouter.HandleFunc(fmt.Sprintf("/{%s}", trendIDTag), s.deleteTrend).Methods(http.MethodDelete)
	trendRouter.HandleFunc(fmt.Sprintf("/{%s}/score", trendIDTag), s.updateTrendScore).Methods(http.MethodPatch)
}
