package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/trends/trends_api/internal/api/middlewares"
	"github.com/trends/trends_api/internal/config"
	"github.com/trends/trends_api/internal/errlocal"
	"github.com/trends/trends_api/internal/logging"
	"github.com/trends/trends_api/internal/metrics"
	"github.com/trends/trends_api/internal/store"
)

const (
	defaultTimeout  = time.Second * 10
	shutdownTimeout = time.Second * 3
	apiPrefix       = "/api/v1"
)

type Server struct {
	s       *http.Server
	router  *mux.Router
	store   store.Store
	limiter *middlewares.IPRateLimiter
	logger  *logging.Logger
	healthy atomic.Bool
}

// @title Trends API
// @version 1.0
// @description Stores trends and reports missing ones as 404 Not Found.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 0.0.0.0:8080
// @BasePath /api/v1
func NewServer(cfg config.Config, store store.Store, logger *logging.Logger) *Server {
	r := mux.NewRouter()

	var limiter *middlewares.IPRateLimiter
	if cfg.RateLimit.RPS > 0 {
		limiter = middlewares.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	return &Server{
		s: &http.Server{
			Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:      r,
			WriteTimeout: defaultTimeout,
			ReadTimeout:  defaultTimeout,
		},
		router:  r,
		store:   store,
		limiter: limiter,
		logger:  logger.WithApiTag(),
	}
}

func (s *Server) InitRouter() *mux.Router {
	s.initRouter()
	return s.router
}

func (s *Server) Start() error {
	s.logger.Infof("starting server at %s", s.s.Addr)
	s.initRouter()
	s.healthy.Store(true)

	return s.s.ListenAndServe()
}

func (s *Server) Shutdown() error {
	s.logger.Infof("shutting down server at %s", s.s.Addr)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.healthy.Store(false)

	if err := s.s.Shutdown(ctx); err != nil {
		s.logger.Warnf("graceful shutdown failed, forcing close: %v", err)
		return s.s.Close()
	}

	return nil
}

func (s *Server) WriteResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		s.logger.WithContext(r.Context()).WithField("status", status).Info("request processed")
		return
	}

	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrInternal("failed to encode response", err.Error(), nil))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))

	s.logger.WithContext(r.Context()).WithField("status", status).Info("request processed")
}

// WriteError is the error boundary: it classifies err, writes the matching
// status with a JSON body that keeps the original message, and logs it.
func (s *Server) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	kind := errlocal.KindOf(err)
	status := statusCode(kind)

	body, encodeErr := json.MarshalIndent(errorBody(err, kind), "", "  ")
	if encodeErr != nil {
		http.Error(w, `{"kind":"internal","message":"failed to encode error response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))

	metrics.ObserveError(kind, status)

	l := s.logger.WithContext(r.Context()).WithLocalError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		l.Error("request processed with error")
		return
	}
	l.Warn("request processed with error")
}

// HealthCheck godoc
// @Summary Health check
// @Description Check server health
// @Tags health
// @Produce json
// @Success 200 {object} bool "Is server healthy"
// @Router /health [get]
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	healthy := s.healthy.Load()
	if healthy {
		if err := s.store.Ping(r.Context()); err != nil {
			s.logger.WithContext(r.Context()).WithError(err).Warn("store ping failed")
			healthy = false
		}
	}
	s.WriteResponse(w, r, http.StatusOK, healthy)
}
