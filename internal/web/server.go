// Package web exposes the lending engine over a small JSON API. It is pure
// presentation: every request funnels into one ledger service call, and
// every engine error kind maps onto one status code.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"lendledger/internal/ledger"
)

type Server struct {
	service *ledger.Service
	mux     *http.ServeMux
	logger  *slog.Logger
}

func NewServer(svc *ledger.Service, logger *slog.Logger) *Server {
	s := &Server{
		service: svc,
		mux:     http.NewServeMux(),
		logger:  logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /members", s.handleCreateMember)
	s.mux.HandleFunc("GET /members", s.handleListMembers)
	s.mux.HandleFunc("GET /members/{id}", s.handleGetMember)
	s.mux.HandleFunc("PUT /members/{id}", s.handleUpdateMember)
	s.mux.HandleFunc("DELETE /members/{id}", s.handleDeleteMember)
	s.mux.HandleFunc("PUT /members/{id}/credits", s.handleSetCredits)
	s.mux.HandleFunc("GET /members/{id}/items", s.handleListOwnedItems)

	s.mux.HandleFunc("POST /items", s.handleCreateItem)
	s.mux.HandleFunc("GET /items", s.handleListItems)
	s.mux.HandleFunc("GET /items/{id}", s.handleGetItem)
	s.mux.HandleFunc("PATCH /items/{id}", s.handleUpdateItem)
	s.mux.HandleFunc("DELETE /items/{id}", s.handleDeleteItem)
	s.mux.HandleFunc("GET /items/{id}/availability", s.handleItemAvailability)
	s.mux.HandleFunc("GET /items/{id}/contracts", s.handleListItemContracts)

	s.mux.HandleFunc("POST /contracts", s.handleCreateContract)
	s.mux.HandleFunc("GET /contracts", s.handleListContracts)
	s.mux.HandleFunc("GET /contracts/{id}", s.handleGetContract)

	s.mux.HandleFunc("GET /time", s.handleGetTime)
	s.mux.HandleFunc("POST /time/advance", s.handleAdvanceTime)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestLogger tags each request with a generated id and logs method, path,
// status and duration once the handler returns.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}
