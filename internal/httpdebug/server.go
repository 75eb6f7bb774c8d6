// Package httpdebug serves health, metrics and a read-only JSON view of the
// daemon over HTTP.
package httpdebug

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/engine"
	"github.com/matheus3301/chatters/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Status reports the registered backends.
type Status interface {
	Backends() []engine.BackendStatus
}

// NewRouter builds the handler tree.
func NewRouter(status Status, st *store.Store, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handlers{status: status, store: st}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(logging(logger.Named("http")))

	r.Get("/healthz", h.health)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Get("/backends", h.backends)
		r.Get("/conversations", h.conversations)
		r.Get("/conversations/{id}/messages", h.messages)
	})
	return r
}

type handlers struct {
	status Status
	store  *store.Store
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	live := 0
	backends := h.status.Backends()
	for _, b := range backends {
		if b.State.Phase == chat.Live {
			live++
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"backends":      len(backends),
		"live":          live,
		"conversations": h.store.Len(),
	})
}

func (h *handlers) backends(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.status.Backends())
}

func (h *handlers) conversations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List(chat.BackendID(r.URL.Query().Get("backend"))))
}

func (h *handlers) messages(w http.ResponseWriter, r *http.Request) {
	id, err := chat.ParseConversationID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rng := store.Range{Before: r.URL.Query().Get("before"), After: r.URL.Query().Get("after"), Limit: 50}
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		rng.Limit = n
	}
	msgs, err := h.store.Messages(id, rng)
	if errors.Is(err, chat.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("took", time.Since(start)),
				zap.String("request_id", chimiddleware.GetReqID(r.Context())))
		})
	}
}

// Server is the debug listener.
type Server struct {
	srv    *http.Server
	ln     net.Listener
	logger *zap.Logger
}

// Listen binds addr. Serving starts with Serve.
func Listen(addr string, handler http.Handler, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	return &Server{
		srv:    &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second},
		ln:     ln,
		logger: logger.Named("http"),
	}, nil
}

// Addr is the bound address.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Serve runs in the background until Shutdown.
func (s *Server) Serve() {
	s.logger.Info("debug listener started", zap.String("addr", s.Addr()))
	go func() {
		if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("debug listener failed", zap.Error(err))
		}
	}()
}

// Shutdown stops accepting requests and waits for active ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
