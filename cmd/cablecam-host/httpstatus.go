package main

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
)

// statusServer exposes the most recently received trace/status snapshot
// over HTTP for a browser-based monitor dashboard, and is shared with the
// REPL so "status" can print the same data without a round trip.
type statusServer struct {
	router *chi.Mux

	mu       sync.RWMutex
	snapshot map[string]any
}

func newStatusServer() *statusServer {
	s := &statusServer{router: chi.NewRouter(), snapshot: map[string]any{}}
	s.router.Get("/status", s.handleStatus)
	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return s
}

func (s *statusServer) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

func (s *statusServer) update(snapshot map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
}

func (s *statusServer) current() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.snapshot))
	for k, v := range s.snapshot {
		out[k] = v
	}
	return out
}

func (s *statusServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.current())
}
