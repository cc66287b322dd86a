package server

import (
	"net/http"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/websocket"
)

// Server exposes live-preview rendering over websockets, plus health and
// Prometheus metrics endpoints.
type Server struct {
	addr string
}

// New creates a server listening on addr
func New(addr string) *Server {
	return &Server{addr: addr}
}

// ListenAndServe blocks serving requests
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.Handle("/render", websocket.Handler(s.handleRender))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	logs.WithTag("addr", s.addr).Info("starting preview server")
	return http.ListenAndServe(s.addr, mux)
}
