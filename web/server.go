// Package web exposes the liveness endpoint the hosting platform probes
// to keep the process from being suspended.
package web

import (
	"fmt"
	"log"
	"net/http"
	"time"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(port int) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handleRoot)
	mux.HandleFunc("/health", handleHealth)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// Start blocks until the server is shut down.
func (s *Server) Start() error {
	log.Printf("web: listening on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("I'm alive"))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
