// Package api serves recorded matches over http: listings, status, paged
// frames and a websocket that streams frames while a match runs.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/jrissiusp/SnakeGameMultiplayer/config"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// Server is the spectator api.
type Server struct {
	hs    *http.Server
	store controller.Store
	poll  time.Duration
}

// New builds a server listening on addr and reading from store.
func New(addr string, store controller.Store) *Server {
	s := &Server{
		store: store,
		poll:  config.FramePoll,
	}

	router := httprouter.New()
	router.GET("/games", s.listGames)
	router.GET("/games/:id", s.status)
	router.GET("/games/:id/frames", s.frames)
	router.GET("/socket/:id", s.socket)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// Handler returns the root handler, used by tests and embedding hosts.
func (s *Server) Handler() http.Handler { return s.hs.Handler }

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() {
	log.Infof("Snake battle api listening on %s", s.hs.Addr)
	err := s.hs.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Errorf("Error while listening: %v", err)
	}
}

// Shutdown stops accepting connections and waits for open requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}
