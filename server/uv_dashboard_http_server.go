package server

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type UVDashboardHttpServer struct {
	addr      string
	muxRouter *mux.Router
	closers   []io.Closer
}

// NewUVDashboardHttpServer registers the routes once; closers are released on shutdown.
func NewUVDashboardHttpServer(addr string, router *Router, muxRouter *mux.Router, closers ...io.Closer) *UVDashboardHttpServer {
	router.RegisterRoutes()
	return &UVDashboardHttpServer{
		addr:      addr,
		muxRouter: muxRouter,
		closers:   closers,
	}
}

// Handler returns the root handler.
func (s *UVDashboardHttpServer) Handler() http.Handler {
	return s.muxRouter
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *UVDashboardHttpServer) Start() {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.shutdown(ctx, srv); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

// shutdown stops srv, then releases every closer even if one fails.
func (s *UVDashboardHttpServer) shutdown(ctx context.Context, srv *http.Server) error {
	err := srv.Shutdown(ctx)
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil {
			log.Printf("Failed to release resource: %v", cerr)
		}
	}
	return err
}
