package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"PriceTrend/internal/source"
)

// Server exposes the rendered chart and the structured payload over HTTP.
type Server struct {
	httpServer *http.Server
	collector  *source.Collector

	chartWidth  int
	chartHeight int
	pixelRatio  float64
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(addr string, col *source.Collector, chartWidth, chartHeight int, pixelRatio float64) *Server {
	s := &Server{
		collector:   col,
		chartWidth:  chartWidth,
		chartHeight: chartHeight,
		pixelRatio:  pixelRatio,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/chart/", s.handleChart)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	zap.L().Info("http server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
