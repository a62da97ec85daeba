package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/notaktolabs/notakto-backend/internal/repository"
)

type resultLister interface {
	ListRecent(ctx context.Context, limit int) ([]*repository.MatchResult, error)
}

type Server struct {
	logger  *slog.Logger
	results resultLister
}

func New(logger *slog.Logger, results resultLister) *Server {
	return &Server{
		logger:  logger.With("component", "rest"),
		results: results,
	}
}

func (that *Server) Start(port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", that.handlePing)
	mux.HandleFunc("/results", that.handleResults)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
