package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/account"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/budget"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/category"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/notification"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/openapi"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/user"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger   *logrus.Logger
	Config   config.ServerConfig
	Service  *service.Service
	Database pinger
}

// Handler builds the full route table wrapped in the request logging
// middleware.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Database)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, openapi.Config())
	user.Register(api, r.Service.User, r.Service.Summary)
	account.Register(api, r.Service.Account)
	category.Register(api, r.Service.Category)
	transaction.Register(api, r.Service.Transaction)
	budget.Register(api, r.Service.Budget)
	notification.Register(api, r.Service.Notification)

	return logging.Middleware(r.Logger, mux)
}

// Serve listens until ctx is cancelled, then shuts down gracefully within
// the configured timeout.
func (r *Rest) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + r.Config.Port,
		Handler:           r.Handler(),
		ReadTimeout:       r.Config.ReadTimeout,
		WriteTimeout:      r.Config.WriteTimeout,
		IdleTimeout:       r.Config.IdleTimeout,
		ReadHeaderTimeout: r.Config.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.Logger.WithField("port", r.Config.Port).Info("HttpServer.Serve.listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.Config.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
